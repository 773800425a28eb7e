package model

import (
	"pousada/shared/model"
	"pousada/shared/money"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID               = "id"
	FieldName             = "name"
	FieldDescription      = "description"
	FieldCapacity         = "capacity"
	FieldWeekdayRateCents = "weekday_rate_cents"
	FieldWeekendRateCents = "weekend_rate_cents"
	FieldImage            = "image"
	FieldActive           = "active"
)

type Room struct {
	ID               string      `db:"id"`
	Name             string      `db:"name"`
	Description      string      `db:"description"`
	Capacity         int         `db:"capacity"`
	WeekdayRateCents money.Cents `db:"weekday_rate_cents"`
	WeekendRateCents money.Cents `db:"weekend_rate_cents"`
	Image            string      `db:"image"`
	Active           bool        `db:"active"`
	model.Metadata
}
