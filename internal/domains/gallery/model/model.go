package model

import (
	"github.com/lib/pq"

	"pousada/shared/model"
)

const (
	TableName  = "galleries"
	EntityName = "gallery"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImages      = "images"
	FieldPosition    = "position"
)

// Gallery is a titled set of images shown on the public site.
// RoomID is set when the album belongs to a single room.
type Gallery struct {
	ID          string         `db:"id"`
	RoomID      *string        `db:"room_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Images      pq.StringArray `db:"images"`
	Position    int            `db:"position"`
	model.Metadata
}
