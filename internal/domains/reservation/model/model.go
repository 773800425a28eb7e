package model

import (
	"time"

	"pousada/shared/model"
	"pousada/shared/money"
	"pousada/shared/stay"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID               = "id"
	FieldRoomID           = "room_id"
	FieldCheckIn          = "check_in"
	FieldCheckOut         = "check_out"
	FieldGuestName        = "guest_name"
	FieldGuestEmail       = "guest_email"
	FieldGuestPhone       = "guest_phone"
	FieldGuestCount       = "guest_count"
	FieldTotalCents       = "total_cents"
	FieldCurrency         = "currency"
	FieldStatus           = "status"
	FieldPaymentSessionID = "payment_session_id"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// BlockingStatuses are the lifecycle states that hold a room's dates.
// Cancelled and completed reservations never block new bookings.
var BlockingStatuses = []string{StatusPending, StatusConfirmed}

type Reservation struct {
	ID               string      `db:"id"`
	RoomID           string      `db:"room_id"`
	CheckIn          time.Time   `db:"check_in"`
	CheckOut         time.Time   `db:"check_out"`
	GuestName        string      `db:"guest_name"`
	GuestEmail       string      `db:"guest_email"`
	GuestPhone       string      `db:"guest_phone"`
	GuestCount       int         `db:"guest_count"`
	TotalCents       money.Cents `db:"total_cents"`
	Currency         string      `db:"currency"`
	Status           string      `db:"status"`
	PaymentSessionID *string     `db:"payment_session_id"`
	model.Metadata
}

// Range returns the stay interval held by the reservation.
func (r *Reservation) Range() stay.DateRange {
	return stay.DateRange{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
}

// Blocking reports whether the reservation currently holds its dates.
func (r *Reservation) Blocking() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}
