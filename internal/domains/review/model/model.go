package model

import "pousada/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldGuestName = "guest_name"
	FieldRating    = "rating"
	FieldComment   = "comment"
	FieldApproved  = "approved"
)

// Review is a guest testimonial. Only approved reviews show up on the public
// site, so new submissions start unapproved and wait for moderation.
type Review struct {
	ID        string `db:"id"`
	RoomID    string `db:"room_id"`
	GuestName string `db:"guest_name"`
	Rating    int    `db:"rating"`
	Comment   string `db:"comment"`
	Approved  bool   `db:"approved"`
	model.Metadata
}
