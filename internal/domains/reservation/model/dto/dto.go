package dto

import (
	"github.com/google/uuid"

	"pousada/internal/domains/reservation/model"
	"pousada/shared"
	gDto "pousada/shared/dto"
	gModel "pousada/shared/model"
	"pousada/shared/money"
	"pousada/shared/stay"
	"pousada/shared/timezone"
)

type CreateReservationRequest struct {
	RoomID     string `json:"room_id"     validate:"required"`
	CheckIn    string `json:"check_in"    validate:"required"`
	CheckOut   string `json:"check_out"   validate:"required"`
	GuestName  string `json:"guest_name"  validate:"required,max=100"`
	GuestEmail string `json:"guest_email" validate:"required,email,max=100"`
	GuestPhone string `json:"guest_phone" validate:"omitempty,max=20"`
	GuestCount int    `json:"guest_count" validate:"required,min=1"`
}

// Range parses and validates the requested stay dates.
func (c *CreateReservationRequest) Range() (stay.DateRange, error) {
	return stay.ParseRange(c.CheckIn, c.CheckOut)
}

func (c *CreateReservationRequest) ToModel(user string, rng stay.DateRange, total money.Cents, currency string) model.Reservation {
	return model.Reservation{
		ID:         uuid.NewString(),
		RoomID:     c.RoomID,
		CheckIn:    rng.CheckIn,
		CheckOut:   rng.CheckOut,
		GuestName:  c.GuestName,
		GuestEmail: c.GuestEmail,
		GuestPhone: c.GuestPhone,
		GuestCount: c.GuestCount,
		TotalCents: total,
		Currency:   currency,
		Status:     model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateReservationResponse struct {
	ReservationID       string `json:"reservation_id"`
	Nights              int    `json:"nights"`
	TotalCents          int64  `json:"total_cents"`
	Currency            string `json:"currency"`
	PaymentClientSecret string `json:"payment_client_secret,omitempty"`
}

type UpdateReservationRequest struct {
	GuestName  string `db:"guest_name"  json:"guest_name"  validate:"omitempty,max=100"`
	GuestEmail string `db:"guest_email" json:"guest_email" validate:"omitempty,email,max=100"`
	GuestPhone string `db:"guest_phone" json:"guest_phone" validate:"omitempty,max=20"`
	Status     string `db:"status"      json:"status"      validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

type OccupiedDatesResponse struct {
	Dates []string `json:"dates"`
}

type AvailableRoomsResponse struct {
	RoomIDs []string `json:"room_ids"`
}

type ReservationResponse struct {
	ID                  string  `json:"id"`
	RoomID              string  `json:"room_id"`
	CheckIn             string  `json:"check_in"`
	CheckOut            string  `json:"check_out"`
	GuestName           string  `json:"guest_name"`
	GuestEmail          string  `json:"guest_email"`
	GuestPhone          string  `json:"guest_phone"`
	GuestCount          int     `json:"guest_count"`
	Nights              int     `json:"nights"`
	TotalCents          int64   `json:"total_cents"`
	Currency            string  `json:"currency"`
	Status              string  `json:"status"`
	PaymentSessionID    *string `json:"payment_session_id,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn.Format(stay.DateFormat)
	r.CheckOut = model.CheckOut.Format(stay.DateFormat)
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.GuestCount = model.GuestCount
	r.Nights = model.Range().Nights()
	r.TotalCents = int64(model.TotalCents)
	r.Currency = model.Currency
	r.Status = model.Status
	r.PaymentSessionID = model.PaymentSessionID
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
