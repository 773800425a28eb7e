package dto

import (
	"mime/multipart"

	"pousada/internal/domains/room/model"
	"pousada/shared"
	gDto "pousada/shared/dto"
	gModel "pousada/shared/model"
	"pousada/shared/money"
	"pousada/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name             string                `json:"name"               validate:"required,max=100"`
	Description      string                `json:"description"        validate:"omitempty,max=2000"`
	Capacity         int                   `json:"capacity"           validate:"required,min=1"`
	WeekdayRateCents int64                 `json:"weekday_rate_cents" validate:"required,gt=0"`
	WeekendRateCents int64                 `json:"weekend_rate_cents" validate:"required,gt=0"`
	Image            *multipart.FileHeader `json:"image"              validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile        multipart.File        `json:"-"`
	Active           *bool                 `json:"active"             validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:               uuid.NewString(),
		Name:             c.Name,
		Description:      c.Description,
		Capacity:         c.Capacity,
		WeekdayRateCents: money.Cents(c.WeekdayRateCents),
		WeekendRateCents: money.Cents(c.WeekendRateCents),
		Image:            imageURL,
		Active:           active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name             string                `db:"name"               json:"name"               validate:"omitempty,max=100"`
	Description      string                `db:"description"        json:"description"        validate:"omitempty,max=2000"`
	Capacity         *int                  `db:"capacity"           json:"capacity"           validate:"omitempty,min=1"`
	WeekdayRateCents *int64                `db:"weekday_rate_cents" json:"weekday_rate_cents" validate:"omitempty,gt=0"`
	WeekendRateCents *int64                `db:"weekend_rate_cents" json:"weekend_rate_cents" validate:"omitempty,gt=0"`
	Image            *multipart.FileHeader `json:"image"            validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile        multipart.File        `json:"-"`
	Active           *bool                 `db:"active"             json:"active"             validate:"omitempty"`
}

type RoomResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Capacity         int    `json:"capacity"`
	WeekdayRateCents int64  `json:"weekday_rate_cents"`
	WeekendRateCents int64  `json:"weekend_rate_cents"`
	Image            string `json:"image"`
	Active           bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.WeekdayRateCents = int64(model.WeekdayRateCents)
	r.WeekendRateCents = int64(model.WeekendRateCents)
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
