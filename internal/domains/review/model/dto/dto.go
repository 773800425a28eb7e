package dto

import (
	"github.com/google/uuid"

	"pousada/internal/domains/review/model"
	"pousada/shared"
	gDto "pousada/shared/dto"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"
)

type CreateReviewRequest struct {
	RoomID    string `json:"room_id"    validate:"omitempty"`
	GuestName string `json:"guest_name" validate:"required,max=100"`
	Rating    int    `json:"rating"     validate:"required,min=1,max=5"`
	Comment   string `json:"comment"    validate:"required,max=1000"`
}

func (c *CreateReviewRequest) ToModel(user string) model.Review {
	return model.Review{
		ID:        uuid.NewString(),
		RoomID:    c.RoomID,
		GuestName: c.GuestName,
		Rating:    c.Rating,
		Comment:   c.Comment,
		Approved:  false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReviewRequest struct {
	Approved *bool `db:"approved" json:"approved" validate:"omitempty"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id,omitempty"`
	GuestName string `json:"guest_name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Approved  bool   `json:"approved"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestName = model.GuestName
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Approved = model.Approved
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
