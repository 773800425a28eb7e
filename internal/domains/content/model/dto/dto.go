package dto

import (
	"github.com/google/uuid"

	"pousada/internal/domains/content/model"
	"pousada/shared"
	gDto "pousada/shared/dto"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"
)

type CreateContentRequest struct {
	Slug      string `json:"slug"      validate:"required,max=100"`
	Title     string `json:"title"     validate:"required,max=255"`
	Body      string `json:"body"      validate:"required"`
	Position  int    `json:"position"  validate:"omitempty,min=0"`
	Published bool   `json:"published"`
}

func (c *CreateContentRequest) ToModel(user string) model.Content {
	return model.Content{
		ID:        uuid.NewString(),
		Slug:      c.Slug,
		Title:     c.Title,
		Body:      c.Body,
		Position:  c.Position,
		Published: c.Published,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateContentRequest struct {
	Title     string `db:"title"     json:"title"     validate:"omitempty,max=255"`
	Body      string `db:"body"      json:"body"      validate:"omitempty"`
	Position  *int   `db:"position"  json:"position"  validate:"omitempty,min=0"`
	Published *bool  `db:"published" json:"published" validate:"omitempty"`
}

type ContentResponse struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Position  int    `json:"position"`
	Published bool   `json:"published"`
	gDto.Metadata
}

func (r *ContentResponse) FromModel(model model.Content) {
	r.ID = model.ID
	r.Slug = model.Slug
	r.Title = model.Title
	r.Body = model.Body
	r.Position = model.Position
	r.Published = model.Published
	r.Metadata.FromModel(model.Metadata)
}

type GetContentsResponse struct {
	Contents  []ContentResponse `json:"contents"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContentsResponse) FromModels(models []model.Content, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contents = make([]ContentResponse, len(models))
	for i, mod := range models {
		r.Contents[i].FromModel(mod)
	}
}
