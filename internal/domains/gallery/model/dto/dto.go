package dto

import (
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"pousada/internal/domains/gallery/model"
	"pousada/shared"
	gDto "pousada/shared/dto"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"
)

type CreateGalleryRequest struct {
	RoomID      *string  `json:"room_id"     validate:"omitempty,uuid4"`
	Title       string   `json:"title"       validate:"required,min=3,max=100"`
	Description string   `json:"description"`
	Images      []string `json:"images"      validate:"required,dive,url"`
	Position    int      `json:"position"    validate:"omitempty,min=0"`
}

func (c *CreateGalleryRequest) ToModel(user string) model.Gallery {
	return model.Gallery{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		Title:       c.Title,
		Description: c.Description,
		Images:      pq.StringArray(c.Images),
		Position:    c.Position,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGalleryRequest struct {
	RoomID      *string        `db:"room_id"     json:"room_id"     validate:"omitempty,uuid4"`
	Title       string         `db:"title"       json:"title"       validate:"omitempty,min=3,max=100"`
	Description string         `db:"description" json:"description" validate:"omitempty"`
	Images      pq.StringArray `db:"images"      json:"images"      validate:"omitempty,dive,url"`
	Position    *int           `db:"position"    json:"position"    validate:"omitempty,min=0"`
}

type GalleryResponse struct {
	ID          string   `json:"id"`
	RoomID      *string  `json:"room_id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Position    int      `json:"position"`
	gDto.Metadata
}

func (r *GalleryResponse) FromModel(model model.Gallery) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.Title = model.Title
	r.Description = model.Description
	r.Images = []string(model.Images)
	r.Position = model.Position
	r.Metadata.FromModel(model.Metadata)
}

type GetGalleriesResponse struct {
	Galleries []GalleryResponse `json:"galleries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetGalleriesResponse) FromModels(models []model.Gallery, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Galleries = make([]GalleryResponse, len(models))
	for i, m := range models {
		r.Galleries[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"                swaggerignore:"true"                 validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type DeleteImagesRequest struct {
	ImageURLs []string `json:"image_urls" validate:"required,min=1,dive,url"`
}
