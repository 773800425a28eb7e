package model

import "pousada/shared/model"

const (
	TableName  = "contents"
	EntityName = "content"

	FieldID        = "id"
	FieldSlug      = "slug"
	FieldTitle     = "title"
	FieldBody      = "body"
	FieldPosition  = "position"
	FieldPublished = "published"
)

// Content is an editable block of site copy, looked up by slug on the
// public pages (hero text, about section, house rules and the like).
type Content struct {
	ID        string `db:"id"`
	Slug      string `db:"slug"`
	Title     string `db:"title"`
	Body      string `db:"body"`
	Position  int    `db:"position"`
	Published bool   `db:"published"`
	model.Metadata
}
