package model

import "time"

// Metadata carries the audit columns shared by every table. The timestamps
// default in the database; only the by-columns travel with inserts. Guest
// writes (public reservation and review submissions) record "guest".
type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}
