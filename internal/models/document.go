package models

import "time"

// Document is a key-value row holding a JSON document. The profile lives in
// one such row; the table gives us the same single-document semantics the
// frontend had with local storage, portable across SQLite and Postgres.
type Document struct {
	Key       string    `gorm:"primaryKey;size:255" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}
