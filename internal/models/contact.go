package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is an append-only help/contact message. Submissions are
// stored and acknowledged; nothing in the service reads them back.
type ContactSubmission struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
}

// TableName returns the table name for the ContactSubmission model
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
