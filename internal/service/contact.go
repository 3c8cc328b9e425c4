package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orderly-eats/gateway/internal/models"
)

// ErrInvalidSubmission rejects contact submissions missing required fields.
var ErrInvalidSubmission = errors.New("name, email and message are required")

// ContactService appends help/contact submissions to the inbox table.
// Submissions are write-only; nothing in the gateway reads them back.
type ContactService struct {
	db *gorm.DB
}

// NewContactService creates a new ContactService instance.
func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// Submit stores a contact submission and returns it with its assigned id.
func (s *ContactService) Submit(ctx context.Context, name, email, subject, message string) (*models.ContactSubmission, error) {
	if name == "" || email == "" || message == "" {
		return nil, ErrInvalidSubmission
	}

	submission := models.ContactSubmission{
		ID:      uuid.New(),
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	if err := s.db.WithContext(ctx).Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}
