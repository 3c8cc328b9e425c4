package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderly-eats/gateway/internal/models"
)

func TestSubmitStoresSubmission(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	submission, err := svc.Submit(context.Background(), "Asha", "asha@example.com", "Refund", "My order never arrived")
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", submission.ID.String())

	var stored []models.ContactSubmission
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "Asha", stored[0].Name)
	assert.Equal(t, "My order never arrived", stored[0].Message)
}

func TestSubmitIsAppendOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "A", "a@example.com", "", "first")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "A", "a@example.com", "", "second")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.ContactSubmission{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSubmitValidation(t *testing.T) {
	svc := NewContactService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Submit(ctx, "", "a@example.com", "", "hello")
	assert.ErrorIs(t, err, ErrInvalidSubmission)
	_, err = svc.Submit(ctx, "A", "", "", "hello")
	assert.ErrorIs(t, err, ErrInvalidSubmission)
	_, err = svc.Submit(ctx, "A", "a@example.com", "", "")
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}
