package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderly-eats/gateway/internal/service"
)

// ContactHandler accepts help/contact submissions.
type ContactHandler struct {
	contact *service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// RegisterRoutes registers the contact routes
func (h *ContactHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/contact", h.Submit)
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit appends a contact submission to the inbox.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact payload"})
		return
	}

	submission, err := h.contact.Submit(c.Request.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSubmission) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      submission.ID,
		"message": "Thanks for reaching out! We'll get back to you soon.",
	})
}
