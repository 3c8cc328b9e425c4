package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderly-eats/gateway/internal/models"
	"github.com/orderly-eats/gateway/internal/profile"
	"github.com/orderly-eats/gateway/internal/service"
)

// maxPictureBytes caps profile picture uploads at 5 MB.
const maxPictureBytes = 5 << 20

// PictureUploader stores a profile picture and returns its public URL.
type PictureUploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// ProfileHandler serves the profile document and its picture.
type ProfileHandler struct {
	store    *profile.Store
	pictures PictureUploader
}

// NewProfileHandler creates a new ProfileHandler. pictures may be nil when no
// object storage is configured; picture uploads then return 503.
func NewProfileHandler(store *profile.Store, pictures PictureUploader) *ProfileHandler {
	return &ProfileHandler{store: store, pictures: pictures}
}

// RegisterRoutes registers the profile routes
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	p := router.Group("/profile")
	{
		p.GET("", h.GetProfile)
		p.PUT("", h.UpdateProfile)
		p.POST("/reset", h.ResetProfile)
		p.POST("/picture", h.UploadPicture)
		p.GET("/options", h.GetOptions)
	}
}

// GetProfile returns the current profile document. A missing or malformed
// document reads as the template profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p := h.store.Load(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"profile":  p,
		"complete": p.Complete(),
	})
}

// UpdateProfile replaces the profile document.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var p models.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile document"})
		return
	}

	if err := h.store.Save(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":  p,
		"complete": p.Complete(),
	})
}

// ResetProfile restores the template profile.
func (h *ProfileHandler) ResetProfile(c *gin.Context) {
	p, err := h.store.Reset(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": p,
		"message": "Profile reset successfully!",
	})
}

// UploadPicture stores a new profile picture and points the profile at it.
func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	if h.pictures == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "picture storage is not configured"})
		return
	}

	file, header, err := c.Request.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "picture file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxPictureBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "picture exceeds the 5MB limit"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxPictureBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read picture"})
		return
	}

	url, err := h.pictures.Upload(c.Request.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store picture"})
		return
	}

	p := h.store.Load(c.Request.Context())
	p.ProfileImage = url
	if err := h.store.Save(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile_image": url,
		"profile":       p,
	})
}

// GetOptions returns the state and city choices for the profile form.
func (h *ProfileHandler) GetOptions(c *gin.Context) {
	cities := make(map[string][]string, len(service.ProfileStates()))
	for _, state := range service.ProfileStates() {
		cities[state] = service.ProfileCities(state)
	}
	c.JSON(http.StatusOK, gin.H{
		"states": service.ProfileStates(),
		"cities": cities,
	})
}
