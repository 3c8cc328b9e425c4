package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderly-eats/gateway/internal/profile"
	"github.com/orderly-eats/gateway/internal/service"
)

// LocationHandler derives the map view for the current recommendations.
type LocationHandler struct {
	store   *profile.Store
	session *service.OrderSession
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(store *profile.Store, session *service.OrderSession) *LocationHandler {
	return &LocationHandler{store: store, session: session}
}

// RegisterRoutes registers the location routes
func (h *LocationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/locations", h.GetLocations)
}

// GetLocations centers the map on the requested city, else the city of the
// current recommendations, else the profile city, and places the current
// recommendations around it by rank.
func (h *LocationHandler) GetLocations(c *gin.Context) {
	view := h.session.View()

	selected := c.Query("city")
	if selected == "" {
		selected = view.City
	}
	profileCity := h.store.Load(c.Request.Context()).City

	c.JSON(http.StatusOK, service.Locate(selected, profileCity, view.Recommendations))
}
