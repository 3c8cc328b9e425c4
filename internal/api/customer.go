package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderly-eats/gateway/internal/service"
	"github.com/orderly-eats/gateway/internal/upstream"
)

// CustomerHandler serves the derived customer list and the recommendation
// flow.
type CustomerHandler struct {
	customers *service.CustomerService
	session   *service.OrderSession
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customers *service.CustomerService, session *service.OrderSession) *CustomerHandler {
	return &CustomerHandler{customers: customers, session: session}
}

// RegisterRoutes registers the customer and recommendation routes
func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/customers", h.GetCustomers)
	router.GET("/customers/options", h.GetOptions)
	router.POST("/recommendations", h.Recommend)
}

// GetCustomers derives the selectable customers from the current profile:
// one entry when the profile is complete, none otherwise.
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"customers": h.customers.Customers(c.Request.Context()),
	})
}

// GetOptions returns the customer form's state and city choices, including
// the city each state resets to.
func (h *CustomerHandler) GetOptions(c *gin.Context) {
	cities := make(map[string][]string, len(service.FormStates()))
	defaults := make(map[string]string, len(service.FormStates()))
	for _, state := range service.FormStates() {
		cities[state] = service.FormCities(state)
		defaults[state] = service.FirstFormCity(state)
	}
	c.JSON(http.StatusOK, gin.H{
		"states":         service.FormStates(),
		"cities":         cities,
		"default_cities": defaults,
	})
}

// Recommend submits a customer payload for recommendations. Incomplete
// profiles are rejected before any upstream call; upstream failures come
// back as an empty list, never an error.
func (h *CustomerHandler) Recommend(c *gin.Context) {
	var customer upstream.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer payload"})
		return
	}

	result, err := h.customers.Recommend(c.Request.Context(), customer)
	if err != nil {
		if errors.Is(err, service.ErrProfileIncomplete) {
			c.JSON(http.StatusConflict, gin.H{
				"error":    "Please create a profile first by going to Profile page, or select an existing profile.",
				"redirect": "profile",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recommendations"})
		return
	}

	h.session.SetRecommendations(result.Recommendations, result.City)
	c.JSON(http.StatusOK, result)
}
