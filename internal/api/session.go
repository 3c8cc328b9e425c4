package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orderly-eats/gateway/internal/service"
	"github.com/orderly-eats/gateway/internal/upstream"
)

// SessionHandler exposes the cart/order state machine.
type SessionHandler struct {
	session *service.OrderSession
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(session *service.OrderSession) *SessionHandler {
	return &SessionHandler{session: session}
}

// RegisterRoutes registers the session routes
func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	s := router.Group("/session")
	{
		s.GET("", h.GetSession)
		s.POST("/restaurant", h.SelectRestaurant)
		s.POST("/back", h.Back)
		s.POST("/cart", h.AddToCart)
		s.DELETE("/cart/:dishID", h.RemoveFromCart)
		s.POST("/order", h.PlaceOrder)
	}
}

// GetSession returns a snapshot of the session state.
func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.View())
}

// SelectRestaurant opens a restaurant's menu view.
func (h *SessionHandler) SelectRestaurant(c *gin.Context) {
	var vendor upstream.Restaurant
	if err := c.ShouldBindJSON(&vendor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant payload"})
		return
	}

	c.JSON(http.StatusOK, h.session.SelectRestaurant(c.Request.Context(), vendor))
}

// Back returns to the browsing list without touching the cart.
func (h *SessionHandler) Back(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Back())
}

// AddToCart adds one unit of a dish to the cart.
func (h *SessionHandler) AddToCart(c *gin.Context) {
	var dish upstream.Dish
	if err := c.ShouldBindJSON(&dish); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish payload"})
		return
	}

	c.JSON(http.StatusOK, h.session.AddToCart(dish))
}

// RemoveFromCart deletes a dish's cart line entirely.
func (h *SessionHandler) RemoveFromCart(c *gin.Context) {
	dishID, err := strconv.Atoi(c.Param("dishID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dish id must be a number"})
		return
	}

	c.JSON(http.StatusOK, h.session.RemoveFromCart(dishID))
}

// PlaceOrder submits the cart as an order.
func (h *SessionHandler) PlaceOrder(c *gin.Context) {
	receipt, err := h.session.PlaceOrder(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart), errors.Is(err, service.ErrNoRestaurant):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error placing order. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receipt": receipt,
		"message": fmt.Sprintf("Order placed successfully! Order ID: %s", receipt.OrderID),
		"session": h.session.View(),
	})
}
