package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderly-eats/gateway/internal/service"
	"github.com/orderly-eats/gateway/internal/upstream"
)

// PredictHandler proxies performance predictions.
type PredictHandler struct {
	predict *service.PredictService
}

// NewPredictHandler creates a new PredictHandler
func NewPredictHandler(predict *service.PredictService) *PredictHandler {
	return &PredictHandler{predict: predict}
}

// RegisterRoutes registers the predict routes
func (h *PredictHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/predict", h.Predict)
}

// Predict scores an order profile, via the remote model or the local
// heuristic when the model is unreachable.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req upstream.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prediction payload"})
		return
	}

	pred, err := h.predict.Predict(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrPredictionUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}

	c.JSON(http.StatusOK, pred)
}
