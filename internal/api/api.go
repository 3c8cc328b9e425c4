package api

import (
	"github.com/gin-gonic/gin"

	"github.com/orderly-eats/gateway/internal/middleware"
	"github.com/orderly-eats/gateway/internal/profile"
	"github.com/orderly-eats/gateway/internal/service"
)

// Deps bundles the services the HTTP surface is built from.
type Deps struct {
	Store     *profile.Store
	Pictures  PictureUploader
	Customers *service.CustomerService
	Session   *service.OrderSession
	Analytics *service.AnalyticsService
	Predict   *service.PredictService
	Contact   *service.ContactService

	// UpstreamLimiter rate limits the endpoints that fan out to the remote
	// analytics API; nil disables limiting.
	UpstreamLimiter *middleware.RateLimiter
}

// SetupAPI registers all routes under /api/v1.
func SetupAPI(router *gin.Engine, deps Deps) {
	v1 := router.Group("/api/v1")
	{
		profileHandler := NewProfileHandler(deps.Store, deps.Pictures)
		customerHandler := NewCustomerHandler(deps.Customers, deps.Session)
		sessionHandler := NewSessionHandler(deps.Session)
		dashboardHandler := NewDashboardHandler(deps.Analytics)
		predictHandler := NewPredictHandler(deps.Predict)
		locationHandler := NewLocationHandler(deps.Store, deps.Session)
		contactHandler := NewContactHandler(deps.Contact)

		profileHandler.RegisterRoutes(v1)
		sessionHandler.RegisterRoutes(v1)
		locationHandler.RegisterRoutes(v1)
		contactHandler.RegisterRoutes(v1)

		// Upstream-facing routes carry the rate limit.
		limited := v1.Group("")
		limited.Use(deps.UpstreamLimiter.RateLimitMiddleware())
		customerHandler.RegisterRoutes(limited)
		dashboardHandler.RegisterRoutes(limited)
		predictHandler.RegisterRoutes(limited)
	}
}
