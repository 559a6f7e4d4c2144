package routes

import (
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/logging"
	requestmw "github.com/osa911/clipdesk/internal/middleware"
	"github.com/osa911/clipdesk/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	// Health check endpoint - no auth required
	router.GET("/health", h.Health.Check)

	api := router.Group("/api")
	api.Use(m.Authenticate)

	SetupAuthRoutes(api, h.Auth, m)
	SetupApplicationRoutes(api, h.Application, m)
	SetupTeamRoutes(api, h.Team, m)
	SetupCampaignRoutes(api, h.Campaign, m)
	SetupClipRoutes(api, h.Clip, m)
	SetupAnalyticsRoutes(api, h.Analytics, m)
	SetupMessageRoutes(api, h.Message, m)
	SetupDashboardRoutes(api, h.Dashboard, m)

	logging.GetGlobalLogger().Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, allowedOrigins []string, allowAnyOrigin bool) {
	router.Use(requestmw.Recovery())
	router.Use(requestmw.RequestID())
	router.Use(otelgin.Middleware(telemetry.ServiceName))
	router.Use(requestmw.Logger())
	router.Use(middleware.CORS(allowedOrigins, allowAnyOrigin))
	router.Use(middleware.SecurityHeaders())
}
