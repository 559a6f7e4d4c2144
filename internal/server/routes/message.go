package routes

import (
	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/api/dto/v1/message"
	"github.com/osa911/clipdesk/internal/api/handlers"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/policy"

	"github.com/gin-gonic/gin"
)

// SetupMessageRoutes configures direct messaging routes
func SetupMessageRoutes(router *gin.RouterGroup, h *handlers.MessageHandler, m *Middleware) {
	group := router.Group("/messages")
	group.POST("", m.Guard(policy.ResourceMessage, policy.ActionCreate,
		middleware.Validate[message.SendRequest](constants.ContextKeySendMessage),
		h.Send)...)
	group.GET("/:userId", m.Guard(policy.ResourceMessage, policy.ActionList, h.Conversation)...)
	group.PATCH("/:id/read", m.Guard(policy.ResourceMessage, policy.ActionMarkRead, h.MarkRead)...)
}

// SetupDashboardRoutes configures the role-specific dashboard
func SetupDashboardRoutes(router *gin.RouterGroup, h *handlers.DashboardHandler, m *Middleware) {
	router.GET("/dashboard", m.Guard(policy.ResourceDashboard, policy.ActionRead, h.Get)...)
}
