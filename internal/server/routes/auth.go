package routes

import (
	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/api/dto/v1/auth"
	"github.com/osa911/clipdesk/internal/api/handlers"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/policy"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configures session routes
func SetupAuthRoutes(router *gin.RouterGroup, h *handlers.AuthHandler, m *Middleware) {
	group := router.Group("/auth")
	group.POST("/login", m.Guard(policy.ResourceSession, policy.ActionCreate,
		middleware.Validate[auth.LoginRequest](constants.ContextKeyLogin),
		h.Login)...)
	group.POST("/logout", m.Guard(policy.ResourceSession, policy.ActionDelete, h.Logout)...)
	group.GET("/user", m.Guard(policy.ResourceUser, policy.ActionRead, h.GetUser)...)
}
