package routes

import (
	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/api/dto/v1/application"
	"github.com/osa911/clipdesk/internal/api/handlers"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/policy"

	"github.com/gin-gonic/gin"
)

// SetupApplicationRoutes configures the public application form and its review
func SetupApplicationRoutes(router *gin.RouterGroup, h *handlers.ApplicationHandler, m *Middleware) {
	group := router.Group("/applications")
	group.POST("", m.Guard(policy.ResourceApplication, policy.ActionCreate,
		m.ApplicationRate,
		middleware.Validate[application.CreateRequest](constants.ContextKeyCreateApplication),
		h.Create)...)
	group.GET("", m.Guard(policy.ResourceApplication, policy.ActionList, h.List)...)
	group.PATCH("/:id/status", m.Guard(policy.ResourceApplication, policy.ActionUpdateStatus,
		middleware.Validate[application.UpdateStatusRequest](constants.ContextKeyUpdateApplicationStatus),
		h.UpdateStatus)...)
}
