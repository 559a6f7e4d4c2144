package routes

import (
	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/api/dto/v1/clip"
	"github.com/osa911/clipdesk/internal/api/handlers"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/policy"

	"github.com/gin-gonic/gin"
)

// SetupClipRoutes configures clip submission, review and analytics routes
func SetupClipRoutes(router *gin.RouterGroup, h *handlers.ClipHandler, m *Middleware) {
	group := router.Group("/clips")
	group.POST("", m.Guard(policy.ResourceClip, policy.ActionCreate,
		middleware.Validate[clip.CreateRequest](constants.ContextKeyCreateClip),
		h.Create)...)
	group.GET("", m.Guard(policy.ResourceClip, policy.ActionList, h.List)...)
	group.PATCH("/:id/status", m.Guard(policy.ResourceClip, policy.ActionUpdateStatus,
		middleware.Validate[clip.UpdateStatusRequest](constants.ContextKeyUpdateClipStatus),
		h.UpdateStatus)...)
	group.POST("/:id/resubmit", m.Guard(policy.ResourceClip, policy.ActionResubmit, h.Resubmit)...)
	group.GET("/:id/analytics", m.Guard(policy.ResourceClip, policy.ActionReadAnalytics, h.Analytics)...)
	group.POST("/:id/analytics", m.Guard(policy.ResourceClip, policy.ActionRecord,
		middleware.Validate[clip.RecordAnalyticsRequest](constants.ContextKeyRecordAnalytics),
		h.RecordAnalytics)...)
}

// SetupAnalyticsRoutes configures the client analytics summary
func SetupAnalyticsRoutes(router *gin.RouterGroup, h *handlers.AnalyticsHandler, m *Middleware) {
	router.GET("/analytics/client-dashboard", m.Guard(policy.ResourceAnalytics, policy.ActionClientSummary, h.ClientDashboard)...)
}
