package handlers

import (
	"github.com/osa911/clipdesk/internal/api/mapper"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/service"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// ClientDashboard aggregates the caller's campaign performance over the trailing window
func (h *AnalyticsHandler) ClientDashboard(c *gin.Context) {
	summary, err := h.analyticsService.ClientSummary(c.Request.Context(), middleware.GetDecision(c).CallerID())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.ClientAnalyticsToResponse(summary))
}
