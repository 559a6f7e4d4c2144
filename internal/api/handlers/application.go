package handlers

import (
	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/api/dto/v1/application"
	"github.com/osa911/clipdesk/internal/api/mapper"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/service"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationService *service.ApplicationService
}

func NewApplicationHandler(applicationService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Create accepts a public clipper application
func (h *ApplicationHandler) Create(c *gin.Context) {
	req, _ := middleware.Validated[application.CreateRequest](c, constants.ContextKeyCreateApplication)

	created, err := h.applicationService.Submit(c.Request.Context(), mapper.ApplicationFromCreateRequest(&req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleCreated(c, mapper.ApplicationToResponse(created))
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.applicationService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.ApplicationsToResponses(apps))
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	req, _ := middleware.Validated[application.UpdateStatusRequest](c, constants.ContextKeyUpdateApplicationStatus)

	if err := h.applicationService.Review(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleMessage(c, "Application status updated")
}
