package handlers

import (
	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/api/dto/v1/clip"
	"github.com/osa911/clipdesk/internal/api/mapper"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/service"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

type ClipHandler struct {
	clipService *service.ClipService
}

func NewClipHandler(clipService *service.ClipService) *ClipHandler {
	return &ClipHandler{clipService: clipService}
}

// Create submits a clip on behalf of the caller
func (h *ClipHandler) Create(c *gin.Context) {
	req, _ := middleware.Validated[clip.CreateRequest](c, constants.ContextKeyCreateClip)

	created, err := h.clipService.Create(c.Request.Context(), middleware.GetDecision(c), mapper.ClipFromCreateRequest(&req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleCreated(c, mapper.ClipToResponse(created))
}

// List returns the caller's own clips, or every pending clip for reviewers
func (h *ClipHandler) List(c *gin.Context) {
	clips, err := h.clipService.List(c.Request.Context(), middleware.GetDecision(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.PendingClipsToResponses(clips))
}

func (h *ClipHandler) UpdateStatus(c *gin.Context) {
	req, _ := middleware.Validated[clip.UpdateStatusRequest](c, constants.ContextKeyUpdateClipStatus)

	if _, err := h.clipService.SetStatus(c.Request.Context(), middleware.GetDecision(c), c.Param("id"), req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleMessage(c, "Clip status updated")
}

func (h *ClipHandler) Resubmit(c *gin.Context) {
	updated, err := h.clipService.Resubmit(c.Request.Context(), middleware.GetDecision(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.ClipToResponse(updated))
}

func (h *ClipHandler) Analytics(c *gin.Context) {
	snapshots, err := h.clipService.Analytics(c.Request.Context(), middleware.GetDecision(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.AnalyticsToResponses(snapshots))
}

func (h *ClipHandler) RecordAnalytics(c *gin.Context) {
	req, _ := middleware.Validated[clip.RecordAnalyticsRequest](c, constants.ContextKeyRecordAnalytics)

	recorded, err := h.clipService.RecordAnalytics(c.Request.Context(), middleware.GetDecision(c), c.Param("id"), mapper.AnalyticsFromRecordRequest(&req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleCreated(c, mapper.AnalyticsToResponse(recorded))
}
