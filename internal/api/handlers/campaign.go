package handlers

import (
	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/api/dto/v1/campaign"
	"github.com/osa911/clipdesk/internal/api/mapper"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/service"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignService *service.CampaignService
}

func NewCampaignHandler(campaignService *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

func (h *CampaignHandler) Create(c *gin.Context) {
	req, _ := middleware.Validated[campaign.CreateRequest](c, constants.ContextKeyCreateCampaign)

	created, err := h.campaignService.Create(c.Request.Context(), middleware.GetDecision(c), mapper.CampaignFromCreateRequest(&req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleCreated(c, mapper.CampaignToResponse(created))
}

func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.campaignService.List(c.Request.Context(), middleware.GetDecision(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.CampaignsToResponses(campaigns))
}

func (h *CampaignHandler) Clips(c *gin.Context) {
	clips, err := h.campaignService.Clips(c.Request.Context(), middleware.GetDecision(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.ClipsToResponses(clips))
}
