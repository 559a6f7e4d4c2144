package handlers

import (
	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/api/dto/v1/team"
	"github.com/osa911/clipdesk/internal/api/mapper"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/service"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService *service.TeamService
}

func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// Create creates a team owned by the caller
func (h *TeamHandler) Create(c *gin.Context) {
	req, _ := middleware.Validated[team.CreateRequest](c, constants.ContextKeyCreateTeam)

	created, err := h.teamService.Create(c.Request.Context(), middleware.GetDecision(c), mapper.TeamFromCreateRequest(&req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleCreated(c, mapper.TeamToResponse(created))
}

func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teamService.List(c.Request.Context(), middleware.GetDecision(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.TeamsToResponses(teams))
}

func (h *TeamHandler) Members(c *gin.Context) {
	members, err := h.teamService.Members(c.Request.Context(), middleware.GetDecision(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.MembersToResponses(members))
}

func (h *TeamHandler) AddMember(c *gin.Context) {
	req, _ := middleware.Validated[team.AddMemberRequest](c, constants.ContextKeyAddMember)

	member, err := h.teamService.AddMember(c.Request.Context(), middleware.GetDecision(c), c.Param("id"), req.ClipperID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleCreated(c, mapper.MemberToResponse(member))
}

func (h *TeamHandler) Campaigns(c *gin.Context) {
	campaigns, err := h.teamService.Campaigns(c.Request.Context(), middleware.GetDecision(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.CampaignsToResponses(campaigns))
}
