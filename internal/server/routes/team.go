package routes

import (
	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/api/dto/v1/campaign"
	"github.com/osa911/clipdesk/internal/api/dto/v1/team"
	"github.com/osa911/clipdesk/internal/api/handlers"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/policy"

	"github.com/gin-gonic/gin"
)

// SetupTeamRoutes configures team routes
func SetupTeamRoutes(router *gin.RouterGroup, h *handlers.TeamHandler, m *Middleware) {
	group := router.Group("/teams")
	group.POST("", m.Guard(policy.ResourceTeam, policy.ActionCreate,
		middleware.Validate[team.CreateRequest](constants.ContextKeyCreateTeam),
		h.Create)...)
	group.GET("", m.Guard(policy.ResourceTeam, policy.ActionList, h.List)...)
	group.GET("/:id/members", m.Guard(policy.ResourceTeam, policy.ActionListMembers, h.Members)...)
	group.POST("/:id/members", m.Guard(policy.ResourceTeam, policy.ActionAddMember,
		middleware.Validate[team.AddMemberRequest](constants.ContextKeyAddMember),
		h.AddMember)...)
	group.GET("/:id/campaigns", m.Guard(policy.ResourceTeam, policy.ActionListCampaigns, h.Campaigns)...)
}

// SetupCampaignRoutes configures campaign routes
func SetupCampaignRoutes(router *gin.RouterGroup, h *handlers.CampaignHandler, m *Middleware) {
	group := router.Group("/campaigns")
	group.POST("", m.Guard(policy.ResourceCampaign, policy.ActionCreate,
		middleware.Validate[campaign.CreateRequest](constants.ContextKeyCreateCampaign),
		h.Create)...)
	group.GET("", m.Guard(policy.ResourceCampaign, policy.ActionList, h.List)...)
	group.GET("/:id/clips", m.Guard(policy.ResourceCampaign, policy.ActionListClips, h.Clips)...)
}
