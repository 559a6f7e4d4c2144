package mapper

import (
	"github.com/osa911/clipdesk/internal/api/dto/v1/campaign"
	"github.com/osa911/clipdesk/internal/api/dto/v1/team"
	"github.com/osa911/clipdesk/internal/api/sanitization"
	"github.com/osa911/clipdesk/internal/models"
)

func TeamFromCreateRequest(req *team.CreateRequest) *models.Team {
	return &models.Team{
		Name:        sanitization.SanitizeString(req.Name),
		ManagerID:   req.ManagerID,
		Description: req.Description,
	}
}

func TeamToResponse(t *models.Team) *team.Response {
	return &team.Response{
		ID:          t.ID,
		Name:        t.Name,
		ClientID:    t.ClientID,
		ManagerID:   t.ManagerID,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func TeamsToResponses(teams []*models.Team) []*team.Response {
	result := make([]*team.Response, len(teams))
	for i, t := range teams {
		result[i] = TeamToResponse(t)
	}
	return result
}

func MemberToResponse(m *models.TeamMember) *team.MemberResponse {
	return &team.MemberResponse{
		ID:        m.ID,
		TeamID:    m.TeamID,
		ClipperID: m.ClipperID,
		JoinedAt:  m.JoinedAt,
	}
}

// MembersToResponses keeps one entry per member; Clipper stays nil when the
// user row is missing.
func MembersToResponses(members []*models.TeamMemberWithClipper) []*team.MemberResponse {
	result := make([]*team.MemberResponse, len(members))
	for i, m := range members {
		r := MemberToResponse(&m.TeamMember)
		r.Clipper = UserToUserResponse(m.Clipper)
		result[i] = r
	}
	return result
}

func CampaignFromCreateRequest(req *campaign.CreateRequest) *models.Campaign {
	return &models.Campaign{
		Name:        sanitization.SanitizeString(req.Name),
		TeamID:      req.TeamID,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
}

func CampaignToResponse(c *models.Campaign) *campaign.Response {
	if c == nil {
		return nil
	}
	return &campaign.Response{
		ID:          c.ID,
		Name:        c.Name,
		ClientID:    c.ClientID,
		TeamID:      c.TeamID,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func CampaignsToResponses(campaigns []*models.Campaign) []*campaign.Response {
	result := make([]*campaign.Response, len(campaigns))
	for i, c := range campaigns {
		result[i] = CampaignToResponse(c)
	}
	return result
}
