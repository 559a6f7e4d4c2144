package service

import (
	"context"
	"strings"

	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/policy"
	"github.com/osa911/clipdesk/internal/repository"
)

type TeamService struct {
	teams     repository.TeamRepository
	campaigns repository.CampaignRepository
}

func NewTeamService(teams repository.TeamRepository, campaigns repository.CampaignRepository) *TeamService {
	return &TeamService{
		teams:     teams,
		campaigns: campaigns,
	}
}

// Create stores a team owned by the caller. The caller's role is not checked.
func (s *TeamService) Create(ctx context.Context, d policy.Decision, team *models.Team) (*models.Team, error) {
	team.Name = strings.TrimSpace(team.Name)
	if team.Name == "" {
		return nil, invalid("name", "is required")
	}
	if team.ManagerID == "" {
		return nil, invalid("managerId", "is required")
	}
	team.ClientID = d.CallerID()

	created, err := s.teams.Create(ctx, team)
	if err != nil {
		return nil, storeError(err, "team")
	}
	return created, nil
}

// List returns the teams the caller owns or manages.
func (s *TeamService) List(ctx context.Context, d policy.Decision) ([]*models.Team, error) {
	switch d.Scope {
	case policy.ScopeClient:
		return s.teams.ListByClient(ctx, d.CallerID())
	case policy.ScopeManaged:
		return s.teams.ListByManager(ctx, d.CallerID())
	}
	return nil, ErrForbidden
}

func (s *TeamService) Members(ctx context.Context, d policy.Decision, teamID string) ([]*models.TeamMemberWithClipper, error) {
	if _, err := s.visibleTeam(ctx, d, teamID); err != nil {
		return nil, err
	}
	return s.teams.ListMembers(ctx, teamID)
}

// AddMember assigns a clipper to a team. Memberships cannot be edited afterwards.
func (s *TeamService) AddMember(ctx context.Context, d policy.Decision, teamID, clipperID string) (*models.TeamMember, error) {
	if clipperID == "" {
		return nil, invalid("clipperId", "is required")
	}
	if _, err := s.visibleTeam(ctx, d, teamID); err != nil {
		return nil, err
	}

	member, err := s.teams.AddMember(ctx, teamID, clipperID)
	if err != nil {
		return nil, storeError(err, "team member")
	}
	return member, nil
}

func (s *TeamService) Campaigns(ctx context.Context, d policy.Decision, teamID string) ([]*models.Campaign, error) {
	if _, err := s.visibleTeam(ctx, d, teamID); err != nil {
		return nil, err
	}
	return s.campaigns.ListByTeam(ctx, teamID)
}

func (s *TeamService) visibleTeam(ctx context.Context, d policy.Decision, teamID string) (*models.Team, error) {
	team, err := s.teams.Get(ctx, teamID)
	if err != nil {
		return nil, storeError(err, "team")
	}

	switch d.Scope {
	case policy.ScopeAll:
		return team, nil
	case policy.ScopeClient:
		if team.ClientID == d.CallerID() {
			return team, nil
		}
	case policy.ScopeManaged:
		if team.ManagerID == d.CallerID() {
			return team, nil
		}
	}
	return nil, ErrForbidden
}
