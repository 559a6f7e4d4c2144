package service

import (
	"context"
	"strings"

	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/policy"
	"github.com/osa911/clipdesk/internal/repository"
)

type CampaignService struct {
	campaigns repository.CampaignRepository
	clips     repository.ClipRepository
}

func NewCampaignService(campaigns repository.CampaignRepository, clips repository.ClipRepository) *CampaignService {
	return &CampaignService{
		campaigns: campaigns,
		clips:     clips,
	}
}

// Create stores a campaign owned by the caller. The campaign's client is not
// checked against the team's client.
func (s *CampaignService) Create(ctx context.Context, d policy.Decision, campaign *models.Campaign) (*models.Campaign, error) {
	campaign.Name = strings.TrimSpace(campaign.Name)
	if campaign.Name == "" {
		return nil, invalid("name", "is required")
	}
	if campaign.TeamID == "" {
		return nil, invalid("teamId", "is required")
	}
	if campaign.StartDate != nil && campaign.EndDate != nil && campaign.EndDate.Before(*campaign.StartDate) {
		return nil, invalid("endDate", "must not be before startDate")
	}
	campaign.ClientID = d.CallerID()

	created, err := s.campaigns.Create(ctx, campaign)
	if err != nil {
		return nil, storeError(err, "campaign")
	}
	return created, nil
}

func (s *CampaignService) List(ctx context.Context, d policy.Decision) ([]*models.Campaign, error) {
	if d.Scope != policy.ScopeClient {
		return nil, ErrForbidden
	}
	return s.campaigns.ListByClient(ctx, d.CallerID())
}

// Clips lists the clips of one campaign. Clients only see their own campaigns.
func (s *CampaignService) Clips(ctx context.Context, d policy.Decision, campaignID string) ([]*models.Clip, error) {
	campaign, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, storeError(err, "campaign")
	}
	if !campaignVisible(d, campaign) {
		return nil, ErrForbidden
	}
	return s.clips.ListByCampaign(ctx, campaignID)
}

func campaignVisible(d policy.Decision, campaign *models.Campaign) bool {
	switch d.Scope {
	case policy.ScopeAll:
		return true
	case policy.ScopeClient:
		return campaign.ClientID == d.CallerID()
	}
	return false
}
