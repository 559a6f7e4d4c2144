package service

import (
	"context"
	"math"

	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/policy"
	"github.com/osa911/clipdesk/internal/repository"
)

// Dashboard is the role-specific summary of the caller. Exactly one of the
// views is set.
type Dashboard struct {
	Role    models.Role
	Client  *models.ClientDashboard
	Clipper *models.ClipperDashboard
	Manager *models.ManagerDashboard
}

// DashboardService derives dashboards from the store. It holds no state.
type DashboardService struct {
	teams        repository.TeamRepository
	campaigns    repository.CampaignRepository
	clips        repository.ClipRepository
	applications repository.ApplicationRepository
	analytics    *AnalyticsService
}

func NewDashboardService(store *repository.Store, analytics *AnalyticsService) *DashboardService {
	return &DashboardService{
		teams:        store.Teams,
		campaigns:    store.Campaigns,
		clips:        store.Clips,
		applications: store.Applications,
		analytics:    analytics,
	}
}

func (s *DashboardService) Get(ctx context.Context, d policy.Decision) (*Dashboard, error) {
	out := &Dashboard{}
	if d.Subject != nil {
		out.Role = d.Subject.Role
	}

	var err error
	switch d.Scope {
	case policy.ScopeClient:
		out.Client, err = s.client(ctx, d.CallerID())
	case policy.ScopeOwn:
		out.Clipper, err = s.clipper(ctx, d.CallerID())
	case policy.ScopeManaged:
		out.Manager, err = s.manager(ctx, d.CallerID())
	case policy.ScopeAll:
		out.Manager, err = s.manager(ctx, "")
	default:
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DashboardService) client(ctx context.Context, clientID string) (*models.ClientDashboard, error) {
	teams, err := s.teams.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.campaigns.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	summary, err := s.analytics.ClientSummary(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return &models.ClientDashboard{
		Teams:     int64(len(teams)),
		Campaigns: int64(len(campaigns)),
		Analytics: summary,
	}, nil
}

func (s *DashboardService) clipper(ctx context.Context, clipperID string) (*models.ClipperDashboard, error) {
	counts, err := s.clips.CountByStatus(ctx, clipperID)
	if err != nil {
		return nil, err
	}
	views, err := s.clips.SumViews(ctx, clipperID)
	if err != nil {
		return nil, err
	}

	out := &models.ClipperDashboard{
		Clips:       counts,
		ActiveTasks: counts[models.ClipStatusPending] + counts[models.ClipStatusNeedsRevision],
		TotalViews:  views,
	}
	if total := counts.Total(); total > 0 {
		out.AvgViewsPerClip = math.Round(float64(views)/float64(total)*100) / 100
	}
	return out, nil
}

// manager summarizes the review queue. managerID is empty for admins, who
// manage no teams of their own.
func (s *DashboardService) manager(ctx context.Context, managerID string) (*models.ManagerDashboard, error) {
	out := &models.ManagerDashboard{}

	if managerID != "" {
		teams, err := s.teams.ListByManager(ctx, managerID)
		if err != nil {
			return nil, err
		}
		for _, t := range teams {
			if t.IsActive {
				out.ActiveTeams++
			}
		}
		out.TotalClippers, err = s.teams.CountClippersByManager(ctx, managerID)
		if err != nil {
			return nil, err
		}
	}

	counts, err := s.clips.CountByStatus(ctx, "")
	if err != nil {
		return nil, err
	}
	out.PendingReviews = counts[models.ClipStatusPending]

	out.PendingApplications, err = s.applications.CountByStatus(ctx, models.ApplicationStatusPending)
	if err != nil {
		return nil, err
	}
	return out, nil
}
