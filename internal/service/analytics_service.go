package service

import (
	"context"
	"fmt"
	"time"

	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/repository"
)

// DefaultAnalyticsWindow is the trailing window of the client dashboard.
const DefaultAnalyticsWindow = 30 * 24 * time.Hour

// AnalyticsService aggregates analytics snapshots for clients.
type AnalyticsService struct {
	analytics repository.AnalyticsRepository
	window    time.Duration
	now       func() time.Time
}

func NewAnalyticsService(analytics repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{
		analytics: analytics,
		window:    DefaultAnalyticsWindow,
		now:       time.Now,
	}
}

// ClientSummary aggregates the snapshots recorded for the client's clips over
// the trailing window ending now. Every snapshot is counted as the activity
// of its own period, so totals are plain sums.
func (s *AnalyticsService) ClientSummary(ctx context.Context, clientID string) (*models.ClientAnalytics, error) {
	end := s.now().UTC()
	start := end.Add(-s.window)

	totals, err := s.analytics.PlatformTotals(ctx, clientID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	active, err := s.analytics.CountApprovedClips(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active clips: %w", err)
	}

	summary := Aggregate(totals)
	summary.StartDate = start
	summary.EndDate = end
	summary.ActiveClips = active
	return summary, nil
}

// Aggregate folds per-platform totals into a dashboard summary. Platform
// percentages are truncated to one decimal so they never sum above 100.
// NewFollowers stays 0: no snapshot records follower counts.
func Aggregate(totals []models.PlatformTotals) *models.ClientAnalytics {
	out := &models.ClientAnalytics{
		PlatformBreakdown: make(map[string]models.PlatformShare, len(totals)),
	}
	for _, t := range totals {
		out.TotalViews += t.Views
		out.TotalLikes += t.Likes
		out.TotalShares += t.Shares
		out.TotalComments += t.Comments
	}
	out.EngagementRate = EngagementRate(out.TotalViews, out.TotalLikes+out.TotalShares+out.TotalComments)

	for _, t := range totals {
		share := models.PlatformShare{Views: t.Views}
		if out.TotalViews > 0 {
			share.Percentage = float64(t.Views*1000/out.TotalViews) / 10
		}
		out.PlatformBreakdown[t.Platform] = share
	}
	return out
}
