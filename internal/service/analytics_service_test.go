package service

import (
	"context"
	"testing"
	"time"

	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAnalyticsRepository struct {
	repository.AnalyticsRepository
	platformTotalsFunc func(ctx context.Context, clientID string, from, to time.Time) ([]models.PlatformTotals, error)
	approved           int64
}

func (m *mockAnalyticsRepository) PlatformTotals(ctx context.Context, clientID string, from, to time.Time) ([]models.PlatformTotals, error) {
	return m.platformTotalsFunc(ctx, clientID, from, to)
}

func (m *mockAnalyticsRepository) CountApprovedClips(ctx context.Context, clientID string) (int64, error) {
	return m.approved, nil
}

func TestAggregate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := Aggregate(nil)
		assert.Zero(t, got.TotalViews)
		assert.Zero(t, got.EngagementRate)
		assert.Empty(t, got.PlatformBreakdown)
	})

	t.Run("percentages never exceed 100", func(t *testing.T) {
		got := Aggregate([]models.PlatformTotals{
			{Platform: "tiktok", Views: 1, Likes: 1},
			{Platform: "youtube", Views: 1},
			{Platform: "instagram", Views: 1, Comments: 1},
		})
		assert.Equal(t, int64(3), got.TotalViews)
		assert.Equal(t, 66.67, got.EngagementRate)

		var sum float64
		for _, share := range got.PlatformBreakdown {
			assert.Equal(t, 33.3, share.Percentage)
			sum += share.Percentage
		}
		assert.LessOrEqual(t, sum, 100.0)
	})

	t.Run("totals", func(t *testing.T) {
		got := Aggregate([]models.PlatformTotals{
			{Platform: "tiktok", Views: 750, Likes: 50, Shares: 10, Comments: 15},
			{Platform: "youtube", Views: 250, Likes: 20, Shares: 5},
		})
		assert.Equal(t, int64(1000), got.TotalViews)
		assert.Equal(t, int64(70), got.TotalLikes)
		assert.Equal(t, int64(15), got.TotalShares)
		assert.Equal(t, int64(15), got.TotalComments)
		assert.Equal(t, 10.0, got.EngagementRate)
		assert.Zero(t, got.NewFollowers)
		assert.Equal(t, models.PlatformShare{Views: 750, Percentage: 75}, got.PlatformBreakdown["tiktok"])
		assert.Equal(t, models.PlatformShare{Views: 250, Percentage: 25}, got.PlatformBreakdown["youtube"])
	})
}

func TestClientSummaryWindow(t *testing.T) {
	fixed := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	repo := &mockAnalyticsRepository{
		approved: 4,
		platformTotalsFunc: func(ctx context.Context, clientID string, from, to time.Time) ([]models.PlatformTotals, error) {
			assert.Equal(t, "client-1", clientID)
			assert.Equal(t, fixed, to)
			assert.Equal(t, fixed.AddDate(0, 0, -30), from)
			return []models.PlatformTotals{{Platform: "tiktok", Views: 10, Likes: 1}}, nil
		},
	}
	svc := NewAnalyticsService(repo)
	svc.now = func() time.Time { return fixed }

	got, err := svc.ClientSummary(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ActiveClips)
	assert.Equal(t, int64(10), got.TotalViews)
	assert.Equal(t, fixed, got.EndDate)
	assert.Equal(t, 100.0, got.PlatformBreakdown["tiktok"].Percentage)
}
