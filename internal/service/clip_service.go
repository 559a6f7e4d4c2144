package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/osa911/clipdesk/internal/logging"
	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/policy"
	"github.com/osa911/clipdesk/internal/repository"
)

// ClipService owns clip submission and the review lifecycle:
//
//	pending -> approved | rejected | needs_revision
//	needs_revision -> pending (resubmission by the owning clipper)
//
// Reviewers may move a clip between review outcomes at any time; concurrent
// reviews are not coordinated and the last write wins.
type ClipService struct {
	clips     repository.ClipRepository
	campaigns repository.CampaignRepository
	analytics repository.AnalyticsRepository
}

func NewClipService(clips repository.ClipRepository, campaigns repository.CampaignRepository, analytics repository.AnalyticsRepository) *ClipService {
	return &ClipService{
		clips:     clips,
		campaigns: campaigns,
		analytics: analytics,
	}
}

// Create stores a pending clip submitted by the caller. Any clipper id or
// counters supplied by the client are ignored.
func (s *ClipService) Create(ctx context.Context, d policy.Decision, clip *models.Clip) (*models.Clip, error) {
	clip.Title = strings.TrimSpace(clip.Title)
	if clip.Title == "" {
		return nil, invalid("title", "is required")
	}
	if clip.CampaignID == "" {
		return nil, invalid("campaignId", "is required")
	}

	clip.ClipperID = d.CallerID()
	clip.Status = models.ClipStatusPending
	clip.Views, clip.Likes, clip.Shares = 0, 0, 0

	created, err := s.clips.Create(ctx, clip)
	if err != nil {
		return nil, storeError(err, "clip")
	}
	return created, nil
}

// List returns the caller's own clips or, for reviewers, every pending clip
// across all teams with its clipper and campaign joined.
func (s *ClipService) List(ctx context.Context, d policy.Decision) ([]*models.PendingClip, error) {
	switch d.Scope {
	case policy.ScopeOwn:
		clips, err := s.clips.ListByClipper(ctx, d.CallerID())
		if err != nil {
			return nil, err
		}
		out := make([]*models.PendingClip, len(clips))
		for i, c := range clips {
			out[i] = &models.PendingClip{Clip: *c}
		}
		return out, nil
	case policy.ScopePending:
		return s.clips.ListPending(ctx)
	}
	return nil, ErrForbidden
}

// SetStatus records a review outcome. The status must be one of the review
// outcomes; pending is only ever the initial state.
func (s *ClipService) SetStatus(ctx context.Context, d policy.Decision, clipID, status string) (*models.Clip, error) {
	st, err := models.ParseClipStatus(status)
	if err != nil {
		return nil, invalid("status", "must be one of approved, rejected, needs_revision")
	}
	if !st.IsReviewOutcome() {
		return nil, invalid("status", "%s is only an initial state", st)
	}

	if err := s.clips.UpdateStatus(ctx, clipID, st); err != nil {
		return nil, storeError(err, "clip")
	}
	logging.GetGlobalLogger().Info("Clip %s set to %s by %s", clipID, st, d.CallerID())

	clip, err := s.clips.Get(ctx, clipID)
	if err != nil {
		return nil, storeError(err, "clip")
	}
	return clip, nil
}

// Resubmit moves a clip needing revision back to pending. Only the clipper
// who submitted it may do so.
func (s *ClipService) Resubmit(ctx context.Context, d policy.Decision, clipID string) (*models.Clip, error) {
	clip, err := s.clips.Get(ctx, clipID)
	if err != nil {
		return nil, storeError(err, "clip")
	}
	if clip.ClipperID != d.CallerID() {
		return nil, ErrForbidden
	}
	if clip.Status != models.ClipStatusNeedsRevision {
		return nil, fmt.Errorf("clip is %s, only clips needing revision can be resubmitted: %w", clip.Status, ErrConflict)
	}

	if err := s.clips.UpdateStatus(ctx, clipID, models.ClipStatusPending); err != nil {
		return nil, storeError(err, "clip")
	}
	clip.Status = models.ClipStatusPending
	return clip, nil
}

// Analytics returns the snapshot time series of a clip.
func (s *ClipService) Analytics(ctx context.Context, d policy.Decision, clipID string) ([]*models.Analytics, error) {
	if _, err := s.visibleClip(ctx, d, clipID); err != nil {
		return nil, err
	}
	return s.analytics.ListByClip(ctx, clipID)
}

// RecordAnalytics appends a snapshot. The engagement rate is derived from the
// counters when not supplied.
func (s *ClipService) RecordAnalytics(ctx context.Context, d policy.Decision, clipID string, a *models.Analytics) (*models.Analytics, error) {
	a.Platform = strings.TrimSpace(a.Platform)
	if a.Platform == "" {
		return nil, invalid("platform", "is required")
	}
	if a.Views < 0 || a.Likes < 0 || a.Shares < 0 || a.Comments < 0 {
		return nil, invalid("", "counters must not be negative")
	}
	if _, err := s.visibleClip(ctx, d, clipID); err != nil {
		return nil, err
	}

	a.ClipID = clipID
	if a.EngagementRate == nil && a.Views > 0 {
		rate := math.Min(EngagementRate(int64(a.Views), int64(a.Likes+a.Shares+a.Comments)), maxStoredRate)
		a.EngagementRate = &rate
	}

	recorded, err := s.analytics.Record(ctx, a)
	if err != nil {
		return nil, storeError(err, "clip")
	}
	return recorded, nil
}

func (s *ClipService) visibleClip(ctx context.Context, d policy.Decision, clipID string) (*models.Clip, error) {
	clip, err := s.clips.Get(ctx, clipID)
	if err != nil {
		return nil, storeError(err, "clip")
	}
	if d.Scope == policy.ScopeAll {
		return clip, nil
	}

	campaign, err := s.campaigns.Get(ctx, clip.CampaignID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	if !campaignVisible(d, campaign) {
		return nil, ErrForbidden
	}
	return clip, nil
}

// engagement_rate is numeric(5,2) on postgres
const maxStoredRate = 999.99

// EngagementRate is interactions per view as a percentage rounded to two
// decimals. It is 0 when there are no views.
func EngagementRate(views, interactions int64) float64 {
	if views <= 0 {
		return 0
	}
	return math.Round(float64(interactions)/float64(views)*100*100) / 100
}
