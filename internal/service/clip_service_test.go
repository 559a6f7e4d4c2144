package service

import (
	"context"
	"errors"
	"testing"

	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/policy"
	"github.com/osa911/clipdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock ClipRepository
type mockClipRepository struct {
	repository.ClipRepository
	createFunc        func(ctx context.Context, clip *models.Clip) (*models.Clip, error)
	getFunc           func(ctx context.Context, id string) (*models.Clip, error)
	listByClipperFunc func(ctx context.Context, clipperID string) ([]*models.Clip, error)
	listPendingFunc   func(ctx context.Context) ([]*models.PendingClip, error)
	updateStatusFunc  func(ctx context.Context, id string, status models.ClipStatus) error
}

func (m *mockClipRepository) Create(ctx context.Context, clip *models.Clip) (*models.Clip, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, clip)
	}
	return clip, nil
}

func (m *mockClipRepository) Get(ctx context.Context, id string) (*models.Clip, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockClipRepository) ListByClipper(ctx context.Context, clipperID string) ([]*models.Clip, error) {
	if m.listByClipperFunc != nil {
		return m.listByClipperFunc(ctx, clipperID)
	}
	return []*models.Clip{}, nil
}

func (m *mockClipRepository) ListPending(ctx context.Context) ([]*models.PendingClip, error) {
	if m.listPendingFunc != nil {
		return m.listPendingFunc(ctx)
	}
	return []*models.PendingClip{}, nil
}

func (m *mockClipRepository) UpdateStatus(ctx context.Context, id string, status models.ClipStatus) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func decision(userID string, role models.Role, scope policy.Scope) policy.Decision {
	return policy.Decision{Subject: &policy.Subject{UserID: userID, Role: role}, Scope: scope}
}

func TestClipSetStatus(t *testing.T) {
	reviewer := decision("manager-1", models.RoleManager, policy.ScopeAll)

	tests := []struct {
		name        string
		clipID      string
		status      string
		updateErr   error
		wantErr     error
		wantUpdated bool
	}{
		{name: "approve", clipID: "c1", status: "approved", wantUpdated: true},
		{name: "reject", clipID: "c1", status: "rejected", wantUpdated: true},
		{name: "needs revision", clipID: "c1", status: "needs_revision", wantUpdated: true},
		{name: "unknown status", clipID: "c1", status: "published", wantErr: ErrValidation},
		{name: "empty status", clipID: "c1", status: "", wantErr: ErrValidation},
		{name: "pending is not a review outcome", clipID: "c1", status: "pending", wantErr: ErrValidation},
		{name: "unknown clip", clipID: "missing", status: "approved", updateErr: repository.ErrNotFound, wantErr: ErrNotFound, wantUpdated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := false
			repo := &mockClipRepository{
				updateStatusFunc: func(ctx context.Context, id string, status models.ClipStatus) error {
					updated = true
					assert.Equal(t, tt.clipID, id)
					assert.Equal(t, models.ClipStatus(tt.status), status)
					return tt.updateErr
				},
				getFunc: func(ctx context.Context, id string) (*models.Clip, error) {
					return &models.Clip{ID: id, Status: models.ClipStatus(tt.status)}, nil
				},
			}
			svc := NewClipService(repo, nil, nil)

			clip, err := svc.SetStatus(context.Background(), reviewer, tt.clipID, tt.status)
			assert.Equal(t, tt.wantUpdated, updated)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.ClipStatus(tt.status), clip.Status)
		})
	}
}

func TestClipCreateForcesCaller(t *testing.T) {
	repo := &mockClipRepository{}
	svc := NewClipService(repo, nil, nil)

	clip, err := svc.Create(context.Background(), decision("clipper-1", models.RoleClipper, policy.ScopeOwn), &models.Clip{
		Title:      " Cut ",
		CampaignID: "camp-1",
		ClipperID:  "someone-else",
		Status:     models.ClipStatusApproved,
		Views:      999,
	})
	require.NoError(t, err)
	assert.Equal(t, "clipper-1", clip.ClipperID)
	assert.Equal(t, models.ClipStatusPending, clip.Status)
	assert.Equal(t, "Cut", clip.Title)
	assert.Zero(t, clip.Views)

	_, err = svc.Create(context.Background(), decision("clipper-1", models.RoleClipper, policy.ScopeOwn), &models.Clip{Title: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	repo.createFunc = func(ctx context.Context, clip *models.Clip) (*models.Clip, error) {
		return nil, repository.ErrForeignKey
	}
	_, err = svc.Create(context.Background(), decision("clipper-1", models.RoleClipper, policy.ScopeOwn), &models.Clip{Title: "x", CampaignID: "nope"})
	assert.ErrorIs(t, err, ErrReference)
}

func TestClipList(t *testing.T) {
	repo := &mockClipRepository{
		listByClipperFunc: func(ctx context.Context, clipperID string) ([]*models.Clip, error) {
			return []*models.Clip{{ID: "own", ClipperID: clipperID}}, nil
		},
		listPendingFunc: func(ctx context.Context) ([]*models.PendingClip, error) {
			return []*models.PendingClip{{Clip: models.Clip{ID: "p1"}}, {Clip: models.Clip{ID: "p2"}}}, nil
		},
	}
	svc := NewClipService(repo, nil, nil)
	ctx := context.Background()

	own, err := svc.List(ctx, decision("k", models.RoleClipper, policy.ScopeOwn))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "k", own[0].ClipperID)
	assert.Nil(t, own[0].Clipper)

	pending, err := svc.List(ctx, decision("m", models.RoleManager, policy.ScopePending))
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	_, err = svc.List(ctx, decision("c", models.RoleClient, policy.ScopeClient))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestClipResubmit(t *testing.T) {
	tests := []struct {
		name    string
		caller  string
		status  models.ClipStatus
		wantErr error
	}{
		{"owner resubmits revision", "k", models.ClipStatusNeedsRevision, nil},
		{"other clipper", "x", models.ClipStatusNeedsRevision, ErrForbidden},
		{"already pending", "k", models.ClipStatusPending, ErrConflict},
		{"approved clip", "k", models.ClipStatusApproved, ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var updatedTo models.ClipStatus
			repo := &mockClipRepository{
				getFunc: func(ctx context.Context, id string) (*models.Clip, error) {
					return &models.Clip{ID: id, ClipperID: "k", Status: tt.status}, nil
				},
				updateStatusFunc: func(ctx context.Context, id string, status models.ClipStatus) error {
					updatedTo = status
					return nil
				},
			}
			svc := NewClipService(repo, nil, nil)

			clip, err := svc.Resubmit(context.Background(), decision(tt.caller, models.RoleClipper, policy.ScopeOwn), "c1")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Empty(t, updatedTo)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.ClipStatusPending, clip.Status)
			assert.Equal(t, models.ClipStatusPending, updatedTo)
		})
	}
}

func TestEngagementRate(t *testing.T) {
	assert.Equal(t, 0.0, EngagementRate(0, 10))
	assert.Equal(t, 10.0, EngagementRate(100, 10))
	assert.Equal(t, 33.33, EngagementRate(3, 1))
	assert.Equal(t, 66.67, EngagementRate(3, 2))
}
