package service

import (
	"context"
	"testing"

	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApplicationRepository struct {
	repository.ApplicationRepository
	created []*models.Application
	updated map[string]models.ApplicationStatus
}

func (m *mockApplicationRepository) Create(ctx context.Context, a *models.Application) (*models.Application, error) {
	out := *a
	out.ID = "app-1"
	out.Status = models.ApplicationStatusPending
	m.created = append(m.created, &out)
	return &out, nil
}

func (m *mockApplicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	if id != "app-1" {
		return repository.ErrNotFound
	}
	if m.updated == nil {
		m.updated = map[string]models.ApplicationStatus{}
	}
	m.updated[id] = status
	return nil
}

func TestApplicationSubmit(t *testing.T) {
	tests := []struct {
		name    string
		app     models.Application
		wantErr bool
	}{
		{"valid", models.Application{Name: "Jo", Email: "jo@example.com", WhyChooseYou: "fast"}, false},
		{"missing name", models.Application{Email: "jo@example.com", WhyChooseYou: "fast"}, true},
		{"blank email", models.Application{Name: "Jo", Email: "  ", WhyChooseYou: "fast"}, true},
		{"missing why", models.Application{Name: "Jo", Email: "jo@example.com"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockApplicationRepository{}
			svc := NewApplicationService(repo)

			app := tt.app
			got, err := svc.Submit(context.Background(), &app)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Empty(t, repo.created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.ApplicationStatusPending, got.Status)
			assert.Len(t, repo.created, 1)
		})
	}
}

func TestApplicationReview(t *testing.T) {
	repo := &mockApplicationRepository{}
	svc := NewApplicationService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Review(ctx, "app-1", "approved"))
	assert.Equal(t, models.ApplicationStatusApproved, repo.updated["app-1"])

	assert.ErrorIs(t, svc.Review(ctx, "app-1", "maybe"), ErrValidation)
	assert.ErrorIs(t, svc.Review(ctx, "other", "rejected"), ErrNotFound)
}
