package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/repository"
)

// ApplicationService handles public clipper applications and their review.
type ApplicationService struct {
	applications repository.ApplicationRepository
}

func NewApplicationService(applications repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{applications: applications}
}

// Submit stores a new application with status pending.
func (s *ApplicationService) Submit(ctx context.Context, a *models.Application) (*models.Application, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)
	a.WhyChooseYou = strings.TrimSpace(a.WhyChooseYou)

	switch {
	case a.Name == "":
		return nil, invalid("name", "is required")
	case a.Email == "":
		return nil, invalid("email", "is required")
	case a.WhyChooseYou == "":
		return nil, invalid("whyChooseYou", "is required")
	}

	created, err := s.applications.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("failed to submit application: %w", storeError(err, "application"))
	}
	return created, nil
}

// List returns every application, newest first.
func (s *ApplicationService) List(ctx context.Context) ([]*models.Application, error) {
	return s.applications.List(ctx)
}

// Review sets the status of an application.
func (s *ApplicationService) Review(ctx context.Context, id, status string) error {
	st, err := models.ParseApplicationStatus(status)
	if err != nil {
		return invalid("status", "%v", err)
	}
	return storeError(s.applications.UpdateStatus(ctx, id, st), "application")
}
