package mapper

import (
	"strings"

	"github.com/osa911/clipdesk/internal/api/dto/v1/application"
	"github.com/osa911/clipdesk/internal/api/sanitization"
	"github.com/osa911/clipdesk/internal/models"
)

// ApplicationFromCreateRequest builds a domain Application from the public form
func ApplicationFromCreateRequest(req *application.CreateRequest) *models.Application {
	return &models.Application{
		Name:         sanitization.SanitizeString(req.Name),
		Email:        sanitization.SanitizeEmail(req.Email),
		Platform:     sanitization.SanitizeOptional(req.Platform),
		Experience:   sanitization.SanitizeOptional(req.Experience),
		SocialLinks:  sanitization.SanitizeOptional(req.SocialLinks),
		WhyChooseYou: strings.TrimSpace(req.WhyChooseYou),
	}
}

func ApplicationToResponse(a *models.Application) *application.Response {
	return &application.Response{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Platform:     a.Platform,
		Experience:   a.Experience,
		SocialLinks:  a.SocialLinks,
		WhyChooseYou: a.WhyChooseYou,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func ApplicationsToResponses(apps []*models.Application) []*application.Response {
	result := make([]*application.Response, len(apps))
	for i, a := range apps {
		result[i] = ApplicationToResponse(a)
	}
	return result
}
