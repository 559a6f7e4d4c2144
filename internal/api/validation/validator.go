package validation

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/osa911/clipdesk/internal/api/dto/common"
	"github.com/osa911/clipdesk/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("email", validateEmail)
	v.RegisterValidation("nonblank", validateNonBlank)
	v.RegisterValidation("clipstatus", validateClipStatus)
	v.RegisterValidation("appstatus", validateApplicationStatus)
	v.RegisterValidation("role", validateRole)
}

// RegisterWithGin installs the custom validators on gin's binding engine.
func RegisterWithGin() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterValidators(v)
		}
	})
}

// validateEmail checks if the email is valid
func validateEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// validateNonBlank rejects strings made only of whitespace
func validateNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateClipStatus(fl validator.FieldLevel) bool {
	return models.ClipStatus(fl.Field().String()).IsReviewOutcome()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	return models.ApplicationStatus(fl.Field().String()).Valid()
}

func validateRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).Valid()
}

// FormatValidationError formats validation errors into a user-friendly response
func FormatValidationError(err error) []common.ValidationError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []common.ValidationError{{Message: "malformed request body"}}
	}

	out := make([]common.ValidationError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, common.ValidationError{
			Field:   jsonName(e.Field()),
			Message: message(e),
		})
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "nonblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "clipstatus":
		return "must be one of approved, rejected, needs_revision"
	case "appstatus":
		return "must be one of pending, approved, rejected"
	case "role":
		return "must be one of client, clipper, manager, admin"
	case "max":
		return "must be at most " + e.Param()
	case "min":
		return "must be at least " + e.Param()
	}
	return "is invalid"
}

// jsonName lower-cases the first letter of a Go field name.
func jsonName(field string) string {
	if field == "" {
		return field
	}
	name := strings.ToLower(field[:1]) + field[1:]
	return strings.Replace(name, "ID", "Id", 1)
}
