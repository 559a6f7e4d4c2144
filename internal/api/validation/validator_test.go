package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewRequest struct {
	Status string `validate:"required,clipstatus"`
}

type applicationRequest struct {
	Name   string `validate:"required,nonblank"`
	Email  string `validate:"required,email"`
	Status string `validate:"omitempty,appstatus"`
	Role   string `validate:"omitempty,role"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestClipStatusTag(t *testing.T) {
	v := newValidator()
	for _, status := range []string{"approved", "rejected", "needs_revision"} {
		assert.NoError(t, v.Struct(reviewRequest{Status: status}), status)
	}
	for _, status := range []string{"pending", "done", "APPROVED"} {
		assert.Error(t, v.Struct(reviewRequest{Status: status}), status)
	}
}

func TestApplicationTags(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Struct(applicationRequest{Name: "Dana", Email: "dana@example.com", Status: "approved", Role: "manager"}))

	err := v.Struct(applicationRequest{Name: "   ", Email: "nope", Status: "archived", Role: "owner"})
	require.Error(t, err)

	details := FormatValidationError(err)
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[d.Field] = d.Message
	}
	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Contains(t, fields["status"], "pending")
	assert.Contains(t, fields["role"], "manager")
}

func TestFormatValidationError_Malformed(t *testing.T) {
	details := FormatValidationError(errors.New("unexpected EOF"))
	require.Len(t, details, 1)
	assert.Equal(t, "malformed request body", details[0].Message)
}

func TestJSONName(t *testing.T) {
	assert.Equal(t, "campaignId", jsonName("CampaignID"))
	assert.Equal(t, "whyChooseYou", jsonName("WhyChooseYou"))
}
