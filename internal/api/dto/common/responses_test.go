package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationResponse(t *testing.T) {
	resp := NewValidationResponse("Invalid request", ValidationError{Field: "status", Message: "is invalid"})
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	assert.Equal(t, string(ErrCodeValidation), resp.Error.Code)
	assert.Equal(t, []ValidationError{{Field: "status", Message: "is invalid"}}, resp.Error.Details)

	b, err := json.Marshal(NewValidationResponse("bad body"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":{"code":"VALIDATION_ERROR","message":"bad body"}}`, string(b))
}

func TestNewDeniedResponse(t *testing.T) {
	b, err := json.Marshal(NewDeniedResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":{"code":"FORBIDDEN","message":"Unauthorized"}}`, string(b))
}
