package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/osa911/clipdesk/internal/api/dto/common"
	"github.com/osa911/clipdesk/internal/logging"
	"github.com/osa911/clipdesk/internal/policy"
	"github.com/osa911/clipdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logging.SetGlobalLogger(logging.NewWriterLogger(io.Discard, logging.LevelError))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   common.ErrorCode
		wantMsg    string
	}{
		{"validation field", &service.ValidationError{Field: "status", Message: "bad"}, http.StatusBadRequest, common.ErrCodeValidation, "Invalid request"},
		{"missing reference", fmt.Errorf("%w: campaign", service.ErrReference), http.StatusBadRequest, common.ErrCodeNotFound, "Referenced resource not found"},
		{"missing target", fmt.Errorf("clip %w", service.ErrNotFound), http.StatusNotFound, common.ErrCodeNotFound, "Resource not found"},
		{"conflict", service.ErrConflict, http.StatusConflict, common.ErrCodeConflict, service.ErrConflict.Error()},
		{"no caller", policy.ErrUnauthenticated, http.StatusUnauthorized, common.ErrCodeUnauthorized, "Authentication required"},
		{"denied", fmt.Errorf("%w: role clipper", policy.ErrDenied), http.StatusForbidden, common.ErrCodeForbidden, "Unauthorized"},
		{"service forbidden", service.ErrForbidden, http.StatusForbidden, common.ErrCodeForbidden, "Unauthorized"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, common.ErrCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/clips", nil)

			HandleServiceError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body common.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, string(tt.wantCode), body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
		})
	}
}

func TestGetRealIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		trusted []string
		headers map[string]string
		want    string
	}{
		{"headers ignored without trusted proxies", nil, map[string]string{"X-Forwarded-For": "10.0.0.2", "X-Real-IP": "10.0.0.1"}, "192.0.2.1"},
		{"forwarded chain from trusted proxy", []string{"192.0.2.1"}, map[string]string{"X-Forwarded-For": "10.0.0.2, 172.16.0.1"}, "172.16.0.1"},
		{"real ip from trusted proxy", []string{"192.0.2.0/24"}, map[string]string{"X-Real-IP": "10.0.0.1"}, "10.0.0.1"},
		{"remote addr", nil, nil, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, engine := gin.CreateTestContext(httptest.NewRecorder())
			require.NoError(t, engine.SetTrustedProxies(tt.trusted))
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, GetRealIP(c))
		})
	}
}
