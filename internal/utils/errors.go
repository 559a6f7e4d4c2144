package utils

import (
	"errors"
	"net/http"

	"github.com/osa911/clipdesk/internal/api/dto/common"
	"github.com/osa911/clipdesk/internal/logging"
	"github.com/osa911/clipdesk/internal/policy"
	"github.com/osa911/clipdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logging.GetGlobalLogger().Error("%s: %v", message, err)
}

// HandleAPIError writes an error response and logs it.
// Error details are only exposed outside gin release mode.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logging.GetGlobalLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	var details any
	if gin.Mode() != gin.ReleaseMode && err != nil {
		details = err.Error()
	}

	c.JSON(status, common.NewErrorResponse(code, message, details))
}

// HandleServiceError translates a service or policy error into the matching response.
// Anything it does not recognise is an internal error.
func HandleServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, common.NewValidationResponse("Invalid request", common.ValidationError{
			Field:   verr.Field,
			Message: verr.Message,
		}))
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, common.NewValidationResponse(err.Error()))
	case errors.Is(err, service.ErrReference):
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeNotFound, "Referenced resource not found", nil))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrCodeNotFound, "Resource not found", nil))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, common.NewErrorResponse(common.ErrCodeConflict, err.Error(), nil))
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, policy.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse(common.ErrCodeUnauthorized, "Authentication required", nil))
	case errors.Is(err, service.ErrForbidden), errors.Is(err, policy.ErrDenied):
		c.JSON(http.StatusForbidden, common.NewDeniedResponse())
	default:
		HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Internal server error")
	}
}

// HandleUnauthorized aborts the request with 401
func HandleUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse(common.ErrCodeUnauthorized, message, nil))
}

// HandleValidationErrors aborts the request with 400 and field details
func HandleValidationErrors(c *gin.Context, details []common.ValidationError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, common.NewValidationResponse("Invalid request body", details...))
}
