package middleware

import (
	"github.com/osa911/clipdesk/internal/api/validation"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

// Validate binds the JSON body into T, validates it and stores it under key.
// Malformed or invalid bodies are rejected with 400 before the policy gate runs.
func Validate[T any](key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req T
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.HandleValidationErrors(c, validation.FormatValidationError(err))
			return
		}

		c.Set(key, req)
		c.Next()
	}
}

// Validated returns the request stored by Validate
func Validated[T any](c *gin.Context, key string) (T, bool) {
	v, ok := c.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	req, ok := v.(T)
	return req, ok
}
