package auth

import (
	"time"

	"github.com/osa911/clipdesk/internal/api/dto/v1/user"
)

// LoginRequest carries an identity-provider ID token
type LoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse represents the response after a successful login
type LoginResponse struct {
	User    user.UserResponse `json:"user"`
	Expires time.Time         `json:"expires"`
}
