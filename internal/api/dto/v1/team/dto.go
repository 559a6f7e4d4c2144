package team

import (
	"time"

	"github.com/osa911/clipdesk/internal/api/dto/v1/user"
)

// CreateRequest creates a team owned by the caller. A clientId in the body is ignored.
type CreateRequest struct {
	Name        string  `json:"name" binding:"required,nonblank,max=255"`
	ManagerID   string  `json:"managerId" binding:"required"`
	Description *string `json:"description"`
}

// AddMemberRequest assigns a clipper to a team
type AddMemberRequest struct {
	ClipperID string `json:"clipperId" binding:"required"`
}

type Response struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ClientID    string    `json:"clientId"`
	ManagerID   string    `json:"managerId"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MemberResponse struct {
	ID        string             `json:"id"`
	TeamID    string             `json:"teamId"`
	ClipperID string             `json:"clipperId"`
	JoinedAt  time.Time          `json:"joinedAt"`
	Clipper   *user.UserResponse `json:"clipper,omitempty"`
}
