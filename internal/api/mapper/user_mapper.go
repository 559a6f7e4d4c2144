package mapper

import (
	"github.com/osa911/clipdesk/internal/api/dto/v1/user"
	"github.com/osa911/clipdesk/internal/models"
)

// UserToUserResponse converts a domain User model to a UserResponse DTO
func UserToUserResponse(u *models.User) *user.UserResponse {
	if u == nil {
		return nil
	}

	return &user.UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		Role:            string(u.Role),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
