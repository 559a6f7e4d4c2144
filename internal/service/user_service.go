package service

import (
	"context"

	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/repository"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, "user")
	}
	return user, nil
}

// SetRole assigns a role. Roles are otherwise only set at creation.
func (s *UserService) SetRole(ctx context.Context, id, role string) (*models.User, error) {
	r, err := models.ParseRole(role)
	if err != nil {
		return nil, invalid("role", "%v", err)
	}
	if err := s.users.SetRole(ctx, id, r); err != nil {
		return nil, storeError(err, "user")
	}
	return s.Get(ctx, id)
}
