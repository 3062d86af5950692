package service

import (
	"context"
	"errors"

	"newsdesk/internal/models"
	"newsdesk/internal/repository"
)

// UserService exposes read operations over users.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns every user.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// GetUser returns a single user by username.
func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewUserNotFoundError()
		}
		return nil, err
	}
	return user, nil
}
