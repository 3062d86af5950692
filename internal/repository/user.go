package repository

import (
	"context"

	"newsdesk/internal/cache"
	"newsdesk/internal/models"
	"newsdesk/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	// GetByUsername returns ErrNotFound when no user matches.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	defer observability.TrackQuery("list", "users")()
	var users []models.User
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := cache.Aside(ctx, cache.UserKey(username), &user, cache.UserTTL, func() error {
		defer observability.TrackQuery("get", "users")()
		return r.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
