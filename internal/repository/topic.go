package repository

import (
	"context"

	"newsdesk/internal/cache"
	"newsdesk/internal/models"
	"newsdesk/internal/observability"

	"gorm.io/gorm"
)

// TopicRepository defines the interface for topic data operations.
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new topic repository.
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) List(ctx context.Context) ([]models.Topic, error) {
	// Topics are immutable once seeded, so the cached list never goes stale.
	var topics []models.Topic
	err := cache.Aside(ctx, cache.TopicsKey, &topics, cache.TopicsTTL, func() error {
		defer observability.TrackQuery("list", "topics")()
		return r.db.WithContext(ctx).Order("slug ASC").Find(&topics).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return topics, nil
}

func (r *topicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	defer observability.TrackQuery("exists", "topics")()
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Topic{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}
