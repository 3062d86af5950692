package service

import (
	"context"

	"newsdesk/internal/models"
	"newsdesk/internal/repository"
)

// TopicService exposes read operations over topics.
type TopicService struct {
	topicRepo repository.TopicRepository
}

// NewTopicService creates a new TopicService.
func NewTopicService(topicRepo repository.TopicRepository) *TopicService {
	return &TopicService{topicRepo: topicRepo}
}

// ListTopics returns every topic.
func (s *TopicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topicRepo.List(ctx)
}
