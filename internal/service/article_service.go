package service

import (
	"context"
	"errors"

	"newsdesk/internal/models"
	"newsdesk/internal/query"
	"newsdesk/internal/repository"
)

// ListArticlesInput carries the raw query parameters for listing articles.
type ListArticlesInput struct {
	Topic  string
	SortBy string
	Order  string
}

// ArticleService exposes operations over articles.
type ArticleService struct {
	articleRepo repository.ArticleRepository
	topicRepo   repository.TopicRepository
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo repository.ArticleRepository, topicRepo repository.TopicRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo, topicRepo: topicRepo}
}

// ListArticles returns articles with comment counts, filtered and sorted per
// the input. A topic filter naming an unknown topic is a 404; a known topic
// with no articles is an empty list.
func (s *ArticleService) ListArticles(ctx context.Context, in ListArticlesInput) ([]models.Article, error) {
	sort, err := query.ArticleSort(in.SortBy, in.Order)
	if err != nil {
		return nil, err
	}

	if in.Topic != "" {
		exists, err := s.topicRepo.Exists(ctx, in.Topic)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, models.NewTopicNotFoundError()
		}
	}

	return s.articleRepo.List(ctx, in.Topic, sort)
}

// GetArticle returns a single article with its comment count.
func (s *ArticleService) GetArticle(ctx context.Context, rawID string) (*models.Article, error) {
	id, err := ParseID(rawID, "article_id")
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewArticleNotFoundError(models.MsgArticleIDNotFound)
		}
		return nil, err
	}
	return article, nil
}

// IncrementArticleVotes atomically adjusts an article's vote count by the
// decoded inc_votes value and returns the updated article. An absent
// inc_votes is a zero-delta no-op, not an error.
func (s *ArticleService) IncrementArticleVotes(ctx context.Context, rawID string, incVotes any) (*models.Article, error) {
	id, err := ParseID(rawID, "article_id")
	if err != nil {
		return nil, err
	}

	delta, err := ParseIncVotes(incVotes)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.IncrementVotes(ctx, id, delta)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewArticleNotFoundError(models.ArticleWithIDNotFound(id))
		}
		return nil, err
	}
	return article, nil
}
