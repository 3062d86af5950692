package repository

import (
	"context"

	"newsdesk/internal/models"
	"newsdesk/internal/observability"
	"newsdesk/internal/query"

	"gorm.io/gorm"
)

// articleSelect joins the derived comment_count into every article read.
// The count is never persisted; a correlated subquery keeps it live.
const articleSelect = "articles.*, " +
	"(SELECT COUNT(*) FROM comments WHERE comments.article_id = articles.article_id) AS comment_count"

// ArticleRepository defines the interface for article data operations.
type ArticleRepository interface {
	// List returns all articles with their comment counts, optionally
	// restricted to a topic, ordered by the validated sort spec with ties
	// broken by article_id ascending.
	List(ctx context.Context, topic string, sort query.SortSpec) ([]models.Article, error)
	// GetByID returns the article with its comment count, or ErrNotFound.
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// IncrementVotes applies an atomic `votes = votes + delta` at the
	// datastore and returns the updated article, or ErrNotFound.
	IncrementVotes(ctx context.Context, id uint, delta int) (*models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) List(ctx context.Context, topic string, sort query.SortSpec) ([]models.Article, error) {
	defer observability.TrackQuery("list", "articles")()

	q := r.db.WithContext(ctx).Model(&models.Article{}).Select(articleSelect)
	if topic != "" {
		q = q.Where("articles.topic = ?", topic)
	}

	var articles []models.Article
	if err := q.Order(sort.OrderClause("articles.article_id")).Find(&articles).Error; err != nil {
		return nil, translate(err)
	}
	return articles, nil
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	defer observability.TrackQuery("get", "articles")()

	var article models.Article
	err := r.db.WithContext(ctx).Model(&models.Article{}).
		Select(articleSelect).
		Where("articles.article_id = ?", id).
		Take(&article).Error
	if err != nil {
		return nil, translate(err)
	}
	return &article, nil
}

func (r *articleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	defer observability.TrackQuery("exists", "articles")()

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Article{}).Where("article_id = ?", id).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *articleRepository) IncrementVotes(ctx context.Context, id uint, delta int) (*models.Article, error) {
	defer observability.TrackQuery("increment_votes", "articles")()

	// Single atomic add at the datastore; concurrent increments on the same
	// row serialize there and never lose updates.
	res := r.db.WithContext(ctx).Model(&models.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}
