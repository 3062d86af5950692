package repository

import (
	"context"

	"newsdesk/internal/models"
	"newsdesk/internal/observability"
	"newsdesk/internal/query"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID uint, sort query.SortSpec) ([]models.Comment, error)
	// Create persists the comment and fills in its generated id and
	// timestamp. Returns ErrForeignKeyViolation if the parent row vanished
	// between the service-level existence check and the insert.
	Create(ctx context.Context, comment *models.Comment) error
	// GetByID returns ErrNotFound when no comment matches.
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	// Delete hard-deletes the comment, returning ErrNotFound if absent.
	Delete(ctx context.Context, id uint) error
	// IncrementVotes applies an atomic `votes = votes + delta` and returns
	// the updated comment, or ErrNotFound.
	IncrementVotes(ctx context.Context, id uint, delta int) (*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) ListByArticle(ctx context.Context, articleID uint, sort query.SortSpec) ([]models.Comment, error) {
	defer observability.TrackQuery("list", "comments")()

	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order(sort.OrderClause("comment_id")).
		Find(&comments).Error
	if err != nil {
		return nil, translate(err)
	}
	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	defer observability.TrackQuery("create", "comments")()
	return translate(r.db.WithContext(ctx).Create(comment).Error)
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	defer observability.TrackQuery("get", "comments")()

	var comment models.Comment
	if err := r.db.WithContext(ctx).Where("comment_id = ?", id).Take(&comment).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "comments")()

	res := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *commentRepository) IncrementVotes(ctx context.Context, id uint, delta int) (*models.Comment, error) {
	defer observability.TrackQuery("increment_votes", "comments")()

	res := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}
