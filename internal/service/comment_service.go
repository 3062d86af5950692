package service

import (
	"context"
	"errors"
	"strings"

	"newsdesk/internal/models"
	"newsdesk/internal/query"
	"newsdesk/internal/repository"
)

// CreateCommentInput carries the decoded body for posting a comment.
type CreateCommentInput struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// CommentService exposes operations over comments.
type CommentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, articleRepo: articleRepo}
}

// ListComments returns the comments on an article, sorted per the input.
// The article must exist; an article with no comments yields an empty list.
func (s *CommentService) ListComments(ctx context.Context, rawArticleID, sortBy, order string) ([]models.Comment, error) {
	sort, err := query.CommentSort(sortBy, order)
	if err != nil {
		return nil, err
	}

	articleID, err := ParseID(rawArticleID, "article_id")
	if err != nil {
		return nil, err
	}

	exists, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewArticleNotFoundError(models.MsgArticleNotFound)
	}

	return s.commentRepo.ListByArticle(ctx, articleID, sort)
}

// CreateComment posts a comment on an article. Body-shape validation runs
// before the identifier is parsed or the parent article looked up, so a
// request that is both malformed and misaddressed reports the 400 first.
func (s *CommentService) CreateComment(ctx context.Context, rawArticleID string, in CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Username) == "" {
		return nil, models.NewMissingFieldError("username")
	}
	if strings.TrimSpace(in.Body) == "" {
		return nil, models.NewMissingFieldError("body")
	}

	articleID, err := ParseID(rawArticleID, "article_id")
	if err != nil {
		return nil, err
	}

	exists, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewArticleNotFoundError(models.MsgNotFound)
	}

	comment := &models.Comment{
		ArticleID: articleID,
		Author:    in.Username,
		Body:      in.Body,
		Votes:     0,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		// The article (or author) can vanish between the existence check
		// and the insert; the constraint failure is still a 404.
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, models.NewArticleNotFoundError(models.MsgNotFound)
		}
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment by id.
func (s *CommentService) DeleteComment(ctx context.Context, rawID string) error {
	id, err := ParseID(rawID, "comment_id")
	if err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.NewCommentNotFoundError()
		}
		return err
	}
	return nil
}

// IncrementCommentVotes atomically adjusts a comment's vote count and
// returns the updated comment.
func (s *CommentService) IncrementCommentVotes(ctx context.Context, rawID string, incVotes any) (*models.Comment, error) {
	id, err := ParseID(rawID, "comment_id")
	if err != nil {
		return nil, err
	}

	delta, err := ParseIncVotes(incVotes)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.IncrementVotes(ctx, id, delta)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewCommentNotFoundError()
		}
		return nil, err
	}
	return comment, nil
}
