package service

import (
	"context"
	"testing"

	"newsdesk/internal/models"
	"newsdesk/internal/query"
	"newsdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListComments(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("default sort newest first", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		articleRepo := new(MockArticleRepository)
		svc := NewCommentService(commentRepo, articleRepo)

		articleRepo.On("Exists", ctx, uint(1)).Return(true, nil)
		expected := []models.Comment{{CommentID: 2}, {CommentID: 1}}
		commentRepo.On("ListByArticle", ctx, uint(1),
			query.SortSpec{Column: "created_at", Direction: query.Desc}).Return(expected, nil)

		comments, err := svc.ListComments(ctx, "1", "", "")
		require.NoError(t, err)
		assert.Equal(t, expected, comments)
	})

	t.Run("invalid sort rejected before the existence check", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		articleRepo := new(MockArticleRepository)
		svc := NewCommentService(commentRepo, articleRepo)

		_, err := svc.ListComments(ctx, "1", "topic", "")
		requireKind(t, err, models.KindInvalidSortColumn)
		articleRepo.AssertNotCalled(t, "Exists")
	})

	t.Run("unknown article", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		articleRepo := new(MockArticleRepository)
		svc := NewCommentService(commentRepo, articleRepo)

		articleRepo.On("Exists", ctx, uint(999)).Return(false, nil)

		_, err := svc.ListComments(ctx, "999", "", "")
		appErr := requireKind(t, err, models.KindArticleNotFound)
		assert.Equal(t, models.MsgArticleNotFound, appErr.Message)
		commentRepo.AssertNotCalled(t, "ListByArticle")
	})

	t.Run("malformed article id", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(new(MockCommentRepository), new(MockArticleRepository))

		_, err := svc.ListComments(ctx, "banana", "", "")
		requireKind(t, err, models.KindInvalidID)
	})
}

func TestCreateComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates with zero votes", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		articleRepo := new(MockArticleRepository)
		svc := NewCommentService(commentRepo, articleRepo)

		articleRepo.On("Exists", ctx, uint(1)).Return(true, nil)
		commentRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Comment) bool {
			return c.ArticleID == 1 && c.Author == "butter_bridge" && c.Body == "great read" && c.Votes == 0
		})).Return(nil)

		comment, err := svc.CreateComment(ctx, "1", CreateCommentInput{Username: "butter_bridge", Body: "great read"})
		require.NoError(t, err)
		assert.Equal(t, "butter_bridge", comment.Author)
		assert.Zero(t, comment.Votes)
	})

	t.Run("missing body checked before anything else", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		articleRepo := new(MockArticleRepository)
		svc := NewCommentService(commentRepo, articleRepo)

		// Parent does not exist and the id is malformed, but the missing
		// field still wins.
		_, err := svc.CreateComment(ctx, "banana", CreateCommentInput{Username: "butter_bridge"})
		appErr := requireKind(t, err, models.KindMissingField)
		assert.Equal(t, "body", appErr.Field)
		articleRepo.AssertNotCalled(t, "Exists")
		commentRepo.AssertNotCalled(t, "Create")
	})

	t.Run("missing username", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(new(MockCommentRepository), new(MockArticleRepository))

		_, err := svc.CreateComment(ctx, "1", CreateCommentInput{Body: "no author"})
		appErr := requireKind(t, err, models.KindMissingField)
		assert.Equal(t, "username", appErr.Field)
	})

	t.Run("unknown parent article", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		articleRepo := new(MockArticleRepository)
		svc := NewCommentService(commentRepo, articleRepo)

		articleRepo.On("Exists", ctx, uint(999)).Return(false, nil)

		_, err := svc.CreateComment(ctx, "999", CreateCommentInput{Username: "sam", Body: "hello"})
		appErr := requireKind(t, err, models.KindArticleNotFound)
		assert.Equal(t, models.MsgNotFound, appErr.Message)
	})

	t.Run("parent vanishing mid-flight is still a 404", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		articleRepo := new(MockArticleRepository)
		svc := NewCommentService(commentRepo, articleRepo)

		articleRepo.On("Exists", ctx, uint(5)).Return(true, nil)
		commentRepo.On("Create", ctx, mock.Anything).Return(repository.ErrForeignKeyViolation)

		_, err := svc.CreateComment(ctx, "5", CreateCommentInput{Username: "sam", Body: "hello"})
		appErr := requireKind(t, err, models.KindArticleNotFound)
		assert.Equal(t, models.MsgNotFound, appErr.Message)
	})
}

func TestDeleteComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockArticleRepository))

		commentRepo.On("Delete", ctx, uint(3)).Return(nil)
		require.NoError(t, svc.DeleteComment(ctx, "3"))
	})

	t.Run("missing row", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockArticleRepository))

		commentRepo.On("Delete", ctx, uint(999)).Return(repository.ErrNotFound)

		err := svc.DeleteComment(ctx, "999")
		appErr := requireKind(t, err, models.KindCommentNotFound)
		assert.Equal(t, models.MsgCommentNotFound, appErr.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockArticleRepository))

		requireKind(t, svc.DeleteComment(ctx, "nope"), models.KindInvalidID)
		commentRepo.AssertNotCalled(t, "Delete")
	})
}

func TestIncrementCommentVotes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("applies delta", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockArticleRepository))

		commentRepo.On("IncrementVotes", ctx, uint(2), -1).Return(&models.Comment{CommentID: 2, Votes: 15}, nil)

		comment, err := svc.IncrementCommentVotes(ctx, "2", float64(-1))
		require.NoError(t, err)
		assert.Equal(t, 15, comment.Votes)
	})

	t.Run("missing row", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockArticleRepository))

		commentRepo.On("IncrementVotes", ctx, uint(999), 1).Return(nil, repository.ErrNotFound)

		_, err := svc.IncrementCommentVotes(ctx, "999", float64(1))
		requireKind(t, err, models.KindCommentNotFound)
	})

	t.Run("malformed inc_votes", func(t *testing.T) {
		t.Parallel()
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockArticleRepository))

		_, err := svc.IncrementCommentVotes(ctx, "2", []any{1})
		requireKind(t, err, models.KindMalformedInput)
		commentRepo.AssertNotCalled(t, "IncrementVotes")
	})
}
