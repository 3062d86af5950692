package repository

import (
	"context"
	"testing"
	"time"

	"newsdesk/internal/query"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var articleColumns = []string{
	"article_id", "title", "topic", "author", "body", "votes", "created_at", "comment_count",
}

func TestArticleRepositoryList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("selects the derived comment_count with a deterministic order", func(t *testing.T) {
		t.Parallel()
		db, mock := setupMockDB(t)
		repo := NewArticleRepository(db)

		rows := sqlmock.NewRows(articleColumns).
			AddRow(1, "Living in the shadow of a great man", "coding", "butter_bridge", "body", 100, time.Now(), 11).
			AddRow(2, "Sony Vaio; or, The Laptop", "coding", "icellusedkars", "body", 0, time.Now(), 0)

		mock.ExpectQuery(`SELECT articles\.\*, \(SELECT COUNT\(\*\) FROM comments WHERE comments\.article_id = articles\.article_id\) AS comment_count FROM "articles" ORDER BY created_at DESC, articles\.article_id ASC`).
			WillReturnRows(rows)

		sort, err := query.ArticleSort("", "")
		require.NoError(t, err)

		articles, err := repo.List(ctx, "", sort)
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, 11, articles[0].CommentCount)
		assert.Equal(t, 0, articles[1].CommentCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("topic filter is parameterized", func(t *testing.T) {
		t.Parallel()
		db, mock := setupMockDB(t)
		repo := NewArticleRepository(db)

		mock.ExpectQuery(`SELECT articles\.\*.+AS comment_count FROM "articles" WHERE articles\.topic = \$1 ORDER BY votes ASC, articles\.article_id ASC`).
			WithArgs("football").
			WillReturnRows(sqlmock.NewRows(articleColumns))

		sort, err := query.ArticleSort("votes", "asc")
		require.NoError(t, err)

		articles, err := repo.List(ctx, "football", sort)
		require.NoError(t, err)
		assert.Empty(t, articles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArticleRepositoryGetByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		db, mock := setupMockDB(t)
		repo := NewArticleRepository(db)

		rows := sqlmock.NewRows(articleColumns).
			AddRow(1, "Moustache", "football", "butter_bridge", "body", -5, time.Now(), 2)
		mock.ExpectQuery(`SELECT articles\.\*.+AS comment_count FROM "articles" WHERE articles\.article_id = \$1`).
			WillReturnRows(rows)

		article, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), article.ArticleID)
		assert.Equal(t, 2, article.CommentCount)
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		t.Parallel()
		db, mock := setupMockDB(t)
		repo := NewArticleRepository(db)

		mock.ExpectQuery(`SELECT articles\.\*.+FROM "articles" WHERE articles\.article_id = \$1`).
			WillReturnRows(sqlmock.NewRows(articleColumns))

		_, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestArticleRepositoryExists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, mock := setupMockDB(t)
	repo := NewArticleRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles" WHERE article_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestArticleRepositoryIncrementVotes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("single atomic update then reread", func(t *testing.T) {
		t.Parallel()
		db, mock := setupMockDB(t)
		repo := NewArticleRepository(db)

		// The increment must be one relative UPDATE, never a read-modify-write.
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "articles" SET "votes"=votes \+ \$1 WHERE article_id = \$2`).
			WithArgs(5, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rows := sqlmock.NewRows(articleColumns).
			AddRow(1, "Moustache", "football", "butter_bridge", "body", 105, time.Now(), 2)
		mock.ExpectQuery(`SELECT articles\.\*.+WHERE articles\.article_id = \$1`).
			WillReturnRows(rows)

		article, err := repo.IncrementVotes(ctx, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, 105, article.Votes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows affected maps to ErrNotFound", func(t *testing.T) {
		t.Parallel()
		db, mock := setupMockDB(t)
		repo := NewArticleRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "articles" SET "votes"=votes \+ \$1 WHERE article_id = \$2`).
			WithArgs(1, 999).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		_, err := repo.IncrementVotes(ctx, 999, 1)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
