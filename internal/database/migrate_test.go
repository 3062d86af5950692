package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredMigrations(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, migrations, "embedded migrations should register at init")

	for i, m := range migrations {
		assert.NotEmpty(t, m.Name, "migration %d has no name", m.Version)
		assert.NotEmpty(t, m.UpScript, "migration %d has no up script", m.Version)
		assert.NotEmpty(t, m.DownScript, "migration %d has no down script", m.Version)
		if i > 0 {
			assert.Greater(t, m.Version, migrations[i-1].Version, "migrations must be ordered by version")
		}
	}
}

func TestSplitStatements(t *testing.T) {
	t.Parallel()

	stmts := splitStatements("CREATE TABLE a (id INT);\n\nCREATE INDEX i ON a(id);\n")
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (id INT)", stmts[0])
	assert.Equal(t, "CREATE INDEX i ON a(id)", stmts[1])

	assert.Empty(t, splitStatements(" ;\n; "))
}

func TestCoreTablesMigration(t *testing.T) {
	t.Parallel()

	first := migrations[0]
	assert.Equal(t, 1, first.Version)

	for _, table := range []string{"topics", "users", "articles", "comments"} {
		assert.Contains(t, first.UpScript, "CREATE TABLE "+table)
		assert.Contains(t, first.DownScript, table)
	}

	// Deleting an article must take its comments with it.
	assert.Contains(t, first.UpScript, "ON DELETE CASCADE")
	// Down migrations drop children before parents.
	commentsIdx := strings.Index(first.DownScript, "comments")
	articlesIdx := strings.Index(first.DownScript, "articles")
	assert.Less(t, commentsIdx, articlesIdx)
}
