// Package query validates caller-supplied sort parameters against fixed
// per-resource whitelists before they reach the database layer.
package query

import (
	"fmt"
	"strings"

	"newsdesk/internal/models"
)

// Direction is a validated ORDER BY direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// DefaultColumn is the sort column applied when the caller supplies none.
const DefaultColumn = "created_at"

// SortSpec is a validated (column, direction) pair. Construct one through
// ArticleSort or CommentSort; a zero SortSpec is not safe to interpolate.
type SortSpec struct {
	Column    string
	Direction Direction
}

// OrderClause renders the spec as an ORDER BY body with ties broken by the
// primary key ascending for deterministic output. Column is guaranteed
// whitelisted, so interpolation is safe.
func (s SortSpec) OrderClause(primaryKey string) string {
	return fmt.Sprintf("%s %s, %s ASC", s.Column, s.Direction, primaryKey)
}

var articleColumns = map[string]struct{}{
	"article_id":    {},
	"title":         {},
	"topic":         {},
	"author":        {},
	"created_at":    {},
	"votes":         {},
	"comment_count": {},
}

var commentColumns = map[string]struct{}{
	"comment_id": {},
	"votes":      {},
	"created_at": {},
	"author":     {},
}

// ArticleSort validates sort parameters for the articles resource.
func ArticleSort(sortBy, order string) (SortSpec, error) {
	return validate(articleColumns, sortBy, order)
}

// CommentSort validates sort parameters for the comments resource.
func CommentSort(sortBy, order string) (SortSpec, error) {
	return validate(commentColumns, sortBy, order)
}

// validate checks the column before the direction: an invalid sort_by is
// reported even when order is also invalid.
func validate(allowed map[string]struct{}, sortBy, order string) (SortSpec, error) {
	if sortBy == "" {
		sortBy = DefaultColumn
	}
	if _, ok := allowed[sortBy]; !ok {
		return SortSpec{}, models.NewSortColumnError(sortBy)
	}

	direction := Desc
	if order != "" {
		switch strings.ToLower(order) {
		case "asc":
			direction = Asc
		case "desc":
			direction = Desc
		default:
			return SortSpec{}, models.NewOrderError(order)
		}
	}

	return SortSpec{Column: sortBy, Direction: direction}, nil
}
