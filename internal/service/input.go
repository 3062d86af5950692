// Package service implements the application's business operations on top of
// the repository layer. Services own input validation and attach the
// operation-specific error classification to repository failures.
package service

import (
	"math"
	"strconv"
	"strings"

	"newsdesk/internal/models"
)

// ParseID parses a path identifier. Identifiers must be well-formed positive
// base-10 integers; anything else is rejected before the database is touched.
func ParseID(raw, field string) (uint, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, models.NewInvalidIDError(field)
	}
	return uint(id), nil
}

// ParseIncVotes coerces the decoded inc_votes body value into an integer
// delta. Absent (nil) means no-op zero. JSON numbers must be integral;
// numeric strings are accepted for compatibility with older clients.
func ParseIncVotes(v any) (int, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case float64:
		if val != math.Trunc(val) || math.Abs(val) > math.MaxInt32 {
			return 0, models.NewMalformedInputError("inc_votes")
		}
		return int(val), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, models.NewMalformedInputError("inc_votes")
		}
		return n, nil
	default:
		return 0, models.NewMalformedInputError("inc_votes")
	}
}
