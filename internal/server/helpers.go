package server

import (
	"encoding/json"

	"newsdesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

// decodeIncVotes pulls the raw inc_votes value out of a PATCH body without
// forcing a type on it; the service layer decides what coercions are legal.
// An empty body reads as an absent inc_votes.
func decodeIncVotes(c *fiber.Ctx) (any, error) {
	body := c.Body()
	if len(body) == 0 {
		return nil, nil
	}

	var req map[string]any
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, models.NewMalformedInputError("body")
	}
	return req["inc_votes"], nil
}
