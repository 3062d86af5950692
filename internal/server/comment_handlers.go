package server

import (
	"newsdesk/internal/models"
	"newsdesk/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetArticleComments returns the comments on an article, newest first by
// default.
func (s *Server) GetArticleComments(c *fiber.Ctx) error {
	comments, err := s.commentService.ListComments(c.UserContext(),
		c.Params("id"), c.Query("sort_by"), c.Query("order"))
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return c.JSON(fiber.Map{"comments": comments})
}

// CreateComment posts a comment on an article
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req service.CreateCommentInput
	if len(c.Body()) > 0 {
		if parseErr := c.BodyParser(&req); parseErr != nil {
			return models.NewMalformedInputError("body")
		}
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// PatchComment adjusts a comment's votes by the body's inc_votes value and
// returns the updated comment.
func (s *Server) PatchComment(c *fiber.Ctx) error {
	incVotes, err := decodeIncVotes(c)
	if err != nil {
		return err
	}

	comment, err := s.commentService.IncrementCommentVotes(c.UserContext(), c.Params("id"), incVotes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"comment": comment})
}

// DeleteComment removes a comment and returns no content
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	if err := s.commentService.DeleteComment(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
