package server

import (
	"newsdesk/internal/models"
	"newsdesk/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetArticles returns all articles with comment counts, optionally filtered
// by topic and sorted by the whitelisted sort_by/order query parameters.
func (s *Server) GetArticles(c *fiber.Ctx) error {
	articles, err := s.articleService.ListArticles(c.UserContext(), service.ListArticlesInput{
		Topic:  c.Query("topic"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
	})
	if err != nil {
		return err
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return c.JSON(fiber.Map{"articles": articles})
}

// GetArticle returns a single article with its comment count
func (s *Server) GetArticle(c *fiber.Ctx) error {
	article, err := s.articleService.GetArticle(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"article": article})
}

// PatchArticle adjusts an article's votes by the body's inc_votes value and
// returns the updated article. A body without inc_votes is a no-op read.
func (s *Server) PatchArticle(c *fiber.Ctx) error {
	incVotes, err := decodeIncVotes(c)
	if err != nil {
		return err
	}

	article, err := s.articleService.IncrementArticleVotes(c.UserContext(), c.Params("id"), incVotes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"article": article})
}
