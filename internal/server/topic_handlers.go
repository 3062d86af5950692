package server

import (
	"newsdesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTopics returns all topics
func (s *Server) GetTopics(c *fiber.Ctx) error {
	topics, err := s.topicService.ListTopics(c.UserContext())
	if err != nil {
		return err
	}
	if topics == nil {
		topics = []models.Topic{}
	}
	return c.JSON(fiber.Map{"topics": topics})
}
