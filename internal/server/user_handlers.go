package server

import (
	"newsdesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUsers returns all users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUserByUsername returns a single user profile
func (s *Server) GetUserByUsername(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}
