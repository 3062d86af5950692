package server

import (
	"errors"

	"newsdesk/internal/middleware"
	"newsdesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the single place errors become HTTP responses. Handlers
// and services only ever return errors; classification happens here.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		status := appErr.Status()
		if status >= fiber.StatusInternalServerError {
			middleware.Logger.ErrorContext(c.UserContext(), "request error",
				"kind", string(appErr.Kind), "error", appErr.Error())
		}
		return c.Status(status).JSON(fiber.Map{"msg": appErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusMethodNotAllowed:
			return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"msg": models.MsgMethodNotAllowed})
		case fiber.StatusNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": models.MsgNotFound})
		}
	}

	// Anything unclassified is a 500 and never leaks internals to the client.
	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": models.MsgInternalError})
}
