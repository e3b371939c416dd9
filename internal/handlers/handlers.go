package handlers

import (
	"errors"

	"clinicdesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the service error taxonomy onto HTTP status codes:
// validation failures are 400, missing referents 404, everything else is a
// storage error surfaced as 500 with the underlying message.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
