package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cvalchemist/resume-analyzer/internal/cache"
	"cvalchemist/resume-analyzer/internal/services"
)

// respondError is the single place pipeline failures become HTTP statuses.
// Bad input gets 400, unknown ids 404, everything else a 500 carrying the
// underlying message.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, services.ErrUnsupportedType),
		errors.Is(err, services.ErrEmptyExtraction):
		status = fiber.StatusBadRequest
	case errors.Is(err, cache.ErrNotFound):
		status = fiber.StatusNotFound
	}

	return c.Status(status).JSON(fiber.Map{
		"detail": err.Error(),
	})
}
