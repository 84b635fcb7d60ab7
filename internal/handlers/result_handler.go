package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cvalchemist/resume-analyzer/internal/cache"
)

type ResultHandler struct {
	store cache.ResultStore
}

func NewResultHandler(store cache.ResultStore) *ResultHandler {
	return &ResultHandler{store: store}
}

// HandleGetResult handles GET /result/:id.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	result, err := h.store.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Result not found or expired.",
		})
	}
	return c.JSON(result)
}
