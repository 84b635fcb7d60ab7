package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct {
	indexPath string
}

func NewHomeHandler(indexPath string) *HomeHandler {
	return &HomeHandler{indexPath: indexPath}
}

// HandleIndex serves the landing page with caching disabled, or a 500
// page when the asset is missing.
func (h *HomeHandler) HandleIndex(c *fiber.Ctx) error {
	if _, err := os.Stat(h.indexPath); err != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Status(fiber.StatusInternalServerError).
			SendString(`<h1>Error: index.html not found</h1><p><a href="/">Go to Homepage</a></p>`)
	}

	c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	return c.SendFile(h.indexPath)
}
