package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cvalchemist/resume-analyzer/internal/models"
	"cvalchemist/resume-analyzer/internal/services"
)

type RewriteHandler struct {
	analyzer services.AnalyzerService
}

func NewRewriteHandler(analyzer services.AnalyzerService) *RewriteHandler {
	return &RewriteHandler{analyzer: analyzer}
}

// HandleRewrite handles POST /rewrite. Unlike the other endpoints this one
// always answers 200: model failures arrive as an error-flavored
// optimized_text that clients detect by content.
func (h *RewriteHandler) HandleRewrite(c *fiber.Ctx) error {
	var req models.RewriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid request payload",
		})
	}

	return c.JSON(models.RewriteResponse{
		OptimizedText: h.analyzer.RewriteText(c.UserContext(), req.Text, req.JobTitle),
	})
}
