package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"cvalchemist/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

// HandleAnalyze handles POST /analyze: multipart "file" plus an optional
// "job_title" form field.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "file is required",
		})
	}
	jobTitle := c.FormValue("job_title")

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "failed to open uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "failed to read uploaded file",
		})
	}

	result, err := h.analyzer.Analyze(c.UserContext(), data, fileHeader.Filename, jobTitle)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
