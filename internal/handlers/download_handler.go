package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"cvalchemist/resume-analyzer/internal/models"
	"cvalchemist/resume-analyzer/internal/services"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type DownloadHandler struct {
	generator services.DocumentGenerator
}

func NewDownloadHandler(generator services.DocumentGenerator) *DownloadHandler {
	return &DownloadHandler{generator: generator}
}

// HandleDownloadPDF handles POST /download-pdf.
func (h *DownloadHandler) HandleDownloadPDF(c *fiber.Ctx) error {
	return h.download(c, h.generator.RenderPDF, "resume.pdf", "application/pdf")
}

// HandleDownloadDOCX handles POST /download-docx.
func (h *DownloadHandler) HandleDownloadDOCX(c *fiber.Ctx) error {
	return h.download(c, h.generator.RenderDOCX, "resume.docx", docxMIME)
}

// download renders the text into a temporary file, reads it back and
// deletes it before the response is sent, so the file never outlives the
// request on any path.
func (h *DownloadHandler) download(c *fiber.Ctx, render func(string) (string, error), filename, contentType string) error {
	var req models.DownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid request payload",
		})
	}

	path, err := render(req.Text)
	if err != nil {
		return respondError(c, err)
	}

	data, err := os.ReadFile(path)
	os.Remove(path)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
