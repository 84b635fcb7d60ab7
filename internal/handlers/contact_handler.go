package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"cvalchemist/resume-analyzer/internal/services"
)

type ContactHandler struct {
	mailer services.Mailer
}

func NewContactHandler(mailer services.Mailer) *ContactHandler {
	return &ContactHandler{mailer: mailer}
}

// HandleContactForm serves GET /contact. The form itself lives on the
// landing page, so a direct GET just goes home.
func (h *ContactHandler) HandleContactForm(c *fiber.Ctx) error {
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleContactSubmit handles POST /contact. The outcome reaches the
// client only as a redirect query marker, never as a structured error.
func (h *ContactHandler) HandleContactSubmit(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	message := c.FormValue("message")

	if err := h.mailer.SendContact(name, email, message); err != nil {
		log.Printf("contact delivery failed: %v", err)
		return c.Redirect("/?contact=error", fiber.StatusSeeOther)
	}
	return c.Redirect("/?contact=success", fiber.StatusSeeOther)
}
