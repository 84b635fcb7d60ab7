package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cvalchemist/resume-analyzer/internal/models"
	"cvalchemist/resume-analyzer/internal/services"
)

type CheckoutHandler struct {
	payments services.PaymentService
}

func NewCheckoutHandler(payments services.PaymentService) *CheckoutHandler {
	return &CheckoutHandler{payments: payments}
}

// HandleCreateCheckoutSession handles POST /create-checkout-session.
// The origin_url is trusted as given; redirect targets are derived from it
// without validating the host.
func (h *CheckoutHandler) HandleCreateCheckoutSession(c *fiber.Ctx) error {
	var req models.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid request payload",
		})
	}

	url, err := h.payments.CreateCheckout(req.OriginURL)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.CheckoutResponse{URL: url})
}
