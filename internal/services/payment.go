package services

import (
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

// PaymentService creates hosted checkout sessions for the fixed
// resume-optimization product.
type PaymentService interface {
	CreateCheckout(originURL string) (string, error)
}

type stripeCheckout struct {
	configured bool
}

// NewStripeCheckout wires the Stripe client with the key resolved at
// startup. An empty key leaves the service permanently unconfigured until
// the process restarts.
func NewStripeCheckout(apiKey string) PaymentService {
	if apiKey != "" {
		stripe.Key = apiKey
	}
	return &stripeCheckout{configured: apiKey != ""}
}

// CreateCheckout builds a one-time card payment session. Success and
// cancel targets append query markers to the caller-supplied origin URL;
// the origin is not validated server-side.
func (s *stripeCheckout) CreateCheckout(originURL string) (string, error) {
	if !s.configured {
		return "", ErrProcessorUnconfigured
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Resume Optimization"),
					},
					UnitAmount: stripe.Int64(2999),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:          stripe.String(originURL + "?success=true"),
		CancelURL:           stripe.String(originURL + "?canceled=true"),
		AllowPromotionCodes: stripe.Bool(true),
		ConsentCollection: &stripe.CheckoutSessionConsentCollectionParams{
			Promotions: stripe.String("auto"),
		},
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProcessorFailed, err)
	}
	return sess.URL, nil
}
