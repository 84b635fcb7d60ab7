package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCheckout_UnconfiguredFailsFast(t *testing.T) {
	payments := NewStripeCheckout("")

	url, err := payments.CreateCheckout("https://example.com")
	assert.ErrorIs(t, err, ErrProcessorUnconfigured)
	assert.Empty(t, url)
}
