// Package billing wraps the payment provider behind a one-method interface.
// Only payment-intent creation is needed; the client confirms the intent
// directly with the provider.
package billing

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"github.com/shashiranjanraj/bistro/config"
)

// IntentCreator creates a payment intent for a price (in the ledger
// currency's major unit) and returns the client secret the frontend
// finishes the payment with.
type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
}

// StripeClient is the production IntentCreator.
type StripeClient struct{}

// NewStripeClient sets the API key once and returns the client.
func NewStripeClient() *StripeClient {
	stripe.Key = config.StripeSecretKey()
	return &StripeClient{}
}

// CreateIntent creates a card payment intent in USD cents.
func (c *StripeClient) CreateIntent(_ context.Context, price float64) (string, error) {
	amount := int64(price * 100)

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("billing: create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
