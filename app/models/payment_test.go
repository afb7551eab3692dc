package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/pkg/validate"
)

func TestPaymentInputAcceptsEmptyCartIDs(t *testing.T) {
	// A payment can arrive with no cart items to clear (for example a
	// direct order placed outside the cart flow); the checkout then
	// deletes zero carts.
	errs := validate.Struct(&models.PaymentInput{
		Email:         "alice@example.com",
		Price:         25,
		TransactionID: "pi_123",
		CartIDs:       []string{},
		MenuItemIDs:   []string{},
	})
	assert.Empty(t, errs)
}

func TestPaymentInputStillRequiresCore(t *testing.T) {
	errs := validate.Struct(&models.PaymentInput{
		CartIDs: []string{"0123456789abcdef01234567"},
	})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "transactionId")
}
