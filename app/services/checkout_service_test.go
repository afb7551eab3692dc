package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bistro/app/models"
)

func TestRecordPaymentRejectsBadCartIDs(t *testing.T) {
	svc := NewCheckoutService(nil, nil)

	_, err := svc.RecordPayment(context.Background(), &models.PaymentInput{
		Email:         "alice@example.com",
		Price:         25,
		TransactionID: "pi_123",
		CartIDs:       []string{"not-a-hex-id"},
		MenuItemIDs:   []string{"0123456789abcdef01234567"},
	})
	assert.Error(t, err)
}

func TestRecordPaymentRejectsBadMenuItemIDs(t *testing.T) {
	svc := NewCheckoutService(nil, nil)

	_, err := svc.RecordPayment(context.Background(), &models.PaymentInput{
		Email:         "alice@example.com",
		Price:         25,
		TransactionID: "pi_123",
		CartIDs:       []string{"0123456789abcdef01234567"},
		MenuItemIDs:   []string{"xyz"},
	})
	assert.Error(t, err)
}

func TestParseObjectIDs(t *testing.T) {
	ids, err := parseObjectIDs([]string{"0123456789abcdef01234567", "89abcdef0123456789abcdef"})
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, "0123456789abcdef01234567", ids[0].Hex())

	_, err = parseObjectIDs([]string{"short"})
	assert.Error(t, err)

	ids, err = parseObjectIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
