// Package services holds the business operations that span more than one
// collection. Controllers stay thin and delegate here.
package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/queue"
)

// CheckoutResult reports what the checkout touched. DeletedCarts mirrors the
// cart cleanup so the client can verify its cart emptied.
type CheckoutResult struct {
	PaymentID    primitive.ObjectID `json:"paymentId"`
	DeletedCarts int64              `json:"deletedCarts"`
}

// CheckoutService records payments and clears the purchased cart items.
type CheckoutService struct {
	payments *repositories.PaymentRepository
	carts    *repositories.CartRepository
}

func NewCheckoutService(payments *repositories.PaymentRepository, carts *repositories.CartRepository) *CheckoutService {
	return &CheckoutService{payments: payments, carts: carts}
}

// RecordPayment inserts the payment, deletes the cart items it references
// and queues the confirmation email. The two writes are not atomic: a crash
// between them leaves the paid cart items behind, which the client can
// delete individually. The email never affects the outcome.
func (s *CheckoutService) RecordPayment(ctx context.Context, in *models.PaymentInput) (*CheckoutResult, error) {
	cartIDs, err := parseObjectIDs(in.CartIDs)
	if err != nil {
		return nil, fmt.Errorf("checkout: cart ids: %w", err)
	}
	menuItemIDs, err := parseObjectIDs(in.MenuItemIDs)
	if err != nil {
		return nil, fmt.Errorf("checkout: menu item ids: %w", err)
	}

	payment := &models.Payment{
		Email:         in.Email,
		Price:         in.Price,
		TransactionID: in.TransactionID,
		Date:          time.Now().UTC(),
		CartIDs:       cartIDs,
		MenuItemIDs:   menuItemIDs,
		Status:        in.Status,
	}

	id, err := s.payments.Insert(ctx, payment)
	if err != nil {
		return nil, err
	}

	deleted, err := s.carts.DeleteMany(ctx, cartIDs)
	if err != nil {
		return nil, err
	}

	if err := queue.Dispatch(ConfirmationMailJob{
		Email:         in.Email,
		TransactionID: in.TransactionID,
		Price:         in.Price,
	}); err != nil {
		logger.WithCtx(ctx).Error("checkout: dispatch confirmation mail", "error", err)
	}

	return &CheckoutResult{PaymentID: id, DeletedCarts: deleted}, nil
}

func parseObjectIDs(hex []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hex))
	for _, h := range hex {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", h, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
