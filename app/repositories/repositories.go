// Package repositories holds the MongoDB persistence layer. Every method is
// a single collection operation; there are no multi-document transactions.
// Collection handles are injected at construction, never reached for through
// globals.
package repositories

import (
	"github.com/shashiranjanraj/bistro/pkg/database"
)

// Repositories bundles one repository per collection.
type Repositories struct {
	Users    *UserRepository
	Menu     *MenuRepository
	Reviews  *ReviewRepository
	Carts    *CartRepository
	Payments *PaymentRepository
}

// New wires every repository to its collection handle.
func New(db *database.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db.Collection(database.ColUsers)),
		Menu:     NewMenuRepository(db.Collection(database.ColMenu)),
		Reviews:  NewReviewRepository(db.Collection(database.ColReviews)),
		Carts:    NewCartRepository(db.Collection(database.ColCarts)),
		Payments: NewPaymentRepository(db.Collection(database.ColPayments), database.ColMenu),
	}
}
