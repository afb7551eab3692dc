package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a document in the payments collection. A payment is written
// exactly once at checkout and never mutated. MenuItemIDs are stored as
// ObjectIDs so the per-category report can join them against the menu
// collection.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Price         float64              `bson:"price" json:"price"`
	TransactionID string               `bson:"transactionId" json:"transactionId"`
	Date          time.Time            `bson:"date" json:"date"`
	CartIDs       []primitive.ObjectID `bson:"cartIds" json:"cartIds"`
	MenuItemIDs   []primitive.ObjectID `bson:"menuItemIds" json:"menuItemIds"`
	Status        string               `bson:"status,omitempty" json:"status,omitempty"`
}

// PaymentInput is the checkout payload. Cart and menu item ids arrive as
// hex strings from the client and are converted on insert.
type PaymentInput struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	TransactionID string   `json:"transactionId" validate:"required"`
	CartIDs       []string `json:"cartIds" validate:"nullable"`
	MenuItemIDs   []string `json:"menuItemIds" validate:"nullable"`
	Status        string   `json:"status" validate:"nullable,max=50"`
}

// SummaryStats is the admin dashboard roll-up. Counts are estimated
// (collection metadata), revenue is an aggregation over all payments and is
// 0 when there are none.
type SummaryStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// CategoryStat is one row of the per-category order report. Revenue is
// summed from the current menu price of each ordered item, not the price
// paid at checkout.
type CategoryStat struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}
