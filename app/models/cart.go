package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a document in the carts collection. Each item belongs to one
// user (by email) and references one menu item. Carts are deleted one by
// one from the cart page, or in bulk when a payment that references them is
// recorded.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	MenuItemID primitive.ObjectID `bson:"menuItemId" json:"menuItemId"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
}

// CartItemInput is the payload for adding a menu item to a cart.
type CartItemInput struct {
	Email      string  `json:"email" validate:"required,email"`
	MenuItemID string  `json:"menuItemId" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Image      string  `json:"image" validate:"nullable,max=2048"`
	Price      float64 `json:"price" validate:"required,gt=0"`
}
