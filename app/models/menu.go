package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem is a document in the menu collection.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
}

// MenuItemInput is the payload for creating a menu item.
type MenuItemInput struct {
	Name     string  `json:"name" validate:"required,min=2,max=200"`
	Recipe   string  `json:"recipe" validate:"nullable,max=2000"`
	Image    string  `json:"image" validate:"nullable,max=2048"`
	Category string  `json:"category" validate:"required,min=2,max=100"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// MenuItemPatch is a partial update; nil fields are left untouched.
type MenuItemPatch struct {
	Name     *string  `json:"name,omitempty"`
	Recipe   *string  `json:"recipe,omitempty"`
	Image    *string  `json:"image,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}
