package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a document in the reviews collection.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating" json:"rating"`
}

// ReviewInput is the payload for submitting a review.
type ReviewInput struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Details string  `json:"details" validate:"required,min=2,max=2000"`
	Rating  float64 `json:"rating" validate:"required,gte=0,max=5"`
}
