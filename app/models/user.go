package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only privileged role. A user's admin status is the sole
// authorization signal in the system and is re-read from this collection on
// every admin-gated request.
const RoleAdmin = "admin"

// User is a document in the users collection. Email is the unique key.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Photo    string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Password string             `bson:"password,omitempty" json:"-"` // bcrypt hash, never serialised
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
	Created  time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// IsAdmin reports whether the record carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// SignupInput is the payload accepted by user creation.
type SignupInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Photo    string `json:"photo" validate:"nullable,max=2048"`
	Password string `json:"password" validate:"nullable,min=6"`
}
