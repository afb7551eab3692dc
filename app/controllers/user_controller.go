package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/auth"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
	"github.com/shashiranjanraj/bistro/pkg/validate"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(users *repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// List returns every user. Admin only.
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("users: list", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, users)
}

// AdminStatus reports whether the user behind the email path parameter is
// an admin. The ownership gate has already checked that the token belongs
// to that same email.
func (c *UserController) AdminStatus(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	isAdmin, err := c.users.IsAdmin(r.Context(), email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("users: admin status", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, map[string]bool{"admin": isAdmin})
}

// Create registers a user record after signup. The endpoint is idempotent
// on email: signing in again with an existing account reports that the user
// already exists instead of failing.
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.SignupInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user := &models.User{
		Name:  in.Name,
		Email: in.Email,
		Photo: in.Photo,
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			logger.WithCtx(r.Context()).Error("users: hash password", "error", err)
			response.ServerError(w)
			return
		}
		user.Password = hash
	}

	id, err := c.users.Create(r.Context(), user)
	if errors.Is(err, repositories.ErrAlreadyExists) {
		response.Success(w, map[string]interface{}{
			"message":    "user already exists",
			"insertedId": nil,
		})
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("users: create", "error", err)
		response.ServerError(w)
		return
	}

	response.Created(w, map[string]interface{}{"insertedId": id})
}

// Promote assigns the admin role to the user with the given id. The new
// role takes effect on the user's very next request because roles are read
// fresh from the collection, never from the token.
func (c *UserController) Promote(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	modified, err := c.users.Promote(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("users: promote", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, map[string]int64{"modifiedCount": modified})
}

// Delete removes a user record. Admin only.
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	deleted, err := c.users.Delete(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("users: delete", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, map[string]int64{"deletedCount": deleted})
}
