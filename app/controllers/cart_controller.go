package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
	"github.com/shashiranjanraj/bistro/pkg/validate"
)

type CartController struct {
	carts *repositories.CartRepository
}

func NewCartController(carts *repositories.CartRepository) *CartController {
	return &CartController{carts: carts}
}

// List returns the cart items for the email query parameter. Carts are
// keyed by email only; there is no account requirement on this route.
func (c *CartController) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	items, err := c.carts.FindByEmail(r.Context(), email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("carts: list", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, items)
}

// Create adds a menu item to the user's cart. Requires a valid token.
func (c *CartController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CartItemInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	menuItemID, err := primitive.ObjectIDFromHex(in.MenuItemID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid menu item id")
		return
	}

	item := &models.CartItem{
		Email:      in.Email,
		MenuItemID: menuItemID,
		Name:       in.Name,
		Image:      in.Image,
		Price:      in.Price,
	}

	id, err := c.carts.Create(r.Context(), item)
	if err != nil {
		logger.WithCtx(r.Context()).Error("carts: create", "error", err)
		response.ServerError(w)
		return
	}
	response.Created(w, map[string]interface{}{"insertedId": id})
}

// Delete removes one cart item.
func (c *CartController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	deleted, err := c.carts.Delete(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("carts: delete", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, map[string]int64{"deletedCount": deleted})
}
