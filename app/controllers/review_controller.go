package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
	"github.com/shashiranjanraj/bistro/pkg/validate"
)

type ReviewController struct {
	reviews *repositories.ReviewRepository
}

func NewReviewController(reviews *repositories.ReviewRepository) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// List returns every review. Public.
func (c *ReviewController) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := c.reviews.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("reviews: list", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, reviews)
}

// Create submits a review. Requires a valid token.
func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ReviewInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	review := &models.Review{
		Name:    in.Name,
		Details: in.Details,
		Rating:  in.Rating,
	}

	id, err := c.reviews.Create(r.Context(), review)
	if err != nil {
		logger.WithCtx(r.Context()).Error("reviews: create", "error", err)
		response.ServerError(w)
		return
	}
	response.Created(w, map[string]interface{}{"insertedId": id})
}
