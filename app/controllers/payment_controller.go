package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/billing"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
	"github.com/shashiranjanraj/bistro/pkg/validate"
)

type PaymentController struct {
	payments *repositories.PaymentRepository
	checkout *services.CheckoutService
	intents  billing.IntentCreator
}

func NewPaymentController(payments *repositories.PaymentRepository, checkout *services.CheckoutService, intents billing.IntentCreator) *PaymentController {
	return &PaymentController{payments: payments, checkout: checkout, intents: intents}
}

type intentInput struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// CreateIntent opens a card payment intent for the given amount and returns
// the client secret the frontend needs to confirm it.
func (c *PaymentController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var in intentInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	secret, err := c.intents.CreateIntent(r.Context(), in.Price)
	if err != nil {
		logger.WithCtx(r.Context()).Error("payments: create intent", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, map[string]string{"clientSecret": secret})
}

// History returns the caller's payments, newest first. The ownership gate
// guarantees the email path parameter matches the token.
func (c *PaymentController) History(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	payments, err := c.payments.FindByEmail(r.Context(), email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("payments: history", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, payments)
}

// Record stores a confirmed payment, clears the purchased cart items and
// queues the confirmation email.
func (c *PaymentController) Record(w http.ResponseWriter, r *http.Request) {
	var in models.PaymentInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	result, err := c.checkout.RecordPayment(r.Context(), &in)
	if err != nil {
		logger.WithCtx(r.Context()).Error("payments: record", "error", err)
		response.ServerError(w)
		return
	}
	response.Created(w, result)
}
