// Package controllers holds the HTTP handlers. Controllers bind and
// validate input, call repositories or services, and write the JSON
// envelope. No business logic lives here.
package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bistro/pkg/auth"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
	"github.com/shashiranjanraj/bistro/pkg/validate"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

type tokenInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"nullable,max=100"`
}

// IssueToken mints a short-lived access token for the given identity. The
// client has already authenticated with the identity provider; this endpoint
// only converts that identity into an API token.
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var in tokenInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	token, err := auth.GenerateToken(in.Email, in.Name)
	if err != nil {
		logger.WithCtx(r.Context()).Error("auth: sign token", "error", err)
		response.ServerError(w)
		return
	}

	response.Success(w, map[string]string{"token": token})
}
