package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/bistro/pkg/auth"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

// RoleLookup reports whether the user identified by email currently holds
// the admin role. Implemented by the user repository; called on every
// admin-gated request so promotions take effect immediately.
type RoleLookup func(ctx context.Context, email string) (bool, error)

// RequireToken extracts the bearer token from the Authorization header,
// verifies it, and attaches the decoded claims to the request context.
// Missing header and failed verification both end the request with a 401.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			response.Unauthorized(w)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := auth.WithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin allows the request only when the token subject's user record
// carries the admin role. Must run after RequireToken. The lookup hits the
// users collection every time; roles are never cached.
func RequireAdmin(isAdmin RoleLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}

			admin, err := isAdmin(r.Context(), claims.Email)
			if err != nil {
				logger.WithCtx(r.Context()).Error("admin lookup failed",
					"email", claims.Email, "error", err)
				response.ServerError(w)
				return
			}
			if !admin {
				response.Forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// EmailFromRequest extracts the email a request claims to act on behalf of.
type EmailFromRequest func(r *http.Request) string

// OwnParam reads the email from a chi URL parameter.
func OwnParam(name string) EmailFromRequest {
	return func(r *http.Request) string { return chi.URLParam(r, name) }
}

// OwnQuery reads the email from a query-string parameter.
func OwnQuery(name string) EmailFromRequest {
	return func(r *http.Request) string { return r.URL.Query().Get(name) }
}

// RequireOwner allows the request only when the email named in the request
// matches the verified token's email. Must run after RequireToken. Used on
// endpoints where a user may only touch their own resources.
func RequireOwner(extract EmailFromRequest) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}

			if extract(r) != claims.Email {
				response.Forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
