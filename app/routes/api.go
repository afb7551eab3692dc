// Package routes wires every HTTP endpoint to its controller and gates.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/bistro/app/controllers"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/pkg/billing"
	"github.com/shashiranjanraj/bistro/pkg/metrics"
	"github.com/shashiranjanraj/bistro/pkg/middleware"
	"github.com/shashiranjanraj/bistro/pkg/response"
	"github.com/shashiranjanraj/bistro/pkg/router"
)

// RegisterAPI mounts the full route table.
//
// Three gates compose per route: RequireToken (valid bearer token),
// RequireAdmin (fresh role lookup against the users collection) and
// RequireOwner (token email must match the email in the request). Admin
// routes always stack RequireToken first.
func RegisterAPI(r *router.Router, repos *repositories.Repositories, intents billing.IntentCreator) {
	authController := controllers.NewAuthController()
	userController := controllers.NewUserController(repos.Users)
	menuController := controllers.NewMenuController(repos.Menu)
	reviewController := controllers.NewReviewController(repos.Reviews)
	cartController := controllers.NewCartController(repos.Carts)
	checkout := services.NewCheckoutService(repos.Payments, repos.Carts)
	paymentController := controllers.NewPaymentController(repos.Payments, checkout, intents)
	statsController := controllers.NewStatsController(services.NewStatsService(repos.Users, repos.Menu, repos.Payments))

	requireAdmin := middleware.RequireAdmin(repos.Users.IsAdmin)

	r.Get("/", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok", "service": "bistro"})
	})
	r.HandleFunc("/metrics", metrics.Handler())

	r.Post("/jwt", "auth.token", authController.IssueToken)

	// Menu
	r.Get("/menu", "menu.list", menuController.List)
	r.Get("/menu/{id}", "menu.get", menuController.Get)
	r.Post("/menu", "menu.create", menuController.Create, middleware.RequireToken, requireAdmin)
	// TODO: gate this with RequireToken+requireAdmin once the dashboard
	// edit form sends the Authorization header.
	r.Patch("/menu/{id}", "menu.update", menuController.Patch)
	r.Delete("/menu/{id}", "menu.delete", menuController.Delete, middleware.RequireToken, requireAdmin)
	r.Post("/menu/{id}/image", "menu.image", menuController.UploadImage, middleware.RequireToken, requireAdmin)

	// Reviews
	r.Get("/reviews", "reviews.list", reviewController.List)
	r.Post("/reviews", "reviews.create", reviewController.Create, middleware.RequireToken)

	// Carts. Ungated: the storefront cart pages run before login.
	r.Get("/carts", "carts.list", cartController.List)
	r.Post("/carts", "carts.create", cartController.Create)
	r.Delete("/carts/{id}", "carts.delete", cartController.Delete)

	// Users
	r.Post("/users", "users.create", userController.Create)
	r.Get("/users", "users.list", userController.List, middleware.RequireToken, requireAdmin)
	r.Get("/users/admin/{email}", "users.admin_status", userController.AdminStatus,
		middleware.RequireToken, middleware.RequireOwner(middleware.OwnParam("email")))
	r.Patch("/users/admin/{id}", "users.promote", userController.Promote, middleware.RequireToken, requireAdmin)
	r.Delete("/users/{id}", "users.delete", userController.Delete, middleware.RequireToken, requireAdmin)

	// Payments. Intent creation and recording stay open like the cart
	// routes; only the per-user history is gated.
	r.Post("/create-payment-intent", "payments.intent", paymentController.CreateIntent)
	r.Get("/payments/{email}", "payments.history", paymentController.History,
		middleware.RequireToken, middleware.RequireOwner(middleware.OwnParam("email")))
	r.Post("/payments", "payments.record", paymentController.Record)

	// Admin dashboard
	r.Get("/admin-stats", "stats.summary", statsController.Summary, middleware.RequireToken, requireAdmin)
	r.Get("/order-stats", "stats.orders", statsController.OrderStats)
}
