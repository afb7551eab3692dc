package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/internal/server"
	"github.com/shashiranjanraj/bistro/pkg/billing"
)

// testRouter builds the real route table. Repositories are empty; the cases
// below only exercise paths that fail at the gate or on input validation,
// before any collection is touched.
func testRouter() http.Handler {
	return server.NewRouter(&repositories.Repositories{}, billing.NewStripeClient()).Handler()
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestMetricsEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGatedRoutesRejectMissingToken(t *testing.T) {
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/menu"},
		{http.MethodDelete, "/menu/0123456789abcdef01234567"},
		{http.MethodPost, "/menu/0123456789abcdef01234567/image"},
		{http.MethodPost, "/reviews"},
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/admin/a@b.com"},
		{http.MethodPatch, "/users/admin/0123456789abcdef01234567"},
		{http.MethodDelete, "/users/0123456789abcdef01234567"},
		{http.MethodGet, "/payments/a@b.com"},
		{http.MethodGet, "/admin-stats"},
	}

	h := testRouter()
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestMenuPatchIsUngated(t *testing.T) {
	// No Authorization header; a malformed id must reach the handler and
	// come back 400, not 401.
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/menu/not-an-id", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartAndCheckoutRoutesAreOpen(t *testing.T) {
	// Carts, payment intents, payment recording and the order report take
	// no token. Each request here fails on its payload, proving it reached
	// the handler instead of a gate.
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/carts"},
		{http.MethodDelete, "/carts/not-an-id"},
		{http.MethodPost, "/create-payment-intent"},
		{http.MethodPost, "/payments"},
	}

	h := testRouter()
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equalf(t, http.StatusBadRequest, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestCartListAndOrderStatsServeAnonymously(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	router := func(mt *mtest.T) http.Handler {
		repos := &repositories.Repositories{
			Users:    repositories.NewUserRepository(mt.Coll),
			Menu:     repositories.NewMenuRepository(mt.Coll),
			Reviews:  repositories.NewReviewRepository(mt.Coll),
			Carts:    repositories.NewCartRepository(mt.Coll),
			Payments: repositories.NewPaymentRepository(mt.Coll, "menu"),
		}
		return server.NewRouter(repos, billing.NewStripeClient()).Handler()
	}

	mt.Run("carts by email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bistroDb.carts", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "email", Value: "guest@example.com"},
				{Key: "name", Value: "Margherita"},
				{Key: "price", Value: 12.5},
			},
		))

		rec := httptest.NewRecorder()
		router(mt).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/carts?email=guest@example.com", nil))

		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.Contains(mt, rec.Body.String(), "Margherita")
	})

	mt.Run("order stats", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bistroDb.payments", mtest.FirstBatch,
			bson.D{
				{Key: "category", Value: "pizza"},
				{Key: "quantity", Value: int64(2)},
				{Key: "revenue", Value: 25.0},
			},
		))

		rec := httptest.NewRecorder()
		router(mt).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/order-stats", nil))

		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.Contains(mt, rec.Body.String(), "pizza")
	})
}

func TestPublicReadsAreRegistered(t *testing.T) {
	r := server.NewRouter(&repositories.Repositories{}, billing.NewStripeClient())

	names := map[string]bool{}
	for _, route := range r.Routes() {
		names[route.Name] = true
	}

	for _, want := range []string{
		"auth.token", "menu.list", "menu.get", "menu.create", "menu.update",
		"menu.delete", "menu.image", "reviews.list", "reviews.create",
		"carts.list", "carts.create", "carts.delete",
		"users.create", "users.list", "users.admin_status", "users.promote", "users.delete",
		"payments.intent", "payments.history", "payments.record",
		"stats.summary", "stats.orders",
	} {
		require.Truef(t, names[want], "route %s not registered", want)
	}
}

func TestIssueTokenValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestIssueToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"alice@example.com","name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token")
}
