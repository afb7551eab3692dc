package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/bistro/pkg/router"
)

func noop(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/menu", "menu.list", noop)
	r.Get("/menu/{id}", "menu.get", noop)

	path, ok := r.Path("menu.list")
	if !ok || path != "/menu" {
		t.Errorf("Path(menu.list) = %q, %v", path, ok)
	}

	url, err := r.URL("menu.get", map[string]string{"id": "abc123"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/menu/abc123" {
		t.Errorf("URL = %q, want /menu/abc123", url)
	}

	if _, err := r.URL("menu.get", nil); err == nil {
		t.Error("expected error for missing params")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected error for unknown route")
	}
}

func TestRoutesSnapshot(t *testing.T) {
	r := router.New()
	r.Get("/menu", "menu.list", noop)
	r.Post("/menu", "menu.create", noop)

	routes := r.Routes()
	if len(routes) != 2 {
		t.Fatalf("got %d routes, want 2", len(routes))
	}
	if routes[0].Method != http.MethodGet || routes[0].Name != "menu.list" {
		t.Errorf("unexpected first route: %+v", routes[0])
	}
}

func TestMethodDispatch(t *testing.T) {
	r := router.New()
	r.Get("/menu", "menu.list", noop)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /menu = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/menu", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE /menu = %d, want 405", rec.Code)
	}
}

func TestRouteMiddlewareApplies(t *testing.T) {
	deny := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	}

	r := router.New()
	r.Get("/open", "open", noop)
	r.Get("/closed", "closed", noop, deny)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/open", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /open = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/closed", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("GET /closed = %d, want 418", rec.Code)
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	tag := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	api := r.Group("/api", tag("outer"))
	admin := api.Group("/admin", tag("inner"))
	admin.Get("/stats", "admin.stats", noop)

	path, ok := r.Path("admin.stats")
	if !ok || path != "/api/admin/stats" {
		t.Fatalf("Path = %q, %v", path, ok)
	}

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET = %d, want 200", rec.Code)
	}
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
}
