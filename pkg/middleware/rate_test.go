package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/bistro/pkg/middleware"
)

func rateRequest(addr, forwardedFor string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	return req
}

func TestRateLimitBlocksOverLimit(t *testing.T) {
	h := middleware.RateLimit(2, time.Minute)(okHandler())

	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, rateRequest("203.0.113.10:1111", ""))
		assert.Equalf(t, want, rec.Code, "request %d", i+1)
	}
}

func TestRateLimitIgnoresForwardedForByDefault(t *testing.T) {
	// Forwarded headers are client-supplied on a direct connection, so
	// rotating them must not mint a fresh bucket.
	h := middleware.RateLimit(1, time.Minute)(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, rateRequest("203.0.113.20:1111", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, rateRequest("203.0.113.20:2222", "10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitKeysOnHostNotPort(t *testing.T) {
	h := middleware.RateLimit(1, time.Minute)(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, rateRequest("203.0.113.30:1111", ""))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Same client reconnecting from a different source port shares the
	// bucket.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, rateRequest("203.0.113.30:2222", ""))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitHonorsForwardedForWhenProxied(t *testing.T) {
	middleware.TrustProxyHeader = true
	t.Cleanup(func() { middleware.TrustProxyHeader = false })

	h := middleware.RateLimit(1, time.Minute)(okHandler())

	// Behind a trusted proxy every request shares RemoteAddr; the first
	// forwarded hop identifies the client.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, rateRequest("127.0.0.1:1111", "198.51.100.1, 10.0.0.1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, rateRequest("127.0.0.1:1111", "198.51.100.2, 10.0.0.1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, rateRequest("127.0.0.1:1111", "198.51.100.1, 10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
