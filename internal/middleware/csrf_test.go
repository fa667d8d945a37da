package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCSRFProtection(t *testing.T) {
	store := newTestStore()
	mw := NewCSRFMiddleware(store)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("safe methods pass without token", func(t *testing.T) {
		for _, method := range []string{"GET", "HEAD", "OPTIONS"} {
			req := httptest.NewRequest(method, "/admin/bookings", nil)
			rec := httptest.NewRecorder()
			mw.CSRFProtection(next).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code, method)
		}
	})

	t.Run("post without session token is forbidden", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/admin/accommodations", nil)
		rec := httptest.NewRecorder()
		mw.CSRFProtection(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("matching header token passes", func(t *testing.T) {
		cookie := sessionCookie(t, store, map[string]any{"csrf_token": "expected-token"})

		req := httptest.NewRequest("DELETE", "/admin/accommodations/1", nil)
		req.AddCookie(cookie)
		req.Header.Set("X-CSRF-Token", "expected-token")
		rec := httptest.NewRecorder()
		mw.CSRFProtection(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("matching form token passes", func(t *testing.T) {
		cookie := sessionCookie(t, store, map[string]any{"csrf_token": "expected-token"})

		req := httptest.NewRequest("POST", "/admin/accommodations", strings.NewReader("csrf_token=expected-token"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		mw.CSRFProtection(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mismatched token is forbidden", func(t *testing.T) {
		cookie := sessionCookie(t, store, map[string]any{"csrf_token": "expected-token"})

		req := httptest.NewRequest("POST", "/admin/accommodations", nil)
		req.AddCookie(cookie)
		req.Header.Set("X-CSRF-Token", "forged-token")
		rec := httptest.NewRecorder()
		mw.CSRFProtection(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("htmx mismatch gets a readable message", func(t *testing.T) {
		cookie := sessionCookie(t, store, map[string]any{"csrf_token": "expected-token"})

		req := httptest.NewRequest("DELETE", "/admin/accommodations/1", nil)
		req.AddCookie(cookie)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		mw.CSRFProtection(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "refresh the page")
	})
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := limiter.Middleware(next)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/admin/login", nil)
		req.RemoteAddr = "203.0.113.9:51000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest("POST", "/admin/login", nil)
	req.RemoteAddr = "203.0.113.9:51000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A spoofed forwarding header from the same connection stays blocked;
	// the limit is keyed on the remote address
	req = httptest.NewRequest("POST", "/admin/login", nil)
	req.RemoteAddr = "203.0.113.9:51000"
	req.Header.Set("X-Forwarded-For", "198.51.100.77")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different client is unaffected
	req = httptest.NewRequest("POST", "/admin/login", nil)
	req.RemoteAddr = "198.51.100.4:40000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
