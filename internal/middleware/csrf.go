package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/sessions"
)

// CSRFMiddleware provides CSRF protection for the admin back-office forms
type CSRFMiddleware struct {
	store sessions.Store
}

// NewCSRFMiddleware creates a new CSRF middleware
func NewCSRFMiddleware(store sessions.Store) *CSRFMiddleware {
	return &CSRFMiddleware{store: store}
}

// CSRFProtection validates the session CSRF token on state-changing requests
func (m *CSRFMiddleware) CSRFProtection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Safe methods pass through
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.store.Get(r, SessionName)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		sessionToken, ok := session.Values["csrf_token"].(string)
		if !ok || sessionToken == "" {
			http.Error(w, "CSRF token mismatch", http.StatusForbidden)
			return
		}

		requestToken := r.Header.Get("X-CSRF-Token")
		if requestToken == "" {
			requestToken = r.FormValue("csrf_token")
		}

		if subtle.ConstantTimeCompare([]byte(requestToken), []byte(sessionToken)) != 1 {
			if IsHTMXRequest(r) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte("Security token mismatch. Please refresh the page and try again."))
				return
			}
			http.Error(w, "CSRF token mismatch", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
