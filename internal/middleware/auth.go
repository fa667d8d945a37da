package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/services"

	"github.com/gorilla/sessions"
)

type contextKey string

const (
	// AdminContextKey holds the authenticated admin user
	AdminContextKey contextKey = "admin"

	// SessionName is the cookie name for the admin session
	SessionName = "admin_session"
)

// AuthMiddleware provides admin authentication functionality
type AuthMiddleware struct {
	authService services.AuthServiceInterface
	store       sessions.Store
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authService services.AuthServiceInterface, store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		store:       store,
	}
}

// LoadAdmin loads the current admin from the session and adds it to the
// request context. Requests without a valid session continue anonymously.
func (m *AuthMiddleware) LoadAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			// Continue without admin if session is invalid
			next.ServeHTTP(w, r)
			return
		}

		adminID, ok := session.Values["admin_id"].(int)
		if !ok || adminID == 0 {
			// Session storage may convert types on the round trip
			switch v := session.Values["admin_id"].(type) {
			case float64:
				adminID = int(v)
			case string:
				adminID, _ = strconv.Atoi(v)
			}
			if adminID == 0 {
				next.ServeHTTP(w, r)
				return
			}
		}

		admin, err := m.authService.GetAdminByID(adminID)
		if err != nil {
			// Stale session for a deleted admin, clear it
			session.Values["admin_id"] = nil
			session.Values["csrf_token"] = nil
			session.Options.MaxAge = -1
			session.Save(r, w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), AdminContextKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin ensures the request carries an authenticated admin session.
// Browser requests are redirected to the login page; HTMX and JSON
// requests get a 401 instead.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin := GetAdminFromContext(r.Context())
		if admin == nil {
			if IsHTMXRequest(r) {
				w.Header().Set("HX-Redirect", "/admin/login")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if wantsJSON(r) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetAdminFromContext retrieves the admin user from request context
func GetAdminFromContext(ctx context.Context) *models.AdminUser {
	admin, ok := ctx.Value(AdminContextKey).(*models.AdminUser)
	if !ok {
		return nil
	}
	return admin
}

// SetAdminContext sets the admin in the context (for testing)
func SetAdminContext(ctx context.Context, admin *models.AdminUser) context.Context {
	return context.WithValue(ctx, AdminContextKey, admin)
}

// IsHTMXRequest checks if the request is from HTMX
func IsHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func wantsJSON(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json" ||
		r.Header.Get("Content-Type") == "application/json"
}

// GenerateCSRFToken generates a CSRF token for the session
func GenerateCSRFToken() string {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		// Fallback to timestamp-based token if crypto/rand fails
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(tokenBytes)
}

// GetCSRFToken retrieves the CSRF token from the session, generating one
// if the session does not have one yet
func GetCSRFToken(r *http.Request, w http.ResponseWriter, store sessions.Store) string {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return ""
	}

	token, ok := session.Values["csrf_token"].(string)
	if !ok || token == "" {
		token = GenerateCSRFToken()
		session.Values["csrf_token"] = token
		session.Save(r, w)
	}
	return token
}
