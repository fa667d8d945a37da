package handlers

import (
	"html/template"
	"log"
	"net/http"

	"tour-booking-platform/internal/middleware"
	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/services"

	"github.com/gorilla/sessions"
)

// AdminAuthHandler handles admin login and logout
type AdminAuthHandler struct {
	authService services.AuthServiceInterface
	store       sessions.Store
}

// NewAdminAuthHandler creates a new admin auth handler
func NewAdminAuthHandler(authService services.AuthServiceInterface, store sessions.Store) *AdminAuthHandler {
	return &AdminAuthHandler{
		authService: authService,
		store:       store,
	}
}

type loginPageData struct {
	Error     string
	CSRFToken string
}

var loginTemplate = template.Must(template.New("admin-login").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Admin Login - Rwanda Visit Tours</title>
    <style>
        body { font-family: 'Segoe UI', Arial, sans-serif; background: #f9fafb; display: flex; align-items: center; justify-content: center; min-height: 100vh; margin: 0; }
        form { background: white; padding: 2.5rem; border-radius: 12px; box-shadow: 0 4px 12px rgba(0,0,0,0.08); width: 320px; }
        h1 { margin-top: 0; font-size: 1.4rem; color: #111827; }
        label { display: block; margin-top: 1rem; color: #374151; font-size: 0.9rem; }
        input { width: 100%; padding: 0.6rem; margin-top: 0.3rem; border: 1px solid #d1d5db; border-radius: 6px; box-sizing: border-box; }
        button { width: 100%; margin-top: 1.5rem; padding: 0.7rem; background: #166534; color: white; border: none; border-radius: 6px; font-weight: 600; cursor: pointer; }
        .error { background: #fef2f2; border: 1px solid #fecaca; color: #991b1b; padding: 0.7rem; border-radius: 6px; margin-top: 1rem; font-size: 0.9rem; }
    </style>
</head>
<body>
    <form method="POST" action="/admin/login">
        <h1>Admin Login</h1>
        {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
        <input type="hidden" name="csrf_token" value="{{.CSRFToken}}">
        <label>Email<input type="email" name="email" required autofocus></label>
        <label>Password<input type="password" name="password" required></label>
        <button type="submit">Sign in</button>
    </form>
</body>
</html>`))

// LoginPage handles GET /admin/login
func (h *AdminAuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetAdminFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	h.renderLogin(w, r, http.StatusOK, "")
}

// Login handles POST /admin/login
func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	admin, err := h.authService.Login(email, password)
	if err != nil {
		if err == models.ErrUnauthorized {
			h.renderLogin(w, r, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("Admin login failed: %v", err)
		h.renderLogin(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		log.Printf("Failed to get session on login: %v", err)
		h.renderLogin(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	session.Values["admin_id"] = admin.ID
	session.Values["csrf_token"] = middleware.GenerateCSRFToken()
	if err := session.Save(r, w); err != nil {
		log.Printf("Failed to save session on login: %v", err)
		h.renderLogin(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout handles POST /admin/logout
func (h *AdminAuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err == nil {
		session.Values["admin_id"] = nil
		session.Values["csrf_token"] = nil
		session.Options.MaxAge = -1
		session.Save(r, w)
	}

	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

func (h *AdminAuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	data := loginPageData{
		Error:     errMsg,
		CSRFToken: middleware.GetCSRFToken(r, w, h.store),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := loginTemplate.Execute(w, data); err != nil {
		log.Printf("Failed to render login page: %v", err)
	}
}
