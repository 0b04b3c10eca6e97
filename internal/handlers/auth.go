package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/diewo77/go-relief/auth"
	"github.com/diewo77/go-relief/internal/middleware"
	"github.com/diewo77/go-relief/internal/models"
	"github.com/diewo77/go-relief/internal/store"
	"github.com/diewo77/go-relief/view"
)

type AuthHandler struct {
	store    *store.Provider
	sessions *auth.Sessions
}

func NewAuthHandler(p *store.Provider, s *auth.Sessions) *AuthHandler {
	return &AuthHandler{store: p, sessions: s}
}

// Home is the entry point and shows the login form.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	render(w, r, "login.html", nil)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		render(w, r, "register.html", map[string]any{"Username": "", "RoleInput": ""})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	role := strings.TrimSpace(r.FormValue("role"))
	form := map[string]any{"Username": username, "RoleInput": role}

	if username == "" || strings.TrimSpace(password) == "" {
		render(w, r, "register.html", form, notice(r, view.NoticeDanger, "credentials_missing"))
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		middleware.Log(r.Context()).WithError(err).Error("hash password")
		render(w, r, "register.html", form, notice(r, view.NoticeDanger, "register_failed"))
		return
	}

	user := models.User{Username: username, Password: hash, Role: role}
	err = h.store.Acquire(r.Context(), func(c *store.Conn) error { return c.CreateUser(&user) })
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		render(w, r, "register.html", form, notice(r, view.NoticeDanger, "username_taken"))
		return
	case err != nil:
		middleware.Log(r.Context()).WithError(err).Error("register user")
		render(w, r, "register.html", form, notice(r, view.NoticeDanger, "register_failed"))
		return
	}

	middleware.Log(r.Context()).WithField("user_id", user.ID).Info("user registered")
	middleware.Flash(w, r, view.NoticeSuccess, "register_success")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		render(w, r, "login.html", nil)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	var user *models.User
	err := h.store.Acquire(r.Context(), func(c *store.Conn) error {
		u, err := c.FindUserByUsername(username)
		user = u
		return err
	})
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		auth.BurnPasswordCheck(password)
		render(w, r, "login.html", nil, notice(r, view.NoticeDanger, "invalid_credentials"))
		return
	case err != nil:
		middleware.Log(r.Context()).WithError(err).Error("login lookup")
		render(w, r, "login.html", nil, notice(r, view.NoticeDanger, "login_failed"))
		return
	case !auth.CheckPassword(user.Password, password):
		render(w, r, "login.html", nil, notice(r, view.NoticeDanger, "invalid_credentials"))
		return
	}

	if err := h.sessions.CreateSession(w, auth.Identity{UserID: user.ID, Role: user.Role}); err != nil {
		middleware.Log(r.Context()).WithError(err).Error("create session")
		render(w, r, "login.html", nil, notice(r, view.NoticeDanger, "login_failed"))
		return
	}
	middleware.Flash(w, r, view.NoticeSuccess, "login_success")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout clears the session whether or not one exists.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearSession(w)
	middleware.Flash(w, r, view.NoticeSuccess, "logout_success")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
