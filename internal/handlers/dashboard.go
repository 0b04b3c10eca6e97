package handlers

import (
	"net/http"

	"github.com/diewo77/go-relief/auth"
)

// Dashboard renders the landing page for the signed-in role. It must sit behind RequireAuth.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	render(w, r, "dashboard.html", map[string]any{"IsLoggedIn": true, "Role": id.Role})
}
