package handlers

import (
	"net/http"

	"github.com/diewo77/go-relief/httpx"
	"github.com/diewo77/go-relief/internal/middleware"
	"github.com/diewo77/go-relief/internal/store"
)

type HealthHandler struct {
	store *store.Provider
}

func NewHealthHandler(p *store.Provider) *HealthHandler {
	return &HealthHandler{store: p}
}

//revive:disable:unused-parameter
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

//revive:enable:unused-parameter

// Healthz checks the database answers a trivial query.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		middleware.Log(r.Context()).WithError(err).Warn("health check degraded")
		httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
