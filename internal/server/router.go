// Package server wires the relief desk routes and middleware chain.
package server

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/diewo77/go-relief/auth"
	"github.com/diewo77/go-relief/httpx"
	"github.com/diewo77/go-relief/internal/handlers"
	"github.com/diewo77/go-relief/internal/middleware"
	"github.com/diewo77/go-relief/internal/store"
	"github.com/sirupsen/logrus"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(p *store.Provider, sessions *auth.Sessions, log *logrus.Logger) http.Handler {
	mux := http.NewServeMux()

	health := handlers.NewHealthHandler(p)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /healthz", health.Healthz)

	ah := handlers.NewAuthHandler(p, sessions)
	mux.HandleFunc("GET /{$}", ah.Home)
	mux.HandleFunc("GET /register", ah.Register)
	mux.HandleFunc("POST /register", ah.Register)
	mux.HandleFunc("GET /login", ah.Login)
	mux.HandleFunc("POST /login", ah.Login)
	mux.HandleFunc("GET /logout", ah.Logout)
	mux.HandleFunc("POST /logout", ah.Logout)

	mux.Handle("GET /dashboard", sessions.RequireAuth(http.HandlerFunc(handlers.Dashboard)))

	lh := handlers.NewListingHandler(p)
	mux.HandleFunc("GET /reliefcenters", lh.ReliefCenters)
	mux.HandleFunc("GET /volunteers", lh.Volunteers)
	mux.HandleFunc("GET /victims", lh.Victims)
	mux.HandleFunc("GET /supplies", lh.Supplies)
	mux.HandleFunc("GET /alerts", lh.Alerts)

	dh := handlers.NewDonationHandler(p)
	mux.HandleFunc("GET /donations", dh.Handle)
	mux.HandleFunc("POST /donations", dh.Handle)

	mux.HandleFunc("GET /check_all", handlers.NewExportHandler(p).CheckAll)

	return withRecover(log, middleware.RequestLogger(log)(middleware.Prefs(sessions.Middleware(mux))))
}

func withRecover(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithFields(logrus.Fields{
					"panic": fmt.Sprint(rec),
					"path":  r.URL.Path,
					"stack": string(debug.Stack()),
				}).Error("recovered from panic")
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
