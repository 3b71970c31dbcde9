package rest

import (
	"net/http"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/internal/transport/middleware"
)

// Routes groups the handlers and route-level guards mounted by NewRouter.
type Routes struct {
	Alerts  *AlertHandler
	Stores  *StoreHandler
	Cameras *CameraHandler
	Auth    *AuthHandler
	Health  *HealthHandler

	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string

	// LoginLimit throttles the credential endpoints. Optional.
	LoginLimit middleware.Middleware
}

// NewRouter registers every endpoint on a ServeMux. Reads are anonymous;
// mutations need a token, and store management needs the OWNER role.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	authed := func(h http.HandlerFunc) http.Handler { return middleware.RequireAuth(h) }
	owner := func(h http.HandlerFunc) http.Handler { return middleware.RequireRole(domain.UserRoleOwner)(h) }
	limited := func(h http.HandlerFunc) http.Handler { return middleware.Chain(rt.LoginLimit)(h) }

	// Ops
	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil {
		mux.Handle("GET "+rt.MetricsPath, rt.Metrics)
	}

	// Auth
	mux.Handle("POST /api/auth/login", limited(rt.Auth.Login))
	mux.Handle("POST /api/auth/register", limited(rt.Auth.Register))
	mux.Handle("GET /api/auth/me", authed(rt.Auth.Me))

	// Alerts
	mux.HandleFunc("GET /api/alerts", rt.Alerts.List)
	mux.HandleFunc("GET /api/alerts/{id}", rt.Alerts.Get)
	mux.HandleFunc("GET /api/alerts/{id}/history", rt.Alerts.History)
	mux.Handle("POST /api/alerts", authed(rt.Alerts.Create))
	mux.Handle("PATCH /api/alerts", authed(rt.Alerts.Transition))
	mux.Handle("POST /api/alerts/{id}/reopen", authed(rt.Alerts.Reopen))

	// Cameras
	mux.HandleFunc("GET /api/cameras", rt.Cameras.List)
	mux.HandleFunc("GET /api/cameras/{id}", rt.Cameras.Get)
	mux.Handle("POST /api/cameras", authed(rt.Cameras.Create))
	mux.Handle("PUT /api/cameras/{id}/active", authed(rt.Cameras.SetActive))

	// Stores
	mux.HandleFunc("GET /api/stores", rt.Stores.List)
	mux.HandleFunc("GET /api/stores/{id}", rt.Stores.Get)
	mux.Handle("POST /api/stores", owner(rt.Stores.Create))
	mux.Handle("DELETE /api/stores/{id}", owner(rt.Stores.Delete))

	return mux
}
