package rest

import (
	"context"
	"net/http"
	"time"
)

// pinger defines the minimal interface for dependency health checks.
type pinger interface {
	Ping(ctx context.Context) error
}

// Dependency is an optional collaborator reported by /health.
// Its failure degrades the service without taking it out of rotation.
type Dependency struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db       pinger
	optional []Dependency
	version  string
}

// NewHealthHandler creates a HealthHandler. The database is required; the
// optional dependencies (event stream, ingestion bus) only affect /health.
func NewHealthHandler(db pinger, version string, optional ...Dependency) *HealthHandler {
	return &HealthHandler{db: db, optional: optional, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: every dependency with latency, plus version.
// Status is "down" (503) when the database fails and "degraded" (200) when
// only an optional dependency does.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus, len(h.optional)+1)
	overall := "ok"

	if !check(ctx, h.db, "database", components) {
		overall = "down"
	}
	for _, dep := range h.optional {
		if !check(ctx, dep.Pinger, dep.Name, components) && overall == "ok" {
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func check(ctx context.Context, p pinger, name string, into map[string]CompStatus) bool {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		into[name] = CompStatus{Status: "down"}
		return false
	}
	into[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	return true
}
