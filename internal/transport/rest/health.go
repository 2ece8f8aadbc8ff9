package rest

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 3 * time.Second

// HealthCheck is one component probed by /ready and /health. A failing
// critical check takes the service down; a failing non-critical one only
// marks it degraded.
type HealthCheck struct {
	Name     string
	Critical bool
	Probe    func(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []HealthCheck
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
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
	Error   string `json:"error,omitempty"`
}

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 unless a critical check fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	overall, _ := h.run(r.Context())

	code := http.StatusOK
	if overall == statusDown {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:    overall,
		Timestamp: time.Now(),
	})
}

// Health is the full health check: every component with latency, plus build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall, components := h.run(r.Context())

	code := http.StatusOK
	if overall == statusDown {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) run(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	overall := statusOK
	components := make(map[string]CompStatus, len(h.checks))

	for _, c := range h.checks {
		start := time.Now()
		err := c.Probe(ctx)
		latency := time.Since(start)

		if err == nil {
			components[c.Name] = CompStatus{Status: statusOK, Latency: latency.String()}
			continue
		}

		components[c.Name] = CompStatus{Status: statusDown, Error: err.Error()}
		switch {
		case c.Critical:
			overall = statusDown
		case overall == statusOK:
			overall = statusDegraded
		}
	}
	return overall, components
}
