package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/lister-client/internal/platform/health"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes of the fake server.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// CheckResponse is one entry of the readiness report.
type CheckResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready. Checks are sorted by
// name.
type ReadinessResponse struct {
	Status string          `json:"status"`
	Checks []CheckResponse `json:"checks"`
}

// Liveness handles GET /health/live and always answers 200.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready: 200 when every registered check
// passes, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	statuses, healthy := health.Report(r.Context(), h.registry)

	resp := ReadinessResponse{Status: statusReady, Checks: make([]CheckResponse, len(statuses))}
	for i, s := range statuses {
		resp.Checks[i] = CheckResponse{Name: s.Name, Status: statusOK}
		if s.Err != nil {
			resp.Checks[i].Status = s.Err.Error()
		}
	}

	code := http.StatusOK
	if !healthy {
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
