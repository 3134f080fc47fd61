package handlers

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	Version           string
	GatewayConfigured bool
	Plans             PlanLister
	StartTime         time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(version string, gatewayConfigured bool, plans PlanLister) *HealthHandler {
	return &HealthHandler{
		Version:           version,
		GatewayConfigured: gatewayConfigured,
		Plans:             plans,
		StartTime:         time.Now(),
	}
}

// Handle não chama o Stripe: só informa o que está configurado.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	status := "healthy"
	if h.GatewayConfigured {
		deps["stripe"] = "configured"
	} else {
		deps["stripe"] = "not configured"
		status = "degraded"
	}

	for _, p := range h.Plans.List() {
		key := "plan:" + p.Key
		if p.Configured() {
			deps[key] = "configured"
		} else {
			deps[key] = "not configured"
			status = "degraded"
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
