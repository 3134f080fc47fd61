package handlers

import (
	"net/http"

	"github.com/xavierca1/barber-checkout/internal/entity"
)

type PlanLister interface {
	List() []entity.Plan
}

type PlanHandler struct {
	Plans PlanLister
}

func NewPlanHandler(plans PlanLister) *PlanHandler {
	return &PlanHandler{Plans: plans}
}

// Os IDs de preço do Stripe não saem daqui.
type planResponse struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans := h.Plans.List()
	out := make([]planResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, planResponse{Key: p.Key, Name: p.DisplayName, Configured: p.Configured()})
	}
	writeJSON(w, http.StatusOK, out)
}
