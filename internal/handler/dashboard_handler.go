package handler

import (
	"net/http"

	"hr-dashboard-api/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.dashboard.KPIs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, kpis, nil)
}
