package handler

import (
	"net/http"
	"time"

	"hr-dashboard-api/internal/model"
	"hr-dashboard-api/internal/service"
	"hr-dashboard-api/pkg/apierror"
)

type PlanningHandler struct {
	planning *service.PlanningService
}

func NewPlanningHandler(planning *service.PlanningService) *PlanningHandler {
	return &PlanningHandler{planning: planning}
}

// List serves the team calendar. from/to are ISO dates; omitting both
// yields the current week.
func (h *PlanningHandler) List(w http.ResponseWriter, r *http.Request) {
	query := model.PlanningQuery{
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	var err error
	query.From, err = parseDateParam(r, "from")
	if err != nil {
		writeError(w, err)
		return
	}
	query.To, err = parseDateParam(r, "to")
	if err != nil {
		writeError(w, err)
		return
	}

	shifts, err := h.planning.Shifts(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, shifts, nil)
}

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apierror.BadRequest("Invalid '"+name+"' date, expected YYYY-MM-DD", "")
	}
	return t, nil
}
