package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hr-dashboard-api/internal/model"
	"hr-dashboard-api/internal/service"
	"hr-dashboard-api/pkg/apierror"
)

type EmployeeHandler struct {
	employees *service.EmployeeService
}

func NewEmployeeHandler(employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	query := model.EmployeeQuery{
		Department: r.URL.Query().Get("department"),
		Status:     r.URL.Query().Get("status"),
	}

	var err error
	query.Limit, query.Offset, err = parsePagination(r)
	if err != nil {
		writeError(w, err)
		return
	}

	employees, meta, err := h.employees.List(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, employees, &meta)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, apierror.BadRequest("Employee ID is required", ""))
		return
	}

	employee, err := h.employees.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, employee, nil)
}

// parsePagination reads limit/offset query params, leaving zero values for
// the service layer to default.
func parsePagination(r *http.Request) (limit int, offset int, err error) {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return 0, 0, apierror.BadRequest("Invalid limit parameter", "")
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, apierror.BadRequest("Invalid offset parameter", "")
		}
	}
	return limit, offset, nil
}
