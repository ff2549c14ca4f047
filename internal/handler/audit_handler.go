package handler

import (
	"net/http"
	"strconv"

	"hr-dashboard-api/internal/model"
	"hr-dashboard-api/internal/service"
	"hr-dashboard-api/pkg/apierror"
)

type AuditHandler struct {
	audit *service.AuditService
}

func NewAuditHandler(audit *service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := model.AuditQuery{
		Action:   q.Get("action"),
		Username: q.Get("username"),
		Status:   q.Get("status"),
		From:     q.Get("from"),
		To:       q.Get("to"),
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			writeError(w, apierror.BadRequest("Invalid page parameter", ""))
			return
		}
		query.Page = page
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			writeError(w, apierror.BadRequest("Invalid limit parameter", ""))
			return
		}
		query.Limit = limit
	}

	entries, meta, err := h.audit.Query(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, entries, &meta)
}
