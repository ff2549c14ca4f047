package handler

import (
	"net/http"

	"hr-dashboard-api/internal/model"
	"hr-dashboard-api/internal/service"
)

type JobOfferHandler struct {
	offers *service.JobOfferService
}

func NewJobOfferHandler(offers *service.JobOfferService) *JobOfferHandler {
	return &JobOfferHandler{offers: offers}
}

func (h *JobOfferHandler) List(w http.ResponseWriter, r *http.Request) {
	query := model.JobOfferQuery{
		Department: r.URL.Query().Get("department"),
		Status:     r.URL.Query().Get("status"),
	}

	var err error
	query.Limit, query.Offset, err = parsePagination(r)
	if err != nil {
		writeError(w, err)
		return
	}

	offers, meta, err := h.offers.List(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, offers, &meta)
}
