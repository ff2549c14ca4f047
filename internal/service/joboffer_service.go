package service

import (
	"context"

	"hr-dashboard-api/internal/model"
)

type JobOfferStore interface {
	List(ctx context.Context, query model.JobOfferQuery) ([]model.JobOffer, int, error)
}

type JobOfferService struct {
	store JobOfferStore
}

func NewJobOfferService(store JobOfferStore) *JobOfferService {
	return &JobOfferService{store: store}
}

func (s *JobOfferService) List(ctx context.Context, query model.JobOfferQuery) ([]model.JobOffer, model.Meta, error) {
	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Limit > 200 {
		query.Limit = 200
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	offers, total, err := s.store.List(ctx, query)
	if err != nil {
		return nil, model.Meta{}, err
	}

	page := query.Offset/query.Limit + 1
	totalPages := 0
	if total > 0 {
		totalPages = (total + query.Limit - 1) / query.Limit
	}

	return offers, model.Meta{Page: page, Limit: query.Limit, Total: total, TotalPages: totalPages}, nil
}
