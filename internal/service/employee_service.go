package service

import (
	"context"

	"hr-dashboard-api/internal/model"
)

type EmployeeStore interface {
	FindByID(ctx context.Context, id string) (model.Employee, error)
	List(ctx context.Context, query model.EmployeeQuery) ([]model.Employee, int, error)
}

type EmployeeService struct {
	store EmployeeStore
}

func NewEmployeeService(store EmployeeStore) *EmployeeService {
	return &EmployeeService{store: store}
}

func (s *EmployeeService) Get(ctx context.Context, id string) (model.Employee, error) {
	return s.store.FindByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context, query model.EmployeeQuery) ([]model.Employee, model.Meta, error) {
	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Limit > 200 {
		query.Limit = 200
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	employees, total, err := s.store.List(ctx, query)
	if err != nil {
		return nil, model.Meta{}, err
	}

	page := query.Offset/query.Limit + 1
	totalPages := 0
	if total > 0 {
		totalPages = (total + query.Limit - 1) / query.Limit
	}

	return employees, model.Meta{Page: page, Limit: query.Limit, Total: total, TotalPages: totalPages}, nil
}
