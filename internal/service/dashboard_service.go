package service

import (
	"context"

	"hr-dashboard-api/internal/model"
)

type KPIStore interface {
	KPIs(ctx context.Context) (model.DashboardKPIs, error)
}

type DashboardService struct {
	store KPIStore
}

func NewDashboardService(store KPIStore) *DashboardService {
	return &DashboardService{store: store}
}

func (s *DashboardService) KPIs(ctx context.Context) (model.DashboardKPIs, error) {
	return s.store.KPIs(ctx)
}
