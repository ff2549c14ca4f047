package service

import (
	"context"
	"net/http"
	"time"

	"hr-dashboard-api/internal/model"
	"hr-dashboard-api/pkg/apierror"
)

type PlanningStore interface {
	ListShifts(ctx context.Context, query model.PlanningQuery) ([]model.Shift, error)
}

type PlanningService struct {
	store PlanningStore
}

func NewPlanningService(store PlanningStore) *PlanningService {
	return &PlanningService{store: store}
}

// maxPlanningWindow caps the calendar range a single request can pull.
const maxPlanningWindow = 92 * 24 * time.Hour

// Shifts returns the planning entries for the requested window. An empty
// window defaults to the current week, Monday through Sunday.
func (s *PlanningService) Shifts(ctx context.Context, query model.PlanningQuery) ([]model.Shift, error) {
	if query.From.IsZero() || query.To.IsZero() {
		query.From, query.To = currentWeek(time.Now().UTC())
	}

	if query.To.Before(query.From) {
		return nil, apierror.New("BAD_REQUEST", "'to' must not precede 'from'", "", http.StatusBadRequest)
	}
	if query.To.Sub(query.From) > maxPlanningWindow {
		return nil, apierror.New("BAD_REQUEST", "date range too large", "", http.StatusBadRequest)
	}

	return s.store.ListShifts(ctx, query)
}

func currentWeek(now time.Time) (time.Time, time.Time) {
	day := now.Truncate(24 * time.Hour)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	monday := day.AddDate(0, 0, 1-weekday)
	return monday, monday.AddDate(0, 0, 6)
}
