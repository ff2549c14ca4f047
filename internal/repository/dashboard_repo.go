package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"hr-dashboard-api/internal/model"
)

type DashboardRepository struct {
	pool *pgxpool.Pool
}

func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// KPIs computes the aggregates behind the dashboard cards in one round trip
// per figure. The queries are cheap enough that no caching layer is needed
// at dashboard refresh rates.
func (r *DashboardRepository) KPIs(ctx context.Context) (model.DashboardKPIs, error) {
	kpis := model.DashboardKPIs{HeadcountByDepartment: map[string]int{}}

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE status = 'active'`).Scan(&kpis.Headcount)
	if err != nil {
		return model.DashboardKPIs{}, fmt.Errorf("headcount: %w (%v)", model.ErrStoreUnavailable, err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_offers WHERE status = 'open'`).Scan(&kpis.ActiveJobOffers)
	if err != nil {
		return model.DashboardKPIs{}, fmt.Errorf("active job offers: %w (%v)", model.ErrStoreUnavailable, err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees
		 WHERE hire_date >= date_trunc('month', now())::date`).Scan(&kpis.NewHiresThisMonth)
	if err != nil {
		return model.DashboardKPIs{}, fmt.Errorf("new hires: %w (%v)", model.ErrStoreUnavailable, err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM planning_shifts
		 WHERE shift_date >= date_trunc('week', now())::date
		   AND shift_date < date_trunc('week', now())::date + 7`).Scan(&kpis.ShiftsPlannedThisWeek)
	if err != nil {
		return model.DashboardKPIs{}, fmt.Errorf("planned shifts: %w (%v)", model.ErrStoreUnavailable, err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT department, COUNT(*) FROM employees
		 WHERE status = 'active'
		 GROUP BY department ORDER BY department`)
	if err != nil {
		return model.DashboardKPIs{}, fmt.Errorf("headcount by department: %w (%v)", model.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var department string
		var count int
		if err := rows.Scan(&department, &count); err != nil {
			return model.DashboardKPIs{}, fmt.Errorf("scan department headcount: %w (%v)", model.ErrStoreUnavailable, err)
		}
		kpis.HeadcountByDepartment[department] = count
	}
	if err := rows.Err(); err != nil {
		return model.DashboardKPIs{}, fmt.Errorf("iterate department headcount: %w (%v)", model.ErrStoreUnavailable, err)
	}

	return kpis, nil
}
