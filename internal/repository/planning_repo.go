package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"hr-dashboard-api/internal/model"
)

type PlanningRepository struct {
	pool *pgxpool.Pool
}

func NewPlanningRepository(pool *pgxpool.Pool) *PlanningRepository {
	return &PlanningRepository{pool: pool}
}

// ListShifts returns planned shifts within [From, To], joined with the
// employee's display name.
func (r *PlanningRepository) ListShifts(ctx context.Context, query model.PlanningQuery) ([]model.Shift, error) {
	where := []string{"s.shift_date >= $1", "s.shift_date <= $2"}
	args := []any{query.From, query.To}
	argIdx := 3

	if employeeID := strings.TrimSpace(query.EmployeeID); employeeID != "" {
		where = append(where, fmt.Sprintf("s.employee_id = $%d", argIdx))
		args = append(args, employeeID)
	}

	dataQuery := fmt.Sprintf(
		`SELECT s.id, s.employee_id, e.first_name || ' ' || e.last_name,
		        s.shift_date, s.start_time, s.end_time, s.location
		 FROM planning_shifts s
		 JOIN employees e ON e.id = s.employee_id
		 WHERE %s
		 ORDER BY s.shift_date, s.start_time`, strings.Join(where, " AND "))

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w (%v)", model.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	shifts := make([]model.Shift, 0)
	for rows.Next() {
		var s model.Shift
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Employee,
			&s.ShiftDate, &s.StartTime, &s.EndTime, &s.Location); err != nil {
			return nil, fmt.Errorf("scan shift: %w (%v)", model.ErrStoreUnavailable, err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shifts: %w (%v)", model.ErrStoreUnavailable, err)
	}

	return shifts, nil
}
