package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hr-dashboard-api/internal/model"
)

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (model.Employee, error) {
	var e model.Employee
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, department, position,
		        hire_date, status, manager_id, end_date
		 FROM employees WHERE id = $1`, id).
		Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Department, &e.Position,
			&e.HireDate, &e.Status, &e.ManagerID, &e.EndDate)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Employee{}, model.ErrEmployeeNotFound
	}
	if err != nil {
		return model.Employee{}, fmt.Errorf("find employee: %w (%v)", model.ErrStoreUnavailable, err)
	}
	return e, nil
}

func (r *EmployeeRepository) List(ctx context.Context, query model.EmployeeQuery) ([]model.Employee, int, error) {
	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Limit > 200 {
		query.Limit = 200
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	where := make([]string, 0, 2)
	args := make([]any, 0, 4)
	argIdx := 1

	if dept := strings.TrimSpace(query.Department); dept != "" {
		where = append(where, fmt.Sprintf("lower(department) = lower($%d)", argIdx))
		args = append(args, dept)
		argIdx++
	}
	if status := strings.TrimSpace(query.Status); status != "" {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, status)
		argIdx++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM employees %s`, whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w (%v)", model.ErrStoreUnavailable, err)
	}

	dataQuery := fmt.Sprintf(
		`SELECT id, first_name, last_name, email, department, position,
		        hire_date, status, manager_id, end_date
		 FROM employees %s
		 ORDER BY last_name, first_name
		 LIMIT $%d OFFSET $%d`, whereClause, argIdx, argIdx+1)
	args = append(args, query.Limit, query.Offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w (%v)", model.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	employees := make([]model.Employee, 0, query.Limit)
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Department,
			&e.Position, &e.HireDate, &e.Status, &e.ManagerID, &e.EndDate); err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w (%v)", model.ErrStoreUnavailable, err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate employees: %w (%v)", model.ErrStoreUnavailable, err)
	}

	return employees, total, nil
}
