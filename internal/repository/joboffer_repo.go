package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"hr-dashboard-api/internal/model"
)

type JobOfferRepository struct {
	pool *pgxpool.Pool
}

func NewJobOfferRepository(pool *pgxpool.Pool) *JobOfferRepository {
	return &JobOfferRepository{pool: pool}
}

func (r *JobOfferRepository) List(ctx context.Context, query model.JobOfferQuery) ([]model.JobOffer, int, error) {
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
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM job_offers %s`, whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count job offers: %w (%v)", model.ErrStoreUnavailable, err)
	}

	dataQuery := fmt.Sprintf(
		`SELECT id, title, department, location, contract_type, status, opened_at, applications
		 FROM job_offers %s
		 ORDER BY opened_at DESC
		 LIMIT $%d OFFSET $%d`, whereClause, argIdx, argIdx+1)
	args = append(args, query.Limit, query.Offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list job offers: %w (%v)", model.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	offers := make([]model.JobOffer, 0, query.Limit)
	for rows.Next() {
		var o model.JobOffer
		if err := rows.Scan(&o.ID, &o.Title, &o.Department, &o.Location,
			&o.ContractType, &o.Status, &o.OpenedAt, &o.Applications); err != nil {
			return nil, 0, fmt.Errorf("scan job offer: %w (%v)", model.ErrStoreUnavailable, err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate job offers: %w (%v)", model.ErrStoreUnavailable, err)
	}

	return offers, total, nil
}
