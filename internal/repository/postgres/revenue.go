package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type revenueRepository struct {
	db *sql.DB
}

func NewRevenueRepository(db *sql.DB) repository.RevenueRepository {
	return &revenueRepository{db: db}
}

func (r *revenueRepository) Create(ctx context.Context, rev *domain.Revenue) error {
	query := `INSERT INTO revenues (branch_id, total_cents) VALUES ($1, $2) RETURNING id`
	return q(ctx, r.db).QueryRowContext(ctx, query, rev.BranchID, rev.TotalCents).Scan(&rev.ID)
}

func (r *revenueRepository) GetByID(ctx context.Context, id int64) (*domain.Revenue, error) {
	row := q(ctx, r.db).QueryRowContext(ctx,
		`SELECT id, branch_id, total_cents FROM revenues WHERE id = $1`, id)
	return scanRevenue(row)
}

func (r *revenueRepository) GetByBranch(ctx context.Context, branchID int64) (*domain.Revenue, error) {
	row := q(ctx, r.db).QueryRowContext(ctx,
		`SELECT id, branch_id, total_cents FROM revenues WHERE branch_id = $1`, branchID)
	return scanRevenue(row)
}

func (r *revenueRepository) List(ctx context.Context) ([]domain.Revenue, error) {
	rows, err := q(ctx, r.db).QueryContext(ctx, `SELECT id, branch_id, total_cents FROM revenues ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revenues []domain.Revenue
	for rows.Next() {
		var rev domain.Revenue
		if err := rows.Scan(&rev.ID, &rev.BranchID, &rev.TotalCents); err != nil {
			return nil, err
		}
		revenues = append(revenues, rev)
	}
	return revenues, rows.Err()
}

// ApplyDelta adds the signed amount in one statement so concurrent deltas
// never lose updates.
func (r *revenueRepository) ApplyDelta(ctx context.Context, id int64, deltaCents int64) error {
	res, err := q(ctx, r.db).ExecContext(ctx,
		`UPDATE revenues SET total_cents = total_cents + $1 WHERE id = $2`, deltaCents, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *revenueRepository) Delete(ctx context.Context, id int64) error {
	res, err := q(ctx, r.db).ExecContext(ctx, `DELETE FROM revenues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanRevenue(row *sql.Row) (*domain.Revenue, error) {
	rev := &domain.Revenue{}
	err := row.Scan(&rev.ID, &rev.BranchID, &rev.TotalCents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rev, nil
}
