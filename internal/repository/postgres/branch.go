package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type branchRepository struct {
	db *sql.DB
}

func NewBranchRepository(db *sql.DB) repository.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(ctx context.Context, branch *domain.Branch) error {
	query := `INSERT INTO branches (name, address, company_id) VALUES ($1, $2, $3) RETURNING id`
	return q(ctx, r.db).QueryRowContext(ctx, query, branch.Name, branch.Address, branch.CompanyID).Scan(&branch.ID)
}

func (r *branchRepository) GetByID(ctx context.Context, id int64) (*domain.Branch, error) {
	branch := &domain.Branch{}
	query := `SELECT id, name, address, company_id FROM branches WHERE id = $1`
	err := q(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&branch.ID, &branch.Name, &branch.Address, &branch.CompanyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return branch, nil
}

func (r *branchRepository) List(ctx context.Context) ([]domain.Branch, error) {
	rows, err := q(ctx, r.db).QueryContext(ctx, `SELECT id, name, address, company_id FROM branches ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.CompanyID); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (r *branchRepository) Update(ctx context.Context, branch *domain.Branch) error {
	res, err := q(ctx, r.db).ExecContext(ctx,
		`UPDATE branches SET name=$1, address=$2, company_id=$3 WHERE id=$4`,
		branch.Name, branch.Address, branch.CompanyID, branch.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *branchRepository) Delete(ctx context.Context, id int64) error {
	res, err := q(ctx, r.db).ExecContext(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
