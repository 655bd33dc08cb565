package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (name, domain, address, owner, logo) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return q(ctx, r.db).QueryRowContext(ctx, query,
		company.Name, company.Domain, company.Address, company.Owner, company.Logo).Scan(&company.ID)
}

func (r *companyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	company := &domain.Company{}
	query := `SELECT id, name, domain, address, owner, logo FROM companies WHERE id = $1`
	err := q(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&company.ID, &company.Name, &company.Domain, &company.Address, &company.Owner, &company.Logo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	rows, err := q(ctx, r.db).QueryContext(ctx,
		`SELECT id, name, domain, address, owner, logo FROM companies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Domain, &c.Address, &c.Owner, &c.Logo); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	res, err := q(ctx, r.db).ExecContext(ctx,
		`UPDATE companies SET name=$1, domain=$2, address=$3, owner=$4, logo=$5 WHERE id=$6`,
		company.Name, company.Domain, company.Address, company.Owner, company.Logo, company.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *companyRepository) Delete(ctx context.Context, id int64) error {
	res, err := q(ctx, r.db).ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
