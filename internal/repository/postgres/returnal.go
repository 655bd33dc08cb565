package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type returnalRepository struct {
	db *sql.DB
}

func NewReturnalRepository(db *sql.DB) repository.ReturnalRepository {
	return &returnalRepository{db: db}
}

const returnalColumns = `id, reservation_id, employee_id, return_date, upcharge_cents, comments`

func (r *returnalRepository) Create(ctx context.Context, ret *domain.Returnal) error {
	query := `INSERT INTO returnals (reservation_id, employee_id, return_date, upcharge_cents, comments)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return q(ctx, r.db).QueryRowContext(ctx, query,
		ret.ReservationID, ret.EmployeeID, ret.ReturnDate, ret.UpchargeCents, ret.Comments).Scan(&ret.ID)
}

func (r *returnalRepository) GetByID(ctx context.Context, id int64) (*domain.Returnal, error) {
	row := q(ctx, r.db).QueryRowContext(ctx, `SELECT `+returnalColumns+` FROM returnals WHERE id = $1`, id)
	return scanReturnal(row)
}

func (r *returnalRepository) GetByReservation(ctx context.Context, reservationID int64) (*domain.Returnal, error) {
	row := q(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+returnalColumns+` FROM returnals WHERE reservation_id = $1`, reservationID)
	return scanReturnal(row)
}

func (r *returnalRepository) List(ctx context.Context) ([]domain.Returnal, error) {
	rows, err := q(ctx, r.db).QueryContext(ctx, `SELECT `+returnalColumns+` FROM returnals ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var returnals []domain.Returnal
	for rows.Next() {
		var ret domain.Returnal
		if err := rows.Scan(&ret.ID, &ret.ReservationID, &ret.EmployeeID, &ret.ReturnDate,
			&ret.UpchargeCents, &ret.Comments); err != nil {
			return nil, err
		}
		returnals = append(returnals, ret)
	}
	return returnals, rows.Err()
}

func (r *returnalRepository) Update(ctx context.Context, ret *domain.Returnal) error {
	query := `UPDATE returnals SET reservation_id=$1, employee_id=$2, return_date=$3, upcharge_cents=$4, comments=$5 WHERE id=$6`
	res, err := q(ctx, r.db).ExecContext(ctx, query,
		ret.ReservationID, ret.EmployeeID, ret.ReturnDate, ret.UpchargeCents, ret.Comments, ret.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *returnalRepository) Delete(ctx context.Context, id int64) error {
	res, err := q(ctx, r.db).ExecContext(ctx, `DELETE FROM returnals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *returnalRepository) DeleteByClient(ctx context.Context, clientID int64) error {
	query := `DELETE FROM returnals WHERE reservation_id IN (SELECT id FROM reservations WHERE client_id = $1)`
	_, err := q(ctx, r.db).ExecContext(ctx, query, clientID)
	return err
}

func (r *returnalRepository) ClearEmployee(ctx context.Context, employeeID int64) error {
	_, err := q(ctx, r.db).ExecContext(ctx, `UPDATE returnals SET employee_id = NULL WHERE employee_id = $1`, employeeID)
	return err
}

func scanReturnal(row *sql.Row) (*domain.Returnal, error) {
	ret := &domain.Returnal{}
	err := row.Scan(&ret.ID, &ret.ReservationID, &ret.EmployeeID, &ret.ReturnDate, &ret.UpchargeCents, &ret.Comments)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}
