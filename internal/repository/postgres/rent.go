package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type rentRepository struct {
	db *sql.DB
}

func NewRentRepository(db *sql.DB) repository.RentRepository {
	return &rentRepository{db: db}
}

const rentColumns = `id, reservation_id, employee_id, rent_date, comments`

func (r *rentRepository) Create(ctx context.Context, rent *domain.Rent) error {
	query := `INSERT INTO rents (reservation_id, employee_id, rent_date, comments)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return q(ctx, r.db).QueryRowContext(ctx, query,
		rent.ReservationID, rent.EmployeeID, rent.RentDate, rent.Comments).Scan(&rent.ID)
}

func (r *rentRepository) GetByID(ctx context.Context, id int64) (*domain.Rent, error) {
	row := q(ctx, r.db).QueryRowContext(ctx, `SELECT `+rentColumns+` FROM rents WHERE id = $1`, id)
	return scanRent(row)
}

func (r *rentRepository) GetByReservation(ctx context.Context, reservationID int64) (*domain.Rent, error) {
	row := q(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+rentColumns+` FROM rents WHERE reservation_id = $1`, reservationID)
	return scanRent(row)
}

func (r *rentRepository) List(ctx context.Context) ([]domain.Rent, error) {
	rows, err := q(ctx, r.db).QueryContext(ctx, `SELECT `+rentColumns+` FROM rents ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rents []domain.Rent
	for rows.Next() {
		var rent domain.Rent
		if err := rows.Scan(&rent.ID, &rent.ReservationID, &rent.EmployeeID, &rent.RentDate, &rent.Comments); err != nil {
			return nil, err
		}
		rents = append(rents, rent)
	}
	return rents, rows.Err()
}

func (r *rentRepository) Update(ctx context.Context, rent *domain.Rent) error {
	query := `UPDATE rents SET reservation_id=$1, employee_id=$2, rent_date=$3, comments=$4 WHERE id=$5`
	res, err := q(ctx, r.db).ExecContext(ctx, query,
		rent.ReservationID, rent.EmployeeID, rent.RentDate, rent.Comments, rent.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *rentRepository) Delete(ctx context.Context, id int64) error {
	res, err := q(ctx, r.db).ExecContext(ctx, `DELETE FROM rents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *rentRepository) DeleteByClient(ctx context.Context, clientID int64) error {
	query := `DELETE FROM rents WHERE reservation_id IN (SELECT id FROM reservations WHERE client_id = $1)`
	_, err := q(ctx, r.db).ExecContext(ctx, query, clientID)
	return err
}

func (r *rentRepository) ClearEmployee(ctx context.Context, employeeID int64) error {
	_, err := q(ctx, r.db).ExecContext(ctx, `UPDATE rents SET employee_id = NULL WHERE employee_id = $1`, employeeID)
	return err
}

func scanRent(row *sql.Row) (*domain.Rent, error) {
	rent := &domain.Rent{}
	err := row.Scan(&rent.ID, &rent.ReservationID, &rent.EmployeeID, &rent.RentDate, &rent.Comments)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rent, nil
}
