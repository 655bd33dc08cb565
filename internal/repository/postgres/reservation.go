package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, client_id, car_id, start_date, end_date, price_cents, start_branch_id, end_branch_id`

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (client_id, car_id, start_date, end_date, price_cents, start_branch_id, end_branch_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return q(ctx, r.db).QueryRowContext(ctx, query,
		res.ClientID, res.CarID, res.StartDate, res.EndDate, res.PriceCents,
		res.StartBranchID, res.EndBranchID).Scan(&res.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	err := q(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.ClientID, &res.CarID, &res.StartDate, &res.EndDate,
		&res.PriceCents, &res.StartBranchID, &res.EndBranchID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := q(ctx, r.db).QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

// ListByCar returns every reservation held against the car, ordered by
// start date. The admission path reads through this inside its
// serializable transaction.
func (r *reservationRepository) ListByCar(ctx context.Context, carID int64) ([]domain.Reservation, error) {
	rows, err := q(ctx, r.db).QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE car_id = $1 ORDER BY start_date`, carID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservations SET client_id=$1, car_id=$2, start_date=$3, end_date=$4,
	          price_cents=$5, start_branch_id=$6, end_branch_id=$7 WHERE id=$8`
	result, err := q(ctx, r.db).ExecContext(ctx, query,
		res.ClientID, res.CarID, res.StartDate, res.EndDate, res.PriceCents,
		res.StartBranchID, res.EndBranchID, res.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) error {
	res, err := q(ctx, r.db).ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *reservationRepository) DeleteByClient(ctx context.Context, clientID int64) error {
	_, err := q(ctx, r.db).ExecContext(ctx, `DELETE FROM reservations WHERE client_id = $1`, clientID)
	return err
}

func scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.ClientID, &res.CarID, &res.StartDate, &res.EndDate,
			&res.PriceCents, &res.StartBranchID, &res.EndBranchID); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
