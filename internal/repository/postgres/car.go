package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO cars (make, model, body_style, year, colour, mileage, status, price_per_day_cents, branch_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return q(ctx, r.db).QueryRowContext(ctx, query,
		car.Make, car.Model, car.BodyStyle, car.Year, car.Colour, car.Mileage,
		car.Status, car.PricePerDayCents, car.BranchID).Scan(&car.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	car := &domain.Car{}
	query := `SELECT id, make, model, body_style, year, colour, mileage, status, price_per_day_cents, branch_id
	          FROM cars WHERE id = $1`
	err := q(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&car.ID, &car.Make, &car.Model, &car.BodyStyle, &car.Year, &car.Colour,
		&car.Mileage, &car.Status, &car.PricePerDayCents, &car.BranchID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return car, nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT id, make, model, body_style, year, colour, mileage, status, price_per_day_cents, branch_id
	          FROM cars ORDER BY id`
	rows, err := q(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var car domain.Car
		if err := rows.Scan(&car.ID, &car.Make, &car.Model, &car.BodyStyle, &car.Year,
			&car.Colour, &car.Mileage, &car.Status, &car.PricePerDayCents, &car.BranchID); err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `UPDATE cars SET make=$1, model=$2, body_style=$3, year=$4, colour=$5, mileage=$6,
	          status=$7, price_per_day_cents=$8, branch_id=$9 WHERE id=$10`
	res, err := q(ctx, r.db).ExecContext(ctx, query,
		car.Make, car.Model, car.BodyStyle, car.Year, car.Colour, car.Mileage,
		car.Status, car.PricePerDayCents, car.BranchID, car.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *carRepository) Delete(ctx context.Context, id int64) error {
	res, err := q(ctx, r.db).ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// requireRow converts a zero-row mutation into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
