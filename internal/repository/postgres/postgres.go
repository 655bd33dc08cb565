package postgres

import (
	"context"
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CarRepository
	repository.BranchRepository
	repository.CompanyRepository
	repository.UserRepository
	repository.ReservationRepository
	repository.RentRepository
	repository.ReturnalRepository
	repository.RevenueRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		CarRepository:         NewCarRepository(db),
		BranchRepository:      NewBranchRepository(db),
		CompanyRepository:     NewCompanyRepository(db),
		UserRepository:        NewUserRepository(db),
		ReservationRepository: NewReservationRepository(db),
		RentRepository:        NewRentRepository(db),
		ReturnalRepository:    NewReturnalRepository(db),
		RevenueRepository:     NewRevenueRepository(db),
	}
}

// querier is satisfied by both *sql.DB and *sql.Tx so repositories work
// inside and outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// q returns the transaction carried by the context, or the plain
// connection pool when there is none.
func q(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

// WithinSerializableTx runs fn inside a SERIALIZABLE transaction. The
// reservation admission path relies on this so the overlap check and the
// insert are atomic with respect to concurrent attempts on the same car.
func (s *Store) WithinSerializableTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
