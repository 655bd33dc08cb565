package repository

import (
	"context"
	"errors"

	"carrental-backend/internal/domain"
)

// ErrNotFound is returned when a referenced record id does not resolve.
var ErrNotFound = errors.New("object not found in repository")

// TxManager runs a function inside a single database transaction. The
// callback's context must be passed to every repository call that should
// join the transaction.
type TxManager interface {
	WithinSerializableTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int64) error
}

type BranchRepository interface {
	Create(ctx context.Context, branch *domain.Branch) error
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
	List(ctx context.Context) ([]domain.Branch, error)
	Update(ctx context.Context, branch *domain.Branch) error
	Delete(ctx context.Context, id int64) error
}

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository stores clients and employees in one table discriminated
// by kind.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	ListByKind(ctx context.Context, kind domain.UserKind) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByCar(ctx context.Context, carID int64) ([]domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	Delete(ctx context.Context, id int64) error
	DeleteByClient(ctx context.Context, clientID int64) error
}

type RentRepository interface {
	Create(ctx context.Context, rent *domain.Rent) error
	GetByID(ctx context.Context, id int64) (*domain.Rent, error)
	// GetByReservation returns ErrNotFound when the reservation has no rent.
	GetByReservation(ctx context.Context, reservationID int64) (*domain.Rent, error)
	List(ctx context.Context) ([]domain.Rent, error)
	Update(ctx context.Context, rent *domain.Rent) error
	Delete(ctx context.Context, id int64) error
	DeleteByClient(ctx context.Context, clientID int64) error
	ClearEmployee(ctx context.Context, employeeID int64) error
}

type ReturnalRepository interface {
	Create(ctx context.Context, ret *domain.Returnal) error
	GetByID(ctx context.Context, id int64) (*domain.Returnal, error)
	GetByReservation(ctx context.Context, reservationID int64) (*domain.Returnal, error)
	List(ctx context.Context) ([]domain.Returnal, error)
	Update(ctx context.Context, ret *domain.Returnal) error
	Delete(ctx context.Context, id int64) error
	DeleteByClient(ctx context.Context, clientID int64) error
	ClearEmployee(ctx context.Context, employeeID int64) error
}

type RevenueRepository interface {
	Create(ctx context.Context, rev *domain.Revenue) error
	GetByID(ctx context.Context, id int64) (*domain.Revenue, error)
	GetByBranch(ctx context.Context, branchID int64) (*domain.Revenue, error)
	List(ctx context.Context) ([]domain.Revenue, error)
	// ApplyDelta adds the signed amount to the revenue total. Never
	// overwrites the total wholesale and never clamps at zero.
	ApplyDelta(ctx context.Context, id int64, deltaCents int64) error
	Delete(ctx context.Context, id int64) error
}
