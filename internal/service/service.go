package service

import (
	"context"
	"errors"

	"carrental-backend/internal/domain"
)

var (
	ErrTimeCollision      = errors.New("reservation time collision")
	ErrAlreadyAssigned    = errors.New("already assigned to a branch")
	ErrDuplicateLogin     = errors.New("login is already taken")
	ErrRentAlreadyExists  = errors.New("rent already exists for reservation")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidInput       = errors.New("invalid input")
)

// ReservationRequest carries the client-supplied reservation data for
// both create and edit.
type ReservationRequest struct {
	ClientID      int64       `json:"client_id"`
	CarID         int64       `json:"car_id"`
	StartDate     domain.Date `json:"start_date"`
	EndDate       domain.Date `json:"end_date"`
	StartBranchID int64       `json:"start_branch_id"`
	EndBranchID   int64       `json:"end_branch_id"`
}

type RentRequest struct {
	ReservationID int64       `json:"reservation_id"`
	EmployeeID    *int64      `json:"employee_id,omitempty"`
	RentDate      domain.Date `json:"rent_date"`
	Comments      string      `json:"comments,omitempty"`
}

type ReturnalRequest struct {
	ReservationID int64       `json:"reservation_id"`
	EmployeeID    *int64      `json:"employee_id,omitempty"`
	ReturnDate    domain.Date `json:"return_date"`
	UpchargeCents int64       `json:"upcharge_cents"`
	Comments      string      `json:"comments,omitempty"`
}

type ClientRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

type EmployeeRequest struct {
	Login    string          `json:"login"`
	Password string          `json:"password"`
	Name     string          `json:"name"`
	Surname  string          `json:"surname"`
	Position domain.Position `json:"position"`
}

type ReservationService interface {
	Create(ctx context.Context, req ReservationRequest) (*domain.Reservation, error)
	Edit(ctx context.Context, id int64, req ReservationRequest) (*domain.Reservation, error)
	// Cancel reverses the revenue impact of the reservation but keeps the
	// record; Delete removes the record without touching revenue.
	Cancel(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
}

type RevenueService interface {
	// ApplyDelta adds a signed amount to a revenue total. All revenue
	// mutations in the system go through here.
	ApplyDelta(ctx context.Context, revenueID int64, deltaCents int64) error
	Get(ctx context.Context, id int64) (*domain.Revenue, error)
	GetByBranch(ctx context.Context, branchID int64) (*domain.Revenue, error)
	List(ctx context.Context) ([]domain.Revenue, error)
}

type CarService interface {
	Get(ctx context.Context, id int64) (*domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	Add(ctx context.Context, car *domain.Car) error
	Edit(ctx context.Context, id int64, car *domain.Car) (*domain.Car, error)
	Delete(ctx context.Context, id int64) error
	// StatusOnDate derives the car's status for a date from its
	// reservations rather than the stored status column.
	StatusOnDate(ctx context.Context, id int64, date domain.Date) (domain.CarStatus, error)
	UpdateMileageAndPrice(ctx context.Context, id int64, mileage float64, priceCents int64) (*domain.Car, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CarStatus) (*domain.Car, error)
}

type ClientService interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Add(ctx context.Context, req ClientRequest) (*domain.User, error)
	Edit(ctx context.Context, id int64, req ClientRequest) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	AssignToBranch(ctx context.Context, clientID, branchID int64) (*domain.User, error)
	RemoveFromBranch(ctx context.Context, clientID, branchID int64) error
}

type EmployeeService interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Add(ctx context.Context, req EmployeeRequest) (*domain.User, error)
	Edit(ctx context.Context, id int64, req EmployeeRequest) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	AssignToBranch(ctx context.Context, employeeID, branchID int64) (*domain.User, error)
	RemoveFromBranch(ctx context.Context, employeeID, branchID int64) error
}

type BranchService interface {
	Get(ctx context.Context, id int64) (*domain.Branch, error)
	List(ctx context.Context) ([]domain.Branch, error)
	Add(ctx context.Context, branch *domain.Branch) error
	Edit(ctx context.Context, id int64, branch *domain.Branch) (*domain.Branch, error)
	Delete(ctx context.Context, id int64) error
}

type CompanyService interface {
	Get(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Add(ctx context.Context, company *domain.Company) error
	Edit(ctx context.Context, id int64, company *domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id int64) error
}

type RentService interface {
	Get(ctx context.Context, id int64) (*domain.Rent, error)
	List(ctx context.Context) ([]domain.Rent, error)
	Add(ctx context.Context, req RentRequest) (*domain.Rent, error)
	Edit(ctx context.Context, id int64, req RentRequest) (*domain.Rent, error)
	Delete(ctx context.Context, id int64) error
}

type ReturnalService interface {
	Get(ctx context.Context, id int64) (*domain.Returnal, error)
	List(ctx context.Context) ([]domain.Returnal, error)
	Add(ctx context.Context, req ReturnalRequest) (*domain.Returnal, error)
	Edit(ctx context.Context, id int64, req ReturnalRequest) (*domain.Returnal, error)
	Delete(ctx context.Context, id int64) error
}

type AuthService interface {
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, login, password string) (string, *domain.User, error)
}

type EmailService interface {
	SendReservationConfirmation(ctx context.Context, email, name string, res *domain.Reservation) error
	SendReservationCancellation(ctx context.Context, email, name string, res *domain.Reservation) error
	SendReturnReminder(ctx context.Context, email, name string, res *domain.Reservation) error
}
