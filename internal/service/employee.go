package service

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type employeeService struct {
	userRepo     repository.UserRepository
	branchRepo   repository.BranchRepository
	rentRepo     repository.RentRepository
	returnalRepo repository.ReturnalRepository
	tx           repository.TxManager
}

func NewEmployeeService(
	userRepo repository.UserRepository,
	branchRepo repository.BranchRepository,
	rentRepo repository.RentRepository,
	returnalRepo repository.ReturnalRepository,
	tx repository.TxManager,
) EmployeeService {
	return &employeeService{
		userRepo:     userRepo,
		branchRepo:   branchRepo,
		rentRepo:     rentRepo,
		returnalRepo: returnalRepo,
		tx:           tx,
	}
}

func (s *employeeService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return getUserOfKind(ctx, s.userRepo, id, domain.UserKindEmployee)
}

func (s *employeeService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListByKind(ctx, domain.UserKindEmployee)
}

func (s *employeeService) Add(ctx context.Context, req EmployeeRequest) (*domain.User, error) {
	if err := checkDuplicateLogin(ctx, s.userRepo, req.Login, 0); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	position := req.Position
	if position == "" {
		position = domain.PositionEmployee
	}
	employee := &domain.User{
		Kind:         domain.UserKindEmployee,
		Login:        req.Login,
		PasswordHash: string(hash),
		Name:         req.Name,
		Surname:      req.Surname,
		Position:     position,
		Roles:        []string{domain.RoleUser},
	}
	if err := s.userRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Edit(ctx context.Context, id int64, req EmployeeRequest) (*domain.User, error) {
	employee, err := getUserOfKind(ctx, s.userRepo, id, domain.UserKindEmployee)
	if err != nil {
		return nil, err
	}
	if err := checkDuplicateLogin(ctx, s.userRepo, req.Login, id); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee.Login = req.Login
	employee.PasswordHash = string(hash)
	employee.Name = req.Name
	employee.Surname = req.Surname
	employee.Position = req.Position

	if err := s.userRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Delete detaches the employee from any rents and returnals they handled
// before removing them, so the handover history survives.
func (s *employeeService) Delete(ctx context.Context, id int64) error {
	if _, err := getUserOfKind(ctx, s.userRepo, id, domain.UserKindEmployee); err != nil {
		return err
	}
	return s.tx.WithinSerializableTx(ctx, func(ctx context.Context) error {
		if err := s.rentRepo.ClearEmployee(ctx, id); err != nil {
			return err
		}
		if err := s.returnalRepo.ClearEmployee(ctx, id); err != nil {
			return err
		}
		return s.userRepo.Delete(ctx, id)
	})
}

func (s *employeeService) AssignToBranch(ctx context.Context, employeeID, branchID int64) (*domain.User, error) {
	employee, err := getUserOfKind(ctx, s.userRepo, employeeID, domain.UserKindEmployee)
	if err != nil {
		return nil, err
	}
	if employee.BranchID != nil {
		return nil, fmt.Errorf("%w: employee #%d", ErrAlreadyAssigned, employeeID)
	}
	if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, fmt.Errorf("no branch under ID #%d: %w", branchID, err)
	}
	employee.BranchID = &branchID
	if err := s.userRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) RemoveFromBranch(ctx context.Context, employeeID, branchID int64) error {
	employee, err := getUserOfKind(ctx, s.userRepo, employeeID, domain.UserKindEmployee)
	if err != nil {
		return err
	}
	if employee.BranchID == nil || *employee.BranchID != branchID {
		return fmt.Errorf("no employee under ID #%d is assigned to branch under ID #%d: %w",
			employeeID, branchID, repository.ErrNotFound)
	}
	employee.BranchID = nil
	return s.userRepo.Update(ctx, employee)
}
