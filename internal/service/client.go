package service

import (
	"context"
	"errors"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type clientService struct {
	userRepo        repository.UserRepository
	branchRepo      repository.BranchRepository
	rentRepo        repository.RentRepository
	returnalRepo    repository.ReturnalRepository
	reservationRepo repository.ReservationRepository
	tx              repository.TxManager
}

func NewClientService(
	userRepo repository.UserRepository,
	branchRepo repository.BranchRepository,
	rentRepo repository.RentRepository,
	returnalRepo repository.ReturnalRepository,
	reservationRepo repository.ReservationRepository,
	tx repository.TxManager,
) ClientService {
	return &clientService{
		userRepo:        userRepo,
		branchRepo:      branchRepo,
		rentRepo:        rentRepo,
		returnalRepo:    returnalRepo,
		reservationRepo: reservationRepo,
		tx:              tx,
	}
}

func (s *clientService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return getUserOfKind(ctx, s.userRepo, id, domain.UserKindClient)
}

func (s *clientService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListByKind(ctx, domain.UserKindClient)
}

func (s *clientService) Add(ctx context.Context, req ClientRequest) (*domain.User, error) {
	if err := checkDuplicateLogin(ctx, s.userRepo, req.Login, 0); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	client := &domain.User{
		Kind:         domain.UserKindClient,
		Login:        req.Login,
		PasswordHash: string(hash),
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		Address:      req.Address,
		Roles:        []string{domain.RoleUser},
	}
	if err := s.userRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Edit(ctx context.Context, id int64, req ClientRequest) (*domain.User, error) {
	client, err := getUserOfKind(ctx, s.userRepo, id, domain.UserKindClient)
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

	client.Login = req.Login
	client.PasswordHash = string(hash)
	client.Name = req.Name
	client.Surname = req.Surname
	client.Email = req.Email
	client.Address = req.Address

	if err := s.userRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes the client with everything hanging off them. Rents and
// returns go first, then reservations, then the client, preserving
// foreign-key order.
func (s *clientService) Delete(ctx context.Context, id int64) error {
	if _, err := getUserOfKind(ctx, s.userRepo, id, domain.UserKindClient); err != nil {
		return err
	}
	return s.tx.WithinSerializableTx(ctx, func(ctx context.Context) error {
		if err := s.rentRepo.DeleteByClient(ctx, id); err != nil {
			return err
		}
		if err := s.returnalRepo.DeleteByClient(ctx, id); err != nil {
			return err
		}
		if err := s.reservationRepo.DeleteByClient(ctx, id); err != nil {
			return err
		}
		return s.userRepo.Delete(ctx, id)
	})
}

func (s *clientService) AssignToBranch(ctx context.Context, clientID, branchID int64) (*domain.User, error) {
	client, err := getUserOfKind(ctx, s.userRepo, clientID, domain.UserKindClient)
	if err != nil {
		return nil, err
	}
	if client.BranchID != nil {
		return nil, fmt.Errorf("%w: client #%d", ErrAlreadyAssigned, clientID)
	}
	if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, fmt.Errorf("no branch under ID #%d: %w", branchID, err)
	}
	client.BranchID = &branchID
	if err := s.userRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) RemoveFromBranch(ctx context.Context, clientID, branchID int64) error {
	client, err := getUserOfKind(ctx, s.userRepo, clientID, domain.UserKindClient)
	if err != nil {
		return err
	}
	if client.BranchID == nil || *client.BranchID != branchID {
		return fmt.Errorf("no client under ID #%d is assigned to branch under ID #%d: %w",
			clientID, branchID, repository.ErrNotFound)
	}
	client.BranchID = nil
	return s.userRepo.Update(ctx, client)
}

// getUserOfKind resolves a user id and verifies the variant, so client
// operations never act on employees and vice versa.
func getUserOfKind(ctx context.Context, users repository.UserRepository, id int64, kind domain.UserKind) (*domain.User, error) {
	user, err := users.GetByID(ctx, id)
	if err != nil || user.Kind != kind {
		label := "client"
		if kind == domain.UserKindEmployee {
			label = "employee"
		}
		return nil, fmt.Errorf("no %s under ID #%d: %w", label, id, repository.ErrNotFound)
	}
	return user, nil
}

// checkDuplicateLogin enforces login uniqueness; selfID exempts the user
// being edited.
func checkDuplicateLogin(ctx context.Context, users repository.UserRepository, login string, selfID int64) error {
	existing, err := users.GetByLogin(ctx, login)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return fmt.Errorf("%w: %q", ErrDuplicateLogin, login)
	}
	return nil
}
