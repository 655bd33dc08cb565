package service

import (
	"context"
	"errors"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type returnalService struct {
	returnalRepo    repository.ReturnalRepository
	reservationRepo repository.ReservationRepository
	carRepo         repository.CarRepository
	userRepo        repository.UserRepository
	revenueSvc      RevenueService
	tx              repository.TxManager
}

func NewReturnalService(
	returnalRepo repository.ReturnalRepository,
	reservationRepo repository.ReservationRepository,
	carRepo repository.CarRepository,
	userRepo repository.UserRepository,
	revenueSvc RevenueService,
	tx repository.TxManager,
) ReturnalService {
	return &returnalService{
		returnalRepo:    returnalRepo,
		reservationRepo: reservationRepo,
		carRepo:         carRepo,
		userRepo:        userRepo,
		revenueSvc:      revenueSvc,
		tx:              tx,
	}
}

func (s *returnalService) Get(ctx context.Context, id int64) (*domain.Returnal, error) {
	ret, err := s.returnalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("no returnal under ID #%d: %w", id, err)
	}
	return ret, nil
}

func (s *returnalService) List(ctx context.Context) ([]domain.Returnal, error) {
	return s.returnalRepo.List(ctx)
}

// Add records the car return. Any upcharge is booked against the revenue
// of the car's owning branch, same as the reservation price.
func (s *returnalService) Add(ctx context.Context, req ReturnalRequest) (*domain.Returnal, error) {
	res, err := s.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("no reservation under ID #%d: %w", req.ReservationID, err)
	}
	if _, err := s.returnalRepo.GetByReservation(ctx, req.ReservationID); err == nil {
		return nil, fmt.Errorf("%w: reservation #%d already has a returnal", ErrRentAlreadyExists, req.ReservationID)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	ret := &domain.Returnal{
		ReservationID: req.ReservationID,
		EmployeeID:    req.EmployeeID,
		ReturnDate:    req.ReturnDate,
		UpchargeCents: req.UpchargeCents,
		Comments:      req.Comments,
	}
	err = s.tx.WithinSerializableTx(ctx, func(ctx context.Context) error {
		if err := s.returnalRepo.Create(ctx, ret); err != nil {
			return err
		}
		return s.bookUpcharge(ctx, res.CarID, ret.UpchargeCents)
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Edit rewrites the returnal. A changed upcharge is settled by booking
// the difference against the end branch.
func (s *returnalService) Edit(ctx context.Context, id int64, req ReturnalRequest) (*domain.Returnal, error) {
	ret, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ReservationID != ret.ReservationID {
		return nil, fmt.Errorf("returnal #%d belongs to reservation #%d: %w",
			id, ret.ReservationID, repository.ErrNotFound)
	}
	res, err := s.reservationRepo.GetByID(ctx, ret.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("no reservation under ID #%d: %w", ret.ReservationID, err)
	}
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	delta := req.UpchargeCents - ret.UpchargeCents
	ret.EmployeeID = req.EmployeeID
	ret.ReturnDate = req.ReturnDate
	ret.UpchargeCents = req.UpchargeCents
	ret.Comments = req.Comments

	err = s.tx.WithinSerializableTx(ctx, func(ctx context.Context) error {
		if err := s.returnalRepo.Update(ctx, ret); err != nil {
			return err
		}
		return s.bookUpcharge(ctx, res.CarID, delta)
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *returnalService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.returnalRepo.Delete(ctx, id)
}

func (s *returnalService) bookUpcharge(ctx context.Context, carID, deltaCents int64) error {
	if deltaCents == 0 {
		return nil
	}
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return fmt.Errorf("no car under ID #%d: %w", carID, err)
	}
	if car.BranchID == nil {
		return fmt.Errorf("car under ID #%d has no owning branch: %w", carID, repository.ErrNotFound)
	}
	rev, err := s.revenueSvc.GetByBranch(ctx, *car.BranchID)
	if err != nil {
		return err
	}
	return s.revenueSvc.ApplyDelta(ctx, rev.ID, deltaCents)
}

func (s *returnalService) checkEmployee(ctx context.Context, employeeID *int64) error {
	if employeeID == nil {
		return nil
	}
	_, err := getUserOfKind(ctx, s.userRepo, *employeeID, domain.UserKindEmployee)
	return err
}
