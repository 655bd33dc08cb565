package service

import (
	"context"
	"errors"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type rentService struct {
	rentRepo        repository.RentRepository
	reservationRepo repository.ReservationRepository
	userRepo        repository.UserRepository
}

func NewRentService(
	rentRepo repository.RentRepository,
	reservationRepo repository.ReservationRepository,
	userRepo repository.UserRepository,
) RentService {
	return &rentService{
		rentRepo:        rentRepo,
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
	}
}

func (s *rentService) Get(ctx context.Context, id int64) (*domain.Rent, error) {
	rent, err := s.rentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("no rent under ID #%d: %w", id, err)
	}
	return rent, nil
}

func (s *rentService) List(ctx context.Context) ([]domain.Rent, error) {
	return s.rentRepo.List(ctx)
}

func (s *rentService) Add(ctx context.Context, req RentRequest) (*domain.Rent, error) {
	if _, err := s.reservationRepo.GetByID(ctx, req.ReservationID); err != nil {
		return nil, fmt.Errorf("no reservation under ID #%d: %w", req.ReservationID, err)
	}
	if _, err := s.rentRepo.GetByReservation(ctx, req.ReservationID); err == nil {
		return nil, fmt.Errorf("%w: reservation #%d", ErrRentAlreadyExists, req.ReservationID)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return nil, err
	}
	rent := &domain.Rent{
		ReservationID: req.ReservationID,
		EmployeeID:    req.EmployeeID,
		RentDate:      req.RentDate,
		Comments:      req.Comments,
	}
	if err := s.rentRepo.Create(ctx, rent); err != nil {
		return nil, err
	}
	return rent, nil
}

func (s *rentService) Edit(ctx context.Context, id int64, req RentRequest) (*domain.Rent, error) {
	rent, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ReservationID != rent.ReservationID {
		return nil, fmt.Errorf("rent #%d belongs to reservation #%d: %w",
			id, rent.ReservationID, repository.ErrNotFound)
	}
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return nil, err
	}
	rent.EmployeeID = req.EmployeeID
	rent.RentDate = req.RentDate
	rent.Comments = req.Comments
	if err := s.rentRepo.Update(ctx, rent); err != nil {
		return nil, err
	}
	return rent, nil
}

func (s *rentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.rentRepo.Delete(ctx, id)
}

func (s *rentService) checkEmployee(ctx context.Context, employeeID *int64) error {
	if employeeID == nil {
		return nil
	}
	_, err := getUserOfKind(ctx, s.userRepo, *employeeID, domain.UserKindEmployee)
	return err
}
