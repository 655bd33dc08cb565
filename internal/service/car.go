package service

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type carService struct {
	carRepo         repository.CarRepository
	reservationRepo repository.ReservationRepository
}

func NewCarService(carRepo repository.CarRepository, reservationRepo repository.ReservationRepository) CarService {
	return &carService{carRepo: carRepo, reservationRepo: reservationRepo}
}

func (s *carService) Get(ctx context.Context, id int64) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("no car under ID #%d: %w", id, err)
	}
	return car, nil
}

func (s *carService) List(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *carService) Add(ctx context.Context, car *domain.Car) error {
	if car.Status == "" {
		car.Status = domain.CarStatusAvailable
	}
	return s.carRepo.Create(ctx, car)
}

func (s *carService) Edit(ctx context.Context, id int64, car *domain.Car) (*domain.Car, error) {
	edited, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("no car under ID #%d: %w", id, err)
	}

	edited.Make = car.Make
	edited.Model = car.Model
	edited.BodyStyle = car.BodyStyle
	edited.Year = car.Year
	edited.Colour = car.Colour
	edited.Mileage = car.Mileage
	edited.Status = car.Status
	edited.PricePerDayCents = car.PricePerDayCents
	edited.BranchID = car.BranchID

	if err := s.carRepo.Update(ctx, edited); err != nil {
		return nil, err
	}
	return edited, nil
}

// StatusOnDate reports RENTED when any reservation covers the date,
// UNAVAILABLE when the stored status says so, AVAILABLE otherwise.
func (s *carService) StatusOnDate(ctx context.Context, id int64, date domain.Date) (domain.CarStatus, error) {
	car, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if car.Status == domain.CarStatusUnavailable {
		return domain.CarStatusUnavailable, nil
	}
	reservations, err := s.reservationRepo.ListByCar(ctx, id)
	if err != nil {
		return "", err
	}
	day := domain.Period{Start: date, End: date.AddDays(1)}
	for i := range reservations {
		if day.Overlaps(reservations[i].Period()) {
			return domain.CarStatusRented, nil
		}
	}
	return domain.CarStatusAvailable, nil
}

func (s *carService) UpdateMileageAndPrice(ctx context.Context, id int64, mileage float64, priceCents int64) (*domain.Car, error) {
	car, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	car.Mileage = mileage
	car.PricePerDayCents = priceCents
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) UpdateStatus(ctx context.Context, id int64, status domain.CarStatus) (*domain.Car, error) {
	switch status {
	case domain.CarStatusAvailable, domain.CarStatusRented, domain.CarStatusUnavailable:
	default:
		return nil, fmt.Errorf("%w: unknown car status %q", ErrInvalidInput, status)
	}
	car, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	car.Status = status
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) Delete(ctx context.Context, id int64) error {
	if _, err := s.carRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("no car under ID #%d: %w", id, err)
	}
	return s.carRepo.Delete(ctx, id)
}
