package service

import (
	"context"
	"errors"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

// CrossLocationChargeCents is the fixed surcharge applied when a car is
// returned to a different branch than it was picked up from.
const CrossLocationChargeCents int64 = 100_00

// cancellationGraceDays is the notice period below which a cancellation
// fee is retained.
const cancellationGraceDays = 2

// cancellationFeePct is the share of the price retained on a late
// cancellation, in percent.
const cancellationFeePct = 20

type reservationService struct {
	reservationRepo repository.ReservationRepository
	carRepo         repository.CarRepository
	branchRepo      repository.BranchRepository
	userRepo        repository.UserRepository
	rentRepo        repository.RentRepository
	revenueSvc      RevenueService
	tx              repository.TxManager
	emailSvc        EmailService
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	carRepo repository.CarRepository,
	branchRepo repository.BranchRepository,
	userRepo repository.UserRepository,
	rentRepo repository.RentRepository,
	revenueSvc RevenueService,
	tx repository.TxManager,
	emailSvc EmailService,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		carRepo:         carRepo,
		branchRepo:      branchRepo,
		userRepo:        userRepo,
		rentRepo:        rentRepo,
		revenueSvc:      revenueSvc,
		tx:              tx,
		emailSvc:        emailSvc,
	}
}

func (s *reservationService) Create(ctx context.Context, req ReservationRequest) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	// The serializable transaction makes the overlap check and the insert
	// atomic with respect to concurrent attempts on the same car.
	err := s.tx.WithinSerializableTx(ctx, func(ctx context.Context) error {
		if err := s.admit(ctx, req, res); err != nil {
			return err
		}
		if err := s.reservationRepo.Create(ctx, res); err != nil {
			return err
		}
		return s.bookRevenue(ctx, res.CarID, res.PriceCents)
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, res, s.emailSvc.SendReservationConfirmation)
	return res, nil
}

func (s *reservationService) Edit(ctx context.Context, id int64, req ReservationRequest) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	err := s.tx.WithinSerializableTx(ctx, func(ctx context.Context) error {
		found, err := s.reservationRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("no reservation under ID #%d: %w", id, err)
		}
		*res = *found
		if err := s.admit(ctx, req, res); err != nil {
			return err
		}
		if err := s.reservationRepo.Update(ctx, res); err != nil {
			return err
		}
		return s.bookRevenue(ctx, res.CarID, res.PriceCents)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// admit runs the validation and pricing pipeline shared by Create and
// Edit, filling the reservation from the request. On edit the reservation
// keeps its id, which excludes it from collision checks against itself.
func (s *reservationService) admit(ctx context.Context, req ReservationRequest, res *domain.Reservation) error {
	if req.StartDate.Equal(req.EndDate) {
		return fmt.Errorf("%w: car should be reserved for at least one day", ErrTimeCollision)
	}
	if req.StartDate.After(req.EndDate) {
		return fmt.Errorf("%w: start date must be before end date", ErrTimeCollision)
	}

	car, err := s.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		return fmt.Errorf("no car under ID #%d: %w", req.CarID, err)
	}
	if car.BranchID == nil {
		return fmt.Errorf("car under ID #%d has no owning branch: %w", req.CarID, repository.ErrNotFound)
	}

	client, err := s.userRepo.GetByID(ctx, req.ClientID)
	if err != nil || client.Kind != domain.UserKindClient {
		return fmt.Errorf("no client under ID #%d: %w", req.ClientID, repository.ErrNotFound)
	}

	existing, err := s.reservationRepo.ListByCar(ctx, req.CarID)
	if err != nil {
		return err
	}
	period := domain.Period{Start: req.StartDate, End: req.EndDate}
	for i := range existing {
		if existing[i].ID == res.ID {
			continue
		}
		if period.Overlaps(existing[i].Period()) {
			return fmt.Errorf("%w: car cannot be reserved for given time period", ErrTimeCollision)
		}
	}

	if _, err := s.branchRepo.GetByID(ctx, req.StartBranchID); err != nil {
		return fmt.Errorf("no branch under ID #%d: %w", req.StartBranchID, err)
	}
	if _, err := s.branchRepo.GetByID(ctx, req.EndBranchID); err != nil {
		return fmt.Errorf("no branch under ID #%d: %w", req.EndBranchID, err)
	}

	if err := checkBranchContinuity(req, existing, res.ID); err != nil {
		return err
	}

	price := car.PricePerDayCents * period.Days()
	if req.StartBranchID != req.EndBranchID {
		price += CrossLocationChargeCents
	}

	res.ClientID = req.ClientID
	res.CarID = req.CarID
	res.StartDate = req.StartDate
	res.EndDate = req.EndDate
	res.StartBranchID = req.StartBranchID
	res.EndBranchID = req.EndBranchID
	res.PriceCents = price
	return nil
}

// checkBranchContinuity enforces physical car location across back-to-back
// reservations: within a one-day gap the car can only be picked up where
// the previous reservation dropped it, and only dropped where the next
// one picks it up.
func checkBranchContinuity(req ReservationRequest, existing []domain.Reservation, selfID int64) error {
	var prev, next *domain.Reservation
	for i := range existing {
		other := &existing[i]
		if other.ID == selfID {
			continue
		}
		if other.EndDate.Before(req.StartDate) && (prev == nil || other.EndDate.After(prev.EndDate)) {
			prev = other
		}
		if other.StartDate.After(req.EndDate) && (next == nil || other.StartDate.Before(next.StartDate)) {
			next = other
		}
	}

	if prev != nil && prev.EndBranchID != req.StartBranchID &&
		req.StartDate.DaysSince(prev.EndDate) <= 1 {
		return fmt.Errorf("%w: car can be rented only from branch #%d for the selected date",
			ErrTimeCollision, prev.EndBranchID)
	}
	if next != nil && next.StartBranchID != req.EndBranchID &&
		next.StartDate.DaysSince(req.EndDate) <= 1 {
		return fmt.Errorf("%w: car can be returned only to branch #%d for the selected date",
			ErrTimeCollision, next.StartBranchID)
	}
	return nil
}

// bookRevenue applies a signed delta to the revenue of the car's owning
// branch.
func (s *reservationService) bookRevenue(ctx context.Context, carID, deltaCents int64) error {
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

// Cancel reverses the revenue booked for the reservation. With a rent
// dated more than two days out the full price is returned; any closer and
// a 20% late-cancellation fee is retained. The reservation row stays.
func (s *reservationService) Cancel(ctx context.Context, id int64) error {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("no reservation under ID #%d: %w", id, err)
	}

	refund := res.PriceCents
	rent, err := s.rentRepo.GetByReservation(ctx, id)
	switch {
	case err == nil:
		if rent.RentDate.DaysSince(domain.Today()) <= cancellationGraceDays {
			refund = res.PriceCents * (100 - cancellationFeePct) / 100
		}
	case errors.Is(err, repository.ErrNotFound):
		// No rent recorded yet: full reversal.
	default:
		return err
	}

	if err := s.bookRevenue(ctx, res.CarID, -refund); err != nil {
		return err
	}
	s.notify(ctx, res, s.emailSvc.SendReservationCancellation)
	return nil
}

// Delete removes the reservation; its rent and returnal go with it via
// cascade. Unlike Cancel it does not reverse revenue.
func (s *reservationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.reservationRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("no reservation under ID #%d: %w", id, err)
	}
	return s.reservationRepo.Delete(ctx, id)
}

func (s *reservationService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("no reservation under ID #%d: %w", id, err)
	}
	return res, nil
}

func (s *reservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservationRepo.List(ctx)
}

// notify emails the reservation's client best-effort; delivery problems
// are logged, never surfaced.
func (s *reservationService) notify(ctx context.Context, res *domain.Reservation,
	send func(ctx context.Context, email, name string, res *domain.Reservation) error) {
	client, err := s.userRepo.GetByID(ctx, res.ClientID)
	if err != nil || client.Email == "" {
		return
	}
	if err := send(ctx, client.Email, client.Name, res); err != nil {
		logger.Warn("Failed to send reservation email", "reservation_id", res.ID, "error", err)
	}
}
