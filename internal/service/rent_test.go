package service_test

import (
	"context"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRentService() (*MockRentRepo, *MockReservationRepo, *MockUserRepo, service.RentService) {
	rentRepo := new(MockRentRepo)
	reservationRepo := new(MockReservationRepo)
	userRepo := new(MockUserRepo)
	svc := service.NewRentService(rentRepo, reservationRepo, userRepo)
	return rentRepo, reservationRepo, userRepo, svc
}

func TestRentService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("first rent for a reservation succeeds", func(t *testing.T) {
		rentRepo, reservationRepo, _, svc := newRentService()
		reservationRepo.On("GetByID", ctx, int64(9)).Return(&domain.Reservation{ID: 9}, nil)
		rentRepo.On("GetByReservation", ctx, int64(9)).Return(nil, repository.ErrNotFound)
		rentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rent")).Return(nil)

		rent, err := svc.Add(ctx, service.RentRequest{
			ReservationID: 9,
			RentDate:      domain.Today(),
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(9), rent.ReservationID)
	})

	t.Run("second rent for the same reservation is rejected", func(t *testing.T) {
		rentRepo, reservationRepo, _, svc := newRentService()
		reservationRepo.On("GetByID", ctx, int64(9)).Return(&domain.Reservation{ID: 9}, nil)
		rentRepo.On("GetByReservation", ctx, int64(9)).
			Return(&domain.Rent{ID: 1, ReservationID: 9}, nil)

		_, err := svc.Add(ctx, service.RentRequest{ReservationID: 9, RentDate: domain.Today()})
		assert.ErrorIs(t, err, service.ErrRentAlreadyExists)
		rentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown reservation is rejected", func(t *testing.T) {
		_, reservationRepo, _, svc := newRentService()
		reservationRepo.On("GetByID", ctx, int64(9)).Return(nil, repository.ErrNotFound)

		_, err := svc.Add(ctx, service.RentRequest{ReservationID: 9, RentDate: domain.Today()})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("handing employee must exist", func(t *testing.T) {
		rentRepo, reservationRepo, userRepo, svc := newRentService()
		employeeID := int64(4)
		reservationRepo.On("GetByID", ctx, int64(9)).Return(&domain.Reservation{ID: 9}, nil)
		rentRepo.On("GetByReservation", ctx, int64(9)).Return(nil, repository.ErrNotFound)
		userRepo.On("GetByID", ctx, employeeID).Return(nil, repository.ErrNotFound)

		_, err := svc.Add(ctx, service.RentRequest{
			ReservationID: 9,
			EmployeeID:    &employeeID,
			RentDate:      domain.Today(),
		})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestReturnalService_Add(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*MockReturnalRepo, *MockReservationRepo, *MockCarRepo, *MockRevenueRepo, service.ReturnalService) {
		returnalRepo := new(MockReturnalRepo)
		reservationRepo := new(MockReservationRepo)
		carRepo := new(MockCarRepo)
		userRepo := new(MockUserRepo)
		revenueRepo := new(MockRevenueRepo)
		svc := service.NewReturnalService(
			returnalRepo, reservationRepo, carRepo, userRepo,
			service.NewRevenueService(revenueRepo), fakeTxManager{},
		)
		return returnalRepo, reservationRepo, carRepo, revenueRepo, svc
	}

	t.Run("upcharge is booked to the car's branch revenue", func(t *testing.T) {
		returnalRepo, reservationRepo, carRepo, revenueRepo, svc := newFixture()
		reservationRepo.On("GetByID", ctx, int64(9)).
			Return(&domain.Reservation{ID: 9, CarID: 2, EndBranchID: testBranchID}, nil)
		returnalRepo.On("GetByReservation", ctx, int64(9)).Return(nil, repository.ErrNotFound)
		returnalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Returnal")).Return(nil)
		carRepo.On("GetByID", ctx, int64(2)).Return(testCar(), nil)
		revenueRepo.On("GetByBranch", ctx, testBranchID).
			Return(&domain.Revenue{ID: 5, BranchID: testBranchID}, nil)
		revenueRepo.On("ApplyDelta", ctx, int64(5), int64(50_00)).Return(nil)

		ret, err := svc.Add(ctx, service.ReturnalRequest{
			ReservationID: 9,
			ReturnDate:    domain.Today(),
			UpchargeCents: 50_00,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(50_00), ret.UpchargeCents)
		revenueRepo.AssertExpectations(t)
	})

	t.Run("zero upcharge books nothing", func(t *testing.T) {
		returnalRepo, reservationRepo, _, revenueRepo, svc := newFixture()
		reservationRepo.On("GetByID", ctx, int64(9)).
			Return(&domain.Reservation{ID: 9, CarID: 2}, nil)
		returnalRepo.On("GetByReservation", ctx, int64(9)).Return(nil, repository.ErrNotFound)
		returnalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Returnal")).Return(nil)

		_, err := svc.Add(ctx, service.ReturnalRequest{ReservationID: 9, ReturnDate: domain.Today()})
		assert.NoError(t, err)
		revenueRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("second returnal for the same reservation is rejected", func(t *testing.T) {
		returnalRepo, reservationRepo, _, _, svc := newFixture()
		reservationRepo.On("GetByID", ctx, int64(9)).Return(&domain.Reservation{ID: 9}, nil)
		returnalRepo.On("GetByReservation", ctx, int64(9)).
			Return(&domain.Returnal{ID: 1, ReservationID: 9}, nil)

		_, err := svc.Add(ctx, service.ReturnalRequest{ReservationID: 9, ReturnDate: domain.Today()})
		assert.ErrorIs(t, err, service.ErrRentAlreadyExists)
	})
}
