package service_test

import (
	"context"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type clientFixture struct {
	userRepo        *MockUserRepo
	branchRepo      *MockBranchRepo
	rentRepo        *MockRentRepo
	returnalRepo    *MockReturnalRepo
	reservationRepo *MockReservationRepo
	svc             service.ClientService
}

func newClientFixture() *clientFixture {
	f := &clientFixture{
		userRepo:        new(MockUserRepo),
		branchRepo:      new(MockBranchRepo),
		rentRepo:        new(MockRentRepo),
		returnalRepo:    new(MockReturnalRepo),
		reservationRepo: new(MockReservationRepo),
	}
	f.svc = service.NewClientService(
		f.userRepo,
		f.branchRepo,
		f.rentRepo,
		f.returnalRepo,
		f.reservationRepo,
		fakeTxManager{},
	)
	return f
}

func TestClientService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and defaults roles", func(t *testing.T) {
		f := newClientFixture()
		f.userRepo.On("GetByLogin", ctx, "jdoe").Return(nil, repository.ErrNotFound)
		f.userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		client, err := f.svc.Add(ctx, service.ClientRequest{
			Login:    "jdoe",
			Password: "hunter22",
			Name:     "John",
			Surname:  "Doe",
			Email:    "jdoe@test.com",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.UserKindClient, client.Kind)
		assert.Equal(t, []string{domain.RoleUser}, client.Roles)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte("hunter22")))
	})

	t.Run("taken login is rejected", func(t *testing.T) {
		f := newClientFixture()
		f.userRepo.On("GetByLogin", ctx, "jdoe").Return(&domain.User{ID: 5, Login: "jdoe"}, nil)

		_, err := f.svc.Add(ctx, service.ClientRequest{Login: "jdoe", Password: "x"})
		assert.ErrorIs(t, err, service.ErrDuplicateLogin)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestClientService_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("editing keeps own login", func(t *testing.T) {
		f := newClientFixture()
		f.userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Kind: domain.UserKindClient, Login: "jdoe"}, nil)
		f.userRepo.On("GetByLogin", ctx, "jdoe").Return(&domain.User{ID: 1, Login: "jdoe"}, nil)
		f.userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		client, err := f.svc.Edit(ctx, 1, service.ClientRequest{Login: "jdoe", Password: "new"})
		assert.NoError(t, err)
		assert.Equal(t, "jdoe", client.Login)
	})

	t.Run("stealing another user's login is rejected", func(t *testing.T) {
		f := newClientFixture()
		f.userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Kind: domain.UserKindClient, Login: "jdoe"}, nil)
		f.userRepo.On("GetByLogin", ctx, "asmith").Return(&domain.User{ID: 2, Login: "asmith"}, nil)

		_, err := f.svc.Edit(ctx, 1, service.ClientRequest{Login: "asmith", Password: "x"})
		assert.ErrorIs(t, err, service.ErrDuplicateLogin)
	})
}

func TestClientService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades rents then returnals then reservations", func(t *testing.T) {
		f := newClientFixture()
		f.userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Kind: domain.UserKindClient}, nil)

		var order []string
		f.rentRepo.On("DeleteByClient", ctx, int64(1)).Run(func(mock.Arguments) {
			order = append(order, "rents")
		}).Return(nil)
		f.returnalRepo.On("DeleteByClient", ctx, int64(1)).Run(func(mock.Arguments) {
			order = append(order, "returnals")
		}).Return(nil)
		f.reservationRepo.On("DeleteByClient", ctx, int64(1)).Run(func(mock.Arguments) {
			order = append(order, "reservations")
		}).Return(nil)
		f.userRepo.On("Delete", ctx, int64(1)).Run(func(mock.Arguments) {
			order = append(order, "client")
		}).Return(nil)

		assert.NoError(t, f.svc.Delete(ctx, 1))
		assert.Equal(t, []string{"rents", "returnals", "reservations", "client"}, order)
	})

	t.Run("employees cannot be deleted through the client service", func(t *testing.T) {
		f := newClientFixture()
		f.userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Kind: domain.UserKindEmployee}, nil)

		err := f.svc.Delete(ctx, 1)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		f.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestClientService_AssignToBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("assigning an unattached client succeeds", func(t *testing.T) {
		f := newClientFixture()
		f.userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Kind: domain.UserKindClient}, nil)
		f.branchRepo.On("GetByID", ctx, int64(7)).Return(&domain.Branch{ID: 7}, nil)
		f.userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		client, err := f.svc.AssignToBranch(ctx, 1, 7)
		assert.NoError(t, err)
		if assert.NotNil(t, client.BranchID) {
			assert.Equal(t, int64(7), *client.BranchID)
		}
	})

	t.Run("double assignment is rejected", func(t *testing.T) {
		f := newClientFixture()
		branchID := int64(3)
		f.userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Kind: domain.UserKindClient, BranchID: &branchID}, nil)

		_, err := f.svc.AssignToBranch(ctx, 1, 7)
		assert.ErrorIs(t, err, service.ErrAlreadyAssigned)
	})

	t.Run("removing from the wrong branch reports not found", func(t *testing.T) {
		f := newClientFixture()
		branchID := int64(3)
		f.userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Kind: domain.UserKindClient, BranchID: &branchID}, nil)

		err := f.svc.RemoveFromBranch(ctx, 1, 7)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
