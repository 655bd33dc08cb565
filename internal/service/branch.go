package service

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type branchService struct {
	branchRepo  repository.BranchRepository
	companyRepo repository.CompanyRepository
	revenueRepo repository.RevenueRepository
	tx          repository.TxManager
}

func NewBranchService(
	branchRepo repository.BranchRepository,
	companyRepo repository.CompanyRepository,
	revenueRepo repository.RevenueRepository,
	tx repository.TxManager,
) BranchService {
	return &branchService{
		branchRepo:  branchRepo,
		companyRepo: companyRepo,
		revenueRepo: revenueRepo,
		tx:          tx,
	}
}

func (s *branchService) Get(ctx context.Context, id int64) (*domain.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("no branch under ID #%d: %w", id, err)
	}
	return branch, nil
}

func (s *branchService) List(ctx context.Context) ([]domain.Branch, error) {
	return s.branchRepo.List(ctx)
}

// Add creates the branch together with its zeroed revenue record so every
// branch can take bookings immediately.
func (s *branchService) Add(ctx context.Context, branch *domain.Branch) error {
	if branch.CompanyID != 0 {
		if _, err := s.companyRepo.GetByID(ctx, branch.CompanyID); err != nil {
			return fmt.Errorf("no company under ID #%d: %w", branch.CompanyID, err)
		}
	}
	return s.tx.WithinSerializableTx(ctx, func(ctx context.Context) error {
		if err := s.branchRepo.Create(ctx, branch); err != nil {
			return err
		}
		return s.revenueRepo.Create(ctx, &domain.Revenue{BranchID: branch.ID})
	})
}

func (s *branchService) Edit(ctx context.Context, id int64, branch *domain.Branch) (*domain.Branch, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch.CompanyID != 0 {
		if _, err := s.companyRepo.GetByID(ctx, branch.CompanyID); err != nil {
			return nil, fmt.Errorf("no company under ID #%d: %w", branch.CompanyID, err)
		}
	}
	existing.Name = branch.Name
	existing.Address = branch.Address
	existing.CompanyID = branch.CompanyID
	if err := s.branchRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the branch and its revenue record in one transaction.
func (s *branchService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.tx.WithinSerializableTx(ctx, func(ctx context.Context) error {
		rev, err := s.revenueRepo.GetByBranch(ctx, id)
		if err == nil {
			if err := s.revenueRepo.Delete(ctx, rev.ID); err != nil {
				return err
			}
		}
		return s.branchRepo.Delete(ctx, id)
	})
}
