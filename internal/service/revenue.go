package service

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type revenueService struct {
	revenueRepo repository.RevenueRepository
}

func NewRevenueService(revenueRepo repository.RevenueRepository) RevenueService {
	return &revenueService{revenueRepo: revenueRepo}
}

func (s *revenueService) ApplyDelta(ctx context.Context, revenueID int64, deltaCents int64) error {
	if err := s.revenueRepo.ApplyDelta(ctx, revenueID, deltaCents); err != nil {
		return fmt.Errorf("no revenue under ID #%d: %w", revenueID, err)
	}
	return nil
}

func (s *revenueService) Get(ctx context.Context, id int64) (*domain.Revenue, error) {
	rev, err := s.revenueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("no revenue under ID #%d: %w", id, err)
	}
	return rev, nil
}

func (s *revenueService) GetByBranch(ctx context.Context, branchID int64) (*domain.Revenue, error) {
	rev, err := s.revenueRepo.GetByBranch(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("no revenue for branch #%d: %w", branchID, err)
	}
	return rev, nil
}

func (s *revenueService) List(ctx context.Context) ([]domain.Revenue, error) {
	return s.revenueRepo.List(ctx)
}
