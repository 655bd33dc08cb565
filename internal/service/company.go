package service

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) Get(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("no company under ID #%d: %w", id, err)
	}
	return company, nil
}

func (s *companyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.companyRepo.List(ctx)
}

func (s *companyService) Add(ctx context.Context, company *domain.Company) error {
	return s.companyRepo.Create(ctx, company)
}

func (s *companyService) Edit(ctx context.Context, id int64, company *domain.Company) (*domain.Company, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = company.Name
	existing.Domain = company.Domain
	existing.Address = company.Address
	existing.Owner = company.Owner
	existing.Logo = company.Logo
	if err := s.companyRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *companyService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.companyRepo.Delete(ctx, id)
}
