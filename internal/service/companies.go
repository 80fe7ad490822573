package service

import (
	"context"

	"github.com/octobees/crm-backend/internal/dto"
	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/repository"
)

// CompaniesService exposes company CRUD.
type CompaniesService struct {
	companies    repository.CompaniesRepository
	interactions repository.InteractionsRepository
}

// NewCompaniesService creates a new instance of CompaniesService.
func NewCompaniesService(companies repository.CompaniesRepository, interactions repository.InteractionsRepository) *CompaniesService {
	return &CompaniesService{companies: companies, interactions: interactions}
}

// List returns every company.
func (s *CompaniesService) List(ctx context.Context) ([]entity.Company, error) {
	return s.companies.List(ctx)
}

// Get returns a company together with its interactions, newest first.
func (s *CompaniesService) Get(ctx context.Context, id int64) (*entity.CompanyDetail, error) {
	company, err := s.companies.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	interactions, err := s.interactions.ListForCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if interactions == nil {
		interactions = []entity.Interaction{}
	}

	return &entity.CompanyDetail{Company: *company, Interactions: interactions}, nil
}

// Create persists a new company. Name is the only required field; duplicate
// names are left to the unique constraint rather than pre-checked.
func (s *CompaniesService) Create(ctx context.Context, payload dto.CompanyCreate) (*entity.Company, error) {
	if payload.Name == "" {
		return nil, requiredFieldError("name")
	}
	return s.companies.Create(ctx, payload.Name, payload.Website, payload.Address)
}

// Update applies a partial update; an empty name is ignored.
func (s *CompaniesService) Update(ctx context.Context, id int64, payload dto.CompanyPatch) (*entity.Company, error) {
	patch := repository.CompanyUpdate{
		Website: payload.Website,
		Address: payload.Address,
	}
	if payload.Name != nil && *payload.Name != "" {
		patch.Name = payload.Name
	}
	return s.companies.Update(ctx, id, patch)
}

// Delete removes a company; its interactions and tasks cascade away while
// contacts and meetings are orphaned with a null company_id.
func (s *CompaniesService) Delete(ctx context.Context, id int64) error {
	return s.companies.Delete(ctx, id)
}
