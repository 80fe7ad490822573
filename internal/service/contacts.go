package service

import (
	"context"
	"fmt"

	"github.com/octobees/crm-backend/internal/dto"
	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/repository"
)

// ContactsService exposes contact CRUD with the legacy validation rules.
type ContactsService struct {
	contacts     repository.ContactsRepository
	companies    repository.CompaniesRepository
	interactions repository.InteractionsRepository
}

// NewContactsService creates a new instance of ContactsService.
func NewContactsService(contacts repository.ContactsRepository, companies repository.CompaniesRepository, interactions repository.InteractionsRepository) *ContactsService {
	return &ContactsService{contacts: contacts, companies: companies, interactions: interactions}
}

// List returns every contact.
func (s *ContactsService) List(ctx context.Context) ([]entity.Contact, error) {
	return s.contacts.List(ctx)
}

// Get returns a contact together with its interactions, newest first.
func (s *ContactsService) Get(ctx context.Context, id int64) (*entity.ContactDetail, error) {
	contact, err := s.contacts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	interactions, err := s.interactions.ListForContact(ctx, id)
	if err != nil {
		return nil, err
	}
	if interactions == nil {
		interactions = []entity.Interaction{}
	}

	return &entity.ContactDetail{Contact: *contact, Interactions: interactions}, nil
}

// Create validates and persists a new contact. Name and email are required;
// contact_type defaults to LEAD.
func (s *ContactsService) Create(ctx context.Context, payload dto.ContactCreate) (*entity.Contact, error) {
	if payload.Name == "" {
		return nil, requiredFieldError("name")
	}
	if payload.Email == "" {
		return nil, requiredFieldError("email")
	}

	input := repository.ContactInsert{
		Name:        payload.Name,
		Email:       normalizeEmail(payload.Email),
		ContactType: entity.ContactTypeLead,
		CompanyID:   payload.CompanyID,
	}
	if payload.Phone != nil {
		phone := normalizePhone(*payload.Phone)
		input.Phone = &phone
	}
	if payload.ContactType != nil {
		ct, err := entity.ParseContactType(*payload.ContactType)
		if err != nil {
			return nil, ValidationError{Message: fmt.Sprintf("Invalid contact_type '%s'", *payload.ContactType)}
		}
		input.ContactType = ct
	}
	if payload.SalesStage != nil {
		stage, err := entity.ParseSalesStage(*payload.SalesStage)
		if err != nil {
			return nil, ValidationError{Message: fmt.Sprintf("Invalid sales_stage '%s'", *payload.SalesStage)}
		}
		input.SalesStage = &stage
	}

	return s.contacts.Create(ctx, input)
}

// Update applies a partial update. Empty name/email values are ignored rather
// than rejected, and a company_id pointing at a missing company is silently
// dropped; both quirks are long-standing API behaviour.
func (s *ContactsService) Update(ctx context.Context, id int64, payload dto.ContactPatch) (*entity.Contact, error) {
	patch := repository.ContactUpdate{}

	if payload.Name != nil && *payload.Name != "" {
		patch.Name = payload.Name
	}
	if payload.Email != nil && *payload.Email != "" {
		email := normalizeEmail(*payload.Email)
		patch.Email = &email
	}
	if payload.Phone != nil {
		phone := normalizePhone(*payload.Phone)
		patch.Phone = &phone
	}
	if payload.ContactType != nil {
		ct, err := entity.ParseContactType(*payload.ContactType)
		if err != nil {
			return nil, ValidationError{Message: fmt.Sprintf("Invalid contact_type '%s'", *payload.ContactType)}
		}
		patch.ContactType = &ct
	}
	if payload.SalesStage != nil {
		stage, err := entity.ParseSalesStage(*payload.SalesStage)
		if err != nil {
			return nil, ValidationError{Message: fmt.Sprintf("Invalid sales_stage '%s'", *payload.SalesStage)}
		}
		patch.SalesStage = &stage
	}
	if payload.CompanyID != nil {
		exists, err := s.companies.Exists(ctx, *payload.CompanyID)
		if err != nil {
			return nil, err
		}
		if exists {
			patch.CompanyID = payload.CompanyID
		}
	}

	return s.contacts.Update(ctx, id, patch)
}

// Delete removes a contact; owned interactions, tasks and attendance rows go
// with it.
func (s *ContactsService) Delete(ctx context.Context, id int64) error {
	return s.contacts.Delete(ctx, id)
}
