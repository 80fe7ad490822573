package service

import (
	"context"
	"fmt"

	"github.com/octobees/crm-backend/internal/dto"
	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/repository"
)

// InteractionsService creates and lists interactions; each create also writes
// a notification in the same transaction.
type InteractionsService struct {
	interactions repository.InteractionsRepository
	contacts     repository.ContactsRepository
	companies    repository.CompaniesRepository
}

// NewInteractionsService creates a new instance of InteractionsService.
func NewInteractionsService(interactions repository.InteractionsRepository, contacts repository.ContactsRepository, companies repository.CompaniesRepository) *InteractionsService {
	return &InteractionsService{interactions: interactions, contacts: contacts, companies: companies}
}

// List returns every interaction, newest first.
func (s *InteractionsService) List(ctx context.Context) ([]entity.Interaction, error) {
	return s.interactions.List(ctx)
}

// Count returns the total number of interactions.
func (s *InteractionsService) Count(ctx context.Context) (int64, error) {
	return s.interactions.Count(ctx)
}

// Create validates the payload, resolves the linked contact/company (a
// missing one is a not-found error, not a validation error) and persists the
// interaction plus its notification atomically.
func (s *InteractionsService) Create(ctx context.Context, payload dto.InteractionCreate) (*entity.Interaction, error) {
	if payload.InteractionType == "" {
		return nil, requiredFieldError("interaction_type")
	}
	if payload.ContactID == nil && payload.CompanyID == nil {
		return nil, ValidationError{Message: "At least one of contact_id or company_id is required"}
	}

	interactionDate, err := parseOptionalTimestamp(payload.InteractionDate, "interaction_date")
	if err != nil {
		return nil, err
	}

	var contactName, companyName string
	if payload.ContactID != nil {
		contact, err := s.contacts.Get(ctx, *payload.ContactID)
		if err != nil {
			return nil, err
		}
		contactName = contact.Name
	}
	if payload.CompanyID != nil {
		company, err := s.companies.Get(ctx, *payload.CompanyID)
		if err != nil {
			return nil, err
		}
		companyName = company.Name
	}

	message := notificationMessage(payload.InteractionType, contactName, companyName)

	return s.interactions.CreateWithNotification(ctx, repository.InteractionInsert{
		InteractionType: payload.InteractionType,
		Notes:           payload.Notes,
		InteractionDate: interactionDate,
		ContactID:       payload.ContactID,
		CompanyID:       payload.CompanyID,
	}, message)
}

// Delete removes an interaction by id.
func (s *InteractionsService) Delete(ctx context.Context, id int64) error {
	return s.interactions.Delete(ctx, id)
}

func notificationMessage(interactionType, contactName, companyName string) string {
	switch {
	case contactName != "" && companyName != "":
		return fmt.Sprintf("New %s interaction with %s (%s)", interactionType, contactName, companyName)
	case contactName != "":
		return fmt.Sprintf("New %s interaction with %s", interactionType, contactName)
	default:
		return fmt.Sprintf("New %s interaction with %s", interactionType, companyName)
	}
}
