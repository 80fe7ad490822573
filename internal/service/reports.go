package service

import (
	"context"

	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/repository"
)

// ReportsService produces the aggregate views used by the dashboard.
type ReportsService struct {
	interactions repository.InteractionsRepository
	contacts     repository.ContactsRepository
}

// NewReportsService creates a new instance of ReportsService.
func NewReportsService(interactions repository.InteractionsRepository, contacts repository.ContactsRepository) *ReportsService {
	return &ReportsService{interactions: interactions, contacts: contacts}
}

// InteractionsByType maps interaction type to count. The four canonical types
// are always present, seeded with zero, and ad-hoc types recorded in the data
// appear alongside them.
func (s *ReportsService) InteractionsByType(ctx context.Context) (map[string]int, error) {
	stored, err := s.interactions.CountByType(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(entity.CanonicalInteractionTypes)+len(stored))
	for _, interactionType := range entity.CanonicalInteractionTypes {
		counts[interactionType] = 0
	}
	for interactionType, count := range stored {
		counts[interactionType] = count
	}
	return counts, nil
}

// SalesPipeline groups contacts with a sales stage into a mapping keyed by
// every stage value; stages with no contacts map to empty lists.
func (s *ReportsService) SalesPipeline(ctx context.Context) (map[string][]entity.Contact, error) {
	contacts, err := s.contacts.ListWithStage(ctx)
	if err != nil {
		return nil, err
	}

	pipeline := make(map[string][]entity.Contact, len(entity.SalesStages))
	for _, stage := range entity.SalesStages {
		pipeline[string(stage)] = []entity.Contact{}
	}
	for _, contact := range contacts {
		if contact.SalesStage == nil {
			continue
		}
		stage := string(*contact.SalesStage)
		pipeline[stage] = append(pipeline[stage], contact)
	}
	return pipeline, nil
}
