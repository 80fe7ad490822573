package service

import (
	"context"
	"errors"
	"testing"

	"github.com/octobees/crm-backend/internal/dto"
	"github.com/octobees/crm-backend/internal/entity"
)

func TestCompaniesService_Create_RequiresName(t *testing.T) {
	svc := NewCompaniesService(newFakeCompaniesRepo(), newFakeInteractionsRepo())

	_, err := svc.Create(context.Background(), dto.CompanyCreate{Website: strPtr("https://acme.dev")})
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validationErr.Message != "Field 'name' is required" {
		t.Fatalf("unexpected message: %s", validationErr.Message)
	}
}

func TestCompaniesService_Update_IgnoresEmptyName(t *testing.T) {
	repo := newFakeCompaniesRepo(&entity.Company{ID: 1, Name: "Acme"})
	svc := NewCompaniesService(repo, newFakeInteractionsRepo())

	_, err := svc.Update(context.Background(), 1, dto.CompanyPatch{Name: strPtr(""), Address: strPtr("1 Main St")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastPatch.Name != nil {
		t.Fatalf("expected empty name ignored, got %v", *repo.lastPatch.Name)
	}
	if repo.lastPatch.Address == nil || *repo.lastPatch.Address != "1 Main St" {
		t.Fatalf("expected address applied, got %v", repo.lastPatch.Address)
	}
}

func TestCompaniesService_Get_ComposesInteractions(t *testing.T) {
	companies := newFakeCompaniesRepo(&entity.Company{ID: 3, Name: "Acme"})
	interactions := newFakeInteractionsRepo()
	interactions.byCompany[3] = []entity.Interaction{{ID: 9, InteractionType: "Email"}}
	svc := NewCompaniesService(companies, interactions)

	detail, err := svc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Interactions) != 1 || detail.Interactions[0].ID != 9 {
		t.Fatalf("expected one interaction, got %+v", detail.Interactions)
	}
}
