package service

import (
	"context"
	"testing"

	"github.com/octobees/crm-backend/internal/entity"
)

func TestReportsService_InteractionsByType_SeedsCanonicalTypes(t *testing.T) {
	interactions := newFakeInteractionsRepo()
	interactions.counts = map[string]int{"Call": 2, "Demo": 1}
	svc := NewReportsService(interactions, newFakeContactsRepo())

	counts, err := svc.InteractionsByType(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts["Call"] != 2 {
		t.Fatalf("expected stored Call count, got %d", counts["Call"])
	}
	if counts["Demo"] != 1 {
		t.Fatalf("expected ad-hoc type kept, got %d", counts["Demo"])
	}
	for _, key := range []string{"Email", "Meeting", "Note"} {
		if count, ok := counts[key]; !ok || count != 0 {
			t.Fatalf("expected %s seeded to zero, got %v", key, counts)
		}
	}
}

func TestReportsService_SalesPipeline_AllStagesPresent(t *testing.T) {
	stage := entity.StageProposal
	contacts := newFakeContactsRepo(
		&entity.Contact{ID: 1, Name: "Ada", Email: "ada@example.com", SalesStage: &stage},
		&entity.Contact{ID: 2, Name: "Grace", Email: "grace@example.com"},
	)
	svc := NewReportsService(newFakeInteractionsRepo(), contacts)

	pipeline, err := svc.SalesPipeline(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pipeline) != len(entity.SalesStages) {
		t.Fatalf("expected %d stages, got %d", len(entity.SalesStages), len(pipeline))
	}
	if len(pipeline["PROPOSAL"]) != 1 || pipeline["PROPOSAL"][0].ID != 1 {
		t.Fatalf("expected Ada in PROPOSAL, got %+v", pipeline["PROPOSAL"])
	}
	if len(pipeline["PROSPECTING"]) != 0 {
		t.Fatalf("expected empty stage list, got %+v", pipeline["PROSPECTING"])
	}
	if pipeline["CLOSED_LOST"] == nil {
		t.Fatal("expected empty slice for CLOSED_LOST, got nil")
	}
}
