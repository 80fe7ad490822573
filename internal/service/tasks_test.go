package service

import (
	"context"
	"errors"
	"testing"

	"github.com/octobees/crm-backend/internal/dto"
	"github.com/octobees/crm-backend/internal/entity"
)

func TestTasksService_Create_RequiresTitleAndLink(t *testing.T) {
	svc := NewTasksService(newFakeTasksRepo())

	_, err := svc.Create(context.Background(), dto.TaskCreate{ContactID: int64Ptr(1)})
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validationErr.Message != "Field 'title' is required" {
		t.Fatalf("unexpected message: %s", validationErr.Message)
	}

	_, err = svc.Create(context.Background(), dto.TaskCreate{Title: "Follow up"})
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validationErr.Message != "At least one of contact_id or company_id is required" {
		t.Fatalf("unexpected message: %s", validationErr.Message)
	}
}

func TestTasksService_Create_DefaultsToPending(t *testing.T) {
	repo := newFakeTasksRepo()
	svc := NewTasksService(repo)

	task, err := svc.Create(context.Background(), dto.TaskCreate{Title: "Follow up", ContactID: int64Ptr(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != entity.TaskPending {
		t.Fatalf("expected PENDING default, got %s", task.Status)
	}
}

func TestTasksService_Create_AcceptsDisplayStatus(t *testing.T) {
	repo := newFakeTasksRepo()
	svc := NewTasksService(repo)

	_, err := svc.Create(context.Background(), dto.TaskCreate{
		Title:     "Follow up",
		ContactID: int64Ptr(1),
		Status:    strPtr("In Progress"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastInsert.Status != entity.TaskInProgress {
		t.Fatalf("expected IN_PROGRESS, got %s", repo.lastInsert.Status)
	}
}

func TestTasksService_Create_RejectsUnknownStatus(t *testing.T) {
	svc := NewTasksService(newFakeTasksRepo())

	_, err := svc.Create(context.Background(), dto.TaskCreate{
		Title:     "Follow up",
		ContactID: int64Ptr(1),
		Status:    strPtr("SOMEDAY"),
	})
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validationErr.Message != "Invalid status 'SOMEDAY'" {
		t.Fatalf("unexpected message: %s", validationErr.Message)
	}
}

func TestTasksService_List_NormalizesStatusFilter(t *testing.T) {
	repo := newFakeTasksRepo()
	svc := NewTasksService(repo)

	_, err := svc.List(context.Background(), dto.TaskFilter{Status: strPtr("In Progress")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Status == nil || *repo.lastFilter.Status != "IN_PROGRESS" {
		t.Fatalf("expected canonical status filter, got %v", repo.lastFilter.Status)
	}
}

func TestTasksService_List_PassesUnknownStatusThrough(t *testing.T) {
	repo := newFakeTasksRepo()
	svc := NewTasksService(repo)

	_, err := svc.List(context.Background(), dto.TaskFilter{Status: strPtr("SOMEDAY")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Status == nil || *repo.lastFilter.Status != "SOMEDAY" {
		t.Fatalf("expected raw status passed through, got %v", repo.lastFilter.Status)
	}
}

func TestTasksService_CountByStatus_SeedsAllStatuses(t *testing.T) {
	repo := newFakeTasksRepo()
	repo.counts = map[string]int{"PENDING": 3}
	svc := NewTasksService(repo)

	counts, err := svc.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 4 {
		t.Fatalf("expected four statuses, got %v", counts)
	}
	if counts["PENDING"] != 3 {
		t.Fatalf("expected stored count kept, got %d", counts["PENDING"])
	}
	for _, key := range []string{"IN_PROGRESS", "COMPLETED", "OVERDUE"} {
		if counts[key] != 0 {
			t.Fatalf("expected %s seeded to zero, got %d", key, counts[key])
		}
	}
}
