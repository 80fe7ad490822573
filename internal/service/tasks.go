package service

import (
	"context"
	"fmt"

	"github.com/octobees/crm-backend/internal/dto"
	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/repository"
)

// TasksService exposes task CRUD and the by-status count.
type TasksService struct {
	tasks repository.TasksRepository
}

// NewTasksService creates a new instance of TasksService.
func NewTasksService(tasks repository.TasksRepository) *TasksService {
	return &TasksService{tasks: tasks}
}

// List returns tasks matching the filter, ordered by due date. A status
// filter is normalized to its canonical name when it parses; unrecognized
// values are passed through and simply match nothing.
func (s *TasksService) List(ctx context.Context, filter dto.TaskFilter) ([]entity.Task, error) {
	repoFilter := repository.TaskListFilter{
		ContactID: filter.ContactID,
		CompanyID: filter.CompanyID,
	}
	if filter.Status != nil {
		status := *filter.Status
		if parsed, err := entity.ParseTaskStatus(status); err == nil {
			status = string(parsed)
		}
		repoFilter.Status = &status
	}
	return s.tasks.List(ctx, repoFilter)
}

// Get fetches a single task.
func (s *TasksService) Get(ctx context.Context, id int64) (*entity.Task, error) {
	return s.tasks.Get(ctx, id)
}

// Create validates and persists a task. Title and at least one of
// contact_id/company_id are required; status defaults to PENDING.
func (s *TasksService) Create(ctx context.Context, payload dto.TaskCreate) (*entity.Task, error) {
	if payload.Title == "" {
		return nil, requiredFieldError("title")
	}
	if payload.ContactID == nil && payload.CompanyID == nil {
		return nil, ValidationError{Message: "At least one of contact_id or company_id is required"}
	}

	dueDate, err := parseOptionalTimestamp(payload.DueDate, "due_date")
	if err != nil {
		return nil, err
	}

	status := entity.TaskPending
	if payload.Status != nil && *payload.Status != "" {
		parsed, err := entity.ParseTaskStatus(*payload.Status)
		if err != nil {
			return nil, ValidationError{Message: fmt.Sprintf("Invalid status '%s'", *payload.Status)}
		}
		status = parsed
	}

	return s.tasks.Create(ctx, repository.TaskInsert{
		Title:       payload.Title,
		Description: payload.Description,
		DueDate:     dueDate,
		Status:      status,
		ContactID:   payload.ContactID,
		CompanyID:   payload.CompanyID,
	})
}

// Update applies a partial update; an empty title is ignored.
func (s *TasksService) Update(ctx context.Context, id int64, payload dto.TaskPatch) (*entity.Task, error) {
	dueDate, err := parseOptionalTimestamp(payload.DueDate, "due_date")
	if err != nil {
		return nil, err
	}

	patch := repository.TaskUpdate{
		Description: payload.Description,
		DueDate:     dueDate,
		ContactID:   payload.ContactID,
		CompanyID:   payload.CompanyID,
	}
	if payload.Title != nil && *payload.Title != "" {
		patch.Title = payload.Title
	}
	if payload.Status != nil && *payload.Status != "" {
		parsed, err := entity.ParseTaskStatus(*payload.Status)
		if err != nil {
			return nil, ValidationError{Message: fmt.Sprintf("Invalid status '%s'", *payload.Status)}
		}
		patch.Status = &parsed
	}

	return s.tasks.Update(ctx, id, patch)
}

// Delete removes a task by id.
func (s *TasksService) Delete(ctx context.Context, id int64) error {
	return s.tasks.Delete(ctx, id)
}

// CountByStatus maps every status name to its task count, zero-filled so the
// dashboard always sees all four statuses.
func (s *TasksService) CountByStatus(ctx context.Context) (map[string]int, error) {
	stored, err := s.tasks.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(entity.TaskStatuses))
	for _, status := range entity.TaskStatuses {
		counts[string(status)] = 0
	}
	for status, count := range stored {
		counts[status] = count
	}
	return counts, nil
}
