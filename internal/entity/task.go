package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TaskStatus is stored and filtered by its canonical name (PENDING,
// IN_PROGRESS, ...) but serialized inside task bodies as its display value
// (Pending, In Progress, ...). The old frontend depends on both forms, so the
// split is deliberate: /api/tasks/count keys by name while task objects carry
// the display value.
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskOverdue    TaskStatus = "OVERDUE"
)

// TaskStatuses lists every status in display order.
var TaskStatuses = []TaskStatus{TaskPending, TaskInProgress, TaskCompleted, TaskOverdue}

var taskStatusDisplay = map[TaskStatus]string{
	TaskPending:    "Pending",
	TaskInProgress: "In Progress",
	TaskCompleted:  "Completed",
	TaskOverdue:    "Overdue",
}

// Display returns the human-readable form used in task serializations.
func (s TaskStatus) Display() string {
	if display, ok := taskStatusDisplay[s]; ok {
		return display
	}
	return string(s)
}

// MarshalJSON emits the display value.
func (s TaskStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Display())
}

// UnmarshalJSON accepts either the canonical name or the display value.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTaskStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseTaskStatus resolves a wire value in either representation.
func ParseTaskStatus(value string) (TaskStatus, error) {
	trimmed := strings.TrimSpace(value)
	byName := TaskStatus(strings.ToUpper(strings.ReplaceAll(trimmed, " ", "_")))
	for status, display := range taskStatusDisplay {
		if status == byName || strings.EqualFold(display, trimmed) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown task status %q", value)
}

// Task is a to-do item attached to a contact and/or a company.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ContactID   *int64     `json:"contact_id"`
	CompanyID   *int64     `json:"company_id"`
	ContactName *string    `json:"contact_name"`
	CompanyName *string    `json:"company_name"`
}
