package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/crm-backend/internal/entity"
)

// ErrTaskNotFound is returned when no task matches the lookup criteria.
var ErrTaskNotFound = errors.New("task not found")

// TaskInsert carries the fields persisted for a new task.
type TaskInsert struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Status      entity.TaskStatus
	ContactID   *int64
	CompanyID   *int64
}

// TaskUpdate patches task attributes; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *entity.TaskStatus
	ContactID   *int64
	CompanyID   *int64
}

// TaskListFilter narrows the task listing; set fields are AND-ed together.
// Status is matched against the stored canonical name.
type TaskListFilter struct {
	ContactID *int64
	CompanyID *int64
	Status    *string
}

// TasksRepository describes persistence operations for tasks.
type TasksRepository interface {
	List(ctx context.Context, filter TaskListFilter) ([]entity.Task, error)
	Get(ctx context.Context, id int64) (*entity.Task, error)
	Create(ctx context.Context, input TaskInsert) (*entity.Task, error)
	Update(ctx context.Context, id int64, patch TaskUpdate) (*entity.Task, error)
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// PGXTasksRepository implements TasksRepository using pgx.
type PGXTasksRepository struct {
	pool pgxPool
}

// NewPGXTasksRepository wires a pgx backed repository.
func NewPGXTasksRepository(pool *pgxpool.Pool) *PGXTasksRepository {
	return &PGXTasksRepository{pool: pool}
}

const taskSelect = `
	SELECT
		t.id,
		t.title,
		t.description,
		t.due_date,
		t.status,
		t.created_at,
		t.updated_at,
		t.contact_id,
		t.company_id,
		ct.name,
		co.name
	FROM tasks t
	LEFT JOIN contacts ct ON ct.id = t.contact_id
	LEFT JOIN companies co ON co.id = t.company_id
`

// List returns tasks matching the filter, ordered by due date ascending.
func (r *PGXTasksRepository) List(ctx context.Context, filter TaskListFilter) ([]entity.Task, error) {
	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if filter.ContactID != nil {
		clauses = append(clauses, fmt.Sprintf("t.contact_id = $%d", idx))
		args = append(args, *filter.ContactID)
		idx++
	}
	if filter.CompanyID != nil {
		clauses = append(clauses, fmt.Sprintf("t.company_id = $%d", idx))
		args = append(args, *filter.CompanyID)
		idx++
	}
	if filter.Status != nil {
		clauses = append(clauses, fmt.Sprintf("t.status = $%d", idx))
		args = append(args, *filter.Status)
		idx++
	}

	query := taskSelect
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY t.due_date ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// Get fetches a single task by id.
func (r *PGXTasksRepository) Get(ctx context.Context, id int64) (*entity.Task, error) {
	rows, err := r.pool.Query(ctx, taskSelect+` WHERE t.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrTaskNotFound
	}
	return &tasks[0], nil
}

// Create inserts a task row and returns the stored record.
func (r *PGXTasksRepository) Create(ctx context.Context, input TaskInsert) (*entity.Task, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, due_date, status, contact_id, company_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, input.Title, input.Description, input.DueDate, string(input.Status), input.ContactID, input.CompanyID).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	return r.Get(ctx, id)
}

// Update patches the provided fields and refreshes updated_at.
func (r *PGXTasksRepository) Update(ctx context.Context, id int64, patch TaskUpdate) (*entity.Task, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	if patch.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", idx))
		args = append(args, *patch.Title)
		idx++
	}
	if patch.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", idx))
		args = append(args, *patch.Description)
		idx++
	}
	if patch.DueDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("due_date = $%d", idx))
		args = append(args, *patch.DueDate)
		idx++
	}
	if patch.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", idx))
		args = append(args, string(*patch.Status))
		idx++
	}
	if patch.ContactID != nil {
		setClauses = append(setClauses, fmt.Sprintf("contact_id = $%d", idx))
		args = append(args, *patch.ContactID)
		idx++
	}
	if patch.CompanyID != nil {
		setClauses = append(setClauses, fmt.Sprintf("company_id = $%d", idx))
		args = append(args, *patch.CompanyID)
		idx++
	}

	if len(setClauses) == 0 {
		return r.Get(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), idx)
	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, ErrTaskNotFound
	}

	return r.Get(ctx, id)
}

// Delete removes a task by id.
func (r *PGXTasksRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// CountByStatus groups tasks by their stored status name. Statuses with no
// tasks are absent; the service layer seeds the zeroes.
func (r *PGXTasksRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count tasks by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan task count: %w", err)
		}
		counts[status] = int(count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task counts: %w", err)
	}
	return counts, nil
}

func scanTasks(rows pgx.Rows) ([]entity.Task, error) {
	var tasks []entity.Task
	for rows.Next() {
		var (
			t           entity.Task
			description sql.NullString
			dueDate     sql.NullTime
			status      string
			contactID   sql.NullInt64
			companyID   sql.NullInt64
			contactName sql.NullString
			companyName sql.NullString
		)

		err := rows.Scan(
			&t.ID,
			&t.Title,
			&description,
			&dueDate,
			&status,
			&t.CreatedAt,
			&t.UpdatedAt,
			&contactID,
			&companyID,
			&contactName,
			&companyName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}

		t.Description = nullStringToPtr(description)
		t.DueDate = nullTimeToPtr(dueDate)
		t.Status = entity.TaskStatus(status)
		t.ContactID = nullInt64ToPtr(contactID)
		t.CompanyID = nullInt64ToPtr(companyID)
		t.ContactName = nullStringToPtr(contactName)
		t.CompanyName = nullStringToPtr(companyName)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}
