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

// ErrMeetingNotFound is returned when no meeting matches the lookup criteria.
var ErrMeetingNotFound = errors.New("meeting not found")

// MeetingInsert carries the fields persisted for a new meeting. AttendeeIDs
// must already be validated against existing contacts.
type MeetingInsert struct {
	Title       string
	Description *string
	Location    *string
	Start       time.Time
	End         time.Time
	Status      string
	CompanyID   *int64
	AttendeeIDs []int64
}

// MeetingUpdate patches meeting attributes; nil fields are left untouched. A
// non-nil AttendeeIDs replaces the attendance wholesale.
type MeetingUpdate struct {
	Title       *string
	Description *string
	Location    *string
	Start       *time.Time
	End         *time.Time
	Status      *string
	CompanyID   *int64
	AttendeeIDs *[]int64
}

// MeetingsRepository describes persistence operations for meetings and their
// attendance rows.
type MeetingsRepository interface {
	List(ctx context.Context, includePast bool) ([]entity.Meeting, error)
	Get(ctx context.Context, id int64) (*entity.Meeting, error)
	Create(ctx context.Context, input MeetingInsert) (*entity.Meeting, error)
	Update(ctx context.Context, id int64, patch MeetingUpdate) (*entity.Meeting, error)
	Delete(ctx context.Context, id int64) error
	UpcomingCount(ctx context.Context) (int64, error)
}

// PGXMeetingsRepository implements MeetingsRepository using pgx.
type PGXMeetingsRepository struct {
	pool pgxPool
}

// NewPGXMeetingsRepository wires a pgx backed repository.
func NewPGXMeetingsRepository(pool *pgxpool.Pool) *PGXMeetingsRepository {
	return &PGXMeetingsRepository{pool: pool}
}

const meetingSelect = `
	SELECT
		m.id,
		m.title,
		m.description,
		m.location,
		m.starts_at,
		m.ends_at,
		m.status,
		m.created_at,
		m.updated_at,
		m.company_id,
		co.name
	FROM meetings m
	LEFT JOIN companies co ON co.id = m.company_id
`

// List returns meetings ordered by start time. Unless includePast is set,
// only meetings starting at or after the current time are returned.
func (r *PGXMeetingsRepository) List(ctx context.Context, includePast bool) ([]entity.Meeting, error) {
	query := meetingSelect
	if !includePast {
		query += ` WHERE m.starts_at >= NOW()`
	}
	query += ` ORDER BY m.starts_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer rows.Close()

	meetings, err := scanMeetings(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachAttendees(ctx, meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// Get fetches a single meeting with its attendees.
func (r *PGXMeetingsRepository) Get(ctx context.Context, id int64) (*entity.Meeting, error) {
	rows, err := r.pool.Query(ctx, meetingSelect+` WHERE m.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	defer rows.Close()

	meetings, err := scanMeetings(rows)
	if err != nil {
		return nil, err
	}
	if len(meetings) == 0 {
		return nil, ErrMeetingNotFound
	}
	if err := r.attachAttendees(ctx, meetings); err != nil {
		return nil, err
	}
	return &meetings[0], nil
}

// Create inserts a meeting and its attendance rows in one transaction.
func (r *PGXMeetingsRepository) Create(ctx context.Context, input MeetingInsert) (*entity.Meeting, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("start meeting tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO meetings (title, description, location, starts_at, ends_at, status, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, input.Title, input.Description, input.Location, input.Start, input.End, input.Status, input.CompanyID).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert meeting: %w", err)
	}

	if err := insertAttendees(ctx, tx, id, input.AttendeeIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit meeting tx: %w", err)
	}

	return r.Get(ctx, id)
}

// Update patches the provided fields; a non-nil attendee list clears and
// re-adds the attendance rows in the same transaction.
func (r *PGXMeetingsRepository) Update(ctx context.Context, id int64, patch MeetingUpdate) (*entity.Meeting, error) {
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
	if patch.Location != nil {
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", idx))
		args = append(args, *patch.Location)
		idx++
	}
	if patch.Start != nil {
		setClauses = append(setClauses, fmt.Sprintf("starts_at = $%d", idx))
		args = append(args, *patch.Start)
		idx++
	}
	if patch.End != nil {
		setClauses = append(setClauses, fmt.Sprintf("ends_at = $%d", idx))
		args = append(args, *patch.End)
		idx++
	}
	if patch.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", idx))
		args = append(args, *patch.Status)
		idx++
	}
	if patch.CompanyID != nil {
		setClauses = append(setClauses, fmt.Sprintf("company_id = $%d", idx))
		args = append(args, *patch.CompanyID)
		idx++
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("start meeting tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if len(setClauses) > 0 {
		setClauses = append(setClauses, "updated_at = NOW()")
		args = append(args, id)

		query := fmt.Sprintf(`UPDATE meetings SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), idx)
		cmd, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("update meeting: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return nil, ErrMeetingNotFound
		}
	} else {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM meetings WHERE id = $1)`, id).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check meeting exists: %w", err)
		}
		if !exists {
			return nil, ErrMeetingNotFound
		}
	}

	if patch.AttendeeIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM meeting_attendees WHERE meeting_id = $1`, id); err != nil {
			return nil, fmt.Errorf("clear meeting attendees: %w", err)
		}
		if err := insertAttendees(ctx, tx, id, *patch.AttendeeIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit meeting tx: %w", err)
	}

	return r.Get(ctx, id)
}

// Delete removes a meeting; attendance rows cascade away.
func (r *PGXMeetingsRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrMeetingNotFound
	}
	return nil
}

// UpcomingCount counts meetings starting at or after the current time.
func (r *PGXMeetingsRepository) UpcomingCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM meetings WHERE starts_at >= NOW()`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count upcoming meetings: %w", err)
	}
	return count, nil
}

func insertAttendees(ctx context.Context, tx pgx.Tx, meetingID int64, contactIDs []int64) error {
	for _, contactID := range contactIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO meeting_attendees (meeting_id, contact_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, meetingID, contactID)
		if err != nil {
			return fmt.Errorf("insert meeting attendee %d: %w", contactID, err)
		}
	}
	return nil
}

func (r *PGXMeetingsRepository) attachAttendees(ctx context.Context, meetings []entity.Meeting) error {
	ids := make([]int64, 0, len(meetings))
	for i := range meetings {
		meetings[i].Attendees = []entity.Attendee{}
		ids = append(ids, meetings[i].ID)
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT ma.meeting_id, c.id, c.name
		FROM meeting_attendees ma
		JOIN contacts c ON c.id = ma.contact_id
		WHERE ma.meeting_id = ANY($1)
		ORDER BY c.id
	`, ids)
	if err != nil {
		return fmt.Errorf("list meeting attendees: %w", err)
	}
	defer rows.Close()

	byMeeting := make(map[int64][]entity.Attendee)
	for rows.Next() {
		var (
			meetingID int64
			attendee  entity.Attendee
		)
		if err := rows.Scan(&meetingID, &attendee.ID, &attendee.Name); err != nil {
			return fmt.Errorf("scan meeting attendee: %w", err)
		}
		byMeeting[meetingID] = append(byMeeting[meetingID], attendee)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate meeting attendees: %w", err)
	}

	for i := range meetings {
		if attendees, ok := byMeeting[meetings[i].ID]; ok {
			meetings[i].Attendees = attendees
		}
	}
	return nil
}

func scanMeetings(rows pgx.Rows) ([]entity.Meeting, error) {
	var meetings []entity.Meeting
	for rows.Next() {
		var (
			m           entity.Meeting
			description sql.NullString
			location    sql.NullString
			companyID   sql.NullInt64
			companyName sql.NullString
		)

		err := rows.Scan(
			&m.ID,
			&m.Title,
			&description,
			&location,
			&m.Start,
			&m.End,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
			&companyID,
			&companyName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}

		m.Description = nullStringToPtr(description)
		m.Location = nullStringToPtr(location)
		m.CompanyID = nullInt64ToPtr(companyID)
		m.CompanyName = nullStringToPtr(companyName)
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meetings: %w", err)
	}
	return meetings, nil
}
