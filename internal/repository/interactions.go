package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/crm-backend/internal/entity"
)

// ErrInteractionNotFound is returned when no interaction matches the lookup criteria.
var ErrInteractionNotFound = errors.New("interaction not found")

// InteractionInsert carries the fields persisted for a new interaction. A nil
// InteractionDate defers to the database clock.
type InteractionInsert struct {
	InteractionType string
	Notes           *string
	InteractionDate *time.Time
	ContactID       *int64
	CompanyID       *int64
}

// InteractionsRepository describes persistence operations for interactions
// and the notifications written alongside them.
type InteractionsRepository interface {
	List(ctx context.Context) ([]entity.Interaction, error)
	ListForContact(ctx context.Context, contactID int64) ([]entity.Interaction, error)
	ListForCompany(ctx context.Context, companyID int64) ([]entity.Interaction, error)
	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context) (map[string]int, error)
	CreateWithNotification(ctx context.Context, input InteractionInsert, message string) (*entity.Interaction, error)
	Delete(ctx context.Context, id int64) error
}

// PGXInteractionsRepository implements InteractionsRepository using pgx.
type PGXInteractionsRepository struct {
	pool pgxPool
}

// NewPGXInteractionsRepository wires a pgx backed repository.
func NewPGXInteractionsRepository(pool *pgxpool.Pool) *PGXInteractionsRepository {
	return &PGXInteractionsRepository{pool: pool}
}

const interactionSelect = `
	SELECT
		i.id,
		i.interaction_type,
		i.notes,
		i.interaction_date,
		i.contact_id,
		i.company_id,
		ct.name,
		ct.email,
		co.name
	FROM interactions i
	LEFT JOIN contacts ct ON ct.id = i.contact_id
	LEFT JOIN companies co ON co.id = i.company_id
`

// List returns every interaction, newest first.
func (r *PGXInteractionsRepository) List(ctx context.Context) ([]entity.Interaction, error) {
	rows, err := r.pool.Query(ctx, interactionSelect+` ORDER BY i.interaction_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	return scanInteractions(rows)
}

// ListForContact returns a contact's interactions, newest first.
func (r *PGXInteractionsRepository) ListForContact(ctx context.Context, contactID int64) ([]entity.Interaction, error) {
	rows, err := r.pool.Query(ctx, interactionSelect+` WHERE i.contact_id = $1 ORDER BY i.interaction_date DESC`, contactID)
	if err != nil {
		return nil, fmt.Errorf("list contact interactions: %w", err)
	}
	defer rows.Close()

	return scanInteractions(rows)
}

// ListForCompany returns a company's interactions, newest first.
func (r *PGXInteractionsRepository) ListForCompany(ctx context.Context, companyID int64) ([]entity.Interaction, error) {
	rows, err := r.pool.Query(ctx, interactionSelect+` WHERE i.company_id = $1 ORDER BY i.interaction_date DESC`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list company interactions: %w", err)
	}
	defer rows.Close()

	return scanInteractions(rows)
}

// Count returns the total number of interactions.
func (r *PGXInteractionsRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM interactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}
	return count, nil
}

// CountByType groups interactions by their free-text type.
func (r *PGXInteractionsRepository) CountByType(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT interaction_type, COUNT(*) FROM interactions GROUP BY interaction_type`)
	if err != nil {
		return nil, fmt.Errorf("count interactions by type: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			interactionType string
			count           int64
		)
		if err := rows.Scan(&interactionType, &count); err != nil {
			return nil, fmt.Errorf("scan interaction count: %w", err)
		}
		counts[interactionType] = int(count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interaction counts: %w", err)
	}
	return counts, nil
}

// CreateWithNotification inserts an interaction and its notification in one
// transaction; both commit or neither does.
func (r *PGXInteractionsRepository) CreateWithNotification(ctx context.Context, input InteractionInsert, message string) (*entity.Interaction, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("start interaction tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO interactions (interaction_type, notes, interaction_date, contact_id, company_id)
		VALUES ($1, $2, COALESCE($3, NOW()), $4, $5)
		RETURNING id
	`, input.InteractionType, input.Notes, input.InteractionDate, input.ContactID, input.CompanyID).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert interaction: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO notifications (message, link_contact_id, link_company_id, link_interaction_id)
		VALUES ($1, $2, $3, $4)
	`, message, input.ContactID, input.CompanyID, id)
	if err != nil {
		return nil, fmt.Errorf("insert interaction notification: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit interaction tx: %w", err)
	}

	return r.get(ctx, id)
}

// Delete removes an interaction by id.
func (r *PGXInteractionsRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM interactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete interaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrInteractionNotFound
	}
	return nil
}

func (r *PGXInteractionsRepository) get(ctx context.Context, id int64) (*entity.Interaction, error) {
	rows, err := r.pool.Query(ctx, interactionSelect+` WHERE i.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get interaction: %w", err)
	}
	defer rows.Close()

	interactions, err := scanInteractions(rows)
	if err != nil {
		return nil, err
	}
	if len(interactions) == 0 {
		return nil, ErrInteractionNotFound
	}
	return &interactions[0], nil
}

func scanInteractions(rows pgx.Rows) ([]entity.Interaction, error) {
	var interactions []entity.Interaction
	for rows.Next() {
		var (
			in           entity.Interaction
			notes        sql.NullString
			contactID    sql.NullInt64
			companyID    sql.NullInt64
			contactName  sql.NullString
			contactEmail sql.NullString
			companyName  sql.NullString
		)

		err := rows.Scan(
			&in.ID,
			&in.InteractionType,
			&notes,
			&in.InteractionDate,
			&contactID,
			&companyID,
			&contactName,
			&contactEmail,
			&companyName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}

		in.Notes = nullStringToPtr(notes)
		in.ContactID = nullInt64ToPtr(contactID)
		in.CompanyID = nullInt64ToPtr(companyID)
		if contactID.Valid && contactName.Valid {
			in.Contact = &entity.ContactRef{
				ID:    contactID.Int64,
				Name:  contactName.String,
				Email: contactEmail.String,
			}
		}
		if companyID.Valid && companyName.Valid {
			in.Company = &entity.CompanyRef{
				ID:   companyID.Int64,
				Name: companyName.String,
			}
		}

		interactions = append(interactions, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interactions: %w", err)
	}
	return interactions, nil
}
