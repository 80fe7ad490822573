package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/crm-backend/internal/entity"
)

// ErrContactNotFound is returned when no contact matches the lookup criteria.
var ErrContactNotFound = errors.New("contact not found")

// ContactInsert carries the fields persisted for a new contact.
type ContactInsert struct {
	Name        string
	Email       string
	Phone       *string
	ContactType entity.ContactType
	SalesStage  *entity.SalesStage
	CompanyID   *int64
}

// ContactUpdate patches contact attributes; nil fields are left untouched.
type ContactUpdate struct {
	Name        *string
	Email       *string
	Phone       *string
	ContactType *entity.ContactType
	SalesStage  *entity.SalesStage
	CompanyID   *int64
}

// ContactsRepository describes persistence operations for contacts.
type ContactsRepository interface {
	List(ctx context.Context) ([]entity.Contact, error)
	Get(ctx context.Context, id int64) (*entity.Contact, error)
	Create(ctx context.Context, input ContactInsert) (*entity.Contact, error)
	Update(ctx context.Context, id int64, patch ContactUpdate) (*entity.Contact, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	FilterExisting(ctx context.Context, ids []int64) ([]int64, error)
	ListWithStage(ctx context.Context) ([]entity.Contact, error)
}

// PGXContactsRepository implements ContactsRepository using pgx.
type PGXContactsRepository struct {
	pool pgxPool
}

// NewPGXContactsRepository wires a pgx backed repository.
func NewPGXContactsRepository(pool *pgxpool.Pool) *PGXContactsRepository {
	return &PGXContactsRepository{pool: pool}
}

const contactSelect = `
	SELECT
		c.id,
		c.name,
		c.email,
		c.phone,
		c.contact_type,
		c.sales_stage,
		c.created_at,
		c.updated_at,
		c.company_id,
		co.name,
		co.website,
		co.address,
		co.created_at,
		co.updated_at,
		(SELECT COUNT(*) FROM contacts WHERE company_id = co.id)
	FROM contacts c
	LEFT JOIN companies co ON co.id = c.company_id
`

// List returns every contact with its company nested one level deep.
func (r *PGXContactsRepository) List(ctx context.Context) ([]entity.Contact, error) {
	rows, err := r.pool.Query(ctx, contactSelect+` ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	return scanContacts(rows)
}

// ListWithStage returns contacts that sit somewhere in the sales pipeline.
func (r *PGXContactsRepository) ListWithStage(ctx context.Context) ([]entity.Contact, error) {
	rows, err := r.pool.Query(ctx, contactSelect+` WHERE c.sales_stage IS NOT NULL ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("list pipeline contacts: %w", err)
	}
	defer rows.Close()

	return scanContacts(rows)
}

// Get fetches a single contact by id.
func (r *PGXContactsRepository) Get(ctx context.Context, id int64) (*entity.Contact, error) {
	rows, err := r.pool.Query(ctx, contactSelect+` WHERE c.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	defer rows.Close()

	contacts, err := scanContacts(rows)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, ErrContactNotFound
	}
	return &contacts[0], nil
}

// Create inserts a contact row and returns the stored record.
func (r *PGXContactsRepository) Create(ctx context.Context, input ContactInsert) (*entity.Contact, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (name, email, phone, contact_type, sales_stage, company_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, input.Name, input.Email, input.Phone, string(input.ContactType), salesStageOrNil(input.SalesStage), input.CompanyID).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	return r.Get(ctx, id)
}

// Update patches the provided fields and refreshes updated_at.
func (r *PGXContactsRepository) Update(ctx context.Context, id int64, patch ContactUpdate) (*entity.Contact, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	if patch.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", idx))
		args = append(args, *patch.Name)
		idx++
	}
	if patch.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", idx))
		args = append(args, *patch.Email)
		idx++
	}
	if patch.Phone != nil {
		setClauses = append(setClauses, fmt.Sprintf("phone = $%d", idx))
		args = append(args, *patch.Phone)
		idx++
	}
	if patch.ContactType != nil {
		setClauses = append(setClauses, fmt.Sprintf("contact_type = $%d", idx))
		args = append(args, string(*patch.ContactType))
		idx++
	}
	if patch.SalesStage != nil {
		setClauses = append(setClauses, fmt.Sprintf("sales_stage = $%d", idx))
		args = append(args, string(*patch.SalesStage))
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

	query := fmt.Sprintf(`UPDATE contacts SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), idx)
	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, ErrContactNotFound
	}

	return r.Get(ctx, id)
}

// Delete removes a contact; interactions, tasks and meeting attendance rows
// go with it via the schema's cascade rules.
func (r *PGXContactsRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrContactNotFound
	}
	return nil
}

// Exists reports whether a contact row exists.
func (r *PGXContactsRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM contacts WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check contact exists: %w", err)
	}
	return exists, nil
}

// FilterExisting returns the subset of ids that identify real contacts,
// preserving the input order.
func (r *PGXContactsRepository) FilterExisting(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id FROM contacts WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("filter contacts: %w", err)
	}
	defer rows.Close()

	known := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan contact id: %w", err)
		}
		known[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact ids: %w", err)
	}

	var existing []int64
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := known[id]; ok {
			existing = append(existing, id)
		}
	}
	return existing, nil
}

func scanContacts(rows pgx.Rows) ([]entity.Contact, error) {
	var contacts []entity.Contact
	for rows.Next() {
		var (
			c           entity.Contact
			phone       sql.NullString
			salesStage  sql.NullString
			companyID   sql.NullInt64
			coName      sql.NullString
			coWebsite   sql.NullString
			coAddress   sql.NullString
			coCreatedAt sql.NullTime
			coUpdatedAt sql.NullTime
			coContacts  int64
		)

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&phone,
			&c.ContactType,
			&salesStage,
			&c.CreatedAt,
			&c.UpdatedAt,
			&companyID,
			&coName,
			&coWebsite,
			&coAddress,
			&coCreatedAt,
			&coUpdatedAt,
			&coContacts,
		)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}

		c.Phone = nullStringToPtr(phone)
		if salesStage.Valid {
			stage := entity.SalesStage(salesStage.String)
			c.SalesStage = &stage
		}
		c.CompanyID = nullInt64ToPtr(companyID)
		if companyID.Valid && coName.Valid {
			c.Company = &entity.Company{
				ID:            companyID.Int64,
				Name:          coName.String,
				Website:       nullStringToPtr(coWebsite),
				Address:       nullStringToPtr(coAddress),
				CreatedAt:     coCreatedAt.Time,
				UpdatedAt:     coUpdatedAt.Time,
				ContactsCount: int(coContacts),
			}
		}

		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

func salesStageOrNil(stage *entity.SalesStage) any {
	if stage == nil {
		return nil
	}
	return string(*stage)
}
