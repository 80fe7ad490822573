package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/crm-backend/internal/entity"
)

// Sentinel errors for company persistence.
var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrCompanyNameTaken = errors.New("company name already exists")
)

// CompanyUpdate patches company attributes; nil fields are left untouched.
type CompanyUpdate struct {
	Name    *string
	Website *string
	Address *string
}

// CompaniesRepository describes persistence operations for companies.
type CompaniesRepository interface {
	List(ctx context.Context) ([]entity.Company, error)
	Get(ctx context.Context, id int64) (*entity.Company, error)
	Create(ctx context.Context, name string, website, address *string) (*entity.Company, error)
	Update(ctx context.Context, id int64, patch CompanyUpdate) (*entity.Company, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// PGXCompaniesRepository implements CompaniesRepository using pgx.
type PGXCompaniesRepository struct {
	pool pgxPool
}

// NewPGXCompaniesRepository wires a pgx backed repository.
func NewPGXCompaniesRepository(pool *pgxpool.Pool) *PGXCompaniesRepository {
	return &PGXCompaniesRepository{pool: pool}
}

const companySelect = `
	SELECT
		co.id,
		co.name,
		co.website,
		co.address,
		co.created_at,
		co.updated_at,
		(SELECT COUNT(*) FROM contacts WHERE company_id = co.id)
	FROM companies co
`

// List returns every company with its contact count.
func (r *PGXCompaniesRepository) List(ctx context.Context) ([]entity.Company, error) {
	rows, err := r.pool.Query(ctx, companySelect+` ORDER BY co.id`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// Get fetches a single company by id.
func (r *PGXCompaniesRepository) Get(ctx context.Context, id int64) (*entity.Company, error) {
	rows, err := r.pool.Query(ctx, companySelect+` WHERE co.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	defer rows.Close()

	companies, err := scanCompanies(rows)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, ErrCompanyNotFound
	}
	return &companies[0], nil
}

// Create inserts a company row. The unique constraint on name is the only
// duplicate guard; a violation surfaces as ErrCompanyNameTaken.
func (r *PGXCompaniesRepository) Create(ctx context.Context, name string, website, address *string) (*entity.Company, error) {
	var company entity.Company
	var websiteVal, addressVal sql.NullString
	err := r.pool.QueryRow(ctx, `
		INSERT INTO companies (name, website, address)
		VALUES ($1, $2, $3)
		RETURNING id, name, website, address, created_at, updated_at
	`, name, website, address).Scan(
		&company.ID,
		&company.Name,
		&websiteVal,
		&addressVal,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: %v", ErrCompanyNameTaken, pgErr)
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}

	company.Website = nullStringToPtr(websiteVal)
	company.Address = nullStringToPtr(addressVal)
	return &company, nil
}

// Update patches the provided fields and refreshes updated_at.
func (r *PGXCompaniesRepository) Update(ctx context.Context, id int64, patch CompanyUpdate) (*entity.Company, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	if patch.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", idx))
		args = append(args, *patch.Name)
		idx++
	}
	if patch.Website != nil {
		setClauses = append(setClauses, fmt.Sprintf("website = $%d", idx))
		args = append(args, *patch.Website)
		idx++
	}
	if patch.Address != nil {
		setClauses = append(setClauses, fmt.Sprintf("address = $%d", idx))
		args = append(args, *patch.Address)
		idx++
	}

	if len(setClauses) == 0 {
		return r.Get(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), idx)
	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: %v", ErrCompanyNameTaken, pgErr)
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, ErrCompanyNotFound
	}

	return r.Get(ctx, id)
}

// Delete removes a company. Interactions and tasks cascade away; contacts and
// meetings survive with company_id nulled out.
func (r *PGXCompaniesRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// Exists reports whether a company row exists.
func (r *PGXCompaniesRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check company exists: %w", err)
	}
	return exists, nil
}

func scanCompanies(rows pgx.Rows) ([]entity.Company, error) {
	var companies []entity.Company
	for rows.Next() {
		var (
			company  entity.Company
			website  sql.NullString
			address  sql.NullString
			contacts int64
		)

		err := rows.Scan(
			&company.ID,
			&company.Name,
			&website,
			&address,
			&company.CreatedAt,
			&company.UpdatedAt,
			&contacts,
		)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}

		company.Website = nullStringToPtr(website)
		company.Address = nullStringToPtr(address)
		company.ContactsCount = int(contacts)
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}
	return companies, nil
}
