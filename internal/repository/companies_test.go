package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPGXCompaniesRepository_Create_DuplicateName(t *testing.T) {
	repo := &PGXCompaniesRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "companies_name_key"}
			}}
		},
	}}

	_, err := repo.Create(context.Background(), "Acme", nil, nil)
	if !errors.Is(err, ErrCompanyNameTaken) {
		t.Fatalf("expected ErrCompanyNameTaken, got %v", err)
	}
}

func TestPGXCompaniesRepository_Update_NotFound(t *testing.T) {
	repo := &PGXCompaniesRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		},
	}}

	name := "Acme"
	_, err := repo.Update(context.Background(), 42, CompanyUpdate{Name: &name})
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestPGXCompaniesRepository_Get_NotFound(t *testing.T) {
	repo := &PGXCompaniesRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			return &stubRows{}, nil
		},
	}}

	if _, err := repo.Get(context.Background(), 42); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}
