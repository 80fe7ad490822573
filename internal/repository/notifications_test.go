package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func notificationRow(id int64, isRead bool) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int64) = id
		*dest[1].(*string) = "New Call interaction with Ada"
		*dest[2].(*bool) = isRead
		*dest[3].(*time.Time) = time.Now()
		*dest[4].(*sql.NullInt64) = sql.NullInt64{Int64: 1, Valid: true}
		*dest[5].(*sql.NullInt64) = sql.NullInt64{}
		*dest[6].(*sql.NullInt64) = sql.NullInt64{}
		return nil
	}
}

func TestPGXNotificationsRepository_MarkRead(t *testing.T) {
	execCalls := 0
	repo := &PGXNotificationsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			return &stubRows{scans: []func(dest ...any) error{notificationRow(1, false)}}, nil
		},
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			execCalls++
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}}

	notification, err := repo.MarkRead(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !notification.IsRead {
		t.Fatal("expected notification marked read")
	}
	if execCalls != 1 {
		t.Fatalf("expected one write, got %d", execCalls)
	}
}

func TestPGXNotificationsRepository_MarkRead_AlreadyReadSkipsWrite(t *testing.T) {
	repo := &PGXNotificationsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			return &stubRows{scans: []func(dest ...any) error{notificationRow(1, true)}}, nil
		},
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			t.Fatal("expected no write for already-read notification")
			return pgconn.CommandTag{}, nil
		},
	}}

	notification, err := repo.MarkRead(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !notification.IsRead {
		t.Fatal("expected notification still read")
	}
}

func TestPGXNotificationsRepository_MarkRead_NotFound(t *testing.T) {
	repo := &PGXNotificationsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			return &stubRows{}, nil
		},
	}}

	if _, err := repo.MarkRead(context.Background(), 42); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}
