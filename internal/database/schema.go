package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements creates every table the CRM uses. Statements are
// idempotent so Migrate can run on every boot.
//
// Cascade rules mirror the ownership model: deleting a contact or company
// removes its interactions and tasks, while contacts and meetings survive a
// company deletion with company_id nulled out. Notification link columns
// deliberately carry no foreign keys, so links may dangle after the linked
// row disappears.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		website TEXT,
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		contact_type TEXT NOT NULL DEFAULT 'LEAD',
		sales_stage TEXT,
		company_id BIGINT REFERENCES companies(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS interactions (
		id BIGSERIAL PRIMARY KEY,
		interaction_type TEXT NOT NULL,
		notes TEXT,
		interaction_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		contact_id BIGINT REFERENCES contacts(id) ON DELETE CASCADE,
		company_id BIGINT REFERENCES companies(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id BIGSERIAL PRIMARY KEY,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		link_contact_id BIGINT,
		link_company_id BIGINT,
		link_interaction_id BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS meetings (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		location TEXT,
		starts_at TIMESTAMPTZ NOT NULL,
		ends_at TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'confirmed',
		company_id BIGINT REFERENCES companies(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS meeting_attendees (
		meeting_id BIGINT NOT NULL REFERENCES meetings(id) ON DELETE CASCADE,
		contact_id BIGINT NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
		PRIMARY KEY (meeting_id, contact_id)
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		due_date TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'PENDING',
		contact_id BIGINT REFERENCES contacts(id) ON DELETE CASCADE,
		company_id BIGINT REFERENCES companies(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_company_id ON contacts(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_interactions_contact_id ON interactions(contact_id)`,
	`CREATE INDEX IF NOT EXISTS idx_interactions_company_id ON interactions(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_contact_id ON tasks(contact_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_company_id ON tasks(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_meetings_starts_at ON meetings(starts_at)`,
}

// Migrate ensures the schema exists before the server starts accepting traffic.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
