package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY,
		owner_id VARCHAR(128) NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		customer_name VARCHAR(255),
		company_name VARCHAR(255),
		address TEXT,
		contact_phones TEXT,
		contact_emails TEXT,
		status VARCHAR(32) NOT NULL,
		budget BIGINT NOT NULL DEFAULT 0,
		estimated_cost BIGINT NOT NULL DEFAULT 0,
		spent BIGINT NOT NULL DEFAULT 0,
		start_date VARCHAR(10),
		duration INTEGER NOT NULL DEFAULT 1,
		duration_type VARCHAR(8) NOT NULL DEFAULT 'days',
		estimated_end_date VARCHAR(10),
		completed_tasks INTEGER NOT NULL DEFAULT 0,
		total_tasks INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_projects_owner_id ON projects (owner_id);`,
	`CREATE TABLE IF NOT EXISTS subcontractors (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id),
		name VARCHAR(255) NOT NULL,
		company VARCHAR(255),
		role VARCHAR(128),
		email VARCHAR(255),
		phone VARCHAR(64),
		contract_amount BIGINT NOT NULL DEFAULT 0,
		estimated_cost BIGINT NOT NULL DEFAULT 0,
		actual_cost BIGINT NOT NULL DEFAULT 0,
		start_date VARCHAR(10),
		duration INTEGER NOT NULL DEFAULT 1,
		duration_type VARCHAR(8) NOT NULL DEFAULT 'weeks',
		end_date VARCHAR(10),
		progress INTEGER NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		has_contract BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_subcontractors_project_id ON subcontractors (project_id);`,
	`CREATE TABLE IF NOT EXISTS change_orders (
		id UUID PRIMARY KEY,
		subcontractor_id UUID NOT NULL REFERENCES subcontractors(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		description TEXT,
		amount BIGINT NOT NULL DEFAULT 0,
		date VARCHAR(10),
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		duration INTEGER NOT NULL DEFAULT 0,
		duration_type VARCHAR(8) NOT NULL DEFAULT 'days',
		additional_days INTEGER NOT NULL DEFAULT 0,
		documents TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_change_orders_seq ON change_orders (subcontractor_id, seq);`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		subcontractor_id UUID NOT NULL REFERENCES subcontractors(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		amount BIGINT NOT NULL DEFAULT 0,
		date VARCHAR(10),
		description TEXT,
		method VARCHAR(16) NOT NULL DEFAULT 'bank_transfer',
		bank_name VARCHAR(128),
		check_number VARCHAR(64),
		card_type VARCHAR(32),
		last4_digits VARCHAR(4),
		account_id VARCHAR(128),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_payments_seq ON payments (subcontractor_id, seq);`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id),
		owner_id VARCHAR(128) NOT NULL,
		type VARCHAR(16) NOT NULL,
		amount BIGINT NOT NULL DEFAULT 0,
		date VARCHAR(10),
		category VARCHAR(64),
		subcategory VARCHAR(128),
		description TEXT,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		recurring BOOLEAN NOT NULL DEFAULT FALSE,
		frequency VARCHAR(16),
		attachments TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_project_id ON transactions (project_id);`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_owner_id ON transactions (owner_id);`,
	`CREATE TABLE IF NOT EXISTS office_expenses (
		id UUID PRIMARY KEY,
		owner_id VARCHAR(128) NOT NULL,
		date VARCHAR(10),
		category VARCHAR(64),
		subcategory VARCHAR(128),
		description TEXT,
		amount BIGINT NOT NULL DEFAULT 0,
		documents TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_office_expenses_owner_id ON office_expenses (owner_id);`,
	`CREATE TABLE IF NOT EXISTS documents (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id),
		owner_id VARCHAR(128) NOT NULL,
		name VARCHAR(255) NOT NULL,
		type VARCHAR(16) NOT NULL DEFAULT 'other',
		category VARCHAR(64),
		url TEXT NOT NULL,
		file_type VARCHAR(128),
		size BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_documents_project_id ON documents (project_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
