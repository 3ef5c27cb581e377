package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run on
// every startup; ALTER TABLE duplicates are tolerated so additive columns can
// be appended to the list.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := seedClaimSequence(db); err != nil {
		return fmt.Errorf("seeding claim number sequence: %w", err)
	}
	return nil
}

func seedClaimSequence(db *sql.DB) error {
	_, err := db.Exec(`INSERT INTO claim_sequence (id, next)
		SELECT 1, 1001 WHERE NOT EXISTS (SELECT 1 FROM claim_sequence WHERE id = 1)`)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS claims (
		id                       TEXT PRIMARY KEY,
		number                   TEXT NOT NULL UNIQUE,
		title                    TEXT NOT NULL,
		description              TEXT NOT NULL DEFAULT '',
		category                 TEXT NOT NULL DEFAULT '',
		address                  TEXT NOT NULL DEFAULT '',
		homeowner_name           TEXT NOT NULL,
		homeowner_email          TEXT NOT NULL,
		builder_name             TEXT NOT NULL DEFAULT '',
		job_name                 TEXT NOT NULL DEFAULT '',
		closing_date             TEXT,
		status                   TEXT NOT NULL
		                         CHECK(status IN ('SUBMITTED','REVIEWING','SCHEDULING','SCHEDULED','COMPLETED')),
		classification           TEXT NOT NULL DEFAULT 'Unclassified',
		date_evaluated           TEXT,
		non_warranty_explanation TEXT NOT NULL DEFAULT '',
		contractor_id            TEXT NOT NULL DEFAULT '',
		contractor_name          TEXT NOT NULL DEFAULT '',
		contractor_email         TEXT NOT NULL DEFAULT '',
		internal_notes           TEXT NOT NULL DEFAULT '',
		version                  INTEGER NOT NULL DEFAULT 1,
		created_at               TEXT NOT NULL,
		updated_at               TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS claim_dates (
		claim_id TEXT NOT NULL REFERENCES claims(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		date     TEXT NOT NULL,
		slot     TEXT NOT NULL CHECK(slot IN ('AM','PM','ALL_DAY')),
		status   TEXT NOT NULL CHECK(status IN ('PROPOSED','ACCEPTED','REJECTED')),
		PRIMARY KEY (claim_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS claim_comments (
		id         TEXT PRIMARY KEY,
		claim_id   TEXT NOT NULL REFERENCES claims(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		author     TEXT NOT NULL,
		role       TEXT NOT NULL,
		body       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS claim_messages (
		id        TEXT PRIMARY KEY,
		claim_id  TEXT NOT NULL REFERENCES claims(id) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		audience  TEXT NOT NULL CHECK(audience IN ('HOMEOWNER','SUBCONTRACTOR')),
		recipient TEXT NOT NULL,
		subject   TEXT NOT NULL,
		body      TEXT NOT NULL,
		sent_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS claim_attachments (
		id         TEXT PRIMARY KEY,
		claim_id   TEXT NOT NULL REFERENCES claims(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		name       TEXT NOT NULL,
		media_kind TEXT NOT NULL DEFAULT '',
		location   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS contractors (
		id           TEXT PRIMARY KEY,
		company_name TEXT NOT NULL,
		contact_name TEXT NOT NULL DEFAULT '',
		email        TEXT NOT NULL,
		specialty    TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS templates (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		subject    TEXT NOT NULL,
		body       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Explicit nullable default-template reference. A NULL value means no
	// template auto-applies.
	`CREATE TABLE IF NOT EXISTS template_settings (
		id                  INTEGER PRIMARY KEY CHECK(id = 1),
		default_template_id TEXT REFERENCES templates(id) ON DELETE SET NULL
	)`,
	`INSERT OR IGNORE INTO template_settings (id, default_template_id) VALUES (1, NULL)`,

	`CREATE TABLE IF NOT EXISTS claim_sequence (
		id   INTEGER PRIMARY KEY CHECK(id = 1),
		next INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_claims_status ON claims(status)`,
	`CREATE INDEX IF NOT EXISTS idx_claim_comments_claim ON claim_comments(claim_id)`,
	`CREATE INDEX IF NOT EXISTS idx_claim_messages_claim ON claim_messages(claim_id)`,
}
