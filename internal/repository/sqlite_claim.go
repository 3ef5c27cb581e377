package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/builderops/warrantydesk/internal/db"
	"github.com/builderops/warrantydesk/internal/domain"
)

// SQLiteClaimRepo implements ClaimRepo over SQLite. Reads run against the
// base handle; Create and Replace run inside a unit-of-work transaction since
// they touch the claim row and all four child tables.
type SQLiteClaimRepo struct {
	base db.DBTX
	uow  db.UnitOfWork
}

// NewSQLiteClaimRepo creates a ClaimRepo over the given database.
func NewSQLiteClaimRepo(database *sql.DB) *SQLiteClaimRepo {
	return &SQLiteClaimRepo{
		base: database,
		uow:  db.NewSQLiteUnitOfWork(database),
	}
}

const claimColumns = `id, number, title, description, category, address,
	homeowner_name, homeowner_email, builder_name, job_name, closing_date,
	status, classification, date_evaluated, non_warranty_explanation,
	contractor_id, contractor_name, contractor_email, internal_notes,
	version, created_at, updated_at`

func (r *SQLiteClaimRepo) Create(ctx context.Context, c *domain.Claim) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if c.Number == "" {
			number, err := nextClaimNumber(ctx, tx)
			if err != nil {
				return err
			}
			c.Number = number
		}

		query := `INSERT INTO claims (` + claimColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		_, err := tx.ExecContext(ctx, query,
			c.ID, c.Number, c.Title, c.Description, c.Category, c.Address,
			c.HomeownerName, c.HomeownerEmail, c.BuilderName, c.JobName,
			nullableTimeToString(c.ClosingDate, dateLayout),
			string(c.Status), string(c.Classification),
			nullableTimeToString(c.DateEvaluated, time.RFC3339),
			c.NonWarrantyExplanation,
			c.ContractorID, c.ContractorName, c.ContractorEmail,
			c.InternalNotes,
			c.Version,
			c.CreatedAt.Format(time.RFC3339),
			c.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting claim: %w", err)
		}
		return insertClaimChildren(ctx, tx, c)
	})
}

// nextClaimNumber allocates the next number from the single-row sequence
// inside the caller's transaction.
func nextClaimNumber(ctx context.Context, tx db.DBTX) (string, error) {
	var next int64
	if err := tx.QueryRowContext(ctx, `SELECT next FROM claim_sequence WHERE id = 1`).Scan(&next); err != nil {
		return "", fmt.Errorf("reading claim sequence: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE claim_sequence SET next = next + 1 WHERE id = 1`); err != nil {
		return "", fmt.Errorf("advancing claim sequence: %w", err)
	}
	return fmt.Sprintf("CLM-%04d", next), nil
}

func (r *SQLiteClaimRepo) GetByID(ctx context.Context, id string) (*domain.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE id = ?`
	return r.loadClaim(ctx, r.base.QueryRowContext(ctx, query, id))
}

func (r *SQLiteClaimRepo) GetByNumber(ctx context.Context, number string) (*domain.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE UPPER(number) = UPPER(?)`
	return r.loadClaim(ctx, r.base.QueryRowContext(ctx, query, number))
}

func (r *SQLiteClaimRepo) List(ctx context.Context, status domain.ClaimStatus) ([]*domain.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims ORDER BY created_at`
	args := []any{}
	if status != "" {
		query = `SELECT ` + claimColumns + ` FROM claims WHERE status = ? ORDER BY created_at`
		args = append(args, string(status))
	}

	rows, err := r.base.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing claims: %w", err)
	}
	defer rows.Close()

	var claims []*domain.Claim
	for rows.Next() {
		c, err := scanClaim(rows.Scan)
		if err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating claims: %w", err)
	}

	for _, c := range claims {
		if err := loadClaimChildren(ctx, r.base, c); err != nil {
			return nil, err
		}
	}
	return claims, nil
}

func (r *SQLiteClaimRepo) Replace(ctx context.Context, c *domain.Claim) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		query := `UPDATE claims SET
				title = ?, description = ?, category = ?, address = ?,
				homeowner_name = ?, homeowner_email = ?, builder_name = ?, job_name = ?,
				closing_date = ?, status = ?, classification = ?, date_evaluated = ?,
				non_warranty_explanation = ?, contractor_id = ?, contractor_name = ?,
				contractor_email = ?, internal_notes = ?, version = version + 1, updated_at = ?
			WHERE id = ? AND version = ?`
		res, err := tx.ExecContext(ctx, query,
			c.Title, c.Description, c.Category, c.Address,
			c.HomeownerName, c.HomeownerEmail, c.BuilderName, c.JobName,
			nullableTimeToString(c.ClosingDate, dateLayout),
			string(c.Status), string(c.Classification),
			nullableTimeToString(c.DateEvaluated, time.RFC3339),
			c.NonWarrantyExplanation,
			c.ContractorID, c.ContractorName, c.ContractorEmail,
			c.InternalNotes,
			c.UpdatedAt.Format(time.RFC3339),
			c.ID, c.Version,
		)
		if err != nil {
			return fmt.Errorf("replacing claim: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("replacing claim: %w", err)
		}
		if affected == 0 {
			var exists int
			err := tx.QueryRowContext(ctx, `SELECT 1 FROM claims WHERE id = ?`, c.ID).Scan(&exists)
			if err == sql.ErrNoRows {
				return fmt.Errorf("claim %s: %w", c.ID, ErrNotFound)
			}
			if err != nil {
				return fmt.Errorf("checking claim existence: %w", err)
			}
			return fmt.Errorf("claim %s at version %d: %w", c.ID, c.Version, ErrConflict)
		}

		for _, table := range []string{"claim_dates", "claim_comments", "claim_messages", "claim_attachments"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE claim_id = ?`, c.ID); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}
		if err := insertClaimChildren(ctx, tx, c); err != nil {
			return err
		}

		c.Version++
		return nil
	})
}

func insertClaimChildren(ctx context.Context, tx db.DBTX, c *domain.Claim) error {
	for i, d := range c.ProposedDates {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO claim_dates (claim_id, position, date, slot, status) VALUES (?, ?, ?, ?, ?)`,
			c.ID, i, d.Date.Format(dateLayout), string(d.Slot), string(d.Status))
		if err != nil {
			return fmt.Errorf("inserting proposed date %d: %w", i, err)
		}
	}
	for i, cm := range c.Comments {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO claim_comments (id, claim_id, position, author, role, body, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
			cm.ID, c.ID, i, cm.Author, string(cm.Role), cm.Body, cm.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("inserting comment %d: %w", i, err)
		}
	}
	for i, m := range c.Messages {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO claim_messages (id, claim_id, position, audience, recipient, subject, body, sent_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, c.ID, i, string(m.Audience), m.Recipient, m.Subject, m.Body, m.SentAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("inserting message %d: %w", i, err)
		}
	}
	for i, a := range c.Attachments {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO claim_attachments (id, claim_id, position, name, media_kind, location)
				VALUES (?, ?, ?, ?, ?, ?)`,
			a.ID, c.ID, i, a.Name, a.MediaKind, a.Location)
		if err != nil {
			return fmt.Errorf("inserting attachment %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteClaimRepo) loadClaim(ctx context.Context, row *sql.Row) (*domain.Claim, error) {
	c, err := scanClaim(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("claim: %w", ErrNotFound)
		}
		return nil, err
	}
	if err := loadClaimChildren(ctx, r.base, c); err != nil {
		return nil, err
	}
	return c, nil
}

func scanClaim(scan func(dest ...any) error) (*domain.Claim, error) {
	var c domain.Claim
	var statusStr, classificationStr, createdAtStr, updatedAtStr string
	var closingDateStr, dateEvaluatedStr sql.NullString

	err := scan(
		&c.ID, &c.Number, &c.Title, &c.Description, &c.Category, &c.Address,
		&c.HomeownerName, &c.HomeownerEmail, &c.BuilderName, &c.JobName,
		&closingDateStr, &statusStr, &classificationStr, &dateEvaluatedStr,
		&c.NonWarrantyExplanation,
		&c.ContractorID, &c.ContractorName, &c.ContractorEmail,
		&c.InternalNotes,
		&c.Version, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning claim: %w", err)
	}

	c.Status = domain.ClaimStatus(statusStr)
	c.Classification = domain.Classification(classificationStr)
	c.ClosingDate = parseNullableTime(closingDateStr, dateLayout)
	c.DateEvaluated = parseNullableTime(dateEvaluatedStr, time.RFC3339)
	c.CreatedAt = parseTime(createdAtStr, time.RFC3339)
	c.UpdatedAt = parseTime(updatedAtStr, time.RFC3339)
	return &c, nil
}

func loadClaimChildren(ctx context.Context, dbtx db.DBTX, c *domain.Claim) error {
	if err := loadProposedDates(ctx, dbtx, c); err != nil {
		return err
	}
	if err := loadComments(ctx, dbtx, c); err != nil {
		return err
	}
	if err := loadMessages(ctx, dbtx, c); err != nil {
		return err
	}
	return loadAttachments(ctx, dbtx, c)
}

func loadProposedDates(ctx context.Context, dbtx db.DBTX, c *domain.Claim) error {
	rows, err := dbtx.QueryContext(ctx,
		`SELECT date, slot, status FROM claim_dates WHERE claim_id = ? ORDER BY position`, c.ID)
	if err != nil {
		return fmt.Errorf("loading proposed dates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dateStr, slotStr, statusStr string
		if err := rows.Scan(&dateStr, &slotStr, &statusStr); err != nil {
			return fmt.Errorf("scanning proposed date: %w", err)
		}
		c.ProposedDates = append(c.ProposedDates, domain.ProposedDate{
			Date:   parseTime(dateStr, dateLayout),
			Slot:   domain.TimeSlot(slotStr),
			Status: domain.DateStatus(statusStr),
		})
	}
	return rows.Err()
}

func loadComments(ctx context.Context, dbtx db.DBTX, c *domain.Claim) error {
	rows, err := dbtx.QueryContext(ctx,
		`SELECT id, author, role, body, created_at FROM claim_comments WHERE claim_id = ? ORDER BY position`, c.ID)
	if err != nil {
		return fmt.Errorf("loading comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cm domain.Comment
		var roleStr, createdAtStr string
		if err := rows.Scan(&cm.ID, &cm.Author, &roleStr, &cm.Body, &createdAtStr); err != nil {
			return fmt.Errorf("scanning comment: %w", err)
		}
		cm.Role = domain.CommenterRole(roleStr)
		cm.CreatedAt = parseTime(createdAtStr, time.RFC3339)
		c.Comments = append(c.Comments, cm)
	}
	return rows.Err()
}

func loadMessages(ctx context.Context, dbtx db.DBTX, c *domain.Claim) error {
	rows, err := dbtx.QueryContext(ctx,
		`SELECT id, audience, recipient, subject, body, sent_at FROM claim_messages WHERE claim_id = ? ORDER BY position`, c.ID)
	if err != nil {
		return fmt.Errorf("loading messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.Message
		var audienceStr, sentAtStr string
		if err := rows.Scan(&m.ID, &audienceStr, &m.Recipient, &m.Subject, &m.Body, &sentAtStr); err != nil {
			return fmt.Errorf("scanning message: %w", err)
		}
		m.Audience = domain.MessageAudience(audienceStr)
		m.SentAt = parseTime(sentAtStr, time.RFC3339)
		c.Messages = append(c.Messages, m)
	}
	return rows.Err()
}

func loadAttachments(ctx context.Context, dbtx db.DBTX, c *domain.Claim) error {
	rows, err := dbtx.QueryContext(ctx,
		`SELECT id, name, media_kind, location FROM claim_attachments WHERE claim_id = ? ORDER BY position`, c.ID)
	if err != nil {
		return fmt.Errorf("loading attachments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Attachment
		if err := rows.Scan(&a.ID, &a.Name, &a.MediaKind, &a.Location); err != nil {
			return fmt.Errorf("scanning attachment: %w", err)
		}
		c.Attachments = append(c.Attachments, a)
	}
	return rows.Err()
}
