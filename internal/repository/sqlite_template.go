package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
)

// SQLiteTemplateRepo implements TemplateRepo using SQLite. The default
// template is an explicit nullable reference in template_settings, never a
// sentinel ID.
type SQLiteTemplateRepo struct {
	db *sql.DB
}

func NewSQLiteTemplateRepo(db *sql.DB) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{db: db}
}

func (r *SQLiteTemplateRepo) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	query := `SELECT id, name, subject, body, created_at, updated_at FROM templates WHERE id = ?`
	return scanTemplate(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTemplateRepo) List(ctx context.Context) ([]*domain.Template, error) {
	query := `SELECT id, name, subject, body, created_at, updated_at FROM templates ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.Template
	for rows.Next() {
		var t domain.Template
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&t.ID, &t.Name, &t.Subject, &t.Body, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning template row: %w", err)
		}
		t.CreatedAt = parseTime(createdAtStr, time.RFC3339)
		t.UpdatedAt = parseTime(updatedAtStr, time.RFC3339)
		templates = append(templates, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}
	return templates, nil
}

func (r *SQLiteTemplateRepo) Save(ctx context.Context, t *domain.Template) error {
	query := `INSERT INTO templates (id, name, subject, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			subject = excluded.subject,
			body = excluded.body,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.Subject, t.Body,
		t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving template: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) SetDefault(ctx context.Context, id *string) error {
	if id != nil {
		if _, err := r.GetByID(ctx, *id); err != nil {
			return err
		}
	}
	var value interface{}
	if id != nil {
		value = *id
	}
	_, err := r.db.ExecContext(ctx, `UPDATE template_settings SET default_template_id = ? WHERE id = 1`, value)
	if err != nil {
		return fmt.Errorf("setting default template: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) GetDefault(ctx context.Context) (*domain.Template, error) {
	var defaultID sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT default_template_id FROM template_settings WHERE id = 1`).Scan(&defaultID)
	if err != nil {
		return nil, fmt.Errorf("reading default template reference: %w", err)
	}
	if !defaultID.Valid || defaultID.String == "" {
		return nil, nil
	}
	return r.GetByID(ctx, defaultID.String)
}

func scanTemplate(row *sql.Row) (*domain.Template, error) {
	var t domain.Template
	var createdAtStr, updatedAtStr string
	err := row.Scan(&t.ID, &t.Name, &t.Subject, &t.Body, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("template: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning template: %w", err)
	}
	t.CreatedAt = parseTime(createdAtStr, time.RFC3339)
	t.UpdatedAt = parseTime(updatedAtStr, time.RFC3339)
	return &t, nil
}
