package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/builderops/warrantydesk/internal/domain"
)

// SQLiteContractorRepo implements ContractorDirectory using SQLite.
type SQLiteContractorRepo struct {
	db *sql.DB
}

func NewSQLiteContractorRepo(db *sql.DB) *SQLiteContractorRepo {
	return &SQLiteContractorRepo{db: db}
}

func (r *SQLiteContractorRepo) GetByID(ctx context.Context, id string) (*domain.Contractor, error) {
	query := `SELECT id, company_name, contact_name, email, specialty FROM contractors WHERE id = ?`
	var c domain.Contractor
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.CompanyName, &c.ContactName, &c.Email, &c.Specialty,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("contractor %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning contractor: %w", err)
	}
	return &c, nil
}

func (r *SQLiteContractorRepo) List(ctx context.Context) ([]*domain.Contractor, error) {
	query := `SELECT id, company_name, contact_name, email, specialty FROM contractors ORDER BY company_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing contractors: %w", err)
	}
	defer rows.Close()

	var contractors []*domain.Contractor
	for rows.Next() {
		var c domain.Contractor
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.ContactName, &c.Email, &c.Specialty); err != nil {
			return nil, fmt.Errorf("scanning contractor row: %w", err)
		}
		contractors = append(contractors, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contractors: %w", err)
	}
	return contractors, nil
}

func (r *SQLiteContractorRepo) Put(ctx context.Context, c *domain.Contractor) error {
	query := `INSERT INTO contractors (id, company_name, contact_name, email, specialty)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			company_name = excluded.company_name,
			contact_name = excluded.contact_name,
			email = excluded.email,
			specialty = excluded.specialty`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.CompanyName, c.ContactName, c.Email, c.Specialty)
	if err != nil {
		return fmt.Errorf("upserting contractor: %w", err)
	}
	return nil
}
