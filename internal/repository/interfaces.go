package repository

import (
	"context"

	"github.com/builderops/warrantydesk/internal/domain"
)

// ClaimRepo owns claim aggregates. Writes are whole-record: Replace rewrites
// the claim row and every owned child sequence in one transaction, guarded by
// the optimistic version stamp.
type ClaimRepo interface {
	Create(ctx context.Context, c *domain.Claim) error
	GetByID(ctx context.Context, id string) (*domain.Claim, error)
	GetByNumber(ctx context.Context, number string) (*domain.Claim, error)
	// List returns claims filtered by status; an empty status means all.
	List(ctx context.Context, status domain.ClaimStatus) ([]*domain.Claim, error)
	// Replace persists the full aggregate. Returns ErrConflict when c.Version
	// no longer matches the stored row, ErrNotFound when the claim is gone.
	// On success c.Version is advanced to the stored value.
	Replace(ctx context.Context, c *domain.Claim) error
}

// ContractorDirectory is the read-mostly lookup of assignable contractors.
type ContractorDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Contractor, error)
	List(ctx context.Context) ([]*domain.Contractor, error)
	Put(ctx context.Context, c *domain.Contractor) error
}

// TemplateRepo stores service-order draft templates plus the explicit
// default-template reference.
type TemplateRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	List(ctx context.Context) ([]*domain.Template, error)
	Save(ctx context.Context, t *domain.Template) error
	Delete(ctx context.Context, id string) error
	// SetDefault points the default reference at the given template, or
	// clears it when id is nil.
	SetDefault(ctx context.Context, id *string) error
	// GetDefault returns the default template, or nil when none is set.
	GetDefault(ctx context.Context) (*domain.Template, error)
}
