package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/google/uuid"
)

var claimNumberCounter atomic.Int64

// Claim options
type ClaimOption func(*domain.Claim)

func WithStatus(s domain.ClaimStatus) ClaimOption {
	return func(c *domain.Claim) {
		c.Status = s
	}
}

func WithClassification(cl domain.Classification) ClaimOption {
	return func(c *domain.Claim) {
		c.Classification = cl
	}
}

func WithContractor(ct domain.Contractor) ClaimOption {
	return func(c *domain.Claim) {
		c.ContractorID = ct.ID
		c.ContractorName = ct.CompanyName
		c.ContractorEmail = ct.Email
	}
}

func WithHomeownerEmail(email string) ClaimOption {
	return func(c *domain.Claim) {
		c.HomeownerEmail = email
	}
}

func WithNotes(blob string) ClaimOption {
	return func(c *domain.Claim) {
		c.InternalNotes = blob
	}
}

// NewTestClaim builds a persisted-shape claim with sensible defaults. Claim
// numbers are unique per process so repository tests can share a database.
func NewTestClaim(title string, opts ...ClaimOption) *domain.Claim {
	now := time.Now().UTC().Truncate(time.Second)
	n := claimNumberCounter.Add(1)
	c := &domain.Claim{
		ID:             uuid.New().String(),
		Number:         fmt.Sprintf("TST-%04d", n),
		Title:          title,
		Description:    "Observed during the walk-through.",
		Category:       "General",
		Address:        "44 Birchwood Ct",
		HomeownerName:  "Pat Winters",
		HomeownerEmail: "pat@example.com",
		BuilderName:    "Cedarline Homes",
		Status:         domain.StatusSubmitted,
		Classification: domain.ClassUnclassified,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestContractor builds a directory entry.
func NewTestContractor(company string) *domain.Contractor {
	return &domain.Contractor{
		ID:          uuid.New().String(),
		CompanyName: company,
		ContactName: "Lee Alvarez",
		Email:       "dispatch@" + uuid.New().String()[:8] + ".example",
		Specialty:   "General repair",
	}
}
