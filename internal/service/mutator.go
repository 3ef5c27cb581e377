package service

import (
	"context"
	"sync"

	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/builderops/warrantydesk/internal/repository"
)

// ClaimMutator serializes read-modify-replace cycles per claim. Every
// lifecycle operation is a whole-record replace, so two concurrent writers to
// the same claim would clobber each other without it; the version stamp in
// the repository is the second line of defense for writers outside this
// process. One ClaimMutator is shared by all services.
type ClaimMutator struct {
	claims repository.ClaimRepo

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewClaimMutator(claims repository.ClaimRepo) *ClaimMutator {
	return &ClaimMutator{
		claims: claims,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (m *ClaimMutator) lockFor(id string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	return l
}

// Mutate loads the claim, applies fn, and replaces the record — all under
// the claim's lock. fn must not block on external services: side effects are
// dispatched after Mutate returns, off the lock. An error from fn aborts
// before any write, leaving the claim exactly as it was.
func (m *ClaimMutator) Mutate(ctx context.Context, id string, fn func(c *domain.Claim) error) (*domain.Claim, error) {
	l := m.lockFor(id)
	l.Lock()
	defer l.Unlock()

	c, err := m.claims.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := m.claims.Replace(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Claims exposes the underlying repository for read paths.
func (m *ClaimMutator) Claims() repository.ClaimRepo {
	return m.claims
}
