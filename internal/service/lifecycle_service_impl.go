package service

import (
	"context"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
)

type lifecycleService struct {
	mutator  *ClaimMutator
	observer UseCaseObserver
}

func NewLifecycleService(mutator *ClaimMutator, observers ...UseCaseObserver) LifecycleService {
	return &lifecycleService{
		mutator:  mutator,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *lifecycleService) SetClassification(ctx context.Context, id string, cl domain.Classification, explanation string) (*domain.Claim, error) {
	start := time.Now()
	c, err := s.mutator.Mutate(ctx, id, func(c *domain.Claim) error {
		return c.SetClassification(cl, explanation, start.UTC())
	})
	observe(ctx, s.observer, "claim_set_classification", id, start, err, map[string]any{
		"classification": string(cl),
		"closing":        cl.IsClosing(),
	})
	return c, err
}

func (s *lifecycleService) SetStatus(ctx context.Context, id string, status domain.ClaimStatus) (*domain.Claim, error) {
	start := time.Now()
	c, err := s.mutator.Mutate(ctx, id, func(c *domain.Claim) error {
		return c.SetStatus(status, start.UTC())
	})
	observe(ctx, s.observer, "claim_set_status", id, start, err, map[string]any{"status": string(status)})
	return c, err
}
