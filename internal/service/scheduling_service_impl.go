package service

import (
	"context"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
)

type schedulingService struct {
	mutator  *ClaimMutator
	observer UseCaseObserver
}

func NewSchedulingService(mutator *ClaimMutator, observers ...UseCaseObserver) SchedulingService {
	return &schedulingService{
		mutator:  mutator,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *schedulingService) ProposeDate(ctx context.Context, id string, date time.Time, slot domain.TimeSlot) (*domain.Claim, error) {
	start := time.Now()
	c, err := s.mutator.Mutate(ctx, id, func(c *domain.Claim) error {
		return c.ProposeDate(date, slot, start.UTC())
	})
	observe(ctx, s.observer, "claim_propose_date", id, start, err, map[string]any{
		"date": date.Format("2006-01-02"),
		"slot": string(slot),
	})
	return c, err
}

func (s *schedulingService) RespondToDate(ctx context.Context, id string, index int, decision domain.DateStatus) (*domain.Claim, error) {
	start := time.Now()
	c, err := s.mutator.Mutate(ctx, id, func(c *domain.Claim) error {
		return c.RespondToDate(index, decision, start.UTC())
	})
	observe(ctx, s.observer, "claim_respond_to_date", id, start, err, map[string]any{
		"index":    index,
		"decision": string(decision),
	})
	return c, err
}

func (s *schedulingService) ConfirmSchedule(ctx context.Context, id string, date time.Time, slot domain.TimeSlot) (*domain.Claim, error) {
	start := time.Now()
	c, err := s.mutator.Mutate(ctx, id, func(c *domain.Claim) error {
		return c.ConfirmSchedule(date, slot, start.UTC())
	})
	observe(ctx, s.observer, "claim_confirm_schedule", id, start, err, map[string]any{
		"date": date.Format("2006-01-02"),
		"slot": string(slot),
	})
	return c, err
}

func (s *schedulingService) Reschedule(ctx context.Context, id string) (*domain.Claim, error) {
	start := time.Now()
	c, err := s.mutator.Mutate(ctx, id, func(c *domain.Claim) error {
		return c.Reschedule(start.UTC())
	})
	observe(ctx, s.observer, "claim_reschedule", id, start, err, nil)
	return c, err
}
