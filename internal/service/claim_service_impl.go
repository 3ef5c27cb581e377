package service

import (
	"context"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type claimService struct {
	mutator  *ClaimMutator
	observer UseCaseObserver
}

func NewClaimService(mutator *ClaimMutator, observers ...UseCaseObserver) ClaimService {
	return &claimService{
		mutator:  mutator,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *claimService) Create(ctx context.Context, in domain.NewClaimInput) (*domain.Claim, error) {
	start := time.Now()
	c, err := domain.NewClaim(in, start.UTC())
	if err == nil {
		c.ID = uuid.New().String()
		c.Version = 1
		err = s.mutator.Claims().Create(ctx, c)
	}
	observe(ctx, s.observer, "claim_create", "", start, err, nil)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *claimService) GetByID(ctx context.Context, id string) (*domain.Claim, error) {
	return s.mutator.Claims().GetByID(ctx, id)
}

func (s *claimService) GetByNumber(ctx context.Context, number string) (*domain.Claim, error) {
	return s.mutator.Claims().GetByNumber(ctx, number)
}

func (s *claimService) List(ctx context.Context, status domain.ClaimStatus) ([]*domain.Claim, error) {
	return s.mutator.Claims().List(ctx, status)
}

func (s *claimService) AddNote(ctx context.Context, id, text, author string) (*domain.Claim, error) {
	start := time.Now()
	c, err := s.mutator.Mutate(ctx, id, func(c *domain.Claim) error {
		c.AppendNote(text, author, start.UTC())
		return nil
	})
	observe(ctx, s.observer, "claim_add_note", id, start, err, nil)
	return c, err
}

func (s *claimService) AddAttachment(ctx context.Context, id string, a domain.Attachment) (*domain.Claim, error) {
	start := time.Now()
	if a.ID == "" {
		a.ID = ulid.Make().String()
	}
	c, err := s.mutator.Mutate(ctx, id, func(c *domain.Claim) error {
		c.AddAttachment(a, start.UTC())
		return nil
	})
	observe(ctx, s.observer, "claim_add_attachment", id, start, err, map[string]any{"media_kind": a.MediaKind})
	return c, err
}
