package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/builderops/warrantydesk/internal/docgen"
	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/builderops/warrantydesk/internal/notify"
	"github.com/builderops/warrantydesk/internal/repository"
	"github.com/oklog/ulid/v2"
)

type serviceOrderService struct {
	mutator    *ClaimMutator
	directory  repository.ContractorDirectory
	templates  repository.TemplateRepo
	generator  docgen.Generator
	dispatcher notify.Dispatcher
	senderName string
	observer   UseCaseObserver
}

func NewServiceOrderService(
	mutator *ClaimMutator,
	directory repository.ContractorDirectory,
	templates repository.TemplateRepo,
	generator docgen.Generator,
	dispatcher notify.Dispatcher,
	senderName string,
	observers ...UseCaseObserver,
) ServiceOrderService {
	return &serviceOrderService{
		mutator:    mutator,
		directory:  directory,
		templates:  templates,
		generator:  generator,
		dispatcher: dispatcher,
		senderName: senderName,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *serviceOrderService) AssignContractor(ctx context.Context, claimID, contractorID string) (*domain.Claim, error) {
	start := time.Now()

	// Directory lookup happens before any mutation so an unknown id leaves
	// the claim untouched.
	contractor, err := s.directory.GetByID(ctx, contractorID)
	var c *domain.Claim
	if err == nil {
		c, err = s.mutator.Mutate(ctx, claimID, func(c *domain.Claim) error {
			return c.AssignContractor(*contractor, start.UTC())
		})
	}
	observe(ctx, s.observer, "claim_assign_contractor", claimID, start, err, map[string]any{
		"contractor_id": contractorID,
	})
	return c, err
}

func (s *serviceOrderService) PrepareServiceOrder(ctx context.Context, claimID string, templateID *string) (*ServiceOrderDraft, error) {
	start := time.Now()
	draft, err := s.prepare(ctx, claimID, templateID)
	observe(ctx, s.observer, "service_order_prepare", claimID, start, err, nil)
	return draft, err
}

func (s *serviceOrderService) prepare(ctx context.Context, claimID string, templateID *string) (*ServiceOrderDraft, error) {
	c, err := s.mutator.Claims().GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if !c.HasContractor() {
		return nil, fmt.Errorf("preparing service order for %s: %w", c.Number, domain.ErrContractorRequired)
	}

	tmpl, err := s.resolveTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	subject, body := s.defaultDraft(c)
	if tmpl != nil {
		subject, body = tmpl.Fill(domain.TemplateVars{
			SenderName: s.senderName,
			ClaimTitle: c.Title,
			Address:    c.Address,
		})
	}

	document, err := s.generator.RenderServiceOrder(c, body)
	if err != nil {
		return nil, err
	}

	return &ServiceOrderDraft{
		Subject:     subject,
		Body:        body,
		Document:    document,
		Attachments: c.ImageAttachments(),
	}, nil
}

// resolveTemplate returns the requested template, the default one for a nil
// id, or nil when no default is configured.
func (s *serviceOrderService) resolveTemplate(ctx context.Context, templateID *string) (*domain.Template, error) {
	if templateID != nil {
		return s.templates.GetByID(ctx, *templateID)
	}
	return s.templates.GetDefault(ctx)
}

func (s *serviceOrderService) defaultDraft(c *domain.Claim) (subject, body string) {
	subject = fmt.Sprintf("Service Order %s: %s", c.Number, c.Title)
	body = strings.TrimSpace(c.Description)
	if body == "" {
		body = c.Title
	}
	return subject, body
}

func (s *serviceOrderService) SendServiceOrder(ctx context.Context, claimID, subject, body string) (*domain.Claim, error) {
	start := time.Now()
	c, err := s.send(ctx, claimID, subject, body)
	observe(ctx, s.observer, "service_order_send", claimID, start, err, nil)
	return c, err
}

func (s *serviceOrderService) send(ctx context.Context, claimID, subject, body string) (*domain.Claim, error) {
	c, err := s.mutator.Claims().GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(c.ContractorEmail) == "" {
		return nil, fmt.Errorf("sending service order for %s: %w", c.Number, domain.ErrContractorRequired)
	}

	document, err := s.generator.RenderServiceOrder(c, body)
	if err != nil {
		return nil, err
	}

	// Manual sends are the one place a dispatch failure surfaces to the
	// caller, so a human can retry. The claim record stays as it was.
	if err := s.dispatcher.Send(ctx, notify.Outbound{
		To:          c.ContractorEmail,
		Subject:     subject,
		Body:        body,
		Attachments: c.ImageAttachments(),
		Document:    document,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", notify.ErrDispatchFailed, err)
	}

	sentAt := time.Now().UTC()
	return s.mutator.Mutate(ctx, claimID, func(c *domain.Claim) error {
		c.AppendMessage(domain.Message{
			ID:        ulid.Make().String(),
			Audience:  domain.AudienceSubcontractor,
			Recipient: c.ContractorEmail,
			Subject:   subject,
			Body:      body,
			SentAt:    sentAt,
		})
		return nil
	})
}
