package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/builderops/warrantydesk/internal/notify"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const defaultDispatchTimeout = 15 * time.Second

// CommentConfig carries the audience wiring for comment notifications.
type CommentConfig struct {
	// InternalInbox receives notifications about homeowner comments.
	InternalInbox string
	// DispatchTimeout bounds each best-effort delivery attempt.
	DispatchTimeout time.Duration
}

type commentService struct {
	mutator    *ClaimMutator
	dispatcher notify.Dispatcher
	cfg        CommentConfig
	observer   UseCaseObserver

	dispatches sync.WaitGroup
}

func NewCommentService(
	mutator *ClaimMutator,
	dispatcher notify.Dispatcher,
	cfg CommentConfig,
	observers ...UseCaseObserver,
) CommentService {
	if cfg.DispatchTimeout <= 0 {
		cfg.DispatchTimeout = defaultDispatchTimeout
	}
	return &commentService{
		mutator:    mutator,
		dispatcher: dispatcher,
		cfg:        cfg,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// AddComment is a two-step contract: the comment is persisted first and is
// visible regardless of what happens next; notification of the other party is
// attempted on a detached path and can only degrade to a log entry.
func (s *commentService) AddComment(ctx context.Context, claimID, author string, role domain.CommenterRole, body string) (*domain.Claim, error) {
	start := time.Now()
	comment := domain.Comment{
		ID:        uuid.New().String(),
		Author:    author,
		Role:      role,
		Body:      body,
		CreatedAt: start.UTC(),
	}

	c, err := s.mutator.Mutate(ctx, claimID, func(c *domain.Claim) error {
		c.AppendComment(comment)
		return nil
	})
	observe(ctx, s.observer, "claim_add_comment", claimID, start, err, map[string]any{"role": string(role)})
	if err != nil {
		return nil, err
	}

	s.dispatches.Add(1)
	go s.notifyParties(c, comment)

	return c, nil
}

func (s *commentService) WaitForDispatch() {
	s.dispatches.Wait()
}

type commentNotification struct {
	to       string
	subject  string
	body     string
	audience domain.MessageAudience
	// audited notifications land in the claim's message trail on success.
	audited bool
}

// notifyParties runs after the comment is committed, off the claim lock, on a
// context detached from the request.
func (s *commentService) notifyParties(c *domain.Claim, comment domain.Comment) {
	defer s.dispatches.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.DispatchTimeout)
	defer cancel()

	for _, n := range s.selectAudience(c, comment) {
		start := time.Now()
		err := s.dispatcher.Send(ctx, notify.Outbound{To: n.to, Subject: n.subject, Body: n.body})
		if err != nil {
			observe(ctx, s.observer, "comment_notification", c.ID, start, fmt.Errorf("%w: %v", notify.ErrDispatchFailed, err), map[string]any{
				"to": n.to,
			})
			continue
		}

		if n.audited {
			s.recordDispatch(ctx, c.ID, n)
		}
		observe(ctx, s.observer, "comment_notification", c.ID, start, nil, map[string]any{"to": n.to})
	}
}

// selectAudience applies the routing rule: homeowner comments alert the
// internal team; admin comments alert the homeowner, plus the assigned
// contractor with separate wording.
func (s *commentService) selectAudience(c *domain.Claim, comment domain.Comment) []commentNotification {
	var targets []commentNotification
	switch comment.Role {
	case domain.RoleHomeowner:
		if s.cfg.InternalInbox != "" {
			targets = append(targets, commentNotification{
				to:      s.cfg.InternalInbox,
				subject: fmt.Sprintf("New homeowner comment on claim %s", c.Number),
				body: fmt.Sprintf("%s commented on %q:\n\n%s",
					comment.Author, c.Title, comment.Body),
			})
		}
	case domain.RoleAdmin:
		targets = append(targets, commentNotification{
			to:      c.HomeownerEmail,
			subject: fmt.Sprintf("Update on your warranty claim %s", c.Number),
			body: fmt.Sprintf("Hello %s,\n\nThere is a new update on your claim %q:\n\n%s",
				c.HomeownerName, c.Title, comment.Body),
			audience: domain.AudienceHomeowner,
			audited:  true,
		})
		if c.HasContractor() {
			targets = append(targets, commentNotification{
				to:      c.ContractorEmail,
				subject: fmt.Sprintf("Note added to service order %s", c.Number),
				body: fmt.Sprintf("A note was added to claim %s (%s), which is assigned to you:\n\n%s",
					c.Number, c.Address, comment.Body),
				audience: domain.AudienceSubcontractor,
				audited:  true,
			})
		}
	}
	return targets
}

func (s *commentService) recordDispatch(ctx context.Context, claimID string, n commentNotification) {
	sentAt := time.Now().UTC()
	_, err := s.mutator.Mutate(ctx, claimID, func(c *domain.Claim) error {
		c.AppendMessage(domain.Message{
			ID:        ulid.Make().String(),
			Audience:  n.audience,
			Recipient: n.to,
			Subject:   n.subject,
			Body:      n.body,
			SentAt:    sentAt,
		})
		return nil
	})
	if err != nil {
		observe(ctx, s.observer, "comment_notification_audit", claimID, sentAt, err, nil)
	}
}
