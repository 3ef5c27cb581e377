package service

import (
	"context"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
)

type ClaimService interface {
	Create(ctx context.Context, in domain.NewClaimInput) (*domain.Claim, error)
	GetByID(ctx context.Context, id string) (*domain.Claim, error)
	GetByNumber(ctx context.Context, number string) (*domain.Claim, error)
	List(ctx context.Context, status domain.ClaimStatus) ([]*domain.Claim, error)
	AddNote(ctx context.Context, id, text, author string) (*domain.Claim, error)
	AddAttachment(ctx context.Context, id string, a domain.Attachment) (*domain.Claim, error)
}

type LifecycleService interface {
	SetClassification(ctx context.Context, id string, cl domain.Classification, explanation string) (*domain.Claim, error)
	SetStatus(ctx context.Context, id string, status domain.ClaimStatus) (*domain.Claim, error)
}

type SchedulingService interface {
	ProposeDate(ctx context.Context, id string, date time.Time, slot domain.TimeSlot) (*domain.Claim, error)
	RespondToDate(ctx context.Context, id string, index int, decision domain.DateStatus) (*domain.Claim, error)
	ConfirmSchedule(ctx context.Context, id string, date time.Time, slot domain.TimeSlot) (*domain.Claim, error)
	Reschedule(ctx context.Context, id string) (*domain.Claim, error)
}

// ServiceOrderDraft is an editable subject/body pair plus the rendered
// document, returned by PrepareServiceOrder and reviewed before sending.
type ServiceOrderDraft struct {
	Subject     string
	Body        string
	Document    []byte
	Attachments []domain.Attachment
}

type ServiceOrderService interface {
	AssignContractor(ctx context.Context, claimID, contractorID string) (*domain.Claim, error)
	// PrepareServiceOrder builds a draft for the assigned contractor. With a
	// nil templateID the default template applies when one is set.
	PrepareServiceOrder(ctx context.Context, claimID string, templateID *string) (*ServiceOrderDraft, error)
	SendServiceOrder(ctx context.Context, claimID, subject, body string) (*domain.Claim, error)
}

type CommentService interface {
	AddComment(ctx context.Context, claimID, author string, role domain.CommenterRole, body string) (*domain.Claim, error)
	// WaitForDispatch blocks until in-flight comment notifications settle.
	// Callers that are about to exit (or assert) use it; the add path never
	// waits on delivery.
	WaitForDispatch()
}

type TemplateService interface {
	List(ctx context.Context) ([]*domain.Template, error)
	Get(ctx context.Context, id string) (*domain.Template, error)
	Save(ctx context.Context, t *domain.Template) error
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id *string) error
	GetDefault(ctx context.Context) (*domain.Template, error)
}
