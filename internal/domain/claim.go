package domain

import (
	"fmt"
	"strings"
	"time"
)

// Claim is the aggregate root for a single warranty issue. It is mutated only
// through the named transition methods below; every method is pure over
// (receiver, arguments) so transitions stay replayable.
type Claim struct {
	ID     string
	Number string

	Title          string
	Description    string
	Category       string
	Address        string
	HomeownerName  string
	HomeownerEmail string
	BuilderName    string
	JobName        string
	ClosingDate    *time.Time

	Status                 ClaimStatus
	Classification         Classification
	DateEvaluated          *time.Time
	NonWarrantyExplanation string

	// Contractor assignment. The three fields are always set together.
	ContractorID    string
	ContractorName  string
	ContractorEmail string

	// Insertion order is significant: the first ACCEPTED entry is the
	// authoritative appointment.
	ProposedDates []ProposedDate

	Comments    []Comment
	Messages    []Message
	Attachments []Attachment

	// InternalNotes is the admin-only annotation blob. Append via AppendNote,
	// read via ParseNotes.
	InternalNotes string

	// Version is the optimistic concurrency stamp checked on replace.
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProposedDate struct {
	Date   time.Time
	Slot   TimeSlot
	Status DateStatus
}

type Comment struct {
	ID        string
	Author    string
	Role      CommenterRole
	Body      string
	CreatedAt time.Time
}

// Message is an audit record of a notification that was actually dispatched.
// It has no write path outside of dispatch events.
type Message struct {
	ID        string
	Audience  MessageAudience
	Recipient string
	Subject   string
	Body      string
	SentAt    time.Time
}

type Attachment struct {
	ID        string
	Name      string
	MediaKind string
	Location  string
}

// NewClaimInput enumerates every field a new claim can carry, so a missing
// required field fails construction instead of silently defaulting.
type NewClaimInput struct {
	Number         string
	Title          string
	Description    string
	Category       string
	Address        string
	HomeownerName  string
	HomeownerEmail string
	BuilderName    string
	JobName        string
	ClosingDate    *time.Time

	// Optional: a claim created with a closing classification starts COMPLETED.
	Classification         Classification
	NonWarrantyExplanation string
}

// NewClaim builds a claim in its initial lifecycle state. The caller assigns
// ID and Number (Number may be left blank for the store to generate).
func NewClaim(in NewClaimInput, now time.Time) (*Claim, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("claim title is required")
	}
	if strings.TrimSpace(in.HomeownerName) == "" {
		return nil, fmt.Errorf("homeowner name is required")
	}
	if strings.TrimSpace(in.HomeownerEmail) == "" {
		return nil, fmt.Errorf("homeowner email is required")
	}

	c := &Claim{
		Number:         in.Number,
		Title:          in.Title,
		Description:    in.Description,
		Category:       in.Category,
		Address:        in.Address,
		HomeownerName:  in.HomeownerName,
		HomeownerEmail: in.HomeownerEmail,
		BuilderName:    in.BuilderName,
		JobName:        in.JobName,
		ClosingDate:    in.ClosingDate,
		Status:         StatusSubmitted,
		Classification: ClassUnclassified,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if in.Classification != "" {
		if err := c.SetClassification(in.Classification, in.NonWarrantyExplanation, now); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Claim) IsTerminal() bool {
	return c.Status == StatusCompleted
}

// SetClassification records an administrative coverage decision. A closing
// classification forces COMPLETED from any state; scheduling data is left
// intact but inert. Non-closing values never touch the status.
func (c *Claim) SetClassification(cl Classification, explanation string, now time.Time) error {
	if cl.RequiresExplanation() && strings.TrimSpace(explanation) == "" && strings.TrimSpace(c.NonWarrantyExplanation) == "" {
		return fmt.Errorf("classifying as %s: %w", cl, ErrExplanationRequired)
	}

	c.Classification = cl
	if strings.TrimSpace(explanation) != "" {
		c.NonWarrantyExplanation = explanation
	}
	if c.DateEvaluated == nil {
		evaluated := now
		c.DateEvaluated = &evaluated
	}
	if cl.IsClosing() {
		c.Status = StatusCompleted
	}
	c.UpdatedAt = now
	return nil
}

// SetStatus is the administrative override for states with no automatic
// driver (notably REVIEWING). It cannot reopen a completed claim.
func (c *Claim) SetStatus(s ClaimStatus, now time.Time) error {
	if !ValidClaimStatuses[string(s)] {
		return fmt.Errorf("unknown status %q: %w", s, ErrInvalidTransition)
	}
	if c.IsTerminal() && s != StatusCompleted {
		return fmt.Errorf("reopening %s: %w", c.Number, ErrClaimCompleted)
	}
	c.Status = s
	c.UpdatedAt = now
	return nil
}

// ProposeDate appends a PROPOSED appointment candidate and moves the claim
// into SCHEDULING. Multiple PROPOSED entries may coexist.
func (c *Claim) ProposeDate(date time.Time, slot TimeSlot, now time.Time) error {
	if c.IsTerminal() {
		return fmt.Errorf("proposing date on %s: %w", c.Number, ErrClaimCompleted)
	}
	c.ProposedDates = append(c.ProposedDates, ProposedDate{
		Date:   date,
		Slot:   slot,
		Status: DateProposed,
	})
	c.Status = StatusScheduling
	c.UpdatedAt = now
	return nil
}

// RespondToDate records the counterparty's decision on the proposed date at
// index i. Accepting an entry auto-rejects every other undecided entry so at
// most one ACCEPTED entry exists, and moves the claim to SCHEDULED. Rejecting
// leaves the claim status untouched so further proposals can follow.
func (c *Claim) RespondToDate(i int, decision DateStatus, now time.Time) error {
	if c.IsTerminal() {
		return fmt.Errorf("responding to date on %s: %w", c.Number, ErrClaimCompleted)
	}
	if i < 0 || i >= len(c.ProposedDates) {
		return fmt.Errorf("no proposed date at index %d: %w", i, ErrInvalidTransition)
	}
	if st := c.ProposedDates[i].Status; st != DateProposed {
		return fmt.Errorf("proposed date %d already %s: %w", i, st, ErrInvalidTransition)
	}

	switch decision {
	case DateAccepted:
		c.ProposedDates[i].Status = DateAccepted
		for j := range c.ProposedDates {
			if j != i && c.ProposedDates[j].Status == DateProposed {
				c.ProposedDates[j].Status = DateRejected
			}
		}
		c.Status = StatusScheduled
	case DateRejected:
		c.ProposedDates[i].Status = DateRejected
	default:
		return fmt.Errorf("decision %q: %w", decision, ErrInvalidTransition)
	}
	c.UpdatedAt = now
	return nil
}

// ConfirmSchedule records a date agreed out-of-band. It replaces the whole
// proposed-dates sequence with a single ACCEPTED entry, sidestepping any
// pending proposals.
func (c *Claim) ConfirmSchedule(date time.Time, slot TimeSlot, now time.Time) error {
	if c.IsTerminal() {
		return fmt.Errorf("confirming schedule on %s: %w", c.Number, ErrClaimCompleted)
	}
	c.ProposedDates = []ProposedDate{{
		Date:   date,
		Slot:   slot,
		Status: DateAccepted,
	}}
	c.Status = StatusScheduled
	c.UpdatedAt = now
	return nil
}

// Reschedule abandons the current negotiation: the proposed-dates sequence is
// cleared and the claim returns to SCHEDULING. This is the only backward edge
// from SCHEDULED. Idempotent.
func (c *Claim) Reschedule(now time.Time) error {
	if c.IsTerminal() {
		return fmt.Errorf("rescheduling %s: %w", c.Number, ErrClaimCompleted)
	}
	c.ProposedDates = nil
	c.Status = StatusScheduling
	c.UpdatedAt = now
	return nil
}

// AcceptedDate returns the first ACCEPTED entry, which is authoritative, or
// nil when no appointment is agreed.
func (c *Claim) AcceptedDate() *ProposedDate {
	for i := range c.ProposedDates {
		if c.ProposedDates[i].Status == DateAccepted {
			return &c.ProposedDates[i]
		}
	}
	return nil
}

// AssignContractor sets the three contractor fields together. Claim status is
// not affected.
func (c *Claim) AssignContractor(ct Contractor, now time.Time) error {
	if c.IsTerminal() {
		return fmt.Errorf("assigning contractor on %s: %w", c.Number, ErrClaimCompleted)
	}
	c.ContractorID = ct.ID
	c.ContractorName = ct.CompanyName
	c.ContractorEmail = ct.Email
	c.UpdatedAt = now
	return nil
}

func (c *Claim) HasContractor() bool {
	return c.ContractorID != ""
}

// AppendComment adds to the collaboration thread. Comments are accepted in
// every state, including COMPLETED: persistence of collaboration history is
// never contingent on lifecycle position.
func (c *Claim) AppendComment(cm Comment) {
	c.Comments = append(c.Comments, cm)
	if cm.CreatedAt.After(c.UpdatedAt) {
		c.UpdatedAt = cm.CreatedAt
	}
}

// AppendMessage records a dispatched notification for admin review.
func (c *Claim) AppendMessage(m Message) {
	c.Messages = append(c.Messages, m)
	if m.SentAt.After(c.UpdatedAt) {
		c.UpdatedAt = m.SentAt
	}
}

// AddAttachment registers attachment metadata. Byte storage lives elsewhere;
// the claim only carries the location reference.
func (c *Claim) AddAttachment(a Attachment, now time.Time) {
	c.Attachments = append(c.Attachments, a)
	c.UpdatedAt = now
}

// ImageAttachments returns the attachments forwarded with a service order.
func (c *Claim) ImageAttachments() []Attachment {
	var images []Attachment
	for _, a := range c.Attachments {
		if strings.HasPrefix(a.MediaKind, "image/") {
			images = append(images, a)
		}
	}
	return images
}
