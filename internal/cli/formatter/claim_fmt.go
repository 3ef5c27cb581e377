package formatter

import (
	"fmt"
	"strings"

	"github.com/builderops/warrantydesk/internal/domain"
)

// ClaimTable renders the claim list view.
func ClaimTable(claims []*domain.Claim) string {
	headers := []string{"Number", "Title", "Status", "Classification", "Contractor", "Updated"}
	rows := make([][]string, 0, len(claims))
	for _, c := range claims {
		contractor := Dim("—")
		if c.HasContractor() {
			contractor = c.ContractorName
		}
		rows = append(rows, []string{
			Bold(c.Number),
			truncate(c.Title, 40),
			StatusPill(c.Status),
			ClassificationLabel(c.Classification),
			contractor,
			HumanTimestamp(c.UpdatedAt),
		})
	}
	return RenderTable(headers, rows)
}

// ClaimDetail renders the full claim view: identity, lifecycle, scheduling,
// collaboration thread, and the dispatch audit trail.
func ClaimDetail(c *domain.Claim) string {
	var b strings.Builder

	b.WriteString(Header("Claim " + c.Number))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Title:      %s\n", Bold(c.Title))
	fmt.Fprintf(&b, "  Status:     %s\n", StatusPill(c.Status))
	fmt.Fprintf(&b, "  Class:      %s\n", ClassificationLabel(c.Classification))
	if c.DateEvaluated != nil {
		fmt.Fprintf(&b, "  Evaluated:  %s\n", HumanDate(*c.DateEvaluated))
	}
	if c.NonWarrantyExplanation != "" {
		fmt.Fprintf(&b, "  Reason:     %s\n", c.NonWarrantyExplanation)
	}
	if c.Category != "" {
		fmt.Fprintf(&b, "  Category:   %s\n", c.Category)
	}
	fmt.Fprintf(&b, "  Property:   %s\n", c.Address)
	fmt.Fprintf(&b, "  Homeowner:  %s %s\n", c.HomeownerName, Dim("<"+c.HomeownerEmail+">"))
	if c.BuilderName != "" {
		fmt.Fprintf(&b, "  Builder:    %s\n", c.BuilderName)
	}
	if c.HasContractor() {
		fmt.Fprintf(&b, "  Contractor: %s %s\n", c.ContractorName, Dim("<"+c.ContractorEmail+">"))
	}
	if c.Description != "" {
		b.WriteString("\n")
		b.WriteString("  " + strings.ReplaceAll(strings.TrimSpace(c.Description), "\n", "\n  "))
		b.WriteString("\n")
	}

	if len(c.ProposedDates) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Scheduling"))
		b.WriteString("\n")
		for i, d := range c.ProposedDates {
			fmt.Fprintf(&b, "  [%d] %s  %s\n", i, Appointment(d), DateStatusLabel(d.Status))
		}
	}

	if len(c.Attachments) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Attachments"))
		b.WriteString("\n")
		for _, a := range c.Attachments {
			fmt.Fprintf(&b, "  %s %s\n", a.Name, Dim("("+a.MediaKind+")"))
		}
	}

	if len(c.Comments) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Comments"))
		b.WriteString("\n")
		for _, cm := range c.Comments {
			fmt.Fprintf(&b, "  %s %s %s\n", Bold(cm.Author), Dim(strings.ToLower(string(cm.Role))), Dim(HumanTimestamp(cm.CreatedAt)))
			fmt.Fprintf(&b, "    %s\n", strings.ReplaceAll(strings.TrimSpace(cm.Body), "\n", "\n    "))
		}
	}

	if len(c.Messages) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Sent notifications"))
		b.WriteString("\n")
		for _, m := range c.Messages {
			fmt.Fprintf(&b, "  %s %s %s\n", m.Subject, Dim("to "+m.Recipient), Dim(HumanTimestamp(m.SentAt)))
		}
	}

	return b.String()
}

// NotesView renders the parsed internal-notes log, newest last.
func NotesView(entries []domain.NoteEntry) string {
	if len(entries) == 0 {
		return Dim("No internal notes.") + "\n"
	}
	var b strings.Builder
	for _, e := range entries {
		switch {
		case e.Kind == domain.NoteStructured:
			fmt.Fprintf(&b, "%s %s\n", Bold(e.Author), Dim(e.Timestamp.Format("Jan 2, 2006 3:04 PM")))
		case e.Timestamp != nil:
			b.WriteString(Dim(e.Timestamp.Format("Jan 2, 2006 3:04 PM")) + "\n")
		default:
			b.WriteString(Dim("(unknown date)") + "\n")
		}
		fmt.Fprintf(&b, "  %s\n", strings.ReplaceAll(e.Text, "\n", "\n  "))
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
