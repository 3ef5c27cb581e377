package formatter

import (
	"fmt"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
)

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}

// SlotLabel returns the human label for an appointment time slot.
func SlotLabel(slot domain.TimeSlot) string {
	switch slot {
	case domain.SlotAM:
		return "morning"
	case domain.SlotPM:
		return "afternoon"
	case domain.SlotAllDay:
		return "all day"
	default:
		return string(slot)
	}
}

// Appointment formats a proposed date as "Jun 5, 2025 (morning)".
func Appointment(d domain.ProposedDate) string {
	return fmt.Sprintf("%s (%s)", d.Date.Format("Jan 2, 2006"), SlotLabel(d.Slot))
}

// DateStatusLabel colors a proposed-date decision.
func DateStatusLabel(s domain.DateStatus) string {
	switch s {
	case domain.DateAccepted:
		return StyleGreen.Render("accepted")
	case domain.DateRejected:
		return StyleRed.Render("rejected")
	case domain.DateProposed:
		return StyleYellow.Render("proposed")
	default:
		return StyleDim.Render(string(s))
	}
}
