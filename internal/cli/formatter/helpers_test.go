package formatter

import (
	"testing"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHumanDate(t *testing.T) {
	past := time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sep 30, 2022", HumanDate(past))

	assert.Equal(t, "Today", HumanDate(time.Now()))
	assert.Equal(t, "Yesterday", HumanDate(time.Now().AddDate(0, 0, -1)))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "Just now", HumanTimestamp(now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "morning", SlotLabel(domain.SlotAM))
	assert.Equal(t, "afternoon", SlotLabel(domain.SlotPM))
	assert.Equal(t, "all day", SlotLabel(domain.SlotAllDay))
}

func TestAppointment(t *testing.T) {
	d := domain.ProposedDate{
		Date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Slot: domain.SlotPM,
	}
	assert.Equal(t, "Jun 5, 2025 (afternoon)", Appointment(d))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"Number", "Title"},
		[][]string{
			{"CLM-1001", "Short"},
			{"CLM-1002", "A longer title"},
		},
	)
	assert.Contains(t, out, "Number")
	assert.Contains(t, out, "CLM-1001")
	assert.Contains(t, out, "CLM-1002")
	assert.Contains(t, out, "─")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
