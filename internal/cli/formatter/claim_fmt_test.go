package formatter

import (
	"testing"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleClaim() *domain.Claim {
	evaluated := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	return &domain.Claim{
		ID:              "id-1",
		Number:          "CLM-1001",
		Title:           "Water stain on dining room ceiling",
		Description:     "Stain grew after last week's rain.",
		Category:        "Roofing",
		Address:         "9 Larkfield Dr",
		HomeownerName:   "Morgan Reyes",
		HomeownerEmail:  "morgan@example.com",
		BuilderName:     "Cedarline Homes",
		Status:          domain.StatusScheduled,
		Classification:  domain.ClassElevenMonth,
		DateEvaluated:   &evaluated,
		ContractorID:    "ct-1",
		ContractorName:  "Zenith Roofing",
		ContractorEmail: "dispatch@zenith.example",
		ProposedDates: []domain.ProposedDate{
			{Date: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), Slot: domain.SlotAM, Status: domain.DateRejected},
			{Date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), Slot: domain.SlotPM, Status: domain.DateAccepted},
		},
		Comments: []domain.Comment{
			{Author: "Morgan Reyes", Role: domain.RoleHomeowner, Body: "The stain has stopped spreading.", CreatedAt: evaluated},
		},
		Messages: []domain.Message{
			{Subject: "Service Order CLM-1001", Recipient: "dispatch@zenith.example", SentAt: evaluated},
		},
		UpdatedAt: evaluated,
	}
}

func TestClaimDetail(t *testing.T) {
	out := ClaimDetail(sampleClaim())

	assert.Contains(t, out, "CLM-1001")
	assert.Contains(t, out, "Water stain on dining room ceiling")
	assert.Contains(t, out, "SCHEDULED")
	assert.Contains(t, out, "11 Month")
	assert.Contains(t, out, "Zenith Roofing")
	assert.Contains(t, out, "Jun 5, 2025 (afternoon)")
	assert.Contains(t, out, "The stain has stopped spreading.")
	assert.Contains(t, out, "Service Order CLM-1001")
}

func TestClaimTable(t *testing.T) {
	out := ClaimTable([]*domain.Claim{sampleClaim()})

	assert.Contains(t, out, "CLM-1001")
	assert.Contains(t, out, "Zenith Roofing")
	assert.Contains(t, out, "SCHEDULED")
}

func TestClaimTable_TruncatesLongTitles(t *testing.T) {
	c := sampleClaim()
	c.Title = "An extremely long claim title that would otherwise blow out the table layout entirely"

	out := ClaimTable([]*domain.Claim{c})
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, "entirely")
}

func TestNotesView(t *testing.T) {
	ts := time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC)
	entries := []domain.NoteEntry{
		{Kind: domain.NoteStructured, Timestamp: &ts, Author: "Dana", Text: "Called homeowner."},
		{Kind: domain.NoteRaw, Text: "orphaned scribble"},
	}

	out := NotesView(entries)
	assert.Contains(t, out, "Dana")
	assert.Contains(t, out, "Called homeowner.")
	assert.Contains(t, out, "orphaned scribble")
	assert.Contains(t, out, "(unknown date)")
}

func TestNotesView_Empty(t *testing.T) {
	assert.Contains(t, NotesView(nil), "No internal notes.")
}
