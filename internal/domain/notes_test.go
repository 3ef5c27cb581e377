package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendNote_FormatsEntry(t *testing.T) {
	c := &Claim{}
	now := time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC)
	c.AppendNote("Homeowner called about the leak.", "Sam Ortiz", now)

	assert.Equal(t, "Mar 10, 2025 at 2:05 PM by Sam Ortiz\nHomeowner called about the leak.", c.InternalNotes)
}

func TestAppendNote_SeparatesEntriesWithBlankLine(t *testing.T) {
	c := &Claim{}
	now := time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC)
	c.AppendNote("first", "Sam", now)
	c.AppendNote("second", "Sam", now.Add(time.Hour))

	entries := ParseNotes(c.InternalNotes)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Text)
	assert.Equal(t, "second", entries[1].Text)
}

func TestAppendNote_AppendOnly(t *testing.T) {
	c := &Claim{InternalNotes: "[2023-01-05 09:00] inherited note"}
	now := time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		c.AppendNote("update", "Sam", now.Add(time.Duration(i)*time.Minute))
	}

	entries := ParseNotes(c.InternalNotes)
	assert.Len(t, entries, 4, "pre-existing entry plus three appends")
	assert.Equal(t, NoteLegacy, entries[0].Kind)
}

func TestParseNotes_StructuredEntry(t *testing.T) {
	entries := ParseNotes("Mar 10, 2025 at 2:05 PM by Sam Ortiz\nCalled the homeowner back.")
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, NoteStructured, e.Kind)
	assert.Equal(t, "Sam Ortiz", e.Author)
	assert.Equal(t, "Called the homeowner back.", e.Text)
	require.NotNil(t, e.Timestamp)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC), *e.Timestamp)
}

func TestParseNotes_LegacyEntry(t *testing.T) {
	entries := ParseNotes("[2023-01-05 09:00] ladder left on site")
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, NoteLegacy, e.Kind)
	assert.Equal(t, "ladder left on site", e.Text)
	require.NotNil(t, e.Timestamp)
	assert.Equal(t, 2023, e.Timestamp.Year())
}

func TestParseNotes_LegacyEntryUnparseableStamp(t *testing.T) {
	entries := ParseNotes("[sometime last week] roof patched")
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, NoteLegacy, e.Kind)
	assert.Nil(t, e.Timestamp)
	assert.Contains(t, e.Text, "sometime last week", "unparsed stamp must not be lost")
	assert.Contains(t, e.Text, "roof patched")
}

func TestParseNotes_MixedFormats(t *testing.T) {
	blob := "[2023-01-05 09:00] legacy entry\n\n" +
		"Mar 10, 2025 at 2:05 PM by Sam Ortiz\nstructured entry\n\n" +
		"just some loose text\nwith a second line"

	entries := ParseNotes(blob)
	require.Len(t, entries, 3)
	assert.Equal(t, NoteLegacy, entries[0].Kind)
	assert.Equal(t, NoteStructured, entries[1].Kind)
	assert.Equal(t, NoteRaw, entries[2].Kind)
	assert.Equal(t, "just some loose text\nwith a second line", entries[2].Raw)
}

func TestParseNotes_MalformedNeverPanics(t *testing.T) {
	blobs := []string{
		"",
		"   \n\n  ",
		"[unclosed bracket",
		"[] empty stamp",
		"at by\nno real header",
		"Mar 99, 2025 at 2:05 PM by Sam\nbad date",
	}
	for _, blob := range blobs {
		assert.NotPanics(t, func() { ParseNotes(blob) }, "blob=%q", blob)
	}
}

func TestParseNotes_BadStructuredHeaderFallsBackToRaw(t *testing.T) {
	entries := ParseNotes("Mar 99, 2025 at 2:05 PM by Sam\nbody")
	require.Len(t, entries, 1)
	assert.Equal(t, NoteRaw, entries[0].Kind)
	assert.Contains(t, entries[0].Raw, "body")
}
