package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	noteDateLayout = "Jan 2, 2006"
	noteTimeLayout = "3:04 PM"
)

// NoteKind tags which format a parsed notes block matched.
type NoteKind string

const (
	// NoteStructured is the current format: a "{date} at {time} by {author}"
	// header line followed by free text.
	NoteStructured NoteKind = "structured"
	// NoteLegacy is the historical single-line "[timestamp] text" format.
	NoteLegacy NoteKind = "legacy"
	// NoteRaw is the lossless fallback for blocks matching neither format.
	NoteRaw NoteKind = "raw"
)

// NoteEntry is one parsed block of the internal-notes blob. Raw always holds
// the original block text so nothing is ever lost.
type NoteEntry struct {
	Kind      NoteKind
	Timestamp *time.Time
	Author    string
	Text      string
	Raw       string
}

// AppendNote appends a structured entry to the notes blob, separated from
// prior entries by a blank line.
func (c *Claim) AppendNote(text, author string, now time.Time) {
	entry := fmt.Sprintf("%s at %s by %s\n%s",
		now.Format(noteDateLayout), now.Format(noteTimeLayout), author, text)
	if c.InternalNotes == "" {
		c.InternalNotes = entry
	} else {
		c.InternalNotes += "\n\n" + entry
	}
	c.UpdatedAt = now
}

// ParseNotes splits the notes blob into entries, recognizing both the
// structured and the legacy format. Unparseable blocks come back as NoteRaw;
// parsing never fails.
func ParseNotes(blob string) []NoteEntry {
	if strings.TrimSpace(blob) == "" {
		return nil
	}

	var entries []NoteEntry
	for _, block := range strings.Split(blob, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		entries = append(entries, parseNoteBlock(block))
	}
	return entries
}

func parseNoteBlock(block string) NoteEntry {
	if strings.HasPrefix(block, "[") {
		if e, ok := parseLegacyNote(block); ok {
			return e
		}
	}
	if e, ok := parseStructuredNote(block); ok {
		return e
	}
	return NoteEntry{Kind: NoteRaw, Text: block, Raw: block}
}

// parseLegacyNote handles "[timestamp] text". The timestamp is best-effort:
// legacy data carried several layouts, and an unrecognized one still yields a
// legacy entry with the bracket contents dropped into Author-less text.
func parseLegacyNote(block string) (NoteEntry, bool) {
	end := strings.Index(block, "]")
	if end < 0 {
		return NoteEntry{}, false
	}
	stamp := strings.TrimSpace(block[1:end])
	text := strings.TrimSpace(block[end+1:])
	if stamp == "" {
		return NoteEntry{}, false
	}

	e := NoteEntry{Kind: NoteLegacy, Text: text, Raw: block}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"1/2/2006 3:04 PM",
	} {
		if t, err := time.Parse(layout, stamp); err == nil {
			e.Timestamp = &t
			break
		}
	}
	if e.Timestamp == nil {
		// Keep the unparsed stamp visible rather than discarding it.
		e.Text = stamp + " " + text
	}
	return e, true
}

func parseStructuredNote(block string) (NoteEntry, bool) {
	header, text, _ := strings.Cut(block, "\n")

	byIdx := strings.LastIndex(header, " by ")
	if byIdx < 0 {
		return NoteEntry{}, false
	}
	author := strings.TrimSpace(header[byIdx+len(" by "):])
	stamp := header[:byIdx]

	datePart, timePart, found := strings.Cut(stamp, " at ")
	if !found || author == "" {
		return NoteEntry{}, false
	}
	t, err := time.Parse(noteDateLayout+" "+noteTimeLayout, strings.TrimSpace(datePart)+" "+strings.TrimSpace(timePart))
	if err != nil {
		return NoteEntry{}, false
	}

	return NoteEntry{
		Kind:      NoteStructured,
		Timestamp: &t,
		Author:    author,
		Text:      strings.TrimSpace(text),
		Raw:       block,
	}, true
}
