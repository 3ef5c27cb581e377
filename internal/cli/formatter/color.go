package formatter

import (
	"fmt"
	"strings"

	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColorEnabled downgrades every style to plain text when disabled, for
// piped or redirected output.
func SetColorEnabled(enabled bool) {
	if enabled {
		return
	}
	plain := lipgloss.NewStyle()
	StyleGreen = plain
	StyleYellow = plain
	StyleRed = plain
	StyleBlue = plain
	StylePurple = plain
	StyleDim = plain
	StyleFg = plain
	StyleHeader = plain
	StyleBold = plain
}

// StatusPill returns a colored status indicator for a claim status.
func StatusPill(status domain.ClaimStatus) string {
	switch status {
	case domain.StatusSubmitted:
		return StyleBlue.Render("● SUBMITTED")
	case domain.StatusReviewing:
		return StylePurple.Render("● REVIEWING")
	case domain.StatusScheduling:
		return StyleYellow.Render("● SCHEDULING")
	case domain.StatusScheduled:
		return StyleGreen.Render("● SCHEDULED")
	case domain.StatusCompleted:
		return StyleDim.Render("● COMPLETED")
	default:
		return StyleDim.Render("● " + string(status))
	}
}

// ClassificationLabel colors closing classifications so a denied or closed
// claim is visible at a glance.
func ClassificationLabel(cl domain.Classification) string {
	if cl == domain.ClassUnclassified || cl == "" {
		return StyleDim.Render("—")
	}
	if cl.IsClosing() {
		return StyleRed.Render(string(cl))
	}
	return StyleFg.Render(string(cl))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
