package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/folio/pkg/domain"
)

var (
	// Base styles
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#343c4a"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#818cf8"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a5b4fc")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	featuredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844")).
			Bold(true)

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#818cf8")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	selectedRowBg = lipgloss.NewStyle().Background(lipgloss.Color("#1e1e2a"))

	alertBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#b45555")).
			Padding(1, 3)

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3ecce4"))

	categoryColors = map[domain.Category]lipgloss.Color{
		domain.CategoryFrontend: lipgloss.Color("#d4a844"),
		domain.CategoryBackend:  lipgloss.Color("#60a0e0"),
		domain.CategoryDatabase: lipgloss.Color("#3ecce4"),
		domain.CategoryTools:    lipgloss.Color("#b080d0"),
	}
)

// CategoryStyle returns a bold style colored for a skill category.
func CategoryStyle(c domain.Category) lipgloss.Style {
	if col, ok := categoryColors[c]; ok {
		return lipgloss.NewStyle().Foreground(col).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878")).Bold(true)
}

// KindStyle colors journey entries by kind.
func KindStyle(k domain.JourneyKind) lipgloss.Style {
	if k == domain.KindEducation {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#c084e0"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#f0944a"))
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpLine joins key/label pairs into a help bar.
func helpLine(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, helpEntry(pairs[i], pairs[i+1]))
	}
	return " " + strings.Join(parts, "  ")
}

// levelBar renders a skill level as a ten-cell meter.
func levelBar(level *int) string {
	if level == nil {
		return dimStyle.Render("-")
	}
	filled := *level / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return accentStyle.Render(strings.Repeat("■", filled)) +
		disabledStyle.Render(strings.Repeat("■", 10-filled))
}
