package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// alertMsg opens a blocking notice that must be dismissed.
type alertMsg struct{ text string }

func showAlert(text string) tea.Cmd {
	return func() tea.Msg { return alertMsg{text: text} }
}

func alertView(text string, width, height int) string {
	box := alertBoxStyle.Render(errorStyle.Bold(true).Render(text) + "\n\n" +
		dimStyle.Render("press enter to dismiss"))
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(box, "\n"))
}
