package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/folio/pkg/client"
	"github.com/naveenspark/folio/pkg/domain"
)

func newContactsScreen(c *client.Client, pageSize int) resourceScreen[domain.Contact] {
	res := resource[domain.Contact]{
		route:      pathContacts,
		title:      "Contact messages",
		empty:      "No messages.",
		loadFailed: "Failed to load contact messages. Check API/Auth.",
		label:      func(m domain.Contact) string { return "message from " + m.Name },
		row:        contactRow,
		detail:     contactDetail,
		keys:       contactKeys,
		keyHelp:    []string{"c", "copy email"},
	}
	if c != nil {
		res.fetch = func(ctx context.Context, page, limit int, _ string) (*domain.Page[domain.Contact], error) {
			return c.ListContacts(ctx, page, limit)
		}
		res.remove = func(ctx context.Context, m domain.Contact) error {
			return c.DeleteContact(ctx, m.ID)
		}
	}
	return newResourceScreen(res, pageSize)
}

func contactRow(m domain.Contact, width int) string {
	who := normalStyle.Render(fmt.Sprintf("%-20s", truncStr(m.Name, 20)))
	email := dimStyle.Render(fmt.Sprintf("%-28s", truncStr(m.Email, 28)))
	when := metaStyle.Render(formatStamp(m.CreatedAt))
	preview := truncStr(oneLine(m.Message), max(width-70, 10))
	return who + " " + email + " " + when + "  " + dimStyle.Render(preview)
}

func contactDetail(m domain.Contact, width int) string {
	body := lipgloss.NewStyle().Width(max(width-4, 20)).Render(m.Message)
	return "  " + selectedStyle.Render(m.Name) + " " + dimStyle.Render("<"+m.Email+">") + "\n\n" +
		lipgloss.NewStyle().PaddingLeft(2).Render(normalStyle.Render(body))
}

func contactKeys(m domain.Contact, key string) tea.Cmd {
	if key != "c" || m.Email == "" {
		return nil
	}
	email := m.Email
	return func() tea.Msg {
		if err := clipboard.WriteAll(email); err != nil {
			return statusMsg{route: pathContacts, text: fmt.Sprintf("copy failed: %v", err)}
		}
		return statusMsg{route: pathContacts, text: "copied " + email}
	}
}
