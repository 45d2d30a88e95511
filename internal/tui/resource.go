package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/folio/pkg/client"
)

// resourceMode is the state machine of a collection screen.
type resourceMode int

const (
	modeList    resourceMode = iota
	modeForm                 // create or edit form open
	modeConfirm              // delete confirmation
)

// -- messages --

type deletedMsg struct {
	route string
	err   error
}

// statusMsg sets the one-line status of the screen at route.
type statusMsg struct {
	route string
	text  string
}

// resource describes a paginated collection and how to manage it.
type resource[T any] struct {
	route      string
	title      string
	empty      string
	loadFailed string

	// filters cycles with "f"; "" is the unfiltered entry.
	filters     []string
	filterLabel string

	fetch  fetchFunc[T]
	remove func(ctx context.Context, item T) error
	label  func(item T) string
	row    func(item T, width int) string
	detail func(item T, width int) string
	// newForm opens the editor; item is nil in create mode. Nil makes the
	// collection read-only.
	newForm func(item *T) *form
	// keys handles screen-specific actions on the selected item.
	keys    func(item T, key string) tea.Cmd
	keyHelp []string
}

type resourceScreen[T any] struct {
	res      resource[T]
	list     listing[T]
	filter   int
	mode     resourceMode
	form     *form
	deleting bool
	status   string
	width    int
	height   int
}

func newResourceScreen[T any](res resource[T], pageSize int) resourceScreen[T] {
	return resourceScreen[T]{res: res, list: newListing[T](pageSize, res.loadFailed)}
}

func (m resourceScreen[T]) currentFilter() string {
	if len(m.res.filters) == 0 {
		return ""
	}
	return m.res.filters[m.filter]
}

func (m *resourceScreen[T]) load(page int) tea.Cmd {
	return m.list.load(page, m.currentFilter(), m.res.fetch)
}

// Init reloads the current page.
func (m *resourceScreen[T]) Init() tea.Cmd {
	return m.load(m.list.page)
}

// capturing reports whether keys belong to a form or prompt.
func (m resourceScreen[T]) capturing() bool {
	return m.mode != modeList
}

func (m resourceScreen[T]) Update(msg tea.Msg) (resourceScreen[T], tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg[T]:
		m.list.apply(msg)
		return m, nil

	case formSavedMsg:
		if m.form == nil {
			return m, nil
		}
		if !m.form.saved(msg.err, "Save failed.") {
			return m, nil
		}
		m.form = nil
		m.mode = modeList
		m.status = "saved"
		return m, m.load(m.list.page)

	case deletedMsg:
		m.deleting = false
		if msg.err != nil {
			return m, showAlert(client.Describe(msg.err, "Deletion failed."))
		}
		m.status = "deleted"
		return m, m.load(m.list.page)

	case statusMsg:
		m.status = msg.text
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.handleKeyForm(msg)
		case modeConfirm:
			return m.handleKeyConfirm(msg)
		}
		m.status = ""
		return m.handleKey(msg)
	}
	return m, nil
}

func (m resourceScreen[T]) handleKey(msg tea.KeyMsg) (resourceScreen[T], tea.Cmd) {
	key := msg.String()
	switch key {
	case "j", "down":
		m.list.moveCursor(1)
	case "k", "up":
		m.list.moveCursor(-1)
	case "h", "left", "pgup":
		if m.list.hasPrev() {
			m.list.cursor = 0
			return m, m.load(m.list.page - 1)
		}
	case "l", "right", "pgdown":
		if m.list.hasNext() {
			m.list.cursor = 0
			return m, m.load(m.list.page + 1)
		}
	case "f":
		if len(m.res.filters) > 0 {
			m.filter = (m.filter + 1) % len(m.res.filters)
			m.list.cursor = 0
			return m, m.load(1)
		}
	case "r":
		return m, m.load(m.list.page)
	case "a", "n":
		if m.res.newForm != nil {
			m.form = m.res.newForm(nil)
			m.mode = modeForm
		}
	case "e", "enter":
		if item, ok := m.list.selected(); ok && m.res.newForm != nil {
			m.form = m.res.newForm(&item)
			m.mode = modeForm
		}
	case "d":
		if _, ok := m.list.selected(); ok && m.res.remove != nil && !m.deleting {
			m.mode = modeConfirm
		}
	default:
		if item, ok := m.list.selected(); ok && m.res.keys != nil {
			return m, m.res.keys(item, key)
		}
	}
	return m, nil
}

func (m resourceScreen[T]) handleKeyForm(msg tea.KeyMsg) (resourceScreen[T], tea.Cmd) {
	action, cmd := m.form.handleKey(msg)
	if action == formCancel {
		m.form = nil
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m resourceScreen[T]) handleKeyConfirm(msg tea.KeyMsg) (resourceScreen[T], tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeList
		item, ok := m.list.selected()
		if !ok || m.res.remove == nil {
			return m, nil
		}
		m.deleting = true
		remove, route := m.res.remove, m.res.route
		return m, func() tea.Msg {
			err := remove(context.Background(), item)
			return deletedMsg{route: route, err: err}
		}
	case "n", "N", "esc":
		m.mode = modeList
	}
	return m, nil
}

func (m resourceScreen[T]) helpKeys() string {
	switch m.mode {
	case modeForm:
		return helpLine("tab", "next", "ctrl+s", "save", "esc", "cancel")
	case modeConfirm:
		return helpLine("y", "delete", "n", "cancel")
	}
	pairs := []string{"j/k", "nav", "h/l", "page"}
	if len(m.res.filters) > 0 {
		pairs = append(pairs, "f", "filter")
	}
	if m.res.newForm != nil {
		pairs = append(pairs, "a", "add", "e", "edit")
	}
	if m.res.remove != nil {
		pairs = append(pairs, "d", "delete")
	}
	pairs = append(pairs, m.res.keyHelp...)
	pairs = append(pairs, "r", "reload")
	return helpLine(pairs...)
}

func (m resourceScreen[T]) View() string {
	if m.mode == modeForm && m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	header := " " + titleStyle.Render(m.res.title)
	if len(m.res.filters) > 0 {
		f := m.currentFilter()
		if f == "" {
			f = "ALL"
		}
		header += dimStyle.Render("  ·  "+m.res.filterLabel+": ") + accentStyle.Render(f)
	}
	if m.list.total > 0 {
		header += metaStyle.Render(fmt.Sprintf("  (%d)", m.list.total))
	}
	b.WriteString(header + "\n\n")

	switch {
	case m.list.loading && len(m.list.items) == 0:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
	case m.list.err != "":
		b.WriteString(" " + errorStyle.Render(m.list.err) + "\n")
	case len(m.list.items) == 0:
		b.WriteString(" " + dimStyle.Render(m.res.empty) + "\n")
	default:
		b.WriteString(m.list.rows(m.width, m.res.row))
	}

	b.WriteString("\n " + m.list.pager() + "\n")

	if item, ok := m.list.selected(); ok && m.res.detail != nil && m.list.err == "" {
		if d := m.res.detail(item, m.width); d != "" {
			b.WriteString("\n" + sectionHeaderStyle.Render(" ─── details") + "\n" + d + "\n")
		}
	}

	switch {
	case m.mode == modeConfirm:
		name := ""
		if item, ok := m.list.selected(); ok {
			name = m.res.label(item)
		}
		b.WriteString("\n " + errorStyle.Render(fmt.Sprintf("Delete %q? ", name)) + helpEntry("y", "yes") + "  " + helpEntry("n", "no") + "\n")
	case m.deleting:
		b.WriteString("\n " + dimStyle.Render("deleting...") + "\n")
	case m.status != "":
		b.WriteString("\n " + successStyle.Render(m.status) + "\n")
	}
	return b.String()
}
