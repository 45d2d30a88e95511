package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/folio/pkg/client"
	"github.com/naveenspark/folio/pkg/domain"
)

type homeLoadedMsg struct {
	home *domain.Home
	err  error
}

// homeModel edits the landing section of the site.
type homeModel struct {
	client  *client.Client
	home    domain.Home
	form    *form
	editing bool
	loadErr string
	status  string
	width   int
	height  int
}

func newHomeModel(c *client.Client) homeModel {
	m := homeModel{client: c}
	m.form = m.newForm()
	return m
}

func (m homeModel) Init() tea.Cmd {
	if m.client == nil {
		return nil
	}
	c := m.client
	return func() tea.Msg {
		h, err := c.GetHome(context.Background())
		return homeLoadedMsg{home: h, err: err}
	}
}

func (m homeModel) capturing() bool { return m.editing }

func (m homeModel) newForm() *form {
	c, h := m.client, m.home
	f := &form{
		title: "Home section",
		fields: []formField{
			{key: "title", label: "Title", value: h.Title},
			{key: "subtitle", label: "Subtitle", value: h.Subtitle},
			{key: "hero", label: "Hero image", value: h.HeroImage, hint: "image URL or stored path"},
		},
	}
	f.submit = func(f *form) (tea.Cmd, error) {
		next := domain.Home{
			Title:     f.value("title"),
			Subtitle:  f.value("subtitle"),
			HeroImage: f.value("hero"),
		}
		if next.Title == "" {
			return nil, errors.New("title is required")
		}
		if c == nil {
			return nil, nil
		}
		return func() tea.Msg {
			err := c.SaveHome(context.Background(), next)
			return formSavedMsg{route: pathHome, err: err}
		}, nil
	}
	return f
}

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		if msg.err != nil {
			m.loadErr = client.Describe(msg.err, "Failed to fetch home data.")
			return m, nil
		}
		m.loadErr = ""
		m.home = *msg.home
		if !m.editing {
			m.form = m.newForm()
		}
		return m, nil

	case formSavedMsg:
		if !m.form.saved(msg.err, "Update failed.") {
			return m, nil
		}
		m.home = domain.Home{
			Title:     m.form.value("title"),
			Subtitle:  m.form.value("subtitle"),
			HeroImage: m.form.value("hero"),
		}
		m.editing = false
		m.form = m.newForm()
		m.status = "Home section updated successfully!"
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			action, cmd := m.form.handleKey(msg)
			if action == formCancel {
				m.editing = false
				m.form = m.newForm()
			}
			return m, cmd
		}
		m.status = ""
		switch msg.String() {
		case "e", "enter":
			if m.loadErr == "" {
				m.editing = true
			}
		case "r":
			return m, m.Init()
		}
	}
	return m, nil
}

func (m homeModel) helpKeys() string {
	if m.editing {
		return helpLine("tab", "next", "ctrl+s", "save", "esc", "cancel")
	}
	return helpLine("e", "edit", "r", "reload")
}

func (m homeModel) View() string {
	if m.loadErr != "" {
		return " " + titleStyle.Render("Home section") + "\n\n " + errorStyle.Render(m.loadErr) + "\n"
	}
	if m.editing {
		return m.form.View()
	}
	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("Home section") + "\n\n")
	row := func(label, value string) {
		if value == "" {
			value = inputPlaceholderStyle.Render("(empty)")
		}
		b.WriteString("  " + metaStyle.Render(padRight(label, 11)) + normalStyle.Render(value) + "\n")
	}
	row("Title", m.home.Title)
	row("Subtitle", m.home.Subtitle)
	row("Hero image", m.home.HeroImage)
	if m.status != "" {
		b.WriteString("\n " + successStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
