package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/folio/pkg/client"
	"github.com/naveenspark/folio/pkg/domain"
)

type aboutLoadedMsg struct {
	about *domain.About
	err   error
}

// aboutModel edits the about section and uploads the resume.
type aboutModel struct {
	client  *client.Client
	about   domain.About
	form    *form
	editing bool
	loadErr string
	status  string
	width   int
	height  int
}

func newAboutModel(c *client.Client) aboutModel {
	m := aboutModel{client: c}
	m.form = m.newForm()
	return m
}

func (m aboutModel) Init() tea.Cmd {
	if m.client == nil {
		return nil
	}
	c := m.client
	return func() tea.Msg {
		a, err := c.GetAbout(context.Background())
		return aboutLoadedMsg{about: a, err: err}
	}
}

func (m aboutModel) capturing() bool { return m.editing }

func (m aboutModel) newForm() *form {
	c, a := m.client, m.about
	f := &form{
		title: "About section",
		fields: []formField{
			{key: "content", label: "Content", kind: fieldMultiline, value: a.Content, hint: "markdown"},
			{key: "frontend", label: "Frontend focus", kind: fieldMultiline, value: a.FrontendFocus},
			{key: "performance", label: "Performance", kind: fieldMultiline, value: a.Performance},
			{key: "resume", label: "Resume file", hint: "local PDF to upload, optional"},
		},
	}
	f.submit = func(f *form) (tea.Cmd, error) {
		in := client.AboutInput{
			Content:       f.value("content"),
			FrontendFocus: f.value("frontend"),
			Performance:   f.value("performance"),
			ResumeFile:    f.value("resume"),
		}
		if in.ResumeFile != "" {
			if err := checkFiles([]string{in.ResumeFile}); err != nil {
				return nil, err
			}
		}
		if c == nil {
			return nil, nil
		}
		return func() tea.Msg {
			err := c.SaveAbout(context.Background(), in)
			return formSavedMsg{route: pathAbout, err: err}
		}, nil
	}
	return f
}

func (m aboutModel) Update(msg tea.Msg) (aboutModel, tea.Cmd) {
	switch msg := msg.(type) {
	case aboutLoadedMsg:
		if msg.err != nil {
			m.loadErr = client.Describe(msg.err, "Failed to fetch about data.")
			return m, nil
		}
		m.loadErr = ""
		m.about = *msg.about
		if !m.editing {
			m.form = m.newForm()
		}
		return m, nil

	case formSavedMsg:
		if !m.form.saved(msg.err, "Update failed.") {
			return m, nil
		}
		m.editing = false
		m.status = "All sections updated successfully!"
		// Re-fetch so the stored resume path is current; the chosen file
		// is cleared with the new form.
		m.about.Content = m.form.value("content")
		m.about.FrontendFocus = m.form.value("frontend")
		m.about.Performance = m.form.value("performance")
		m.form = m.newForm()
		return m, m.Init()

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

func (m aboutModel) helpKeys() string {
	if m.editing {
		return helpLine("tab", "next", "ctrl+s", "save", "esc", "cancel")
	}
	return helpLine("e", "edit", "r", "reload")
}

func (m aboutModel) View() string {
	if m.loadErr != "" {
		return " " + titleStyle.Render("About section") + "\n\n " + errorStyle.Render(m.loadErr) + "\n"
	}
	if m.editing {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("About section") + "\n\n")
	if strings.TrimSpace(m.about.Content) == "" {
		b.WriteString("  " + inputPlaceholderStyle.Render("(no content yet)") + "\n")
	} else {
		b.WriteString(renderMarkdown(m.about.Content, m.width-4) + "\n")
	}
	b.WriteString("\n" + sectionHeaderStyle.Render(" ─── frontend focus") + "\n")
	b.WriteString("  " + normalStyle.Render(oneLine(m.about.FrontendFocus)) + "\n")
	b.WriteString(sectionHeaderStyle.Render(" ─── performance") + "\n")
	b.WriteString("  " + normalStyle.Render(oneLine(m.about.Performance)) + "\n")
	resume := m.about.ResumePath
	if resume == "" {
		resume = inputPlaceholderStyle.Render("(none uploaded)")
	}
	b.WriteString("\n  " + metaStyle.Render("resume ") + dimStyle.Render(resume) + "\n")
	if m.status != "" {
		b.WriteString("\n " + successStyle.Render(m.status) + "\n")
	}
	return b.String()
}
