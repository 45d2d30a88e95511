package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/folio/pkg/client"
)

// loginResultMsg carries the response of the credentials exchange.
type loginResultMsg struct {
	result *client.LoginResult
	err    error
}

// LoginFailedMessage is shown when the API gives no reason of its own.
const LoginFailedMessage = "Login failed. Check credentials."

type loginModel struct {
	client *client.Client
	form   *form
	notice string
	width  int
	height int
}

func newLoginModel(c *client.Client, email string) loginModel {
	m := loginModel{client: c}
	m.form = &form{
		hint: "enter sign in",
		busy: "Logging in...",
		fields: []formField{
			{key: "email", label: "Email", value: email},
			{key: "password", label: "Password", secret: true},
		},
	}
	if email != "" {
		m.form.focus = 1
	}
	m.form.submit = func(f *form) (tea.Cmd, error) {
		email, password := f.value("email"), f.field("password").value
		if email == "" || password == "" {
			return nil, errors.New("email and password are required")
		}
		if !strings.Contains(email, "@") {
			return nil, errors.New("enter a valid email address")
		}
		if c == nil {
			return nil, nil
		}
		return func() tea.Msg {
			res, err := c.Login(context.Background(), email, password)
			return loginResultMsg{result: res, err: err}
		}, nil
	}
	return m
}

// reset clears the password, keeping the email for the next attempt.
func (m *loginModel) reset(notice string) {
	m.form.field("password").value = ""
	m.form.saving = false
	m.form.errMsg = ""
	m.form.focus = 1
	m.notice = notice
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.form.saving = false
		if msg.err != nil {
			m.form.errMsg = client.Describe(msg.err, LoginFailedMessage)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		// enter on the last field submits, like a browser form
		if msg.String() == "enter" && m.form.focus == len(m.form.fields)-1 {
			return m, m.form.trySubmit()
		}
		_, cmd := m.form.handleKey(msg)
		return m, cmd
	}
	return m, nil
}

func (m loginModel) helpKeys() string {
	return helpLine("tab", "next", "enter", "sign in", "ctrl+c", "quit")
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("\n " + titleStyle.Render("Admin Login") + "\n\n")
	if m.notice != "" {
		b.WriteString(" " + dimStyle.Render(m.notice) + "\n\n")
	}
	b.WriteString(m.form.View())
	return b.String()
}
