package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/naveenspark/folio/internal/config"
	"github.com/naveenspark/folio/internal/session"
	"github.com/naveenspark/folio/pkg/client"
	"github.com/naveenspark/folio/pkg/domain"
)

// SessionChangedMsg tells the app the token file changed on disk, for
// instance after `folio logout` in another terminal.
type SessionChangedMsg struct{}

const sessionEndedNotice = "Your session has ended. Please sign in again."

// Options configures the dashboard.
type Options struct {
	Client     *client.Client
	Session    *session.Session
	Logger     *zap.Logger
	StartPath  string
	AdminEmail string
	PageSize   config.PageSizes
	Version    string
}

// App is the root Bubbletea model. It owns the router and applies the
// route guard after every update.
type App struct {
	client  *client.Client
	session *session.Session
	logger  *zap.Logger
	version string

	router    router
	shown     string // path whose screen was last entered
	wasAuthed bool

	login    loginModel
	home     homeModel
	about    aboutModel
	skills   resourceScreen[domain.Skill]
	journey  resourceScreen[domain.JourneyEntry]
	projects resourceScreen[domain.Project]
	contacts resourceScreen[domain.Contact]

	alert  string
	width  int
	height int
}

// NewApp creates the dashboard.
func NewApp(opts Options) App {
	c := opts.Client
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	start := opts.StartPath
	if start == "" {
		start = pathRoot
	}
	return App{
		client:    c,
		session:   opts.Session,
		logger:    logger,
		version:   opts.Version,
		router:    newRouter(start),
		wasAuthed: opts.Session.IsAuthenticated(),
		login:     newLoginModel(c, opts.AdminEmail),
		home:      newHomeModel(c),
		about:     newAboutModel(c),
		skills:    newSkillsScreen(c, opts.PageSize.Skills),
		journey:   newJourneyScreen(c, opts.PageSize.Journey),
		projects:  newProjectsScreen(c, opts.PageSize.Projects),
		contacts:  newContactsScreen(c, opts.PageSize.Contacts),
	}
}

func (a App) Init() tea.Cmd {
	return a.settle()
}

// Path returns the current in-app path.
func (a App) Path() string {
	return a.router.current()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, tea.Batch(cmd, a.settle())
}

// settle resolves redirects and the guard for the current path and enters
// the resulting screen if it changed.
func (a *App) settle() tea.Cmd {
	authed := a.session.IsAuthenticated()
	if a.wasAuthed && !authed {
		a.logger.Info("session ended, returning to login")
		a.login.reset(sessionEndedNotice)
	}
	a.wasAuthed = authed

	p := a.router.settle(authed)
	if p == a.shown {
		return nil
	}
	a.shown = p
	a.logger.Debug("navigate", zap.String("path", p))
	return a.enter(p)
}

// enter starts the screen at p, loading its data.
func (a *App) enter(p string) tea.Cmd {
	switch p {
	case pathHome:
		return a.home.Init()
	case pathAbout:
		return a.about.Init()
	case pathSkills:
		return a.skills.Init()
	case pathJourney:
		return a.journey.Init()
	case pathProjects:
		return a.projects.Init()
	case pathContacts:
		return a.contacts.Init()
	}
	return nil
}

func (a *App) navigate(p string) {
	if normalizePath(p) != a.router.current() {
		a.router.push(p)
	}
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(1) + tabs(1) + blank(1) + help(1)
		body := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.login, _ = a.login.Update(body)
		a.home, _ = a.home.Update(body)
		a.about, _ = a.about.Update(body)
		a.skills, _ = a.skills.Update(body)
		a.journey, _ = a.journey.Update(body)
		a.projects, _ = a.projects.Update(body)
		a.contacts, _ = a.contacts.Update(body)
		return nil

	case SessionChangedMsg:
		a.session.Reload()
		return nil

	case alertMsg:
		a.alert = msg.text
		return nil

	case loginResultMsg:
		if msg.err != nil || msg.result == nil {
			var cmd tea.Cmd
			a.login, cmd = a.login.Update(msg)
			return cmd
		}
		user := msg.result.User
		if err := a.session.Login(msg.result.Token, &user); err != nil {
			a.logger.Error("store token", zap.Error(err))
			a.login.form.saving = false
			a.login.form.errMsg = fmt.Sprintf("could not store token: %v", err)
			return nil
		}
		a.wasAuthed = true
		a.login.reset("")
		// The login screen leaves history so back cannot return to it.
		a.router.replace(pathAdmin)
		return nil

	case homeLoadedMsg:
		var cmd tea.Cmd
		a.home, cmd = a.home.Update(msg)
		return cmd
	case aboutLoadedMsg:
		var cmd tea.Cmd
		a.about, cmd = a.about.Update(msg)
		return cmd
	case pageLoadedMsg[domain.Skill]:
		var cmd tea.Cmd
		a.skills, cmd = a.skills.Update(msg)
		return cmd
	case pageLoadedMsg[domain.JourneyEntry]:
		var cmd tea.Cmd
		a.journey, cmd = a.journey.Update(msg)
		return cmd
	case pageLoadedMsg[domain.Project]:
		var cmd tea.Cmd
		a.projects, cmd = a.projects.Update(msg)
		return cmd
	case pageLoadedMsg[domain.Contact]:
		var cmd tea.Cmd
		a.contacts, cmd = a.contacts.Update(msg)
		return cmd

	case formSavedMsg:
		return a.updateScreen(msg.route, msg)
	case deletedMsg:
		return a.updateScreen(msg.route, msg)
	case statusMsg:
		return a.updateScreen(msg.route, msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return nil
}

// updateScreen delivers msg to the screen at route, active or not.
func (a *App) updateScreen(route string, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch route {
	case pathLogin:
		a.login, cmd = a.login.Update(msg)
	case pathHome:
		a.home, cmd = a.home.Update(msg)
	case pathAbout:
		a.about, cmd = a.about.Update(msg)
	case pathSkills:
		a.skills, cmd = a.skills.Update(msg)
	case pathJourney:
		a.journey, cmd = a.journey.Update(msg)
	case pathProjects:
		a.projects, cmd = a.projects.Update(msg)
	case pathContacts:
		a.contacts, cmd = a.contacts.Update(msg)
	}
	return cmd
}

func (a App) capturing() bool {
	switch a.router.current() {
	case pathLogin:
		return true
	case pathHome:
		return a.home.capturing()
	case pathAbout:
		return a.about.capturing()
	case pathSkills:
		return a.skills.capturing()
	case pathJourney:
		return a.journey.capturing()
	case pathProjects:
		return a.projects.capturing()
	case pathContacts:
		return a.contacts.capturing()
	}
	return false
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	// The alert blocks everything until dismissed.
	if a.alert != "" {
		switch key {
		case "enter", "esc", " ", "y":
			a.alert = ""
		case "ctrl+c":
			return tea.Quit
		}
		return nil
	}
	if key == "ctrl+c" {
		return tea.Quit
	}

	if !a.capturing() {
		switch key {
		case "q":
			return tea.Quit
		case "b":
			a.router.back()
			return nil
		case "L":
			if a.session.IsAuthenticated() {
				return a.logout()
			}
		}
		for _, t := range adminTabs {
			if key == t.key {
				a.navigate(t.path)
				return nil
			}
		}
		if !isKnown(a.router.current()) && (key == "enter" || key == "esc") {
			a.navigate(pathRoot)
			return nil
		}
	}
	return a.updateScreen(a.router.current(), msg)
}

func (a *App) logout() tea.Cmd {
	if err := a.session.Logout(); err != nil {
		a.logger.Warn("logout", zap.Error(err))
	}
	a.wasAuthed = false
	a.login.reset("Signed out.")
	a.navigate(pathLogin)
	return nil
}

func (a App) View() string {
	current := a.router.current()

	// Header
	left := " " + titleStyle.Render("folio") + dimStyle.Render(" admin")
	if a.version != "" {
		left += metaStyle.Render(" " + a.version)
	}
	right := ""
	if u := a.session.User(); u != nil && u.Email != "" {
		right = metaStyle.Render(u.Email) + " "
	} else if a.session.IsAuthenticated() {
		right = metaStyle.Render("signed in") + " "
	}
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	header := left + strings.Repeat(" ", gap) + right

	// Tab bar
	var tabBar string
	if isGuarded(current) {
		var tabs []string
		for _, t := range adminTabs {
			if t.path == current {
				tabs = append(tabs, accentStyle.Render(t.key)+" "+selectedStyle.Underline(true).Render(t.name))
			} else {
				tabs = append(tabs, metaStyle.Render(t.key)+" "+dimStyle.Render(t.name))
			}
		}
		tabBar = " " + strings.Join(tabs, "   ")
	}

	var body, help string
	global := helpLine("1-6", "tabs", "b", "back", "L", "sign out", "q", "quit")
	switch current {
	case pathLogin:
		body = a.login.View()
		help = a.login.helpKeys()
	case pathHome:
		body = a.home.View()
		help = a.home.helpKeys()
	case pathAbout:
		body = a.about.View()
		help = a.about.helpKeys()
	case pathSkills:
		body = a.skills.View()
		help = a.skills.helpKeys()
	case pathJourney:
		body = a.journey.View()
		help = a.journey.helpKeys()
	case pathProjects:
		body = a.projects.View()
		help = a.projects.helpKeys()
	case pathContacts:
		body = a.contacts.View()
		help = a.contacts.helpKeys()
	default:
		body = notFoundView(current)
		help = helpLine("enter", "go to dashboard", "q", "quit")
	}
	if current != pathLogin && isKnown(current) && !a.capturing() {
		help += "  " + global
	}

	bodyHeight := a.height - 4
	if a.alert != "" {
		body = alertView(a.alert, a.width, bodyHeight)
		help = helpLine("enter", "dismiss")
	}
	body = strings.TrimRight(truncateToHeight(body, bodyHeight), "\n")

	return fmt.Sprintf("%s\n%s\n\n%s\n%s", header, tabBar, body, help)
}

func notFoundView(p string) string {
	return "\n " + titleStyle.Render("404") + "  " + dimStyle.Render("Nothing lives at ") + normalStyle.Render(p) +
		"\n\n " + dimStyle.Render("Press enter to return to the dashboard.") + "\n"
}
