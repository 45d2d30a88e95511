package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/folio/internal/browser"
	"github.com/naveenspark/folio/pkg/client"
	"github.com/naveenspark/folio/pkg/domain"
)

func newProjectsScreen(c *client.Client, pageSize int) resourceScreen[domain.Project] {
	res := resource[domain.Project]{
		route:      pathProjects,
		title:      "Projects",
		empty:      "No projects yet. Press a to add one.",
		loadFailed: "Failed to load projects.",
		label:      func(p domain.Project) string { return p.Title },
		row:        projectRow,
		detail:     projectDetail,
		newForm:    func(p *domain.Project) *form { return newProjectForm(c, p) },
		keys:       projectKeys,
		keyHelp:    []string{"o/O", "repo/demo", "c", "copy repo"},
	}
	if c != nil {
		res.fetch = func(ctx context.Context, page, limit int, _ string) (*domain.Page[domain.Project], error) {
			return c.ListProjects(ctx, page, limit)
		}
		res.remove = func(ctx context.Context, p domain.Project) error {
			return c.DeleteProject(ctx, p.ID)
		}
	}
	return newResourceScreen(res, pageSize)
}

func projectRow(p domain.Project, width int) string {
	star := "  "
	if p.Featured {
		star = featuredStyle.Render("★ ")
	}
	room := max(width-40, 20)
	line := star + normalStyle.Render(fmt.Sprintf("%-28s", truncStr(p.Title, 28)))
	if len(p.TechStack) > 0 {
		line += " " + dimStyle.Render(truncStr(strings.Join(p.TechStack, ", "), room))
	}
	if n := len(p.Images); n > 0 {
		line += metaStyle.Render(fmt.Sprintf("  %d img", n))
	}
	return line
}

func projectDetail(p domain.Project, width int) string {
	var b strings.Builder
	if p.RepoLink != "" {
		b.WriteString("  " + metaStyle.Render("repo ") + accentStyle.Render(p.RepoLink) + "\n")
	}
	if p.DemoLink != "" {
		b.WriteString("  " + metaStyle.Render("demo ") + accentStyle.Render(p.DemoLink) + "\n")
	}
	for _, img := range p.Images {
		b.WriteString("  " + metaStyle.Render("img  ") + dimStyle.Render(img) + "\n")
	}
	if strings.TrimSpace(p.Description) != "" {
		b.WriteString(renderMarkdown(p.Description, width-4))
	}
	return strings.TrimRight(b.String(), "\n")
}

func projectKeys(p domain.Project, key string) tea.Cmd {
	switch key {
	case "o", "O":
		link, what := p.RepoLink, "repo"
		if key == "O" {
			link, what = p.DemoLink, "demo"
		}
		if link == "" {
			return statusCmd(pathProjects, "no "+what+" link")
		}
		return func() tea.Msg {
			if err := browser.Open(link); err != nil {
				return statusMsg{route: pathProjects, text: fmt.Sprintf("open failed: %v", err)}
			}
			return statusMsg{route: pathProjects, text: "opened " + what}
		}
	case "c":
		if p.RepoLink == "" {
			return statusCmd(pathProjects, "no repo link")
		}
		link := p.RepoLink
		return func() tea.Msg {
			if err := clipboard.WriteAll(link); err != nil {
				return statusMsg{route: pathProjects, text: fmt.Sprintf("copy failed: %v", err)}
			}
			return statusMsg{route: pathProjects, text: "copied!"}
		}
	}
	return nil
}

func statusCmd(route, text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{route: route, text: text} }
}

func newProjectForm(c *client.Client, p *domain.Project) *form {
	f := &form{
		title: "New project",
		fields: []formField{
			{key: "title", label: "Title"},
			{key: "description", label: "Description", kind: fieldMultiline},
			{key: "tech", label: "Tech stack", hint: "comma separated"},
			{key: "repo", label: "Repo link", hint: "https://..."},
			{key: "demo", label: "Demo link", hint: "https://..."},
			{key: "featured", label: "Featured", kind: fieldToggle},
			{key: "keep", label: "Keep images", hint: "stored paths to retain", hidden: true},
			{key: "images", label: "New images", hint: "local files, comma separated"},
		},
	}

	var id domain.ID
	var stored []string
	if p != nil {
		id = p.ID
		stored = p.Images
		f.title = "Edit project"
		f.field("title").value = p.Title
		f.field("description").value = p.Description
		f.field("tech").value = strings.Join(p.TechStack, ", ")
		f.field("repo").value = p.RepoLink
		f.field("demo").value = p.DemoLink
		f.field("featured").on = p.Featured
		keep := f.field("keep")
		keep.hidden = false
		keep.value = strings.Join(p.Images, ", ")
	}

	f.submit = func(f *form) (tea.Cmd, error) {
		in := client.ProjectInput{
			Title:       f.value("title"),
			Description: f.value("description"),
			TechStack:   splitList(f.value("tech")),
			RepoLink:    f.value("repo"),
			DemoLink:    f.value("demo"),
			Featured:    f.toggled("featured"),
			NewImages:   splitList(f.value("images")),
		}
		if in.Title == "" {
			return nil, errors.New("title is required")
		}
		if in.Description == "" {
			return nil, errors.New("description is required")
		}
		for _, link := range []string{in.RepoLink, in.DemoLink} {
			if link == "" {
				continue
			}
			if err := browser.Validate(link); err != nil {
				return nil, fmt.Errorf("links must be absolute http(s) URLs: %s", link)
			}
		}
		if err := checkFiles(in.NewImages); err != nil {
			return nil, err
		}
		if id != "" {
			keep, err := keepList(f.value("keep"), stored)
			if err != nil {
				return nil, err
			}
			in.KeepImages = keep
		}
		if c == nil {
			return nil, nil
		}
		return func() tea.Msg {
			var err error
			if id == "" {
				err = c.CreateProject(context.Background(), in)
			} else {
				err = c.UpdateProject(context.Background(), id, in)
			}
			return formSavedMsg{route: pathProjects, err: err}
		}, nil
	}
	return f
}

// keepList parses the retained images, which must all be stored already.
func keepList(raw string, stored []string) ([]string, error) {
	known := make(map[string]bool, len(stored))
	for _, s := range stored {
		known[s] = true
	}
	keep := []string{}
	for _, k := range splitList(raw) {
		if !known[k] {
			return nil, fmt.Errorf("unknown stored image: %s", k)
		}
		keep = append(keep, k)
	}
	return keep, nil
}

// checkFiles verifies each path names a readable regular file.
func checkFiles(paths []string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("file not found: %s", p)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("not a file: %s", p)
		}
	}
	return nil
}
