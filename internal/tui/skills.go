package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/folio/pkg/client"
	"github.com/naveenspark/folio/pkg/domain"
)

func skillCategoryFilters() []string {
	out := []string{""}
	for _, c := range domain.Categories {
		out = append(out, string(c))
	}
	return out
}

func newSkillsScreen(c *client.Client, pageSize int) resourceScreen[domain.Skill] {
	res := resource[domain.Skill]{
		route:       pathSkills,
		title:       "Skills",
		empty:       "No skills yet. Press a to add one.",
		loadFailed:  "Failed to load skills.",
		filters:     skillCategoryFilters(),
		filterLabel: "category",
		label:       func(s domain.Skill) string { return s.Name },
		row:         skillRow,
		newForm:     func(s *domain.Skill) *form { return newSkillForm(c, s) },
	}
	if c != nil {
		res.fetch = func(ctx context.Context, page, limit int, filter string) (*domain.Page[domain.Skill], error) {
			return c.ListSkills(ctx, page, limit, domain.Category(filter))
		}
		res.remove = func(ctx context.Context, s domain.Skill) error {
			return c.DeleteSkill(ctx, s.ID)
		}
	}
	return newResourceScreen(res, pageSize)
}

func skillRow(s domain.Skill, width int) string {
	name := normalStyle.Render(fmt.Sprintf("%-24s", truncStr(s.Name, 24)))
	cat := CategoryStyle(s.Category).Render(fmt.Sprintf("%-9s", s.Category))
	level := "   "
	if s.Level != nil {
		level = fmt.Sprintf("%3d", *s.Level)
	}
	line := name + " " + cat + " " + levelBar(s.Level) + " " + dimStyle.Render(level)
	if s.IconPath != "" && width > 70 {
		line += "  " + metaStyle.Render(truncStr(s.IconPath, width-70))
	}
	return line
}

func newSkillForm(c *client.Client, s *domain.Skill) *form {
	f := &form{
		title: "New skill",
		fields: []formField{
			{key: "name", label: "Name"},
			{key: "category", label: "Category", kind: fieldChoice, value: string(domain.CategoryFrontend), choices: skillCategoryFilters()[1:]},
			{key: "level", label: "Level", hint: "0-100, optional"},
			{key: "icon", label: "Icon path", hint: "optional"},
		},
	}
	var id domain.ID
	if s != nil {
		id = s.ID
		f.title = "Edit skill"
		f.field("name").value = s.Name
		if domain.ValidCategory(s.Category) {
			f.field("category").value = string(s.Category)
		}
		if s.Level != nil {
			f.field("level").value = strconv.Itoa(*s.Level)
		}
		f.field("icon").value = s.IconPath
	}

	f.submit = func(f *form) (tea.Cmd, error) {
		name := f.value("name")
		if name == "" {
			return nil, errors.New("name is required")
		}
		cat := domain.Category(f.value("category"))
		if !domain.ValidCategory(cat) {
			return nil, errors.New("invalid category")
		}
		level, err := parseLevel(f.value("level"))
		if err != nil {
			return nil, err
		}
		req := client.NewSkillRequest(name, cat, level, f.value("icon"))
		if c == nil {
			return nil, nil
		}
		return func() tea.Msg {
			var err error
			if id == "" {
				err = c.CreateSkill(context.Background(), req)
			} else {
				err = c.UpdateSkill(context.Background(), id, req)
			}
			return formSavedMsg{route: pathSkills, err: err}
		}, nil
	}
	return f
}

// parseLevel reads an optional skill level; blank means no level.
func parseLevel(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > domain.MaxSkillLevel {
		return nil, fmt.Errorf("level must be a whole number from 0 to %d", domain.MaxSkillLevel)
	}
	return &n, nil
}
