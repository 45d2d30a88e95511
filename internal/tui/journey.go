package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/folio/pkg/client"
	"github.com/naveenspark/folio/pkg/domain"
)

func newJourneyScreen(c *client.Client, pageSize int) resourceScreen[domain.JourneyEntry] {
	res := resource[domain.JourneyEntry]{
		route:      pathJourney,
		title:      "Journey",
		empty:      "No experience or education entries yet. Press a to add one.",
		loadFailed: "Failed to load journey entries.",
		label: func(j domain.JourneyEntry) string {
			if j.Detail == nil {
				return string(j.ID)
			}
			title, org := j.Detail.Headline()
			return title + " @ " + org
		},
		row:     journeyRow,
		detail:  journeyDetail,
		newForm: func(j *domain.JourneyEntry) *form { return newJourneyForm(c, j) },
	}
	if c != nil {
		res.fetch = func(ctx context.Context, page, limit int, _ string) (*domain.Page[domain.JourneyEntry], error) {
			return c.ListJourney(ctx, page, limit)
		}
		res.remove = func(ctx context.Context, j domain.JourneyEntry) error {
			return c.DeleteJourney(ctx, j.ID)
		}
	}
	return newResourceScreen(res, pageSize)
}

func journeySpan(j domain.JourneyEntry) string {
	end := "Present"
	if j.EndDate != nil {
		end = formatDay(*j.EndDate)
	}
	return formatDay(j.StartDate) + " – " + end
}

func journeyRow(j domain.JourneyEntry, width int) string {
	kind := KindStyle(j.Kind()).Render(fmt.Sprintf("%-10s", j.Kind()))
	title, org := "", ""
	if j.Detail != nil {
		title, org = j.Detail.Headline()
	}
	span := dimStyle.Render(journeySpan(j))
	room := max((width-36)/2, 12)
	head := truncStr(title, room)
	if org != "" {
		head += metaStyle.Render(" @ ") + truncStr(org, room)
	}
	if j.Ongoing() {
		span += " " + successStyle.Render("●")
	}
	return kind + " " + normalStyle.Render(head) + "  " + span
}

func journeyDetail(j domain.JourneyEntry, width int) string {
	if strings.TrimSpace(j.Description) == "" {
		return ""
	}
	return renderMarkdown(j.Description, width-4)
}

func journeyKindChoices() []string {
	return []string{string(domain.KindExperience), string(domain.KindEducation)}
}

// applyJourneyKind relabels the headline fields for the chosen kind and
// shows the end date only for finished entries.
func applyJourneyKind(f *form) {
	if f.value("kind") == string(domain.KindEducation) {
		f.field("title").label = "Degree"
		f.field("org").label = "Institution"
	} else {
		f.field("title").label = "Role"
		f.field("org").label = "Company"
	}
	f.setHidden("end", f.toggled("ongoing"))
}

func newJourneyForm(c *client.Client, j *domain.JourneyEntry) *form {
	f := &form{
		title: "New journey entry",
		fields: []formField{
			{key: "kind", label: "Type", kind: fieldChoice, value: string(domain.KindExperience), choices: journeyKindChoices()},
			{key: "title", label: "Role"},
			{key: "org", label: "Company"},
			{key: "start", label: "Start date", hint: "YYYY-MM-DD"},
			{key: "ongoing", label: "Ongoing", kind: fieldToggle},
			{key: "end", label: "End date", hint: "YYYY-MM-DD"},
			{key: "description", label: "Description", kind: fieldMultiline},
		},
		onChange: applyJourneyKind,
	}

	var id domain.ID
	if j != nil {
		id = j.ID
		f.title = "Edit journey entry"
		kind := f.field("kind")
		kind.value = string(j.Kind())
		// The variant of a stored entry cannot change.
		kind.locked = true
		if j.Detail != nil {
			f.field("title").value, f.field("org").value = j.Detail.Headline()
		}
		f.field("start").value = domain.FormatDate(j.StartDate)
		f.field("ongoing").on = j.Ongoing()
		if j.EndDate != nil {
			f.field("end").value = domain.FormatDate(*j.EndDate)
		}
		f.field("description").value = j.Description
	}
	applyJourneyKind(f)
	f.ensureFocus()

	f.submit = func(f *form) (tea.Cmd, error) {
		kind := domain.JourneyKind(f.value("kind"))
		title, org := f.value("title"), f.value("org")
		if title == "" || org == "" {
			return nil, fmt.Errorf("%s and %s are required",
				strings.ToLower(f.field("title").label), strings.ToLower(f.field("org").label))
		}
		detail, err := domain.NewJourneyDetail(kind, title, org)
		if err != nil {
			return nil, err
		}
		if f.value("start") == "" {
			return nil, errors.New("start date is required")
		}
		start, err := time.Parse(domain.DateLayout, f.value("start"))
		if err != nil {
			return nil, errors.New("start date must be YYYY-MM-DD")
		}
		var end *time.Time
		if !f.toggled("ongoing") {
			if f.value("end") == "" {
				return nil, errors.New("end date is required unless the entry is ongoing")
			}
			e, err := time.Parse(domain.DateLayout, f.value("end"))
			if err != nil {
				return nil, errors.New("end date must be YYYY-MM-DD")
			}
			if e.Before(start) {
				return nil, errors.New("end date is before start date")
			}
			end = &e
		}
		req := client.NewJourneyRequest(detail, f.value("description"), start, end)
		if c == nil {
			return nil, nil
		}
		return func() tea.Msg {
			var err error
			if id == "" {
				err = c.CreateJourney(context.Background(), req)
			} else {
				err = c.UpdateJourney(context.Background(), id, req)
			}
			return formSavedMsg{route: pathJourney, err: err}
		}, nil
	}
	return f
}
