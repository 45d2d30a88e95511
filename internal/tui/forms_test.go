package tui

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/folio/pkg/domain"
)

func submitErr(t *testing.T, f *form) string {
	t.Helper()
	if cmd := f.trySubmit(); cmd != nil {
		t.Fatal("invalid form produced a request")
	}
	return f.errMsg
}

func TestFormFocusSkipsHiddenAndLocked(t *testing.T) {
	f := &form{fields: []formField{
		{key: "a", label: "A"},
		{key: "b", label: "B", hidden: true},
		{key: "c", label: "C", locked: true},
		{key: "d", label: "D"},
	}}
	f.move(1)
	if f.focus != 3 {
		t.Errorf("focus = %d, want 3", f.focus)
	}
	f.move(1)
	if f.focus != 0 {
		t.Errorf("focus = %d, want wrap to 0", f.focus)
	}
}

func TestFormIgnoresKeysWhileSaving(t *testing.T) {
	f := &form{fields: []formField{{key: "a", label: "A"}}, saving: true}
	action, cmd := f.handleKey(keyMsg("esc"))
	if action != formNone || cmd != nil {
		t.Error("key handled while saving")
	}
	f.handleKey(keyMsg("x"))
	if f.fields[0].value != "" {
		t.Error("typed while saving")
	}
}

func TestFormPasteIntoSingleLineField(t *testing.T) {
	f := &form{fields: []formField{{key: "a", label: "A"}}}
	f.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("one\ntwo"), Paste: true})
	if f.fields[0].value != "one two" {
		t.Errorf("value = %q", f.fields[0].value)
	}
}

func TestSkillFormValidation(t *testing.T) {
	tests := []struct {
		name  string
		skill domain.Skill
		level string
		want  string
	}{
		{"name required", domain.Skill{}, "", "name is required"},
		{"level not a number", domain.Skill{Name: "Go"}, "high", "level must be a whole number from 0 to 100"},
		{"level above range", domain.Skill{Name: "Go"}, "101", "level must be a whole number from 0 to 100"},
		{"level negative", domain.Skill{Name: "Go"}, "-1", "level must be a whole number from 0 to 100"},
		{"blank level ok", domain.Skill{Name: "Go"}, "", ""},
		{"bounds ok", domain.Skill{Name: "Go"}, "100", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newSkillForm(nil, nil)
			f.field("name").value = tc.skill.Name
			f.field("level").value = tc.level
			f.trySubmit()
			if f.errMsg != tc.want {
				t.Errorf("errMsg = %q, want %q", f.errMsg, tc.want)
			}
		})
	}
}

func TestSkillFormEditPrefill(t *testing.T) {
	level := 80
	f := newSkillForm(nil, &domain.Skill{ID: "3", Name: "Postgres", Category: domain.CategoryDatabase, Level: &level})
	if f.title != "Edit skill" {
		t.Errorf("title = %q", f.title)
	}
	if f.value("category") != "DATABASE" || f.value("level") != "80" {
		t.Errorf("category=%q level=%q", f.value("category"), f.value("level"))
	}

	f.focus = 1
	f.handleKey(keyMsg("l"))
	if f.value("category") != "TOOLS" {
		t.Errorf("category after l = %q", f.value("category"))
	}
	f.handleKey(keyMsg("l"))
	if f.value("category") != "FRONTEND" {
		t.Errorf("category should wrap, got %q", f.value("category"))
	}
}

func TestJourneyFormOngoingHidesEndDate(t *testing.T) {
	f := newJourneyForm(nil, nil)
	if f.field("end").hidden {
		t.Fatal("end date hidden before ongoing is set")
	}
	f.focus = 4 // ongoing
	f.handleKey(keyMsg("x"))
	if !f.field("end").hidden {
		t.Error("end date visible for an ongoing entry")
	}
	if strings.Contains(f.View(), "End date") {
		t.Error("view still shows end date")
	}
}

func TestJourneyFormKindRelabels(t *testing.T) {
	f := newJourneyForm(nil, nil)
	f.focus = 0
	f.handleKey(keyMsg("l"))
	if f.value("kind") != "education" {
		t.Fatalf("kind = %q", f.value("kind"))
	}
	if f.field("title").label != "Degree" || f.field("org").label != "Institution" {
		t.Errorf("labels = %q/%q", f.field("title").label, f.field("org").label)
	}
}

func TestJourneyFormValidation(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		org     string
		start   string
		end     string
		ongoing bool
		want    string
	}{
		{"title required", "", "Acme", "2020-01-01", "", true, "role and company are required"},
		{"start required", "Dev", "Acme", "", "", true, "start date is required"},
		{"start format", "Dev", "Acme", "01/02/2020", "", true, "start date must be YYYY-MM-DD"},
		{"end required", "Dev", "Acme", "2020-01-01", "", false, "end date is required unless the entry is ongoing"},
		{"end format", "Dev", "Acme", "2020-01-01", "2021", false, "end date must be YYYY-MM-DD"},
		{"end before start", "Dev", "Acme", "2020-01-01", "2019-12-31", false, "end date is before start date"},
		{"same day ok", "Dev", "Acme", "2020-01-01", "2020-01-01", false, ""},
		{"ongoing ignores end", "Dev", "Acme", "2020-01-01", "garbage", true, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newJourneyForm(nil, nil)
			f.field("title").value = tc.title
			f.field("org").value = tc.org
			f.field("start").value = tc.start
			f.field("end").value = tc.end
			f.field("ongoing").on = tc.ongoing
			f.trySubmit()
			if f.errMsg != tc.want {
				t.Errorf("errMsg = %q, want %q", f.errMsg, tc.want)
			}
		})
	}
}

func TestJourneyFormEditLocksKind(t *testing.T) {
	end := time.Date(2019, 6, 30, 0, 0, 0, 0, time.UTC)
	f := newJourneyForm(nil, &domain.JourneyEntry{
		ID:        "9",
		Detail:    domain.Education{Degree: "BSc", Institution: "Uni"},
		StartDate: time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	})
	if !f.field("kind").locked {
		t.Error("kind editable on a stored entry")
	}
	if f.focus == 0 {
		t.Error("focus left on locked kind")
	}
	if f.value("title") != "BSc" || f.value("end") != "2019-06-30" {
		t.Errorf("prefill title=%q end=%q", f.value("title"), f.value("end"))
	}
}

func TestJourneyCreateOngoingSendsNullEnd(t *testing.T) {
	api := newFakeAPI(t)
	api.HandleFunc("GET /experience", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"experiences": []any{}, "total": 0})
	})
	var body map[string]any
	api.HandleFunc("POST /experience", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode: %v", err)
		}
		writeJSON(w, http.StatusCreated, body)
	})

	a, _ := newTestApp(t, api, pathJourney, true)
	a = start(t, a)
	a = press(t, a, "a", "tab")
	a = typeText(t, a, "Engineer")
	a = press(t, a, "tab")
	a = typeText(t, a, "Acme")
	a = press(t, a, "tab")
	a = typeText(t, a, "2022-03-01")
	a = press(t, a, "tab", "x", "ctrl+s")

	if body == nil {
		t.Fatalf("no create request; form error %q", a.journey.form.errMsg)
	}
	end, ok := body["endDate"]
	if !ok || end != nil {
		t.Errorf("endDate = %v (present=%v), want explicit null", end, ok)
	}
	if body["type"] != "experience" || body["role"] != "Engineer" || body["company"] != "Acme" {
		t.Errorf("body = %v", body)
	}
	if body["startDate"] != "2022-03-01" {
		t.Errorf("startDate = %v", body["startDate"])
	}
	if a.journey.capturing() {
		t.Error("form still open after save")
	}
	if got := len(api.requests("GET /experience")); got != 2 {
		t.Errorf("list loads = %d, want reload after save", got)
	}
}

func TestJourneyEditOngoingDropsStoredEnd(t *testing.T) {
	api := newFakeAPI(t)
	api.HandleFunc("GET /experience", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"experiences": []any{map[string]any{
				"id": 3, "type": "experience", "role": "Engineer", "company": "Acme",
				"startDate": "2019-05-01", "endDate": "2021-01-01",
			}},
			"total": 1,
		})
	})
	var body map[string]any
	api.HandleFunc("PUT /experience/3", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode: %v", err)
		}
		writeJSON(w, http.StatusOK, body)
	})

	a, _ := newTestApp(t, api, pathJourney, true)
	a = start(t, a)
	a = press(t, a, "e")
	if got := a.journey.form.value("end"); got != "2021-01-01" {
		t.Fatalf("end prefill = %q", got)
	}
	// title -> company -> start -> ongoing
	a = press(t, a, "tab", "tab", "tab", "x", "ctrl+s")

	if body == nil {
		t.Fatalf("no update request; form error %q", a.journey.form.errMsg)
	}
	end, ok := body["endDate"]
	if !ok || end != nil {
		t.Errorf("endDate = %v (present=%v), want explicit null", end, ok)
	}
	if body["startDate"] != "2019-05-01" || body["role"] != "Engineer" {
		t.Errorf("body = %v", body)
	}
}

func TestProjectFormValidation(t *testing.T) {
	img := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(img, []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name   string
		mutate func(f *form)
		want   string
	}{
		{"title required", func(f *form) { f.field("title").value = "" }, "title is required"},
		{"description required", func(f *form) { f.field("description").value = " " }, "description is required"},
		{"relative link", func(f *form) { f.field("repo").value = "github.com/x" }, "links must be absolute http(s) URLs: github.com/x"},
		{"missing image", func(f *form) { f.field("images").value = "nope.png" }, "file not found: nope.png"},
		{"existing image", func(f *form) { f.field("images").value = img }, ""},
		{"https links", func(f *form) { f.field("demo").value = "https://example.com" }, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newProjectForm(nil, nil)
			f.field("title").value = "Folio"
			f.field("description").value = "Portfolio"
			tc.mutate(f)
			f.trySubmit()
			if f.errMsg != tc.want {
				t.Errorf("errMsg = %q, want %q", f.errMsg, tc.want)
			}
		})
	}
}

func TestProjectFormKeepList(t *testing.T) {
	f := newProjectForm(nil, nil)
	if !f.field("keep").hidden {
		t.Error("keep list shown when creating")
	}

	p := &domain.Project{ID: "7", Title: "Folio", Description: "d", Images: []string{"/u/a.png", "/u/b.png"}}
	f = newProjectForm(nil, p)
	if f.field("keep").hidden || f.value("keep") != "/u/a.png, /u/b.png" {
		t.Errorf("keep = %q hidden=%v", f.value("keep"), f.field("keep").hidden)
	}
	f.field("keep").value = "/u/a.png, /u/c.png"
	if got := submitErr(t, f); got != "unknown stored image: /u/c.png" {
		t.Errorf("errMsg = %q", got)
	}
}

func TestKeepList(t *testing.T) {
	got, err := keepList("", []string{"a"})
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("empty keep = %v, %v; want non-nil empty", got, err)
	}
	got, err = keepList("b, a", []string{"a", "b"})
	if err != nil || strings.Join(got, ",") != "b,a" {
		t.Errorf("keep = %v, %v", got, err)
	}
}

func TestLoginFormValidation(t *testing.T) {
	tests := []struct {
		email, password, want string
	}{
		{"", "pw", "email and password are required"},
		{"admin@example.com", "", "email and password are required"},
		{"admin", "pw", "enter a valid email address"},
		{"admin@example.com", "pw", ""},
	}
	for _, tc := range tests {
		m := newLoginModel(nil, tc.email)
		m.form.field("password").value = tc.password
		m.form.trySubmit()
		if m.form.errMsg != tc.want {
			t.Errorf("login(%q, %q) error = %q, want %q", tc.email, tc.password, m.form.errMsg, tc.want)
		}
	}
}

func TestLoginPrefillFocusesPassword(t *testing.T) {
	if m := newLoginModel(nil, "admin@example.com"); m.form.focus != 1 {
		t.Errorf("focus = %d, want password", m.form.focus)
	}
	if m := newLoginModel(nil, ""); m.form.focus != 0 {
		t.Errorf("focus = %d, want email", m.form.focus)
	}
}

func TestLoginMasksPassword(t *testing.T) {
	m := newLoginModel(nil, "admin@example.com")
	m.form.field("password").value = "hunter2"
	if strings.Contains(m.View(), "hunter2") {
		t.Error("password rendered in clear")
	}
}

func TestLoginCursorMarksFocusedField(t *testing.T) {
	m := newLoginModel(nil, "admin@example.com")
	for _, line := range strings.Split(m.View(), "\n") {
		switch {
		case strings.Contains(line, "Password"):
			if !strings.Contains(line, "> Password") {
				t.Errorf("focused line %q has no cursor", line)
			}
		case strings.Contains(line, "Email"):
			if strings.Contains(line, ">") {
				t.Errorf("unfocused line %q has a cursor", line)
			}
		}
	}
}
