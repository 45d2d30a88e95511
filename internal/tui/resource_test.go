package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/naveenspark/folio/pkg/domain"
)

func loadedContacts(t *testing.T, items ...domain.Contact) resourceScreen[domain.Contact] {
	t.Helper()
	m := newContactsScreen(nil, 10)
	m.Init()
	m, _ = m.Update(pageLoadedMsg[domain.Contact]{seq: m.list.seq, page: &domain.Page[domain.Contact]{Items: items, Total: len(items)}})
	return m
}

func TestContactsAreReadOnly(t *testing.T) {
	m := loadedContacts(t, domain.Contact{ID: "1", Name: "Ada", Email: "ada@example.com", Message: "Hi there", CreatedAt: time.Now()})

	for _, k := range []string{"a", "e", "enter"} {
		m, _ = m.Update(keyMsg(k))
		if m.capturing() {
			t.Errorf("key %q opened an editor on contacts", k)
		}
	}
	if strings.Contains(m.helpKeys(), "edit") {
		t.Error("help advertises editing")
	}
}

func TestContactsDetailShowsMessage(t *testing.T) {
	m := loadedContacts(t, domain.Contact{ID: "1", Name: "Ada", Email: "ada@example.com", Message: "Loved the demo", CreatedAt: time.Now()})
	m.width = 100
	view := m.View()
	for _, want := range []string{"Ada", "<ada@example.com>", "Loved the demo", "Page 1 of 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestContactsLoadFailure(t *testing.T) {
	m := newContactsScreen(nil, 10)
	m.Init()
	m, _ = m.Update(pageLoadedMsg[domain.Contact]{seq: m.list.seq, err: errors.New("HTTP 500")})
	if !strings.Contains(m.View(), "Failed to load contact messages. Check API/Auth.") {
		t.Errorf("view = %q", m.View())
	}
}

func TestContactsEmpty(t *testing.T) {
	m := loadedContacts(t)
	if !strings.Contains(m.View(), "No messages.") {
		t.Errorf("view = %q", m.View())
	}
	m, _ = m.Update(keyMsg("d"))
	if m.capturing() {
		t.Error("delete prompt opened with nothing selected")
	}
}

func TestProjectKeysWithoutLinks(t *testing.T) {
	p := domain.Project{ID: "1", Title: "Folio"}
	for _, k := range []string{"o", "O", "c"} {
		cmd := projectKeys(p, k)
		if cmd == nil {
			t.Fatalf("key %q: expected status command", k)
		}
		msg, ok := cmd().(statusMsg)
		if !ok || !strings.HasPrefix(msg.text, "no ") {
			t.Errorf("key %q: msg = %#v", k, msg)
		}
	}
	if projectKeys(p, "z") != nil {
		t.Error("unbound key produced a command")
	}
}

func TestResourceStatusRouted(t *testing.T) {
	m := newProjectsScreen(nil, 10)
	m, _ = m.Update(statusMsg{route: pathProjects, text: "copied!"})
	if !strings.Contains(m.View(), "copied!") {
		t.Error("status not shown")
	}
}
