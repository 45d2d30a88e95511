package tui

import "testing"

func TestRouterSettle(t *testing.T) {
	tests := []struct {
		start  string
		authed bool
		want   string
	}{
		{"/", true, pathHome},
		{"/", false, pathLogin},
		{"/admin", true, pathHome},
		{"/admin/", true, pathHome},
		{"/admin/skills", false, pathLogin},
		{"/admin/skills", true, pathSkills},
		{"/login", false, pathLogin},
		{"/nowhere", false, "/nowhere"},
		{"admin/nowhere", false, pathLogin},
		{"/admin/nowhere", true, "/admin/nowhere"},
	}
	for _, tc := range tests {
		r := newRouter(tc.start)
		if got := r.settle(tc.authed); got != tc.want {
			t.Errorf("settle(%q, authed=%v) = %q, want %q", tc.start, tc.authed, got, tc.want)
		}
		if len(r.history) != 1 {
			t.Errorf("settle(%q) grew history to %v; redirects must replace", tc.start, r.history)
		}
	}
}

func TestRouterBackNeverReturnsToGuardedWhenSignedOut(t *testing.T) {
	r := newRouter(pathLogin)
	r.push(pathSkills)
	r.settle(true)
	r.push(pathProjects)
	r.settle(true)

	// Session drops: the guard replaces the current entry.
	if got := r.settle(false); got != pathLogin {
		t.Fatalf("settle = %q, want %q", got, pathLogin)
	}
	if !r.back() {
		t.Fatal("back() = false, want true")
	}
	if got := r.settle(false); got != pathLogin {
		t.Errorf("after back: %q, want %q", got, pathLogin)
	}
}

func TestRouterBackAtStart(t *testing.T) {
	r := newRouter(pathLogin)
	if r.back() {
		t.Error("back() at start of history = true")
	}
	if r.current() != pathLogin {
		t.Errorf("current = %q", r.current())
	}
}

func TestIsKnown(t *testing.T) {
	for _, p := range []string{pathLogin, pathHome, pathContacts} {
		if !isKnown(p) {
			t.Errorf("isKnown(%q) = false", p)
		}
	}
	if isKnown("/admin/settings") {
		t.Error("isKnown(/admin/settings) = true")
	}
}
