package tui

import "strings"

// In-app paths. Everything under /admin requires a session.
const (
	pathRoot     = "/"
	pathLogin    = "/login"
	pathAdmin    = "/admin"
	pathHome     = "/admin/home"
	pathAbout    = "/admin/about"
	pathSkills   = "/admin/skills"
	pathJourney  = "/admin/journey"
	pathProjects = "/admin/projects"
	pathContacts = "/admin/contacts"
)

// adminTab is an entry in the admin tab bar.
type adminTab struct {
	key  string
	name string
	path string
}

var adminTabs = []adminTab{
	{"1", "Home", pathHome},
	{"2", "About", pathAbout},
	{"3", "Skills", pathSkills},
	{"4", "Journey", pathJourney},
	{"5", "Projects", pathProjects},
	{"6", "Contacts", pathContacts},
}

// normalizePath trims whitespace and trailing slashes and ensures a
// leading slash.
func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// isGuarded reports whether p needs an authenticated session.
func isGuarded(p string) bool {
	return p == pathAdmin || strings.HasPrefix(p, pathAdmin+"/")
}

// redirect returns the path p forwards to, if any.
func redirect(p string) (string, bool) {
	switch p {
	case pathRoot:
		return pathAdmin, true
	case pathAdmin:
		return pathHome, true
	}
	return "", false
}

// isKnown reports whether p maps to a screen.
func isKnown(p string) bool {
	if p == pathLogin {
		return true
	}
	for _, t := range adminTabs {
		if t.path == p {
			return true
		}
	}
	return false
}

// router is a navigation history. The last entry is the current path.
type router struct {
	history []string
}

func newRouter(start string) router {
	return router{history: []string{normalizePath(start)}}
}

func (r router) current() string {
	if len(r.history) == 0 {
		return pathRoot
	}
	return r.history[len(r.history)-1]
}

func (r *router) push(p string) {
	r.history = append(r.history, normalizePath(p))
}

// replace swaps the current entry so back cannot return to it.
func (r *router) replace(p string) {
	if len(r.history) == 0 {
		r.history = []string{normalizePath(p)}
		return
	}
	r.history[len(r.history)-1] = normalizePath(p)
}

// back drops the current entry. It reports false at the start of history.
func (r *router) back() bool {
	if len(r.history) < 2 {
		return false
	}
	r.history = r.history[:len(r.history)-1]
	return true
}

// settle follows redirects and applies the guard, rewriting the current
// entry in place. It returns the path finally shown.
func (r *router) settle(authenticated bool) string {
	for i := 0; i < 4; i++ {
		next, ok := redirect(r.current())
		if !ok {
			break
		}
		r.replace(next)
	}
	if isGuarded(r.current()) && !authenticated {
		r.replace(pathLogin)
	}
	return r.current()
}
