// Package browser hands links to the desktop's default browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// ErrNotWebLink is returned for anything other than an absolute http(s) URL.
var ErrNotWebLink = errors.New("not an http(s) link")

// command is swapped in tests.
var command = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Validate reports whether raw is an absolute http or https URL.
func Validate(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrNotWebLink, raw)
	}
	return nil
}

// Open opens raw in the user's default browser.
func Open(raw string) error {
	if err := Validate(raw); err != nil {
		return err
	}
	switch runtime.GOOS {
	case "darwin":
		return command("open", raw)
	case "linux", "freebsd", "openbsd":
		return command("xdg-open", raw)
	case "windows":
		return command("rundll32", "url.dll,FileProtocolHandler", raw)
	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
