package tui

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/naveenspark/folio/pkg/client"
	"github.com/naveenspark/folio/pkg/domain"
)

func TestAboutRendersMarkdownPreview(t *testing.T) {
	m := newAboutModel(nil)
	m, _ = m.Update(aboutLoadedMsg{about: &domain.About{Content: "# Hello\n\nI write **Go**.", ResumePath: "/uploads/cv.pdf"}})
	view := m.View()
	for _, want := range []string{"Hello", "I write Go.", "/uploads/cv.pdf"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAboutMissingResumeFile(t *testing.T) {
	m := newAboutModel(nil)
	m, _ = m.Update(keyMsg("e"))
	m.form.field("resume").value = filepath.Join(t.TempDir(), "missing.pdf")
	m, cmd := m.Update(keyMsg("ctrl+s"))
	if cmd != nil {
		t.Error("missing file produced a request")
	}
	if !strings.HasPrefix(m.form.errMsg, "file not found") {
		t.Errorf("errMsg = %q", m.form.errMsg)
	}
}

func TestAboutSaveUploadsAndRefetches(t *testing.T) {
	resume := filepath.Join(t.TempDir(), "cv.pdf")
	if err := os.WriteFile(resume, []byte("%PDF-1.4"), 0o600); err != nil {
		t.Fatal(err)
	}

	api := newFakeAPI(t)
	var fields map[string][]string
	var uploaded string
	api.HandleFunc("POST /about", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		fields = r.MultipartForm.Value
		if fh := r.MultipartForm.File["resume"]; len(fh) == 1 {
			uploaded = fh[0].Filename
		}
		writeJSON(w, http.StatusOK, map[string]string{})
	})
	api.HandleFunc("GET /about", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.About{Content: "saved", ResumePath: "/uploads/cv.pdf"})
	})

	m := newAboutModel(client.New(api.srv.URL))
	m, _ = m.Update(keyMsg("e"))
	m.form.field("content").value = "saved"
	m.form.field("resume").value = resume
	m, cmd := m.Update(keyMsg("ctrl+s"))
	if cmd == nil {
		t.Fatal("expected save command")
	}
	m, cmd = m.Update(cmd())
	if !strings.Contains(m.View(), "All sections updated successfully!") {
		t.Errorf("missing success notice")
	}
	if cmd == nil {
		t.Fatal("expected re-fetch after save")
	}
	m, _ = m.Update(cmd())

	if got := fields["content"]; len(got) != 1 || got[0] != "saved" {
		t.Errorf("content field = %v", got)
	}
	if uploaded != "cv.pdf" {
		t.Errorf("uploaded file = %q", uploaded)
	}
	if m.about.ResumePath != "/uploads/cv.pdf" {
		t.Errorf("resume path = %q", m.about.ResumePath)
	}
	if m.form.field("resume").value != "" {
		t.Error("resume selection not cleared")
	}
}
