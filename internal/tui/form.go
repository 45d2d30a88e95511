package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/folio/pkg/client"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldMultiline
	fieldToggle
	fieldChoice
)

type formField struct {
	key     string
	label   string
	kind    fieldKind
	value   string
	on      bool
	choices []string
	hint    string
	hidden  bool
	locked  bool // shown but not editable
	secret  bool
}

// formSavedMsg reports the outcome of a form submission for route.
type formSavedMsg struct {
	route string
	err   error
}

// form is a keyboard-driven set of fields. submit validates the draft and
// returns the request command; a validation error keeps the form open
// with no request sent.
type form struct {
	title    string
	fields   []formField
	focus    int
	saving   bool
	errMsg   string
	hint     string // idle footer; defaults to the save/cancel keys
	busy     string // footer while saving
	onChange func(f *form)
	submit   func(f *form) (tea.Cmd, error)
}

type formAction int

const (
	formNone formAction = iota
	formCancel
)

func (f *form) field(key string) *formField {
	for i := range f.fields {
		if f.fields[i].key == key {
			return &f.fields[i]
		}
	}
	return nil
}

func (f *form) value(key string) string {
	if fl := f.field(key); fl != nil {
		return strings.TrimSpace(fl.value)
	}
	return ""
}

func (f *form) toggled(key string) bool {
	if fl := f.field(key); fl != nil {
		return fl.on
	}
	return false
}

func (f *form) setHidden(key string, hidden bool) {
	if fl := f.field(key); fl != nil {
		fl.hidden = hidden
	}
}

func (f *form) editable(i int) bool {
	return !f.fields[i].hidden && !f.fields[i].locked
}

func (f *form) move(delta int) {
	n := len(f.fields)
	for step := 1; step <= n; step++ {
		i := ((f.focus+delta*step)%n + n) % n
		if f.editable(i) {
			f.focus = i
			return
		}
	}
}

// ensureFocus moves focus off a field that became hidden.
func (f *form) ensureFocus() {
	if f.focus < len(f.fields) && f.editable(f.focus) {
		return
	}
	f.move(1)
}

// handleKey applies a keystroke. While saving every key is ignored.
func (f *form) handleKey(msg tea.KeyMsg) (formAction, tea.Cmd) {
	if f.saving {
		return formNone, nil
	}
	key := msg.String()
	switch key {
	case "esc":
		return formCancel, nil
	case "ctrl+s":
		return formNone, f.trySubmit()
	case "tab", "down":
		f.move(1)
		return formNone, nil
	case "shift+tab", "up":
		f.move(-1)
		return formNone, nil
	}

	if len(f.fields) == 0 {
		return formNone, nil
	}
	fl := &f.fields[f.focus]
	switch fl.kind {
	case fieldToggle:
		if key == " " || key == "space" || key == "enter" || key == "x" {
			fl.on = !fl.on
			f.changed()
		}
	case fieldChoice:
		switch key {
		case "h", "left":
			fl.value = cycle(fl.choices, fl.value, -1)
			f.changed()
		case "l", "right", " ", "space":
			fl.value = cycle(fl.choices, fl.value, 1)
			f.changed()
		case "enter":
			f.move(1)
		}
	case fieldMultiline:
		if key == "enter" {
			fl.value += "\n"
		} else {
			fl.value = typeInto(fl.value, msg)
		}
		f.errMsg = ""
	default:
		if key == "enter" {
			f.move(1)
			return formNone, nil
		}
		fl.value = strings.ReplaceAll(typeInto(fl.value, msg), "\n", " ")
		f.errMsg = ""
	}
	return formNone, nil
}

// typeInto applies msg to an input value. Rune messages may carry a
// whole paste.
func typeInto(value string, msg tea.KeyMsg) string {
	if msg.Type == tea.KeyRunes {
		return insertText(value, string(msg.Runes))
	}
	return editRune(value, msg.String())
}

func (f *form) changed() {
	if f.onChange != nil {
		f.onChange(f)
	}
	f.ensureFocus()
}

func (f *form) trySubmit() tea.Cmd {
	if f.submit == nil {
		return nil
	}
	cmd, err := f.submit(f)
	if err != nil {
		f.errMsg = err.Error()
		return nil
	}
	f.errMsg = ""
	f.saving = cmd != nil
	return cmd
}

// saved records a submission result. It reports whether the form is done.
func (f *form) saved(err error, fallback string) bool {
	f.saving = false
	if err != nil {
		f.errMsg = client.Describe(err, fallback)
		return false
	}
	return true
}

func cycle(choices []string, current string, delta int) string {
	if len(choices) == 0 {
		return current
	}
	idx := 0
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%len(choices) + len(choices)) % len(choices)
	return choices[idx]
}

func (f form) View() string {
	var b strings.Builder
	if f.title != "" {
		b.WriteString(" " + titleStyle.Render(f.title) + "\n\n")
	}
	labelWidth := 0
	for _, fl := range f.fields {
		if !fl.hidden && len(fl.label) > labelWidth {
			labelWidth = len(fl.label)
		}
	}

	for i, fl := range f.fields {
		if fl.hidden {
			continue
		}
		cursor := "  "
		style := metaStyle
		focused := i == f.focus && !f.saving
		if focused {
			cursor = inputPromptStyle.Render("> ")
			style = selectedStyle
		}
		label := style.Render(fmt.Sprintf("%-*s", labelWidth, fl.label))

		var value string
		switch fl.kind {
		case fieldToggle:
			box := "[ ]"
			if fl.on {
				box = "[x]"
			}
			value = normalStyle.Render(box)
		case fieldChoice:
			value = accentStyle.Render(fl.value)
			if focused && !fl.locked {
				value += dimStyle.Render("  (h/l to change)")
			}
		default:
			v := fl.value
			if fl.secret {
				v = strings.Repeat("•", len([]rune(v)))
			}
			if fl.kind == fieldMultiline {
				v = strings.ReplaceAll(v, "\n", "\n"+strings.Repeat(" ", labelWidth+5))
			}
			if focused {
				v += accentStyle.Render("█")
			} else if v == "" && fl.hint != "" {
				v = inputPlaceholderStyle.Render(fl.hint)
			}
			value = normalStyle.Render(v)
		}
		if fl.locked {
			value = dimStyle.Render(fl.value)
		}
		fmt.Fprintf(&b, " %s%s : %s\n", cursor, label, value)
	}

	b.WriteString("\n")
	switch {
	case f.saving:
		busy := f.busy
		if busy == "" {
			busy = "saving..."
		}
		b.WriteString(" " + dimStyle.Render(busy))
	case f.errMsg != "":
		b.WriteString(" " + errorStyle.Render(f.errMsg))
	default:
		hint := f.hint
		if hint == "" {
			hint = "ctrl+s save · esc cancel"
		}
		b.WriteString(" " + dimStyle.Render(hint))
	}
	b.WriteString("\n")
	return b.String()
}
