package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// renderMarkdown turns markdown into styled terminal text wrapped to width.
// Only the block and inline forms that appear in portfolio copy are
// styled; anything else falls back to its plain text.
func renderMarkdown(src string, width int) string {
	if width < 20 {
		width = 20
	}
	source := []byte(src)
	doc := markdown.Parser().Parse(text.NewReader(source))

	r := mdRenderer{source: source, width: width}
	r.blocks(doc, "  ")
	return strings.TrimRight(r.out.String(), "\n")
}

type mdRenderer struct {
	source []byte
	width  int
	out    strings.Builder
}

func (r *mdRenderer) blocks(parent ast.Node, indent string) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		r.block(n, indent)
	}
}

func (r *mdRenderer) block(n ast.Node, indent string) {
	switch n := n.(type) {
	case *ast.Heading:
		line := r.inline(n)
		if n.Level <= 2 {
			line = titleStyle.Render(line)
		} else {
			line = selectedStyle.Render(line)
		}
		r.para(line, indent)
	case *ast.Paragraph, *ast.TextBlock:
		r.para(normalStyle.Render(r.inline(n)), indent)
	case *ast.List:
		num := n.Start
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			bullet := "• "
			if n.IsOrdered() {
				bullet = fmt.Sprintf("%d. ", num)
				num++
			}
			r.listItem(item, indent, accentStyle.Render(bullet), len([]rune(bullet)))
		}
		if n.Parent() == nil || n.Parent().Kind() == ast.KindDocument {
			r.out.WriteString("\n")
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			line := strings.TrimRight(string(seg.Value(r.source)), "\n")
			r.out.WriteString(indent + "  " + codeStyle.Render(line) + "\n")
		}
		r.out.WriteString("\n")
	case *ast.Blockquote:
		r.blocks(n, indent+dimStyle.Render("│ "))
	case *ast.ThematicBreak:
		r.out.WriteString(indent + metaStyle.Render(strings.Repeat("─", max(r.width-len(indent), 3))) + "\n\n")
	default:
		if n.HasChildren() {
			r.blocks(n, indent)
		}
	}
}

func (r *mdRenderer) listItem(item ast.Node, indent, bullet string, bulletWidth int) {
	pad := strings.Repeat(" ", bulletWidth)
	first := true
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if list, ok := c.(*ast.List); ok {
			r.block(list, indent+pad)
			continue
		}
		body := normalStyle.Render(r.inline(c))
		wrapped := r.wrap(body, len(indent)+bulletWidth)
		for i, line := range strings.Split(wrapped, "\n") {
			prefix := indent + pad
			if first && i == 0 {
				prefix = indent + bullet
			}
			r.out.WriteString(prefix + line + "\n")
		}
		first = false
	}
}

func (r *mdRenderer) para(body, indent string) {
	for _, line := range strings.Split(r.wrap(body, lipgloss.Width(indent)), "\n") {
		r.out.WriteString(indent + line + "\n")
	}
	r.out.WriteString("\n")
}

func (r *mdRenderer) wrap(s string, used int) string {
	w := max(r.width-used, 10)
	return lipgloss.NewStyle().Width(w).Render(s)
}

// inline renders the inline children of n.
func (r *mdRenderer) inline(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(r.source))
			if c.HardLineBreak() {
				b.WriteString("\n")
			} else if c.SoftLineBreak() {
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.CodeSpan:
			b.WriteString(codeStyle.Render(r.inline(c)))
		case *ast.Emphasis:
			inner := r.inline(c)
			if c.Level >= 2 {
				b.WriteString(lipgloss.NewStyle().Bold(true).Render(inner))
			} else {
				b.WriteString(lipgloss.NewStyle().Italic(true).Render(inner))
			}
		case *ast.Link:
			label := r.inline(c)
			dest := string(c.Destination)
			b.WriteString(accentStyle.Underline(true).Render(label))
			if dest != "" && dest != label {
				b.WriteString(metaStyle.Render(" (" + dest + ")"))
			}
		case *ast.AutoLink:
			b.WriteString(accentStyle.Underline(true).Render(string(c.URL(r.source))))
		case *ast.Image:
			b.WriteString(metaStyle.Render("[image: " + string(c.Destination) + "]"))
		case *ast.RawHTML:
			// dropped
		default:
			b.WriteString(r.inline(c))
		}
	}
	return b.String()
}
