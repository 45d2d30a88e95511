package tui

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	src := "# About me\n\nI build **fast** web apps with `Go`.\n\n- APIs\n- CLIs\n\n1. first\n2. second\n\nSee [my site](https://example.dev).\n"
	out := renderMarkdown(src, 60)

	for _, want := range []string{"About me", "fast", "Go", "• ", "APIs", "CLIs", "1. ", "2. ", "my site", "https://example.dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "**") || strings.Contains(out, "# About") {
		t.Errorf("markdown syntax leaked into output:\n%s", out)
	}
}

func TestRenderMarkdownCodeBlock(t *testing.T) {
	out := renderMarkdown("```\nfmt.Println(1)\n```\n", 40)
	if !strings.Contains(out, "fmt.Println(1)") {
		t.Errorf("code block lost:\n%s", out)
	}
	if strings.Contains(out, "```") {
		t.Errorf("fence leaked:\n%s", out)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if out := renderMarkdown("", 40); out != "" {
		t.Errorf("renderMarkdown(\"\") = %q", out)
	}
}
