package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/folio/pkg/client"
	"github.com/naveenspark/folio/pkg/domain"
)

// fetchFunc loads one page of a collection. filter is screen specific
// (the skills category); "" means no filter.
type fetchFunc[T any] func(ctx context.Context, page, limit int, filter string) (*domain.Page[T], error)

// pageLoadedMsg carries a page for the listing that issued request seq.
type pageLoadedMsg[T any] struct {
	seq  uint64
	page *domain.Page[T]
	err  error
}

// listing is the state of one paginated collection. Every load takes a
// new sequence number; responses for older numbers are dropped.
type listing[T any] struct {
	items    []T
	total    int
	page     int
	pageSize int
	cursor   int
	loading  bool
	err      string
	seq      uint64

	loadFailed string
}

func newListing[T any](pageSize int, loadFailed string) listing[T] {
	if pageSize < 1 {
		pageSize = 10
	}
	return listing[T]{page: 1, pageSize: pageSize, loadFailed: loadFailed}
}

// load starts fetching page and returns the command that performs it.
// fetch may be nil in tests; the command is then nil too.
func (l *listing[T]) load(page int, filter string, fetch fetchFunc[T]) tea.Cmd {
	if page < 1 {
		page = 1
	}
	l.seq++
	l.page = page
	l.loading = true
	l.err = ""
	if fetch == nil {
		return nil
	}
	seq, limit := l.seq, l.pageSize
	return func() tea.Msg {
		p, err := fetch(context.Background(), page, limit, filter)
		return pageLoadedMsg[T]{seq: seq, page: p, err: err}
	}
}

// apply records a response. It reports false for a stale response.
func (l *listing[T]) apply(msg pageLoadedMsg[T]) bool {
	if msg.seq != l.seq {
		return false
	}
	l.loading = false
	if msg.err != nil {
		l.items = nil
		l.total = 0
		l.cursor = 0
		l.err = client.Describe(msg.err, l.loadFailed)
		return true
	}
	l.items = msg.page.Items
	l.total = msg.page.Total
	if len(l.items) > l.pageSize {
		l.items = l.items[:l.pageSize]
	}
	if l.cursor >= len(l.items) {
		l.cursor = max(len(l.items)-1, 0)
	}
	return true
}

func (l listing[T]) totalPages() int {
	return domain.TotalPages(l.total, l.pageSize)
}

func (l listing[T]) hasPrev() bool {
	return !l.loading && l.page > 1
}

func (l listing[T]) hasNext() bool {
	return !l.loading && l.page < l.totalPages()
}

func (l listing[T]) selected() (T, bool) {
	var zero T
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return zero, false
	}
	return l.items[l.cursor], true
}

func (l *listing[T]) moveCursor(delta int) {
	l.cursor += delta
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// pager renders "‹ prev  Page X of Y  next ›" with unavailable controls dimmed.
func (l listing[T]) pager() string {
	prev := disabledStyle.Render("‹ prev")
	if l.hasPrev() {
		prev = accentStyle.Render("‹ prev")
	}
	next := disabledStyle.Render("next ›")
	if l.hasNext() {
		next = accentStyle.Render("next ›")
	}
	info := fmt.Sprintf("Page %d of %d", l.page, l.totalPages())
	return prev + "  " + dimStyle.Render(info) + "  " + next
}

// rows renders each item through row, marking the cursor.
func (l listing[T]) rows(width int, row func(T, int) string) string {
	var b strings.Builder
	for i, it := range l.items {
		line := row(it, width-4)
		if i == l.cursor {
			b.WriteString(selectedRowBg.Render(accentStyle.Render(" ▸ ") + line))
		} else {
			b.WriteString("   " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
