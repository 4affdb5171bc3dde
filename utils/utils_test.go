package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderMarkdownPreview_AppliesWrapWidth(t *testing.T) {
	t.Parallel()

	markdown := "This is a sentence with enough words to require wrapping when rendered into a preview panel."

	const previewWidth = 20

	rendered, err := RenderMarkdownPreview(markdown, previewWidth, "dracula")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	wrapWidth := previewWidth - previewHorizontalSpace
	if wrapWidth <= 0 {
		wrapWidth = defaultWrapWidth
	}

	for i, line := range strings.Split(rendered, "\n") {
		trimmed := strings.TrimRight(line, " ")
		if trimmed == "" {
			continue
		}

		if width := lipgloss.Width(trimmed); width > wrapWidth {
			t.Fatalf("line %d exceeds wrap width: got %d, want <= %d: %q", i, width, wrapWidth, trimmed)
		}
	}
}

func TestRenderMarkdownPreview_UnknownStyleFallsBack(t *testing.T) {
	t.Parallel()

	rendered, err := RenderMarkdownPreview("**Milk**, eggs", 60, "neon")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(rendered, "Milk") {
		t.Fatalf("expected body text in preview, got %q", rendered)
	}
}

func TestNoteDocument(t *testing.T) {
	got := NoteDocument(" Groceries ", "Milk, eggs\n")
	want := "# Groceries\n\nMilk, eggs\n"
	if got != want {
		t.Fatalf("NoteDocument() = %q, want %q", got, want)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "-" {
		t.Fatalf("expected placeholder for zero time, got %q", got)
	}

	ts := time.Date(2024, 3, 9, 8, 5, 0, 0, time.Local)
	if got := FormatDate(ts); got != "09 Mar 2024 08:05" {
		t.Fatalf("unexpected format %q", got)
	}
}
