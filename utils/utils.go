package utils

import (
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

const (
	defaultWrapWidth       = 80
	previewHorizontalSpace = 4
	defaultPreviewStyle    = "dracula"
)

// RenderMarkdownPreview renders a note body as styled markdown wrapped to fit
// a pane of the given width. On failure the raw body is returned with the
// error.
func RenderMarkdownPreview(body string, width int, style string) (string, error) {
	wrapWidth := width - previewHorizontalSpace
	if wrapWidth <= 0 {
		wrapWidth = defaultWrapWidth
	}

	if _, ok := glamour.DefaultStyles[style]; !ok {
		style = defaultPreviewStyle
	}

	// Initiate glamour renderer to add colors to our markdown preview
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrapWidth),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return body, err
	}

	markdown, err := r.Render(body)
	if err != nil {
		return body, err
	}

	return strings.TrimRight(markdown, "\n"), nil
}

// NoteDocument renders a note as a markdown document with its title as the
// heading.
func NoteDocument(title, body string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(strings.TrimSpace(title))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")
	return b.String()
}

// FormatDate renders a creation timestamp the way the lists show it.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02 Jan 2006 15:04")
}
