package fzf

import (
	"errors"
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/utils"
)

// ErrNoSelection is returned when the finder is aborted or has nothing to
// offer.
var ErrNoSelection = errors.New("no note selected")

type findFunc func(items any, itemFunc func(int) string, opts ...fuzzyfinder.Option) (int, error)

// FuzzyFinder picks a note by title with a rendered preview of its body.
type FuzzyFinder struct {
	Header       string
	PreviewStyle string
	notes        []note.Note
	find         findFunc
}

func NewFuzzyFinder(notes []note.Note, header, previewStyle string) *FuzzyFinder {
	return &FuzzyFinder{
		Header:       header,
		PreviewStyle: previewStyle,
		notes:        notes,
		find:         fuzzyfinder.Find,
	}
}

// Pick runs the finder and returns the selected note.
func (f *FuzzyFinder) Pick(query string) (note.Note, error) {
	if len(f.notes) == 0 {
		return note.Note{}, ErrNoSelection
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := f.find(f.notes, f.label, options...)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return note.Note{}, ErrNoSelection
	}
	if err != nil {
		return note.Note{}, fmt.Errorf("error selecting note: %w", err)
	}
	if idx < 0 || idx >= len(f.notes) {
		return note.Note{}, ErrNoSelection
	}

	return f.notes[idx], nil
}

func (f *FuzzyFinder) label(i int) string {
	n := f.notes[i]
	if n.Archived {
		return fmt.Sprintf("%s [archived] (%s)", n.Title, utils.FormatDate(n.CreatedAt))
	}
	return fmt.Sprintf("%s (%s)", n.Title, utils.FormatDate(n.CreatedAt))
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	n := f.notes[i]
	markdown, err := utils.RenderMarkdownPreview(utils.NoteDocument(n.Title, n.Body), w, f.PreviewStyle)
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}
