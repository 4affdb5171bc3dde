// Package search finds notes by title and body text.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Paintersrp/notes/internal/note"
)

const snippetWindow = 40

type document struct {
	note  note.Note
	title string
	body  string
}

// Index holds lowered copies of the notes it was built from.
type Index struct {
	cfg  Config
	docs []document
}

// NewIndex constructs an empty index.
func NewIndex(cfg Config) *Index {
	return &Index{cfg: cfg}
}

// Build replaces the indexed notes.
func (idx *Index) Build(notes []note.Note) {
	idx.docs = make([]document, 0, len(notes))
	for _, n := range notes {
		idx.docs = append(idx.docs, document{
			note:  n,
			title: strings.ToLower(n.Title),
			body:  strings.ToLower(n.Body),
		})
	}
}

// Len reports how many notes are indexed.
func (idx *Index) Len() int {
	return len(idx.docs)
}

// Search returns the notes matching q, title matches first and newest first
// within each group. An empty term matches nothing.
func (idx *Index) Search(q Query) []Result {
	term := strings.ToLower(strings.TrimSpace(q.Term))
	if term == "" || len(idx.docs) == 0 {
		return nil
	}

	var titles, bodies []Result
	for _, doc := range idx.docs {
		if strings.Contains(doc.title, term) {
			titles = append(titles, Result{Note: doc.note, Snippet: doc.note.Title, MatchFrom: "title"})
			continue
		}

		if idx.cfg.EnableBody {
			if snippet, ok := doc.matchBody(term); ok {
				bodies = append(bodies, Result{Note: doc.note, Snippet: snippet, MatchFrom: "body"})
			}
		}
	}

	newestFirst(titles)
	newestFirst(bodies)
	return append(titles, bodies...)
}

func newestFirst(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Note.CreatedAt.After(results[j].Note.CreatedAt)
	})
}

func (d document) matchBody(term string) (string, bool) {
	idx := strings.Index(d.body, term)
	if idx == -1 {
		return "", false
	}
	runeStart := utf8.RuneCountInString(d.body[:idx])
	return bodySnippet(d.note.Body, runeStart, utf8.RuneCountInString(term)), true
}

func bodySnippet(body string, index, termLen int) string {
	if termLen <= 0 {
		termLen = 1
	}

	runes := []rune(body)
	start := max(0, index)
	end := min(len(runes), index+termLen)

	snippetStart := max(0, start-snippetWindow)
	snippetEnd := min(len(runes), end+snippetWindow)

	snippet := strings.Join(strings.Fields(string(runes[snippetStart:snippetEnd])), " ")
	if snippetStart > 0 {
		snippet = "…" + snippet
	}
	if snippetEnd < len(runes) {
		snippet = snippet + "…"
	}
	return snippet
}
