package search

import "github.com/Paintersrp/notes/internal/note"

// Config describes index behavior.
type Config struct {
	// EnableBody controls whether note bodies are searched in addition to
	// titles.
	EnableBody bool
}

// Query represents a search request against the index.
type Query struct {
	// Term is the free-text query matched case-insensitively.
	Term string
}

// Result captures a note match from the index.
type Result struct {
	Note      note.Note
	Snippet   string
	MatchFrom string
}
