package controller

import (
	"github.com/Paintersrp/notes/internal/api"
	"github.com/Paintersrp/notes/internal/note"
)

// EventKind identifies what changed.
type EventKind int

const (
	// NotesChanged carries a snapshot of the collection after it changed.
	NotesChanged EventKind = iota
	// LoadingChanged carries the loading flag after an operation started or
	// finished.
	LoadingChanged
	// NoteCreated carries the note a Create added. Surfaces reset their
	// creation form on it.
	NoteCreated
	// OperationFailed carries the failed operation and its error.
	OperationFailed
)

func (k EventKind) String() string {
	switch k {
	case NotesChanged:
		return "notes changed"
	case LoadingChanged:
		return "loading changed"
	case NoteCreated:
		return "note created"
	case OperationFailed:
		return "operation failed"
	default:
		return "unknown"
	}
}

// Event is published to every listener after a state change.
type Event struct {
	Kind    EventKind
	Notes   []note.Note
	Loading bool
	Note    note.Note
	Op      api.Op
	Err     error
}

// Message returns the user facing text of a failure event.
func (e Event) Message() string {
	return api.UserMessage(e.Err)
}

// Listener receives controller events. Listeners are called synchronously
// from the goroutine running the operation and must not block for long.
type Listener func(Event)
