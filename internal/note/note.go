// Package note provides the note model and the ordered collection the
// controller reconciles against the remote note store.
package note

import (
	"strings"
	"time"
)

// Note represents a single note as returned by the remote note store.
type Note struct {
	ID        string    `json:"id"        yaml:"id"`
	Title     string    `json:"title"     yaml:"title"`
	Body      string    `json:"body"      yaml:"-"`
	CreatedAt time.Time `json:"createdAt" yaml:"created"`
	Archived  bool      `json:"archived"  yaml:"archived"`
}

// Draft holds the user supplied fields of a note that has not been stored yet.
type Draft struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewDraft trims the title and body of a new note.
func NewDraft(title, body string) Draft {
	return Draft{
		Title: strings.TrimSpace(title),
		Body:  strings.TrimSpace(body),
	}
}

// Empty reports whether either field is blank.
func (d Draft) Empty() bool {
	return d.Title == "" || d.Body == ""
}

// Collection is an ordered set of notes keyed by id.
//
// Order is significant: the newest note is first after a Prepend. No two
// entries share an id. The zero value is an empty collection ready for use.
// A Collection is not safe for concurrent use.
type Collection struct {
	notes []Note
}

// NewCollection builds a collection from notes, dropping later duplicates.
func NewCollection(notes []Note) *Collection {
	c := &Collection{}
	c.Replace(notes)
	return c
}

// Replace swaps the whole contents, keeping the first occurrence of each id.
func (c *Collection) Replace(notes []Note) {
	seen := make(map[string]struct{}, len(notes))
	out := make([]Note, 0, len(notes))

	for _, n := range notes {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, n)
	}

	c.notes = out
}

// Prepend inserts n at the front. An existing entry with the same id is
// dropped so the collection never holds the id twice.
func (c *Collection) Prepend(n Note) {
	out := make([]Note, 0, len(c.notes)+1)
	out = append(out, n)

	for _, existing := range c.notes {
		if existing.ID == n.ID {
			continue
		}
		out = append(out, existing)
	}

	c.notes = out
}

// Remove deletes the entry with the given id. It reports whether an entry
// was removed; removing an absent id is a no-op.
func (c *Collection) Remove(id string) bool {
	for i, n := range c.notes {
		if n.ID == id {
			c.notes = append(c.notes[:i:i], c.notes[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceByID swaps the entry sharing n's id with n, keeping its position.
// It reports whether a matching entry was found.
func (c *Collection) ReplaceByID(n Note) bool {
	for i, existing := range c.notes {
		if existing.ID == n.ID {
			c.notes[i] = n
			return true
		}
	}
	return false
}

// SetArchived flips the archived flag of the entry with the given id.
func (c *Collection) SetArchived(id string, archived bool) (Note, bool) {
	for i, existing := range c.notes {
		if existing.ID == id {
			c.notes[i].Archived = archived
			return c.notes[i], true
		}
	}
	return Note{}, false
}

// Get returns the entry with the given id.
func (c *Collection) Get(id string) (Note, bool) {
	for _, n := range c.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Len returns the number of notes.
func (c *Collection) Len() int {
	return len(c.notes)
}

// Snapshot returns a copy of the notes in order.
func (c *Collection) Snapshot() []Note {
	out := make([]Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Since returns the notes created at or after t, preserving order.
func Since(notes []Note, t time.Time) []Note {
	if t.IsZero() {
		return notes
	}

	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if !n.CreatedAt.Before(t) {
			out = append(out, n)
		}
	}
	return out
}
