package note

import (
	"testing"
	"time"
)

func ids(notes []Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func equalIDs(t *testing.T, got []Note, want ...string) {
	t.Helper()

	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestNewDraftTrimsFields(t *testing.T) {
	tests := []struct {
		name  string
		title string
		body  string
		empty bool
	}{
		{name: "valid", title: "  Groceries ", body: "Milk, eggs\n", empty: false},
		{name: "blank title", title: "   ", body: "body", empty: true},
		{name: "blank body", title: "title", body: "\t\n", empty: true},
		{name: "both blank", title: "", body: "", empty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft(tt.title, tt.body)
			if d.Empty() != tt.empty {
				t.Fatalf("expected Empty() = %v for %+v", tt.empty, d)
			}
		})
	}

	d := NewDraft("  Groceries ", "Milk, eggs\n")
	if d.Title != "Groceries" || d.Body != "Milk, eggs" {
		t.Fatalf("expected trimmed draft, got %+v", d)
	}
}

func TestReplaceDropsDuplicateIDs(t *testing.T) {
	c := NewCollection([]Note{
		{ID: "a", Title: "first"},
		{ID: "b"},
		{ID: "a", Title: "second"},
	})

	equalIDs(t, c.Snapshot(), "a", "b")

	n, ok := c.Get("a")
	if !ok || n.Title != "first" {
		t.Fatalf("expected first occurrence to win, got %+v", n)
	}
}

func TestPrependPutsNewestFirst(t *testing.T) {
	c := NewCollection([]Note{{ID: "a"}, {ID: "b"}})
	c.Prepend(Note{ID: "c"})

	equalIDs(t, c.Snapshot(), "c", "a", "b")
}

func TestPrependExistingIDMovesToFront(t *testing.T) {
	c := NewCollection([]Note{{ID: "a"}, {ID: "b", Title: "old"}})
	c.Prepend(Note{ID: "b", Title: "new"})

	equalIDs(t, c.Snapshot(), "b", "a")
	if n, _ := c.Get("b"); n.Title != "new" {
		t.Fatalf("expected prepended note to replace old entry, got %+v", n)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := NewCollection([]Note{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	if !c.Remove("b") {
		t.Fatal("expected b to be removed")
	}
	if c.Remove("b") {
		t.Fatal("expected second removal to be a no-op")
	}
	equalIDs(t, c.Snapshot(), "a", "c")
}

func TestRemoveDoesNotMutateSnapshots(t *testing.T) {
	c := NewCollection([]Note{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	before := c.Snapshot()

	c.Remove("a")

	equalIDs(t, before, "a", "b", "c")
}

func TestReplaceByIDKeepsPosition(t *testing.T) {
	c := NewCollection([]Note{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	if !c.ReplaceByID(Note{ID: "b", Archived: true}) {
		t.Fatal("expected b to be replaced")
	}
	if c.ReplaceByID(Note{ID: "zzz", Archived: true}) {
		t.Fatal("expected unknown id to be a no-op")
	}

	got := c.Snapshot()
	equalIDs(t, got, "a", "b", "c")
	for _, n := range got {
		if n.Archived != (n.ID == "b") {
			t.Fatalf("unexpected archived flag on %q: %v", n.ID, n.Archived)
		}
	}
}

func TestSetArchived(t *testing.T) {
	c := NewCollection([]Note{{ID: "a"}, {ID: "b"}})

	n, ok := c.SetArchived("a", true)
	if !ok || !n.Archived {
		t.Fatalf("expected a to be archived, got %+v ok=%v", n, ok)
	}
	if _, ok := c.SetArchived("missing", true); ok {
		t.Fatal("expected missing id to report false")
	}
	if b, _ := c.Get("b"); b.Archived {
		t.Fatal("expected b to stay untouched")
	}
}

func TestSince(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	notes := []Note{
		{ID: "new", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "edge", CreatedAt: base},
		{ID: "old", CreatedAt: base.Add(-time.Hour)},
	}

	equalIDs(t, Since(notes, base), "new", "edge")
	equalIDs(t, Since(notes, time.Time{}), "new", "edge", "old")
}
