package list

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/pkg/cmd/cmdtest"
)

func seed() []note.Note {
	return []note.Note{
		{ID: "note-1", Title: "Groceries", Body: "Milk, eggs", CreatedAt: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)},
		{ID: "note-2", Title: "Ideas", Body: "Write more Go", CreatedAt: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)},
		{ID: "note-3", Title: "Old plans", Body: "Done", CreatedAt: time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC), Archived: true},
	}
}

func TestListPrintsActiveNotes(t *testing.T) {
	s, _ := cmdtest.NewState(t, seed()...)

	out, err := cmdtest.Execute(t, NewCmdList(s))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if !strings.Contains(out, "Groceries") || !strings.Contains(out, "Ideas") {
		t.Fatalf("expected active notes, got %q", out)
	}
	if strings.Contains(out, "Old plans") {
		t.Fatalf("archived note must not be listed, got %q", out)
	}
}

func TestListArchived(t *testing.T) {
	s, _ := cmdtest.NewState(t, seed()...)

	out, err := cmdtest.Execute(t, NewCmdList(s), "--archived")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if !strings.Contains(out, "Old plans") || strings.Contains(out, "Groceries") {
		t.Fatalf("expected only archived notes, got %q", out)
	}
}

func TestListSinceAsJSON(t *testing.T) {
	s, _ := cmdtest.NewState(t, seed()...)

	out, err := cmdtest.Execute(t, NewCmdList(s), "--since", "2024-02-01", "--json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var got []note.Note
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("expected JSON output: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0].ID != "note-1" {
		t.Fatalf("expected only note-1, got %v", got)
	}
}

func TestListRejectsBadDate(t *testing.T) {
	s, _ := cmdtest.NewState(t)

	if _, err := cmdtest.Execute(t, NewCmdList(s), "--since", "not a date"); err == nil {
		t.Fatalf("expected an invalid date to be rejected")
	}
}

func TestListEmpty(t *testing.T) {
	s, _ := cmdtest.NewState(t)

	out, err := cmdtest.Execute(t, NewCmdList(s))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, s.Messages.EmptyList) {
		t.Fatalf("expected empty message, got %q", out)
	}
}
