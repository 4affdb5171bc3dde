package unarchive

import (
	"testing"

	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/pkg/cmd/cmdtest"
)

func TestUnarchiveRestoresNote(t *testing.T) {
	s, store := cmdtest.NewState(t,
		note.Note{ID: "note-1", Title: "Old plans", Body: "Done", Archived: true},
	)

	if _, err := cmdtest.Execute(t, NewCmdUnarchive(s), "note-1"); err != nil {
		t.Fatalf("unarchive failed: %v", err)
	}

	if store.Notes()[0].Archived {
		t.Fatalf("expected note-1 to be restored")
	}
}

func TestUnarchiveCommandRejectsExtraArguments(t *testing.T) {
	s, _ := cmdtest.NewState(t)

	if _, err := cmdtest.Execute(t, NewCmdUnarchive(s), "a", "b"); err == nil {
		t.Fatalf("expected an error when more than one id is given")
	}
}
