package delete

import (
	"errors"
	"strings"
	"testing"

	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/pkg/cmd/cmdtest"
)

func seed() []note.Note {
	return []note.Note{
		{ID: "note-1", Title: "Groceries", Body: "Milk, eggs"},
		{ID: "note-2", Title: "Ideas", Body: "Write more Go"},
	}
}

func stubPrompt(t *testing.T, tty bool, answer bool) *[]string {
	t.Helper()

	var prompts []string
	origTerm, origConfirm := isTerminal, confirm
	isTerminal = func() bool { return tty }
	confirm = func(prompt string) (bool, error) {
		prompts = append(prompts, prompt)
		return answer, nil
	}
	t.Cleanup(func() {
		isTerminal, confirm = origTerm, origConfirm
	})

	return &prompts
}

func storedIDs(notes []note.Note) []string {
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestDeleteWithYes(t *testing.T) {
	s, store := cmdtest.NewState(t, seed()...)
	prompts := stubPrompt(t, false, false)

	out, err := cmdtest.Execute(t, NewCmdDelete(s), "--yes", "note-1")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if len(*prompts) != 0 {
		t.Fatalf("expected no prompt with --yes")
	}
	if ids := storedIDs(store.Notes()); len(ids) != 1 || ids[0] != "note-2" {
		t.Fatalf("expected only note-2 left, got %v", ids)
	}
	if !strings.Contains(out, "note-1") {
		t.Fatalf("expected confirmation output, got %q", out)
	}
}

func TestDeleteRefusesWithoutTerminal(t *testing.T) {
	s, store := cmdtest.NewState(t, seed()...)
	stubPrompt(t, false, true)

	_, err := cmdtest.Execute(t, NewCmdDelete(s), "note-1")
	if err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("expected refusal mentioning --yes, got %v", err)
	}
	if len(store.Notes()) != 2 {
		t.Fatalf("expected nothing deleted")
	}
}

func TestDeleteAsksOnTerminal(t *testing.T) {
	s, store := cmdtest.NewState(t, seed()...)
	prompts := stubPrompt(t, true, false)

	_, err := cmdtest.Execute(t, NewCmdDelete(s), "note-1")
	if !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
	if len(*prompts) != 1 || !strings.Contains((*prompts)[0], "Are you sure?") {
		t.Fatalf("expected a localized prompt, got %v", *prompts)
	}
	if len(store.Notes()) != 2 {
		t.Fatalf("expected nothing deleted after declining")
	}

	prompts = stubPrompt(t, true, true)
	if _, err := cmdtest.Execute(t, NewCmdDelete(s), "note-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(store.Notes()) != 1 {
		t.Fatalf("expected note-1 deleted after confirming")
	}
}

func TestDeleteSkipsPromptWhenDisabled(t *testing.T) {
	s, store := cmdtest.NewState(t, seed()...)
	s.Settings.ConfirmDelete = false
	stubPrompt(t, false, false)

	if _, err := cmdtest.Execute(t, NewCmdDelete(s), "note-2"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(store.Notes()) != 1 {
		t.Fatalf("expected note-2 deleted")
	}
}

func TestDeleteUnknownIDShowsStoreMessage(t *testing.T) {
	s, _ := cmdtest.NewState(t, seed()...)
	stubPrompt(t, false, false)

	_, err := cmdtest.Execute(t, NewCmdDelete(s), "--yes", "missing")
	if err == nil || err.Error() != "Note is not found" {
		t.Fatalf("expected the store's message, got %v", err)
	}
}
