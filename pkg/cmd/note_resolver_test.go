package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/api"
	"github.com/Paintersrp/notes/internal/controller"
	"github.com/Paintersrp/notes/internal/fzf"
	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/pkg/cmd/cmdtest"
	"github.com/Paintersrp/notes/pkg/shared/flags"
)

func stubPicker(t *testing.T, pick func([]note.Note) (note.Note, error)) {
	t.Helper()
	original := PickNote
	PickNote = func(notes []note.Note, _, _ string) (note.Note, error) {
		return pick(notes)
	}
	t.Cleanup(func() { PickNote = original })
}

func newCommand(use string) *cobra.Command {
	cmd := &cobra.Command{Use: use}
	cmd.SetContext(context.Background())
	return cmd
}

func TestResolveNoteUsesArgument(t *testing.T) {
	s, _ := cmdtest.NewState(t)
	stubPicker(t, func([]note.Note) (note.Note, error) {
		t.Fatalf("picker must not run when an id is given")
		return note.Note{}, nil
	})

	n, err := ResolveNote(newCommand("delete"), s, []string{" note-1 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.ID != "note-1" {
		t.Fatalf("expected note-1, got %q", n.ID)
	}

	if _, err := ResolveNote(newCommand("delete"), s, []string{"  "}); err == nil {
		t.Fatalf("expected blank id to be rejected")
	}
}

func TestResolveNotePicksFromScope(t *testing.T) {
	s, _ := cmdtest.NewState(t,
		note.Note{ID: "note-1", Title: "Active", Body: "a"},
		note.Note{ID: "note-2", Title: "Old", Body: "b", Archived: true},
	)

	var offered []note.Note
	stubPicker(t, func(notes []note.Note) (note.Note, error) {
		offered = notes
		return notes[0], nil
	})

	n, err := ResolveNote(newCommand("unarchive"), s, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.ID != "note-2" || len(offered) != 1 {
		t.Fatalf("expected only the archived note to be offered, got %v", offered)
	}

	if _, err := ResolveNote(newCommand("archive"), s, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offered) != 1 || offered[0].ID != "note-1" {
		t.Fatalf("expected only the active note to be offered, got %v", offered)
	}
}

func TestResolveNoteAbortedPick(t *testing.T) {
	s, _ := cmdtest.NewState(t)
	stubPicker(t, func([]note.Note) (note.Note, error) {
		return note.Note{}, fzf.ErrNoSelection
	})

	if _, err := ResolveNote(newCommand("copy"), s, nil); err == nil {
		t.Fatalf("expected an error when nothing is picked")
	}
}

func TestInferScope(t *testing.T) {
	tests := map[string]struct {
		cmd  func() *cobra.Command
		want controller.Scope
	}{
		"nil command": {
			cmd:  func() *cobra.Command { return nil },
			want: controller.ScopeActive,
		},
		"unarchive": {
			cmd:  func() *cobra.Command { return newCommand("unarchive") },
			want: controller.ScopeArchived,
		},
		"archived flag": {
			cmd: func() *cobra.Command {
				c := newCommand("copy")
				flags.AddArchived(c, "")
				_ = c.Flags().Set("archived", "true")
				return c
			},
			want: controller.ScopeArchived,
		},
		"plain": {
			cmd:  func() *cobra.Command { return newCommand("delete") },
			want: controller.ScopeActive,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := InferScope(tc.cmd()); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestUserErrorUsesStoreMessage(t *testing.T) {
	err := UserError(&api.APIError{Op: api.OpDelete, StatusCode: 404, Message: "Note is not found"})
	if err.Error() != "Note is not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !api.IsNotFound(err) {
		t.Fatalf("expected the store error to stay reachable")
	}

	validation := &controller.ValidationError{Field: "title"}
	if !errors.Is(UserError(validation), validation) {
		t.Fatalf("expected validation errors to pass through")
	}

	if UserError(nil) != nil {
		t.Fatalf("expected nil for nil")
	}
}
