package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/api"
	"github.com/Paintersrp/notes/internal/controller"
	"github.com/Paintersrp/notes/internal/fzf"
	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/state"
	"github.com/Paintersrp/notes/pkg/shared/flags"
)

// PickNote selects one of notes interactively. Tests replace it.
var PickNote = func(notes []note.Note, header, previewStyle string) (note.Note, error) {
	return fzf.NewFuzzyFinder(notes, header, previewStyle).Pick("")
}

// ResolveNote returns the note a command targets: the id given as the first
// argument, or a note picked from the listing the command works on.
func ResolveNote(cmd *cobra.Command, s *state.State, args []string) (note.Note, error) {
	if s == nil || s.Controller == nil {
		return note.Note{}, fmt.Errorf("state is not initialized")
	}

	if len(args) > 0 {
		id := strings.TrimSpace(args[0])
		if id == "" {
			return note.Note{}, fmt.Errorf("note id must not be empty")
		}
		return note.Note{ID: id}, nil
	}

	ctrl := s.Controller
	ctrl.SetScope(InferScope(cmd))
	if err := ctrl.Load(cmd.Context()); err != nil {
		return note.Note{}, UserError(err)
	}

	n, err := PickNote(ctrl.Notes(), fmt.Sprintf("Select a note to %s.", cmd.Name()), s.Settings.PreviewStyle)
	if errors.Is(err, fzf.ErrNoSelection) {
		return note.Note{}, fmt.Errorf("no note selected")
	}
	if err != nil {
		return note.Note{}, err
	}

	return n, nil
}

// InferScope returns the listing a command works on: archived notes for
// unarchive or when --archived is set, active notes otherwise.
func InferScope(cmd *cobra.Command) controller.Scope {
	if cmd == nil {
		return controller.ScopeActive
	}

	if cmd.Name() == "unarchive" || flags.HandleArchived(cmd) {
		return controller.ScopeArchived
	}
	return controller.ScopeActive
}

// UserError reports a failed operation with the text the store or the
// active locale provides.
func UserError(err error) error {
	if err == nil {
		return nil
	}

	var validation *controller.ValidationError
	if errors.As(err, &validation) {
		return err
	}

	return &userError{msg: api.UserMessage(err), err: err}
}

type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }

func (e *userError) Unwrap() error { return e.err }
