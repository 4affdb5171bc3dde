package copy

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/state"
	cmdpkg "github.com/Paintersrp/notes/pkg/cmd"
	"github.com/Paintersrp/notes/pkg/shared/flags"
)

var writeClipboard = clipboard.WriteAll

func NewCmdCopy(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "copy [id]",
		Aliases: []string{"cp", "yank"},
		Short:   "Copy a note's body to the clipboard.",
		Long: heredoc.Doc(`
			Copies the body of a note to the system clipboard. Without an id a
			fuzzy finder lists the notes to choose from.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s)
		},
	}

	flags.AddArchived(cmd, "Copy from archived notes")

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State) error {
	n, err := cmdpkg.ResolveNote(cmd, s, args)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		if n, err = lookup(cmd, s, n.ID); err != nil {
			return err
		}
	}

	if err := writeClipboard(n.Body); err != nil {
		return fmt.Errorf("error copying note: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), s.Messages.Copied)
	return nil
}

func lookup(cmd *cobra.Command, s *state.State, id string) (note.Note, error) {
	ctrl := s.Controller
	ctrl.SetScope(cmdpkg.InferScope(cmd))
	if err := ctrl.Load(cmd.Context()); err != nil {
		return note.Note{}, cmdpkg.UserError(err)
	}

	n, ok := ctrl.Note(id)
	if !ok {
		return note.Note{}, fmt.Errorf("note %s not found", id)
	}
	return n, nil
}
