package delete

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/notes/internal/state"
	cmdpkg "github.com/Paintersrp/notes/pkg/cmd"
	"github.com/Paintersrp/notes/pkg/shared/flags"
)

// ErrNotConfirmed is returned when the user declines the deletion.
var ErrNotConfirmed = errors.New("deletion cancelled")

var (
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	confirm    = func(prompt string) (bool, error) {
		return confirmation.New(prompt, confirmation.No).RunPrompt()
	}
)

func NewCmdDelete(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm", "d"},
		Short:   "Delete a note permanently.",
		Long: heredoc.Doc(`
			Deletes a note from the note store. The deletion cannot be undone.

			Without an id a fuzzy finder lists the notes to choose from. Unless
			--yes is given, or confirm_delete is disabled in the config, you are
			asked to confirm first. Without a terminal to ask on, --yes is
			required.
		`),
		Example: heredoc.Doc(`
			notes delete notes-1a2b3c4d
			notes delete --yes notes-1a2b3c4d
			notes delete --archived
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s)
		},
	}

	flags.AddYes(cmd)
	flags.AddArchived(cmd, "Pick from archived notes")

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State) error {
	yes, err := flags.HandleYes(cmd)
	if err != nil {
		return err
	}

	n, err := cmdpkg.ResolveNote(cmd, s, args)
	if err != nil {
		return err
	}

	if !yes && s.Settings.ConfirmDelete {
		if !isTerminal() {
			return fmt.Errorf("refusing to delete %s without confirmation, pass --yes", n.ID)
		}

		subject := n.ID
		if n.Title != "" {
			subject = fmt.Sprintf("%q (%s)", n.Title, n.ID)
		}

		ok, err := confirm(fmt.Sprintf("%s %s %s", s.Messages.ConfirmTitle, subject, s.Messages.ConfirmDelete))
		if err != nil {
			return fmt.Errorf("error reading confirmation: %w", err)
		}
		if !ok {
			return ErrNotConfirmed
		}
	}

	if err := s.Controller.Delete(cmd.Context(), n.ID); err != nil {
		return cmdpkg.UserError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", n.ID)
	return nil
}
