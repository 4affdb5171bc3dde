package unarchive

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/state"
	cmdpkg "github.com/Paintersrp/notes/pkg/cmd"
)

func NewCmdUnarchive(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unarchive [id]",
		Aliases: []string{"restore"},
		Short:   "Restore an archived note.",
		Long: heredoc.Doc(`
			Moves an archived note back into the default listing.

			Without an id a fuzzy finder lists the archived notes to choose from.
		`),
		Example: heredoc.Doc(`
			notes unarchive notes-1a2b3c4d
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, args)
			if err != nil {
				return err
			}

			if err := s.Controller.Unarchive(cmd.Context(), n.ID); err != nil {
				return cmdpkg.UserError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Restored %s\n", n.ID)
			return nil
		},
	}

	return cmd
}
