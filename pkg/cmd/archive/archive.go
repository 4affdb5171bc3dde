package archive

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/state"
	cmdpkg "github.com/Paintersrp/notes/pkg/cmd"
)

func NewCmdArchive(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive [id]",
		Short: "Archive a note.",
		Long: heredoc.Doc(`
			Marks a note as archived in the note store. Archived notes leave the
			default listing and can be restored with unarchive.

			Without an id a fuzzy finder lists the active notes to choose from.
		`),
		Example: heredoc.Doc(`
			notes archive notes-1a2b3c4d
			notes archive
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, args)
			if err != nil {
				return err
			}

			if err := s.Controller.Archive(cmd.Context(), n.ID); err != nil {
				return cmdpkg.UserError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Archived %s\n", n.ID)
			return nil
		},
	}

	return cmd
}
