package pick

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/state"
	cmdpkg "github.com/Paintersrp/notes/pkg/cmd"
	"github.com/Paintersrp/notes/pkg/shared/flags"
)

func NewCmdPick(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pick",
		Aliases: []string{"find", "f"},
		Short:   "Fuzzy find a note and print its id.",
		Long: heredoc.Doc(`
			Opens a fuzzy finder over the note titles with a rendered preview of
			each body and prints the id of the chosen note, so it can be piped
			into other commands.
		`),
		Example: heredoc.Doc(`
			notes pick
			notes archive "$(notes pick)"
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, nil)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), n.ID)
			return nil
		},
	}

	flags.AddArchived(cmd, "Pick from archived notes")

	return cmd
}
