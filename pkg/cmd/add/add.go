package add

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/controller"
	"github.com/Paintersrp/notes/internal/state"
	cmdpkg "github.com/Paintersrp/notes/pkg/cmd"
	"github.com/Paintersrp/notes/pkg/shared/arg"
	"github.com/Paintersrp/notes/pkg/shared/flags"
)

var readClipboard = clipboard.ReadAll

func NewCmdAdd(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [title] [body]",
		Aliases: []string{"new", "a"},
		Short:   "Add a note to the note store.",
		Long: heredoc.Doc(`
			Creates a note with the given title and body and prints the id the
			note store assigned to it.

			Title and body may be given as arguments or flags. With --paste the
			body is taken from the clipboard.
		`),
		Example: heredoc.Doc(`
			notes add "Groceries" "Milk, eggs"
			notes add --title Groceries --body "Milk, eggs"
			notes add Groceries --paste
		`),
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s)
		},
	}

	flags.AddDraft(cmd)
	flags.AddPaste(cmd)

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State) error {
	title, body, err := flags.HandleDraft(cmd)
	if err != nil {
		return err
	}

	paste, err := flags.HandlePaste(cmd)
	if err != nil {
		return err
	}
	if paste && body == "" {
		body, err = readClipboard()
		if err != nil {
			return fmt.Errorf("error reading clipboard: %w", err)
		}
	}

	title, body = arg.HandleDraft(args, title, body)

	n, err := s.Controller.Create(cmd.Context(), title, body)
	var validation *controller.ValidationError
	if errors.As(err, &validation) {
		_ = cmd.Help()
		return fmt.Errorf("note %s is required", validation.Field)
	}
	if err != nil {
		return cmdpkg.UserError(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), n.ID)
	return nil
}
