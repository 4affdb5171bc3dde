package notes

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/state"
	"github.com/Paintersrp/notes/internal/tui/notes"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"tui", "n"},
		Short:   "Browse and manage notes interactively.",
		Long: heredoc.Doc(`
			Opens the interactive note list. This is also what runs when notes
			is started without a command.

			  C          add a note
			  D          delete the selected note
			  A / U      archive / restore the selected note
			  V          switch between active and archived notes
			  Y          copy the selected body to the clipboard
			  r          reload
			  /          filter
			  ctrl+c     quit
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, s *state.State) error {
	opts := notes.Options{
		Messages:      s.Messages,
		ConfirmDelete: s.Settings.ConfirmDelete,
		PreviewStyle:  s.Settings.PreviewStyle,
	}

	if s.Config != nil {
		w, err := state.NewConfigWatcher(s.Config.Path())
		if err != nil {
			s.Logger.Warn("config changes will need a restart", "err", err)
		} else {
			defer w.Close()
			opts.Watcher = w
		}
	}

	return notes.Run(cmd.Context(), s.Controller, opts)
}
