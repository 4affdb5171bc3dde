package serve

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/constants"
	"github.com/Paintersrp/notes/internal/notestore"
	"github.com/Paintersrp/notes/internal/state"
)

func NewCmdServe(s *state.State) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local in-memory note store.",
		Long: heredoc.Doc(`
			Serves the note store HTTP API from memory, for development and
			offline use. Notes are lost when the server stops.

			Point the client at it with --base-url or base_url in the config:

			  notes serve --addr :8080 &
			  notes --base-url http://localhost:8080 list
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := notestore.New(notestore.WithLogger(s.Logger.With("component", "notestore")))

			fmt.Fprintf(cmd.ErrOrStderr(), "Serving notes on %s\n", addr)
			s.Logger.Info("note store listening", "addr", addr)

			if err := store.ListenAndServe(cmd.Context(), addr); err != nil {
				return fmt.Errorf("note store stopped: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", constants.DefaultServeAddr, "Address to listen on")

	return cmd
}
