package list

import (
	"fmt"
	"io"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/araddon/dateparse"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/export"
	"github.com/Paintersrp/notes/internal/locale"
	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/state"
	cmdpkg "github.com/Paintersrp/notes/pkg/cmd"
	"github.com/Paintersrp/notes/pkg/shared/flags"
	"github.com/Paintersrp/notes/utils"
)

var (
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0"))
	archivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))
)

func NewCmdList(s *state.State) *cobra.Command {
	var since string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List notes from the note store.",
		Long: heredoc.Doc(`
			Fetches the notes from the configured note store and prints them,
			newest first.

			Use --archived to list archived notes instead, and --since to only
			show notes created on or after a date. Dates are parsed leniently,
			so "2024-03-01", "March 1, 2024" and "03/01/2024 14:00" all work.
		`),
		Example: heredoc.Doc(`
			notes list
			notes list --archived
			notes list --since 2024-03-01 --json
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, since)
		},
	}

	flags.AddArchived(cmd, "List archived notes")
	flags.AddJSON(cmd)
	cmd.Flags().StringVar(&since, "since", "", "Only show notes created on or after this date")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, since string) error {
	var after time.Time
	if since != "" {
		t, err := dateparse.ParseLocal(since)
		if err != nil {
			return fmt.Errorf("invalid --since date %q: %w", since, err)
		}
		after = t
	}

	asJSON, err := flags.HandleJSON(cmd)
	if err != nil {
		return err
	}

	ctrl := s.Controller
	ctrl.SetScope(cmdpkg.InferScope(cmd))
	if err := ctrl.Load(cmd.Context()); err != nil {
		return cmdpkg.UserError(err)
	}

	notes := note.Since(ctrl.Notes(), after)

	if asJSON {
		return export.Write(cmd.OutOrStdout(), notes, export.JSON)
	}

	return printNotes(cmd.OutOrStdout(), notes, s.Messages)
}

func printNotes(w io.Writer, notes []note.Note, messages locale.Catalog) error {
	if len(notes) == 0 {
		_, err := fmt.Fprintln(w, messages.EmptyList)
		return err
	}

	for _, n := range notes {
		line := fmt.Sprintf(
			"%s  %s  %s",
			idStyle.Render(n.ID),
			titleStyle.Render(n.Title),
			dateStyle.Render(utils.FormatDate(n.CreatedAt)),
		)
		if n.Archived {
			line += "  " + archivedStyle.Render(messages.ArchivedMarker)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
