package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/export"
	"github.com/Paintersrp/notes/internal/locale"
	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/search"
	"github.com/Paintersrp/notes/internal/state"
	cmdpkg "github.com/Paintersrp/notes/pkg/cmd"
	"github.com/Paintersrp/notes/pkg/shared/flags"
)

var (
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	snippetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0")).PaddingLeft(2)
)

func NewCmdSearch(s *state.State) *cobra.Command {
	var titleOnly bool

	cmd := &cobra.Command{
		Use:     "search [term]",
		Aliases: []string{"grep", "s"},
		Short:   "Search notes by title and body.",
		Long: heredoc.Doc(`
			Fetches the notes and prints those whose title or body contains the
			term, ignoring case. Title matches come first; body matches show the
			surrounding text.
		`),
		Example: heredoc.Doc(`
			notes search milk
			notes search "weekly review" --archived
			notes search go --title-only --json
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, strings.Join(args, " "), titleOnly)
		},
	}

	flags.AddArchived(cmd, "Search archived notes")
	flags.AddJSON(cmd)
	cmd.Flags().BoolVar(&titleOnly, "title-only", false, "Only match note titles")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, term string, titleOnly bool) error {
	asJSON, err := flags.HandleJSON(cmd)
	if err != nil {
		return err
	}

	ctrl := s.Controller
	ctrl.SetScope(cmdpkg.InferScope(cmd))
	if err := ctrl.Load(cmd.Context()); err != nil {
		return cmdpkg.UserError(err)
	}

	idx := search.NewIndex(search.Config{EnableBody: !titleOnly})
	idx.Build(ctrl.Notes())
	results := idx.Search(search.Query{Term: term})

	if asJSON {
		matched := make([]note.Note, 0, len(results))
		for _, r := range results {
			matched = append(matched, r.Note)
		}
		return export.Write(cmd.OutOrStdout(), matched, export.JSON)
	}

	return printResults(cmd.OutOrStdout(), results, s.Messages)
}

func printResults(w io.Writer, results []search.Result, messages locale.Catalog) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, messages.EmptyList)
		return err
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s  %s\n", idStyle.Render(r.Note.ID), titleStyle.Render(r.Note.Title)); err != nil {
			return err
		}
		if r.MatchFrom == "body" {
			if _, err := fmt.Fprintln(w, snippetStyle.Render(r.Snippet)); err != nil {
				return err
			}
		}
	}

	return nil
}
