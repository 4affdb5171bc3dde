package root

import (
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/notes/internal/config"
	"github.com/Paintersrp/notes/internal/constants"
	"github.com/Paintersrp/notes/internal/state"
	"github.com/Paintersrp/notes/pkg/cmd/add"
	"github.com/Paintersrp/notes/pkg/cmd/archive"
	configcmd "github.com/Paintersrp/notes/pkg/cmd/config"
	"github.com/Paintersrp/notes/pkg/cmd/copy"
	"github.com/Paintersrp/notes/pkg/cmd/delete"
	"github.com/Paintersrp/notes/pkg/cmd/export"
	"github.com/Paintersrp/notes/pkg/cmd/list"
	"github.com/Paintersrp/notes/pkg/cmd/notes"
	"github.com/Paintersrp/notes/pkg/cmd/pick"
	"github.com/Paintersrp/notes/pkg/cmd/search"
	"github.com/Paintersrp/notes/pkg/cmd/serve"
	"github.com/Paintersrp/notes/pkg/cmd/unarchive"
)

// Commands that run without loading the config.
var stateless = map[string]bool{
	"help":       true,
	"completion": true,
	"__complete": true,
}

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	var configPath string

	cmd := &cobra.Command{
		Use:     constants.AppName,
		Version: constants.Version,
		Short:   "Write, browse and archive notes kept in a remote note store.",
		Long: heredoc.Doc(`
			A terminal client for a notes REST API. Run it without a command for
			the interactive list, or use the commands below from scripts.

			Settings live in ~/.notes/cfg.yaml. Any of them can be overridden
			with a NOTES_ environment variable, for example NOTES_BASE_URL or
			NOTES_LOCALE, and base_url and locale also with flags.
		`),
		Example: heredoc.Doc(`
			notes
			notes add "Groceries" "Milk, eggs"
			notes list --since "last monday"
			notes --base-url http://localhost:8080 list
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if stateless[cmd.Name()] || (cmd.HasParent() && stateless[cmd.Parent().Name()]) {
				return nil
			}

			// The TUI owns the terminal, so its logs only go to log_file.
			logOut := cmd.ErrOrStderr()
			if cmd == cmd.Root() || cmd.Name() == "ui" {
				logOut = io.Discard
			}

			return s.Load(configPath, logOut)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.Close()
		},
	}

	ui := notes.NewCmdNotes(s)
	cmd.RunE = ui.RunE

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default $HOME/.notes/cfg.yaml)")
	cmd.PersistentFlags().String("base-url", "", "Base URL of the note store API")
	cmd.PersistentFlags().StringP("locale", "l", "", "Message language: id or en")

	if err := viper.BindPFlag(config.KeyBaseURL, cmd.PersistentFlags().Lookup("base-url")); err != nil {
		return nil, err
	}
	if err := viper.BindPFlag(config.KeyLocale, cmd.PersistentFlags().Lookup("locale")); err != nil {
		return nil, err
	}

	cmd.AddCommand(
		ui,
		list.NewCmdList(s),
		add.NewCmdAdd(s),
		delete.NewCmdDelete(s),
		archive.NewCmdArchive(s),
		unarchive.NewCmdUnarchive(s),
		pick.NewCmdPick(s),
		search.NewCmdSearch(s),
		copy.NewCmdCopy(s),
		export.NewCmdExport(s),
		serve.NewCmdServe(s),
		configcmd.NewCmdConfig(s),
	)

	return cmd, nil
}
