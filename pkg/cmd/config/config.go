package config

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/config"
	"github.com/Paintersrp/notes/internal/state"
)

func NewCmdConfig(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg", "settings"},
		Short:   "Show or change settings in the config file.",
		Long: heredoc.Doc(`
			Without a subcommand every setting is printed with its value from the
			config file. Values given with flags or NOTES_* environment
			variables override the file but are not shown or saved here.
		`),
		Example: heredoc.Doc(`
			notes config
			notes config get base_url
			notes config set locale en
			notes config path
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, key := range config.Keys() {
				value, err := s.Config.Get(key)
				if err != nil {
					return err
				}
				if key == config.KeyToken && value != "" {
					value = "********"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, value)
			}
			return nil
		},
	}

	cmd.AddCommand(
		newCmdGet(s),
		newCmdSet(s),
		newCmdPath(s),
	)

	return cmd
}

func newCmdGet(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:       "get [key]",
		Short:     "Print one setting.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := s.Config.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newCmdSet(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:       "set [key] [value]",
		Short:     "Validate and save one setting.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Config.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := s.Config.Save(); err != nil {
				return err
			}

			value, _ := s.Config.Get(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", args[0], value)
			return nil
		},
	}
}

func newCmdPath(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), s.Config.Path())
			return nil
		},
	}
}
