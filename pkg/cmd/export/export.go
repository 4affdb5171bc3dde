package export

import (
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/notes/internal/export"
	"github.com/Paintersrp/notes/internal/state"
	cmdpkg "github.com/Paintersrp/notes/pkg/cmd"
	"github.com/Paintersrp/notes/pkg/shared/flags"
)

type uploader interface {
	Upload(ctx context.Context, dest string, body []byte, f export.Format) (string, error)
}

var newUploader = func(ctx context.Context, cfg export.S3Config) (uploader, error) {
	return export.NewS3Uploader(ctx, cfg)
}

type options struct {
	format string
	out    string
	s3     string
}

func NewCmdExport(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "export",
		Aliases: []string{"e"},
		Short:   "Export notes as markdown, HTML or JSON.",
		Long: heredoc.Doc(`
			Fetches the notes and writes them in one document.

			  md    one section per note with YAML front matter
			  html  a standalone page with each body rendered from markdown
			  json  the notes as the store returns them

			The document goes to stdout unless --out names a file. With --s3 it
			is also uploaded to an S3 bucket; the region comes from s3_region
			in the config, and NOTES_S3_ENDPOINT, NOTES_S3_ACCESS_KEY and
			NOTES_S3_SECRET_KEY select an S3 compatible endpoint and
			credentials. Otherwise the usual AWS environment applies.
		`),
		Example: heredoc.Doc(`
			notes export > notes.md
			notes export --format html --out notes.html
			notes export --format json --s3 s3://backups/notes.json
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(export.Markdown), "Export format: md, html or json")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the export to a file")
	cmd.Flags().StringVar(&opts.s3, "s3", "", "Upload the export to s3://bucket/key")
	flags.AddArchived(cmd, "Export archived notes")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, opts options) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	if opts.s3 != "" {
		if _, _, err := export.ParseS3URL(opts.s3); err != nil {
			return err
		}
	}

	ctrl := s.Controller
	ctrl.SetScope(cmdpkg.InferScope(cmd))
	if err := ctrl.Load(cmd.Context()); err != nil {
		return cmdpkg.UserError(err)
	}

	notes := ctrl.Notes()
	body, err := export.Render(notes, format)
	if err != nil {
		return err
	}

	switch {
	case opts.out != "":
		if err := os.WriteFile(opts.out, body, 0o644); err != nil {
			return fmt.Errorf("error writing export: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d notes to %s\n", len(notes), opts.out)
	case opts.s3 == "":
		if _, err := cmd.OutOrStdout().Write(body); err != nil {
			return err
		}
	}

	if opts.s3 == "" {
		return nil
	}

	up, err := newUploader(cmd.Context(), export.S3Config{
		Region:    s.Settings.S3Region,
		Endpoint:  viper.GetString("s3_endpoint"),
		AccessKey: viper.GetString("s3_access_key"),
		SecretKey: viper.GetString("s3_secret_key"),
	})
	if err != nil {
		return err
	}

	location, err := up.Upload(cmd.Context(), opts.s3, body, format)
	if err != nil {
		return err
	}

	s.Logger.Info("export uploaded", "location", location, "notes", len(notes))
	fmt.Fprintf(cmd.ErrOrStderr(), "Uploaded %d notes to %s\n", len(notes), location)
	return nil
}
