package flags

import (
	"github.com/spf13/cobra"
)

func AddDraft(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", "", "Title of the note")
	cmd.Flags().StringP("body", "b", "", "Body of the note")
}

func HandleDraft(cmd *cobra.Command) (title, body string, err error) {
	if title, err = cmd.Flags().GetString("title"); err != nil {
		return "", "", err
	}
	if body, err = cmd.Flags().GetString("body"); err != nil {
		return "", "", err
	}
	return title, body, nil
}
