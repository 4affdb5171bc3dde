package flags

import (
	"github.com/spf13/cobra"
)

func AddJSON(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Print notes as JSON.")
}

func HandleJSON(cmd *cobra.Command) (bool, error) {
	return cmd.Flags().GetBool("json")
}
