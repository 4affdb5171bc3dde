package flags

import (
	"github.com/spf13/cobra"
)

func AddYes(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt.")
}

func HandleYes(cmd *cobra.Command) (bool, error) {
	return cmd.Flags().GetBool("yes")
}
