package flags

import (
	"github.com/spf13/cobra"
)

func AddArchived(cmd *cobra.Command, usage string) {
	cmd.Flags().BoolP("archived", "a", false, usage)
}

func HandleArchived(cmd *cobra.Command) bool {
	if cmd.Flags().Lookup("archived") == nil {
		return false
	}
	archived, _ := cmd.Flags().GetBool("archived")
	return archived
}
