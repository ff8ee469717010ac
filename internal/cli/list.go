// internal/cli/list.go
package maeplot

import (
	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command group.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups subcommands that list resources maeplot works with.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
