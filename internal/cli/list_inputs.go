// internal/cli/list_inputs.go
package maeplot

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/maeplot/internal/appconfig"
	"github.com/mwiater/maeplot/internal/catalog"
)

// inputsCmd implements 'list inputs', which shows every measurement file
// the active bases expect and whether it exists.
var inputsCmd = &cobra.Command{
	Use:   "inputs",
	Short: "List the expected measurement files of each active basis",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			def := appconfig.Default()
			cfg = &def
		}
		listInputs(cmd.OutOrStdout(), *cfg)
		return nil
	},
}

func init() {
	listCmd.AddCommand(inputsCmd)
}

func listInputs(out io.Writer, cfg appconfig.Config) {
	found := color.New(color.FgGreen)
	missing := color.New(color.FgYellow)
	locator := catalog.NewLocator(cfg.BaseDir)

	active := cfg.ActiveBases()
	if len(active) == 0 {
		fmt.Fprintln(out, "No active bases.")
		return
	}
	for _, b := range active {
		fmt.Fprintf(out, "%s (%s)\n", b.Label(), locator.Dir(b.Name))
		for _, res := range locator.Inventory(b.Name) {
			name := res.Category.FileName(b.Name)
			if res.Found {
				found.Fprintf(out, "  %-8s %-8s %s\n", "found", res.Category.ID(), name)
				continue
			}
			missing.Fprintf(out, "  %-8s %-8s %s\n", "missing", res.Category.ID(), name)
		}
	}
}
