// internal/cli/render.go
package maeplot

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/maeplot/internal/appconfig"
	"github.com/mwiater/maeplot/internal/passes"
)

var (
	renderPasses []string
	renderBases  []string
)

// renderCmd implements 'render', which draws the comparison figures for
// every active basis.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the filter, model and best-filter boxplots",
	Long: `The 'render' command reads the Validation MAE files of every active basis and
writes three boxplots per basis: the Garnoldi filters, all models, and the best
Garnoldi filter against the baseline models. Use --pass and --basis to narrow
the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			def := appconfig.Default()
			cfg = &def
		}
		return runRender(cmd, *cfg, renderPasses, renderBases)
	},
}

func init() {
	renderCmd.Flags().StringSliceVar(&renderPasses, "pass", nil, "passes to run: filters, models, best (default all)")
	renderCmd.Flags().StringSliceVar(&renderBases, "basis", nil, "restrict the run to these active bases")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, cfg appconfig.Config, passNames, basisNames []string) error {
	selected, err := passes.Lookup(passNames)
	if err != nil {
		return err
	}
	bases, err := cfg.SelectActive(basisNames)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	runner := passes.NewRunner(cfg, out)
	results, runErr := runner.RunAll(bases, selected)

	if summary := passes.RenderSummary(results); summary != "" {
		fmt.Fprintln(out)
		fmt.Fprint(out, summary)
	}
	if cfg.Debug {
		pp.Fprintln(out, results)
	}
	if runErr != nil {
		return fmt.Errorf("render failed: %w", runErr)
	}
	return nil
}
