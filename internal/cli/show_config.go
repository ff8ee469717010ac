// internal/cli/show_config.go
package maeplot

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/maeplot/internal/appconfig"
)

var showConfigFormat string

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the config file is loaded properly and overridden by flags accordingly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appconfig.Default()
		if loaded := GetConfig(); loaded != nil {
			cfg = *loaded
		}
		switch showConfigFormat {
		case "", "text":
			appconfig.ShowConfig(cmd.OutOrStdout(), cfg.ConfigPath, cfg)
			return nil
		case "yaml":
			return appconfig.WriteYAML(cmd.OutOrStdout(), cfg)
		default:
			return fmt.Errorf("unknown format %q (expected text or yaml)", showConfigFormat)
		}
	},
}

func init() {
	showConfigCmd.Flags().StringVar(&showConfigFormat, "format", "text", "output format: text or yaml")
	showCmd.AddCommand(showConfigCmd)
}
