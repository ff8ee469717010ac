// internal/cli/root.go
package maeplot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/maeplot/internal/appconfig"
	"github.com/mwiater/maeplot/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "maeplot",
	Short:        "maeplot renders Validation MAE boxplots for Garnoldi filters and baseline models",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		used, err := ensureConfigLoaded()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}
		for _, name := range []string{"baseDir", "figuresDir", "logFile"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}
		if !cmd.Flags().Changed("dpi") {
			_ = cmd.Flags().Set("dpi", strconv.Itoa(viper.GetInt("dpi")))
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg = cfg.WithDefaults()
		cfg.ConfigPath = used
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		currentConfig = &cfg

		if err := logging.Init(logging.Options{Path: cfg.LogFilePath(), Console: cfg.Debug}); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.LogEvent("maeplot %s: %s", appVersion, cmd.CommandPath())

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.yaml)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("baseDir", "", "directory holding one measurement folder per basis")
	rootCmd.PersistentFlags().String("figuresDir", "", "directory figures are written to")
	rootCmd.PersistentFlags().Int("dpi", 0, "PNG resolution (0 = default)")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	for _, name := range []string{"debug", "baseDir", "figuresDir", "dpi", "logFile"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	viper.SetEnvPrefix("MAEPLOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config file, if any, validates its contents
// and returns its path. A missing file leaves every setting at its default
// and yields an empty path.
func ensureConfigLoaded() (string, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	used := viper.ConfigFileUsed()
	return used, validateConfigFile(used)
}

// validateConfigFile checks the file's own settings, without flag or env
// overrides, against the configuration schema.
func validateConfigFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := appconfig.ValidateSettings(v.AllSettings()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
