package appconfig

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Base Dir:        %s\n", cfg.BaseDir)
	fmt.Fprintf(out, "  Figures Dir:     %s\n", cfg.FiguresDir)
	fmt.Fprintf(out, "  DPI:             %d\n", cfg.DPI)
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	fmt.Fprintln(out, "  Bases:")
	for _, b := range cfg.Bases {
		state := "inactive"
		if b.Active {
			state = "active"
		}
		fmt.Fprintf(out, "    - %-12s %-8s %s\n", b.Name, state, b.Label())
	}
}

// WriteYAML writes cfg as a YAML document.
func WriteYAML(out io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
