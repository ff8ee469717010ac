package maeplot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/mwiater/maeplot/internal/catalog"
	"github.com/mwiater/maeplot/internal/logging"
)

func resetFlag(cmdFlag string) {
	flag := rootCmd.PersistentFlags().Lookup(cmdFlag)
	if flag == nil {
		return
	}
	_ = flag.Value.Set(flag.DefValue)
	flag.Changed = false
}

func resetSliceFlag(name string) {
	flag := renderCmd.Flags().Lookup(name)
	if flag == nil {
		return
	}
	if sv, ok := flag.Value.(interface{ Replace([]string) error }); ok {
		_ = sv.Replace([]string{})
	}
	flag.Changed = false
}

// useTempConfig writes body as the config file, points the root command at
// it and resets every flag a previous test may have set.
func useTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("logFile: %s\n%s", filepath.Join(dir, "maeplot.log"), body)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	for _, name := range []string{"debug", "baseDir", "figuresDir", "dpi", "logFile"} {
		resetFlag(name)
	}
	resetSliceFlag("pass")
	resetSliceFlag("basis")
	showConfigFormat = "text"
	currentConfig = nil

	prevCfgFile := cfgFile
	cfgFile = path
	viper.SetConfigFile(path)
	t.Cleanup(func() {
		cfgFile = prevCfgFile
		viper.SetConfigFile(prevCfgFile)
		rootCmd.SetArgs([]string{})
		_ = logging.Close()
	})
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	_, err := rootCmd.ExecuteC()
	return buf.String(), err
}

func writeMeasurements(t *testing.T, base, basis string) {
	t.Helper()
	locator := catalog.NewLocator(base)
	for i, c := range catalog.All() {
		path := locator.Path(basis, c)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		body := fmt.Sprintf("Validation MAE\n%d.5\n%d.25\n%d.75\n", i+1, i+1, i+2)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestPersistentPreRunEUsesFlagValues(t *testing.T) {
	configPath := useTempConfig(t, "baseDir: data\nfiguresDir: from-file\n")

	_ = rootCmd.PersistentFlags().Set("debug", "true")
	_ = rootCmd.PersistentFlags().Set("figuresDir", "from-flag")
	_ = rootCmd.PersistentFlags().Set("dpi", "72")

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}

	if currentConfig == nil || currentConfig.ConfigPath != configPath {
		t.Fatalf("expected config loaded with path %s, got %+v", configPath, currentConfig)
	}
	if !currentConfig.Debug {
		t.Fatalf("expected flag values to flow into config: %+v", currentConfig)
	}
	if currentConfig.BaseDir != "data" {
		t.Fatalf("expected baseDir from file, got %s", currentConfig.BaseDir)
	}
	if currentConfig.FiguresDir != "from-flag" {
		t.Fatalf("expected figuresDir from flag, got %s", currentConfig.FiguresDir)
	}
	if currentConfig.DPI != 72 {
		t.Fatalf("expected dpi 72, got %d", currentConfig.DPI)
	}
	if len(currentConfig.ActiveBases()) != 2 {
		t.Fatalf("expected default bases, got %+v", currentConfig.Bases)
	}
}

func TestPersistentPreRunEConfigBases(t *testing.T) {
	useTempConfig(t, `bases:
  - name: Jacobi
    active: true
  - name: SChebyshev
    active: true
    displayName: Scaled Chebyshev
`)
	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}
	active := currentConfig.ActiveBases()
	if len(active) != 2 || active[1].Label() != "Scaled Chebyshev" {
		t.Fatalf("unexpected bases: %+v", active)
	}
	if currentConfig.DPI != 300 {
		t.Fatalf("expected default dpi, got %d", currentConfig.DPI)
	}
}

func TestPersistentPreRunEInvalidConfig(t *testing.T) {
	useTempConfig(t, "dpi: high\n")
	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err == nil {
		t.Fatal("expected schema error for non-integer dpi")
	}

	useTempConfig(t, "bases:\n  - name: Legendre\n  - name: legendre\n")
	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err == nil || !strings.Contains(err.Error(), "duplicates") {
		t.Fatalf("expected duplicate basis error, got %v", err)
	}
}

func TestShowConfigCommandOutput(t *testing.T) {
	configPath := useTempConfig(t, "")

	out, err := execute(t, "--debug", "show", "config")
	if err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}
	if !strings.Contains(out, "Config file: "+configPath) {
		t.Fatalf("expected config file path in output, got %s", out)
	}
	if !strings.Contains(out, "Debug:           true") {
		t.Fatalf("expected debug in output, got %s", out)
	}
}

func TestShowConfigYAML(t *testing.T) {
	useTempConfig(t, "baseDir: measurements\n")

	out, err := execute(t, "show", "config", "--format", "yaml")
	if err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}
	if !strings.Contains(out, "baseDir: measurements") || !strings.Contains(out, "name: Chebyshev") {
		t.Fatalf("expected yaml config, got %s", out)
	}

	if _, err := execute(t, "show", "config", "--format", "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestListInputsCommand(t *testing.T) {
	base := t.TempDir()
	writeMeasurements(t, base, "Chebyshev")
	useTempConfig(t, fmt.Sprintf("baseDir: %s\n", base))

	out, err := execute(t, "list", "inputs")
	if err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}
	if !strings.Contains(out, "found") || !strings.Contains(out, "mae_values_garnoldi_chebyshev_g0.csv") {
		t.Fatalf("expected Chebyshev files listed as found, got %s", out)
	}
	if !strings.Contains(out, "missing") || !strings.Contains(out, "mae_values_appnp_legendre.csv") {
		t.Fatalf("expected Legendre files listed as missing, got %s", out)
	}
}

func TestRenderCommand(t *testing.T) {
	base := t.TempDir()
	figures := filepath.Join(t.TempDir(), "figures")
	writeMeasurements(t, base, "Legendre")
	useTempConfig(t, fmt.Sprintf("baseDir: %s\nfiguresDir: %s\ndpi: 20\n", base, figures))

	out, err := execute(t, "render", "--basis", "legendre", "--pass", "filters,best")
	if err != nil {
		t.Fatalf("ExecuteC error: %v\n%s", err, out)
	}
	for _, name := range []string{"garnoldi_filter_boxplot_legendre.png", "best_garnoldi_vs_models_legendre.png"} {
		if _, err := os.Stat(filepath.Join(figures, "legendre", name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(figures, "legendre", "all_models_comparison_legendre_cleaned.png")); !os.IsNotExist(err) {
		t.Fatalf("expected models pass to be skipped, stat err=%v", err)
	}
	if _, err := os.Stat(filepath.Join(figures, "chebyshev")); !os.IsNotExist(err) {
		t.Fatalf("expected no Chebyshev output, stat err=%v", err)
	}
	if !strings.Contains(out, "Summary") || !strings.Contains(out, "Best Garnoldi filter: G0") {
		t.Fatalf("expected summary and best filter, got %s", out)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	useTempConfig(t, "")

	if _, err := execute(t, "render", "--basis", "Jacobi"); err == nil || !strings.Contains(err.Error(), "not active") {
		t.Fatalf("expected inactive basis error, got %v", err)
	}

	resetSliceFlag("basis")
	if _, err := execute(t, "render", "--pass", "violin"); err == nil || !strings.Contains(err.Error(), "unknown pass") {
		t.Fatalf("expected unknown pass error, got %v", err)
	}
}
