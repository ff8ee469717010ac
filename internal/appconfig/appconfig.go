// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"fmt"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.yaml"
	// DefaultBaseDir is where the per-basis measurement folders live.
	DefaultBaseDir = "mae_files"
	// DefaultFiguresDir is where rendered figures are written.
	DefaultFiguresDir = "figures"
	// DefaultDPI is the PNG resolution of rendered figures.
	DefaultDPI = 300
	// defaultLogFile is the run log used when the config omits one.
	defaultLogFile = "maeplot.log"
)

// Config represents the top-level application configuration.
type Config struct {
	BaseDir    string  `json:"baseDir" yaml:"baseDir"`
	FiguresDir string  `json:"figuresDir" yaml:"figuresDir"`
	DPI        int     `json:"dpi" yaml:"dpi"`
	LogFile    string  `json:"logFile,omitempty" yaml:"logFile,omitempty"`
	Debug      bool    `json:"debug" yaml:"debug"`
	Bases      []Basis `json:"bases" yaml:"bases"`
	ConfigPath string  `json:"-" yaml:"-"`
}

// Basis describes one basis function family.
type Basis struct {
	Name        string `json:"name" yaml:"name"`
	Active      bool   `json:"active" yaml:"active"`
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
}

// Label returns the display label, falling back to the name.
func (b Basis) Label() string {
	if l := strings.TrimSpace(b.DisplayName); l != "" {
		return l
	}
	return b.Name
}

// Key returns the lower-cased name used for folders and file names.
func (b Basis) Key() string {
	return strings.ToLower(strings.TrimSpace(b.Name))
}

// DefaultBases returns the basis table the figures have always been built
// from: only Chebyshev and Legendre are active.
func DefaultBases() []Basis {
	return []Basis{
		{Name: "Monomial", Active: false, DisplayName: "Monomial"},
		{Name: "Chebyshev", Active: true, DisplayName: "Chebyshev"},
		{Name: "Legendre", Active: true, DisplayName: "Legendre"},
		{Name: "Jacobi", Active: false, DisplayName: "Jacobi"},
		{Name: "PPR", Active: false, DisplayName: "PPR"},
		{Name: "SChebyshev", Active: false, DisplayName: "Scaled Chebyshev"},
	}
}

// Default returns a configuration with every default applied.
func Default() Config {
	return Config{}.WithDefaults()
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
// The bases slice is always copied so callers never share it.
func (c Config) WithDefaults() Config {
	out := c
	if strings.TrimSpace(out.BaseDir) == "" {
		out.BaseDir = DefaultBaseDir
	}
	if strings.TrimSpace(out.FiguresDir) == "" {
		out.FiguresDir = DefaultFiguresDir
	}
	if out.DPI <= 0 {
		out.DPI = DefaultDPI
	}
	if len(out.Bases) == 0 {
		out.Bases = DefaultBases()
	} else {
		out.Bases = append([]Basis(nil), c.Bases...)
	}
	return out
}

// Validate checks invariants the schema cannot express.
func (c Config) Validate() error {
	seen := make(map[string]string, len(c.Bases))
	for i, b := range c.Bases {
		key := b.Key()
		if key == "" {
			return fmt.Errorf("bases[%d]: name must not be empty", i)
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("bases[%d]: %q duplicates %q", i, b.Name, prev)
		}
		seen[key] = b.Name
	}
	return nil
}

// ActiveBases returns the active bases in declaration order.
func (c Config) ActiveBases() []Basis {
	var out []Basis
	for _, b := range c.Bases {
		if b.Active {
			out = append(out, b)
		}
	}
	return out
}

// SelectActive returns the active bases named in names, in declaration
// order. No names selects every active basis. Unknown or inactive names are
// an error.
func (c Config) SelectActive(names []string) ([]Basis, error) {
	if len(names) == 0 {
		return c.ActiveBases(), nil
	}
	byKey := make(map[string]Basis, len(c.Bases))
	for _, b := range c.Bases {
		byKey[b.Key()] = b
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		key := strings.ToLower(strings.TrimSpace(n))
		if key == "" {
			continue
		}
		b, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("unknown basis %q", n)
		}
		if !b.Active {
			return nil, fmt.Errorf("basis %q is not active", b.Name)
		}
		want[key] = true
	}
	var out []Basis
	for _, b := range c.Bases {
		if want[b.Key()] {
			out = append(out, b)
		}
	}
	return out, nil
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}
