// internal/passes/pass.go
// Package passes turns measurement files into comparison figures. A Pass
// describes one figure family; Runner executes any Pass for any basis.
package passes

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/mwiater/maeplot/internal/appconfig"
	"github.com/mwiater/maeplot/internal/catalog"
	"github.com/mwiater/maeplot/internal/figures"
	"github.com/mwiater/maeplot/internal/metrics"
)

// Pass names accepted on the command line.
const (
	NameFilters = "filters"
	NameModels  = "models"
	NameBest    = "best"
)

// Source is one labelled category that contributes rows to a figure.
// Values may be preloaded; otherwise they are read from Path.
type Source struct {
	Category catalog.Category
	Label    string
	Path     string
	Values   []float64
}

// Selection is the ordered set of sources a pass draws for one basis.
// A non-empty SkipReason means the figure must not be drawn.
type Selection struct {
	Sources    []Source
	Best       string
	SkipReason string
}

// Pass parameterizes the locate, aggregate, render sequence.
type Pass struct {
	Name       string
	Heading    func(label string) string
	Drawing    string
	Title      func(label string) string
	XLabel     string
	Width      vg.Length
	Height     vg.Length
	Palette    figures.Palette
	Format     metrics.Formatter
	Anchor     figures.Anchor
	Hue        bool
	OutputName func(key string) string
	Select     func(r *Runner, b appconfig.Basis) (Selection, error)
}

// FilterPass compares the four Garnoldi filters of one basis.
func FilterPass() Pass {
	return Pass{
		Name: NameFilters,
		Heading: func(label string) string {
			return fmt.Sprintf("[BASIS: %s] Loading Garnoldi filter data...", label)
		},
		Drawing: "Drawing Garnoldi filter boxplot...",
		Title: func(label string) string {
			return fmt.Sprintf("Garnoldi – MAE Distribution Across Filters (%s)", label)
		},
		XLabel:  "Filter",
		Width:   12 * vg.Inch,
		Height:  6 * vg.Inch,
		Palette: figures.Set2,
		Format:  metrics.FormatFixed,
		Anchor:  figures.AnchorAbove,
		Hue:     true,
		OutputName: func(key string) string {
			return "garnoldi_filter_boxplot_" + key
		},
		Select: func(r *Runner, b appconfig.Basis) (Selection, error) {
			return Selection{Sources: r.resolve(b, filterCategories(), bareLabel)}, nil
		},
	}
}

// ModelPass compares every Garnoldi filter with the baseline models.
func ModelPass() Pass {
	return Pass{
		Name: NameModels,
		Heading: func(label string) string {
			return fmt.Sprintf("[BASIS: %s] Comparing all models...", label)
		},
		Drawing: "Drawing full model comparison boxplot...",
		Title: func(label string) string {
			return fmt.Sprintf("Model Comparison – MAE Distribution (%s)", label)
		},
		XLabel:  "Model",
		Width:   14 * vg.Inch,
		Height:  6 * vg.Inch,
		Palette: figures.Pastel,
		Format:  metrics.FormatCompact,
		Anchor:  figures.AnchorBelow,
		OutputName: func(key string) string {
			return "all_models_comparison_" + key + "_cleaned"
		},
		Select: func(r *Runner, b appconfig.Basis) (Selection, error) {
			sources := r.resolve(b, filterCategories(), modelLabel)
			sources = append(sources, r.resolve(b, modelCategories(), modelLabel)...)
			return Selection{Sources: sources}, nil
		},
	}
}

// BestFilterPass compares the filter with the lowest mean MAE against the
// baseline models.
func BestFilterPass() Pass {
	return Pass{
		Name: NameBest,
		Heading: func(label string) string {
			return fmt.Sprintf("[BASIS: %s] Selecting best Garnoldi filter...", label)
		},
		Drawing: "Drawing best Garnoldi filter vs models boxplot...",
		Title: func(label string) string {
			return fmt.Sprintf("Best Garnoldi Filter vs Other Models (%s)", label)
		},
		XLabel:  "Model",
		Width:   12 * vg.Inch,
		Height:  6 * vg.Inch,
		Palette: figures.Set1,
		Format:  metrics.FormatFixed,
		Anchor:  figures.AnchorAbove,
		OutputName: func(key string) string {
			return "best_garnoldi_vs_models_" + key
		},
		Select: selectBest,
	}
}

func selectBest(r *Runner, b appconfig.Basis) (Selection, error) {
	candidates := r.resolve(b, filterCategories(), modelLabel)

	means := make([]metrics.FilterMean, 0, len(candidates))
	loaded := make(map[catalog.Filter]Source, len(candidates))
	for _, src := range candidates {
		values, err := metrics.ReadColumn(src.Path, metrics.ValidationMAEColumn)
		if err != nil {
			return Selection{}, err
		}
		mean, ok := metrics.Mean(values)
		if !ok {
			continue
		}
		f, _ := src.Category.Filter()
		src.Values = values
		loaded[f] = src
		means = append(means, metrics.FilterMean{Filter: f, Mean: mean})
	}

	best, ok := metrics.BestFilter(means)
	if !ok {
		return Selection{SkipReason: "No valid Garnoldi files found."}, nil
	}
	r.printf(r.note, "Best Garnoldi filter: %s\n", strings.ToUpper(string(best)))

	sources := []Source{loaded[best]}
	sources = append(sources, r.resolve(b, modelCategories(), modelLabel)...)
	return Selection{Sources: sources, Best: string(best)}, nil
}

// All returns the three passes in drawing order.
func All() []Pass {
	return []Pass{FilterPass(), ModelPass(), BestFilterPass()}
}

// Lookup returns the passes with the given names, in drawing order. An empty
// list selects every pass.
func Lookup(names []string) ([]Pass, error) {
	if len(names) == 0 {
		return All(), nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		switch n {
		case NameFilters, NameModels, NameBest:
			want[n] = true
		case "":
		default:
			return nil, fmt.Errorf("unknown pass %q (expected %s, %s or %s)", n, NameFilters, NameModels, NameBest)
		}
	}
	var out []Pass
	for _, p := range All() {
		if want[p.Name] {
			out = append(out, p)
		}
	}
	return out, nil
}

func filterCategories() []catalog.Category {
	out := make([]catalog.Category, 0, 4)
	for _, f := range catalog.Filters() {
		out = append(out, catalog.FilterCategory(f))
	}
	return out
}

func modelCategories() []catalog.Category {
	out := make([]catalog.Category, 0, 3)
	for _, m := range catalog.Models() {
		out = append(out, catalog.ModelCategory(m))
	}
	return out
}

// bareLabel labels a category with its identifier ("g0", "APPNP").
func bareLabel(c catalog.Category) string { return c.ID() }

// modelLabel prefixes filters with the method name ("Garnoldi-g0").
func modelLabel(c catalog.Category) string {
	if c.Kind() == catalog.KindFilter {
		return "Garnoldi-" + c.ID()
	}
	return c.ID()
}
