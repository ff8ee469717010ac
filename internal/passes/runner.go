package passes

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/mwiater/maeplot/internal/appconfig"
	"github.com/mwiater/maeplot/internal/catalog"
	"github.com/mwiater/maeplot/internal/figures"
	"github.com/mwiater/maeplot/internal/logging"
	"github.com/mwiater/maeplot/internal/metrics"
)

// Result is the outcome of one pass for one basis.
type Result struct {
	Basis     string            `json:"basis"`
	Pass      string            `json:"pass"`
	Output    string            `json:"output,omitempty"`
	Skipped   bool              `json:"skipped"`
	Reason    string            `json:"reason,omitempty"`
	Best      string            `json:"best,omitempty"`
	Rows      int               `json:"rows"`
	Summaries []metrics.Summary `json:"summaries,omitempty"`
	Table     metrics.Table     `json:"-"`
}

// Runner executes passes against one measurement tree.
type Runner struct {
	Locator    catalog.Locator
	FiguresDir string
	DPI        int

	out  io.Writer
	log  *zap.Logger
	head *color.Color
	ok   *color.Color
	warn *color.Color
	note *color.Color
	fail *color.Color
}

// NewRunner builds a Runner from cfg that prints progress to out.
func NewRunner(cfg appconfig.Config, out io.Writer) *Runner {
	if out == nil {
		out = io.Discard
	}
	return &Runner{
		Locator:    catalog.NewLocator(cfg.BaseDir),
		FiguresDir: cfg.FiguresDir,
		DPI:        cfg.DPI,
		out:        out,
		log:        logging.Logger(),
		head:       color.New(color.FgCyan, color.Bold),
		ok:         color.New(color.FgGreen),
		warn:       color.New(color.FgYellow),
		note:       color.New(color.FgMagenta, color.Bold),
		fail:       color.New(color.FgRed),
	}
}

// OutputPath returns where pass p writes its figure for basis b.
func (r *Runner) OutputPath(b appconfig.Basis, p Pass) string {
	key := b.Key()
	return filepath.Join(r.FiguresDir, key, p.OutputName(key)+".png")
}

// RunAll runs every pass for every basis in order. A failing pass does not
// stop the others; all failures are returned joined.
func (r *Runner) RunAll(bases []appconfig.Basis, passes []Pass) ([]Result, error) {
	var (
		results []Result
		errs    []error
	)
	for _, b := range bases {
		for _, p := range passes {
			res, err := r.Run(b, p)
			if err != nil {
				r.printf(r.fail, "Failed: %v\n", err)
				r.log.Error("pass failed", zap.String("basis", b.Name), zap.String("pass", p.Name), zap.Error(err))
				errs = append(errs, err)
				continue
			}
			results = append(results, res)
		}
	}
	return results, errors.Join(errs...)
}

// Run executes pass p for basis b: it selects and reads the sources, tags
// their rows, computes the category means and renders the figure.
func (r *Runner) Run(b appconfig.Basis, p Pass) (Result, error) {
	label := b.Label()
	res := Result{Basis: b.Name, Pass: p.Name}

	fmt.Fprintln(r.out)
	r.printf(r.head, "%s\n", p.Heading(label))

	sel, err := p.Select(r, b)
	if err != nil {
		return res, fmt.Errorf("basis %s, pass %s: %w", b.Name, p.Name, err)
	}
	res.Best = sel.Best
	if sel.SkipReason != "" {
		return r.skip(res, sel.SkipReason), nil
	}

	table, err := aggregate(sel.Sources, hueFor(p, label))
	if err != nil {
		return res, fmt.Errorf("basis %s, pass %s: %w", b.Name, p.Name, err)
	}
	res.Table = table
	res.Rows = table.Len()
	if table.Empty() {
		return r.skip(res, "No measurement files found."), nil
	}
	res.Summaries = table.Summaries()

	fig := buildFigure(p, label, table, res.Summaries)
	path := r.OutputPath(b, p)
	fmt.Fprintln(r.out, p.Drawing)
	if err := figures.Render(fig, path, r.DPI); err != nil {
		return res, fmt.Errorf("basis %s, pass %s: %w", b.Name, p.Name, err)
	}
	res.Output = path
	r.printf(r.ok, "Saved: %s\n", path)
	r.log.Info("figure saved",
		zap.String("basis", b.Name),
		zap.String("pass", p.Name),
		zap.String("path", path),
		zap.Int("rows", res.Rows),
		zap.Any("counts", table.CountByCategory()),
	)
	return res, nil
}

func (r *Runner) skip(res Result, reason string) Result {
	res.Skipped = true
	res.Reason = reason
	r.printf(r.warn, "%s\n", reason)
	r.log.Info("figure skipped", zap.String("basis", res.Basis), zap.String("pass", res.Pass), zap.String("reason", reason))
	return res
}

// resolve locates the file of every category, printing what was found.
// Missing categories are left out.
func (r *Runner) resolve(b appconfig.Basis, cats []catalog.Category, label func(catalog.Category) string) []Source {
	var out []Source
	for _, c := range cats {
		name := c.FileName(b.Name)
		path, ok := r.Locator.Resolve(b.Name, c)
		if !ok {
			r.printf(r.warn, "Missing file: %s\n", name)
			r.log.Info("measurement file missing", zap.String("basis", b.Name), zap.String("path", path))
			continue
		}
		r.printf(r.ok, "   ✔ Loaded: %s\n", name)
		out = append(out, Source{Category: c, Label: label(c), Path: path})
	}
	return out
}

func (r *Runner) printf(c *color.Color, format string, args ...any) {
	if c == nil {
		fmt.Fprintf(r.out, format, args...)
		return
	}
	c.Fprintf(r.out, format, args...)
}

func aggregate(sources []Source, hue string) (metrics.Table, error) {
	var table metrics.Table
	for _, src := range sources {
		values := src.Values
		if values == nil {
			var err error
			values, err = metrics.ReadColumn(src.Path, metrics.ValidationMAEColumn)
			if err != nil {
				return metrics.Table{}, err
			}
		}
		table.AppendValues(src.Label, hue, values)
	}
	return table, nil
}

func hueFor(p Pass, label string) string {
	if p.Hue {
		return label
	}
	return ""
}

func buildFigure(p Pass, label string, table metrics.Table, summaries []metrics.Summary) figures.Figure {
	fig := figures.Figure{
		Title:      p.Title(label),
		XLabel:     p.XLabel,
		YLabel:     metrics.ValidationMAEColumn,
		Width:      p.Width,
		Height:     p.Height,
		Categories: table.Categories(),
		Palette:    p.Palette,
		Legend:     p.Hue,
	}
	if p.Hue {
		fig.Hues = table.Hues()
	}

	for _, c := range fig.Categories {
		if !p.Hue {
			fig.Groups = append(fig.Groups, figures.Group{Category: c, Values: table.Values(c)})
			continue
		}
		for _, h := range fig.Hues {
			if vals := table.GroupValues(c, h); len(vals) > 0 {
				fig.Groups = append(fig.Groups, figures.Group{Category: c, Hue: h, Values: vals})
			}
		}
	}

	for _, s := range summaries {
		fig.Annotations = append(fig.Annotations, annotate(p, s))
	}
	return fig
}

// annotate places the mean label either at the mean or just under the box.
func annotate(p Pass, s metrics.Summary) figures.Annotation {
	a := figures.Annotation{Category: s.Category, Y: s.Mean, Text: p.Format(s.Mean), Anchor: p.Anchor}
	if p.Anchor == figures.AnchorBelow {
		a.Y = s.Min - s.Mean*0.05
	}
	return a
}
