// internal/figures/boxplot.go
// Package figures draws grouped boxplots with mean annotations and encodes
// them as PNG images.
package figures

import (
	"errors"
	"fmt"
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/mwiater/maeplot/internal/util"
)

// DefaultDPI matches the resolution the figures have always been saved at.
const DefaultDPI = 300

// ErrEmptyFigure is returned when a figure has no box to draw.
var ErrEmptyFigure = errors.New("figure has no data")

// Anchor controls where an annotation sits relative to its point.
type Anchor int

const (
	// AnchorAbove places the text above the point (bottom-aligned).
	AnchorAbove Anchor = iota
	// AnchorBelow hangs the text below the point (top-aligned).
	AnchorBelow
)

// Group is the set of values drawn as one box.
type Group struct {
	Category string
	Hue      string
	Values   []float64
}

// Annotation is a text label placed in a category's column at height Y.
type Annotation struct {
	Category string
	Y        float64
	Text     string
	Anchor   Anchor
}

// Figure describes one boxplot image.
type Figure struct {
	Title       string
	XLabel      string
	YLabel      string
	Width       vg.Length
	Height      vg.Length
	Categories  []string
	Hues        []string
	Groups      []Group
	Annotations []Annotation
	Palette     Palette
	// Legend adds one legend entry per hue.
	Legend bool
}

// Build lays out the figure on a new plot.
func Build(fig Figure) (*plot.Plot, error) {
	if len(fig.Categories) == 0 || len(fig.Groups) == 0 {
		return nil, ErrEmptyFigure
	}

	p := plot.New()
	p.Title.Text = fig.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	p.NominalX(fig.Categories...)

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	grid.Vertical.Color = color.Gray{Y: 0xb0}
	grid.Horizontal.Color = color.Gray{Y: 0xb0}
	p.Add(grid)

	index := indexOf(fig.Categories)
	hues := fig.Hues
	if len(hues) == 0 {
		hues = []string{""}
	}
	hueIndex := indexOf(hues)
	boxWidth := fig.boxWidth(len(hues))

	legendDone := make(map[string]bool)
	for _, g := range fig.Groups {
		if len(g.Values) == 0 {
			continue
		}
		x, ok := index[g.Category]
		if !ok {
			return nil, fmt.Errorf("group category %q is not on the axis", g.Category)
		}
		h, ok := hueIndex[g.Hue]
		if !ok {
			return nil, fmt.Errorf("group hue %q is not declared", g.Hue)
		}

		box, err := plotter.NewBoxPlot(boxWidth, float64(x), plotter.Values(g.Values))
		if err != nil {
			return nil, fmt.Errorf("box for %s: %w", g.Category, err)
		}
		fill := fig.Palette.At(x)
		if len(fig.Hues) > 0 {
			fill = fig.Palette.At(h)
		}
		box.FillColor = fill
		box.Offset = (vg.Length(h) - vg.Length(len(hues)-1)/2) * boxWidth
		p.Add(box)

		if fig.Legend && g.Hue != "" && !legendDone[g.Hue] {
			p.Legend.Add(g.Hue, swatch{fill: fill})
			legendDone[g.Hue] = true
		}
	}
	p.Legend.Top = true

	if len(fig.Annotations) > 0 {
		labels, err := annotationLabels(fig.Annotations, index)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	return p, nil
}

// Render builds the figure and writes it as a PNG at path, replacing any
// existing file. Parent directories are created.
func Render(fig Figure, path string, dpi int) error {
	p, err := Build(fig)
	if err != nil {
		return err
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	canvas := vgimg.NewWith(vgimg.UseWH(fig.Width, fig.Height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(canvas))

	f, err := util.CreateFile(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("unable to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to close %s: %w", path, err)
	}
	return nil
}

func annotationLabels(anns []Annotation, index map[string]int) (*plotter.Labels, error) {
	xys := make(plotter.XYs, 0, len(anns))
	texts := make([]string, 0, len(anns))
	for _, a := range anns {
		x, ok := index[a.Category]
		if !ok {
			return nil, fmt.Errorf("annotation category %q is not on the axis", a.Category)
		}
		xys = append(xys, plotter.XY{X: float64(x), Y: a.Y})
		texts = append(texts, a.Text)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("annotations: %w", err)
	}
	for i, a := range anns {
		style := labels.TextStyle[i]
		style.XAlign = draw.XCenter
		style.YAlign = draw.YBottom
		if a.Anchor == AnchorBelow {
			style.YAlign = draw.YTop
		}
		style.Font.Size = vg.Points(10)
		style.Font.Weight = xfont.WeightBold
		labels.TextStyle[i] = style
	}
	return labels, nil
}

// boxWidth splits a category slot between the hue levels.
func (fig Figure) boxWidth(hues int) vg.Length {
	n := len(fig.Categories)
	if n == 0 || hues == 0 {
		return vg.Points(20)
	}
	slot := fig.Width * 0.8 / vg.Length(n)
	return slot * 0.6 / vg.Length(hues)
}

func indexOf(names []string) map[string]int {
	out := make(map[string]int, len(names))
	for i, n := range names {
		out[n] = i
	}
	return out
}

// swatch is a filled legend thumbnail.
type swatch struct {
	fill color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.fill, c.ClipPolygonY(pts))
}
