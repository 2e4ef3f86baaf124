// Package render draws field arrays produced by the core as PNG figures:
// heatmaps over the sample grid and line profiles along the cylinder
// surface. It is a thin consumer of the numeric results and adds no
// algorithmic behavior of its own.
package render

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/notargets/flowvis/utils"
)

var (
	colorPositive = color.RGBA{G: 160, A: 255}
	colorNegative = color.RGBA{R: 200, A: 255}
	colorStag     = color.RGBA{B: 200, A: 255}
	colorBody     = color.RGBA{A: 255}
)

// fieldGrid adapts a flattened y-major field to plotter.GridXYZ.
type fieldGrid struct {
	x, y []float64
	z    *mat.Dense
}

func newFieldGrid(x, y, z []float64) fieldGrid {
	return fieldGrid{x: x, y: y, z: mat.NewDense(len(y), len(x), z)}
}

func (g fieldGrid) Dims() (c, r int)   { return len(g.x), len(g.y) }
func (g fieldGrid) X(c int) float64    { return g.x[c] }
func (g fieldGrid) Y(r int) float64    { return g.y[r] }
func (g fieldGrid) Z(c, r int) float64 { return g.z.At(r, c) }

// heatmap renders one scalar field over the grid with the color range
// clamped to the 5th..95th NaN-aware percentiles, as the reference
// implementation does to keep singular spikes from washing out the map.
func heatmap(title string, x, y, z []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	lo := utils.Percentile(z, 5)
	hi := utils.Percentile(z, 95)
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		lo, hi = utils.MinMax(z)
	}
	if math.IsNaN(lo) || lo == hi {
		return nil, fmt.Errorf("field %q has no drawable range", title)
	}

	hm := plotter.NewHeatMap(newFieldGrid(x, y, z), palette.Rainbow(255, palette.Blue, palette.Red, 1, 1, 1))
	hm.Min, hm.Max = lo, hi
	hm.NaN = color.Transparent
	p.Add(hm)
	return p, nil
}

func savePlot(p *plot.Plot, dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	if err := p.Save(7*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// marker builds a scatter glyph at a single point.
func marker(x, y float64, c color.Color, radius vg.Length) (*plotter.Scatter, error) {
	sc, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = c
	sc.GlyphStyle.Radius = radius
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	return sc, nil
}

// line builds a finite-valued polyline from parallel slices, dropping
// NaN/Inf samples.
func line(xs, ys []float64, c color.Color, dashed bool) (*plotter.Line, error) {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.Color = c
	l.Width = vg.Points(1.25)
	if dashed {
		l.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	}
	return l, nil
}
