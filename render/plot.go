package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/soypat/sdfield"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultLevels are the contour levels drawn when PlotConfig.Levels is nil.
var DefaultLevels = []float64{-0.5, 0, 0.5}

var (
	errPlotSteps  = errors.New("plot needs at least 2 steps along x and y")
	errPlotLevels = errors.New("plot needs at least 2 distinct contour levels")
)

// Grid adapts a sampled matrix and the domain it was sampled over to
// plotter.GridXYZ.
type Grid struct {
	m      sdfield.Matrix
	xs, ys []float64
}

var _ plotter.GridXYZ = (*Grid)(nil)

// NewGrid returns the grid of matrix m sampled over d. m must have been
// sampled over d.
func NewGrid(m sdfield.Matrix, d sdfield.Domain) *Grid {
	return &Grid{m: m, xs: d.Xs(), ys: d.Ys()}
}

// Dims returns the number of x and y samples.
func (g *Grid) Dims() (c, r int) { return g.m.Dims() }

// Z returns the distance sampled at column c and row r.
func (g *Grid) Z(c, r int) float64 { return g.m[c][r] }

// X returns the x coordinate of column c.
func (g *Grid) X(c int) float64 { return g.xs[c] }

// Y returns the y coordinate of row r.
func (g *Grid) Y(r int) float64 { return g.ys[r] }

// PlotConfig configures Plot.
type PlotConfig struct {
	Title string
	// Levels are the distances at which contour lines are drawn.
	// Nil uses DefaultLevels. An empty non-nil slice draws no contours.
	Levels []float64
	// Palette colors the heat map. Nil uses a 255 color Moreland
	// blue to red diverging palette.
	Palette palette.Palette
	// LineColor colors contour lines. Nil draws black lines.
	LineColor color.Color
}

// Plot samples f over d and returns a heat map of the distance overlaid
// with contour lines. The domain must pass Validate and have at least two
// steps along x and y.
func Plot(f sdfield.Field, d sdfield.Domain, cfg PlotConfig) (*plot.Plot, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return PlotMatrix(sdfield.Sample(f, d), d, cfg)
}

// PlotMatrix is Plot for a matrix already sampled over d.
func PlotMatrix(m sdfield.Matrix, d sdfield.Domain, cfg PlotConfig) (*plot.Plot, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	nx, ny := m.Dims()
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", errPlotSteps, nx, ny)
	}
	if nx != d.Steps[0] || ny != d.Steps[1] {
		return nil, fmt.Errorf("matrix %dx%d does not match domain steps %v", nx, ny, d.Steps.XY())
	}
	levels := cfg.Levels
	if levels == nil {
		levels = DefaultLevels
	}
	if len(levels) > 0 && !distinct(levels) {
		return nil, errPlotLevels
	}
	pal := cfg.Palette
	if pal == nil {
		cm := moreland.SmoothBlueRed()
		cm.SetMin(0)
		cm.SetMax(1)
		pal = cm.Palette(255)
	}
	lineColor := cfg.LineColor
	if lineColor == nil {
		lineColor = color.Black
	}

	grid := NewGrid(m, d)
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	hm := plotter.NewHeatMap(grid, pal)
	if hm.Min == hm.Max {
		// Constant fields would divide the palette range by zero.
		hm.Max = hm.Min + 1
	}
	p.Add(hm)
	if len(levels) > 0 {
		p.Add(plotter.NewContour(grid, levels, colors{lineColor}))
	}
	return p, nil
}

// WritePNG draws p onto a width by height canvas and writes it to w as PNG.
func WritePNG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	c := vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	p.Draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}

// colors is a fixed palette.
type colors []color.Color

func (c colors) Colors() []color.Color { return c }

func distinct(levels []float64) bool {
	for _, l := range levels[1:] {
		if l != levels[0] {
			return true
		}
	}
	return false
}
