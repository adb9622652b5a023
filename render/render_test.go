package render

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/soypat/sdfield"
	"github.com/soypat/sdfield/form2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/cmpimg"
	"gonum.org/v1/plot/vg"
)

func discDomain() sdfield.Domain {
	return sdfield.NewDomain2(-10, -10, 10, 10, 100, 50)
}

func TestTextShape(t *testing.T) {
	txt := Text(form2.Circle(5), discDomain(), FillInside)
	if !strings.HasSuffix(txt, "\n") {
		t.Fatal("text must end in a newline")
	}
	lines := strings.Split(strings.TrimSuffix(txt, "\n"), "\n")
	if len(lines) != 50 {
		t.Fatalf("got %d lines, want 50", len(lines))
	}
	for j, line := range lines {
		if len(line) != 100 {
			t.Fatalf("line %d has %d characters, want 100", j, len(line))
		}
	}
	if strings.Contains(lines[0], "#") || strings.Contains(lines[49], "#") {
		t.Error("first and last lines lie outside the disc")
	}
	if !strings.Contains(lines[24], "#") || !strings.Contains(lines[25], "#") {
		t.Error("middle lines must cross the disc")
	}
}

func TestTextDiscSymmetric(t *testing.T) {
	txt := Text(form2.Circle(5), discDomain(), FillInside)
	lines := strings.Split(strings.TrimSuffix(txt, "\n"), "\n")
	ny := len(lines)
	for j, line := range lines {
		first, last := strings.IndexByte(line, '#'), strings.LastIndexByte(line, '#')
		mirror := lines[ny-1-j]
		if (first < 0) != (strings.IndexByte(mirror, '#') < 0) {
			// rows sitting on the boundary may flip by one cell
			if abs(strings.Count(line, "#")-strings.Count(mirror, "#")) > 2 {
				t.Errorf("line %d and its vertical mirror disagree", j)
			}
			continue
		}
		if first < 0 {
			continue
		}
		// horizontal mirror of [first,last] is [nx-1-last, nx-1-first].
		if d := first - (len(line) - 1 - last); abs(d) > 1 {
			t.Errorf("line %d not horizontally symmetric: first=%d last=%d", j, first, last)
		}
		if d := strings.Count(line, "#") - strings.Count(mirror, "#"); abs(d) > 2 {
			t.Errorf("line %d and its vertical mirror differ by %d cells", j, d)
		}
	}
}

func TestTextFromMatrixEmpty(t *testing.T) {
	if got := TextFromMatrix(sdfield.Matrix{}, DefaultText); got != "" {
		t.Errorf("empty matrix rendered %q", got)
	}
	d := sdfield.NewDomain2(0, 0, 1, 1, 3, 0)
	if got := Text(form2.Circle(1), d, DefaultText); got != "" {
		t.Errorf("zero y steps rendered %q", got)
	}
}

func TestTextMappers(t *testing.T) {
	for _, test := range []struct {
		v           float64
		def, inside rune
	}{
		{0, '*', ' '},
		{-0.25, '-', '#'},
		{0.25, '+', ' '},
		{-0.5, ' ', '#'},
		{0.5, ' ', ' '},
		{-3, ' ', '#'},
		{3, ' ', ' '},
		{math.NaN(), ' ', ' '},
	} {
		if got := DefaultText(test.v); got != test.def {
			t.Errorf("DefaultText(%g)=%q, want %q", test.v, got, test.def)
		}
		if got := FillInside(test.v); got != test.inside {
			t.Errorf("FillInside(%g)=%q, want %q", test.v, got, test.inside)
		}
	}
}

func TestColorMappers(t *testing.T) {
	gray := func(g uint8) color.RGBA { return color.RGBA{R: g, G: g, B: g, A: 255} }
	for _, test := range []struct {
		name string
		got  color.RGBA
		want color.RGBA
	}{
		{"gray boundary", Grayscale(0), gray(128)},
		{"gray low end", Grayscale(-0.5), gray(0)},
		{"gray floor", Grayscale(0.49), gray(253)},
		{"gray saturate high", Grayscale(10), gray(255)},
		{"gray saturate low", Grayscale(-3), gray(0)},
		{"gray nan", Grayscale(math.NaN()), gray(0)},
		{"redblue boundary", RedBlueRepeating(0), color.RGBA{B: 255, A: 255}},
		{"redblue inside half", RedBlueRepeating(-0.5), color.RGBA{R: 192, A: 255}},
		{"redblue outside half", RedBlueRepeating(0.5), color.RGBA{B: 192, A: 255}},
		{"redblue repeats", RedBlueRepeating(1.25), color.RGBA{B: 224, A: 255}},
		{"redblue inside repeats", RedBlueRepeating(-1), color.RGBA{R: 255, A: 255}},
		{"mask inside", Mask(-1), color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"mask boundary", Mask(0), color.RGBA{A: 255}},
		{"twotone inside", TwoTone("#ff0000", "00ff00")(-1), color.RGBA{R: 255, A: 255}},
		{"twotone outside", TwoTone("#ff0000", "00ff00")(1), color.RGBA{G: 255, A: 255}},
	} {
		if test.got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, test.got, test.want)
		}
	}
}

func TestImagePixels(t *testing.T) {
	s := sdfield.Translate2D(form2.Rectangle(4, 2), r2.Vec{X: 5})
	d := sdfield.NewDomain2(-10, -10, 10, 10, 21, 11)
	img := Image(s, d, Grayscale)
	if b := img.Bounds(); b.Dx() != 21 || b.Dy() != 11 {
		t.Fatalf("image bounds %v, want 21x11", b)
	}
	m := sdfield.Sample(s, d)
	for x := 0; x < 21; x++ {
		for y := 0; y < 11; y++ {
			if got, want := img.RGBAAt(x, y), Grayscale(m[x][y]); got != want {
				t.Fatalf("pixel (%d,%d)=%v, want %v", x, y, got, want)
			}
		}
	}
}

func TestImageConcurrentEqual(t *testing.T) {
	s := sdfield.Smooth2D(sdfield.Intersect2D(
		sdfield.Translate2D(form2.Circle(5), r2.Vec{X: 2.5, Y: -5}),
		form2.Rectangle(10, 5),
	), 3)
	d := sdfield.NewDomain2(-10, -10, 10, 10, 128, 128)
	m, err := sdfield.SampleConcurrent(context.Background(), s, d, 4)
	if err != nil {
		t.Fatal(err)
	}
	var seq, conc bytes.Buffer
	if err := png.Encode(&seq, Image(s, d, RedBlueRepeating)); err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(&conc, ImageFromMatrix(m, RedBlueRepeating)); err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.EqualApprox("png", seq.Bytes(), conc.Bytes(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("concurrently sampled image differs from sequential image")
	}
}

func TestImageSupersampled(t *testing.T) {
	d := sdfield.NewDomain2(-10, -10, 10, 10, 64, 48)
	img := ImageSupersampled(form2.Circle(5), d, Mask, 3)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("image bounds %v, want 64x48", b)
	}
	if c := img.RGBAAt(32, 24); c.R < 250 {
		t.Errorf("center pixel %v should be inside the disc", c)
	}
	if c := img.RGBAAt(0, 0); c.R > 5 {
		t.Errorf("corner pixel %v should be outside the disc", c)
	}
	// Edge pixels blend inside and outside.
	var blended bool
	for x := 0; x < 64 && !blended; x++ {
		c := img.RGBAAt(x, 24).R
		blended = c > 5 && c < 250
	}
	if !blended {
		t.Error("supersampled edge has no intermediate values")
	}
	if b := ImageSupersampled(form2.Circle(5), sdfield.NewDomain2(0, 0, 1, 1, 0, 4), Mask, 4).Bounds(); !b.Empty() {
		t.Errorf("zero width domain returned bounds %v", b)
	}
	if plain, ss := Image(form2.Circle(5), d, Mask), ImageSupersampled(form2.Circle(5), d, Mask, 1); !bytes.Equal(plain.Pix, ss.Pix) {
		t.Error("factor 1 must match Image")
	}
}

func TestPlotPNG(t *testing.T) {
	p, err := Plot(form2.Circle(5), sdfield.NewDomain2(-10, -10, 10, 10, 40, 40), PlotConfig{Title: "circle"})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, p, 4*vg.Inch, 4*vg.Inch); err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width <= 0 || cfg.Width != cfg.Height {
		t.Errorf("unexpected png size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPlotErrors(t *testing.T) {
	c := form2.Circle(1)
	if _, err := Plot(c, sdfield.NewDomain2(-1, -1, 1, 1, 1, 10), PlotConfig{}); !errors.Is(err, errPlotSteps) {
		t.Errorf("single column: got %v", err)
	}
	if _, err := Plot(c, sdfield.NewDomain2(1, -1, -1, 1, 10, 10), PlotConfig{}); !errors.Is(err, sdfield.ErrInvertedRange) {
		t.Errorf("inverted range: got %v", err)
	}
	if _, err := Plot(c, sdfield.NewDomain2(-1, -1, 1, 1, 10, 10), PlotConfig{Levels: []float64{0}}); !errors.Is(err, errPlotLevels) {
		t.Errorf("single level: got %v", err)
	}
	if _, err := Plot(c, sdfield.NewDomain2(-1, -1, 1, 1, 10, 10), PlotConfig{Levels: []float64{}}); err != nil {
		t.Errorf("no contours: %v", err)
	}
	if _, err := Plot(sdfield.FieldFunc(func(r2.Vec) float64 { return 1 }), sdfield.NewDomain2(-1, -1, 1, 1, 10, 10), PlotConfig{}); err != nil {
		t.Errorf("constant field: %v", err)
	}
}

func TestGrid(t *testing.T) {
	d := sdfield.NewDomain2(-1, 0, 1, 4, 3, 5)
	m := sdfield.Sample(form2.Plane(), d)
	g := NewGrid(m, d)
	if c, r := g.Dims(); c != 3 || r != 5 {
		t.Fatalf("Dims()=(%d,%d)", c, r)
	}
	if g.X(0) != -1 || g.X(2) != 1 || g.Y(4) != 4 {
		t.Errorf("grid coordinates wrong: x0=%g x2=%g y4=%g", g.X(0), g.X(2), g.Y(4))
	}
	if g.Z(1, 3) != 3 {
		t.Errorf("Z(1,3)=%g, want 3", g.Z(1, 3))
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
