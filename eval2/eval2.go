// Package eval2 evaluates 2D signed distance fields over batches of float32
// positions, the layout used when handing work to vectorized evaluators.
package eval2

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/sdfield"
	"gonum.org/v1/gonum/spatial/r2"
)

// SDF2 implements a 2D signed distance field in vectorized form.
type SDF2 interface {
	// Evaluate evaluates the signed distance field over pos positions.
	// dist and pos must be of same length. Resulting distances are stored
	// in dist.
	Evaluate(pos []ms2.Vec, dist []float32) error
}

var errLengthMismatch = errors.New("position and distance buffers of different length")

// CPU evaluates a float64 Field one position at a time.
// Non-finite distances are stored as is.
type CPU struct {
	Field sdfield.Field
}

// Evaluate implements SDF2.
func (c CPU) Evaluate(pos []ms2.Vec, dist []float32) error {
	if len(pos) != len(dist) {
		return fmt.Errorf("%w: %d positions, %d distances", errLengthMismatch, len(pos), len(dist))
	} else if c.Field == nil {
		return errors.New("nil field")
	}
	for i, p := range pos {
		dist[i] = float32(c.Field.Evaluate(r2.Vec{X: float64(p.X), Y: float64(p.Y)}))
	}
	return nil
}

// Func is a float32 distance function evaluated natively.
type Func func(p ms2.Vec) float32

// Evaluate implements SDF2.
func (f Func) Evaluate(pos []ms2.Vec, dist []float32) error {
	if len(pos) != len(dist) {
		return fmt.Errorf("%w: %d positions, %d distances", errLengthMismatch, len(pos), len(dist))
	}
	for i, p := range pos {
		dist[i] = f(p)
	}
	return nil
}

// Circle returns the float32 distance function of a circle centered at the origin.
func Circle(radius float32) Func {
	return func(p ms2.Vec) float32 {
		return math32.Hypot(p.X, p.Y) - radius
	}
}

// Meshgrid returns the grid positions of d in the order sdfield.Sample visits
// them: x major, y minor. Index i*Steps[1]+j holds the position of cell [i][j].
func Meshgrid(d sdfield.Domain) []ms2.Vec {
	xs, ys := d.Xs(), d.Ys()
	pos := make([]ms2.Vec, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			pos = append(pos, ms2.Vec{X: float32(x), Y: float32(y)})
		}
	}
	return pos
}

// Sample evaluates s over the grid of d in a single batch and returns the
// distances arranged as sdfield.Sample arranges them.
func Sample(s SDF2, d sdfield.Domain) (sdfield.Matrix, error) {
	pos := Meshgrid(d)
	dist := make([]float32, len(pos))
	if err := s.Evaluate(pos, dist); err != nil {
		return nil, err
	}
	nx, ny := len(d.Xs()), len(d.Ys())
	m := make(sdfield.Matrix, nx)
	buf := make([]float64, nx*ny)
	for i := range m {
		m[i] = buf[i*ny : (i+1)*ny]
		for j := range m[i] {
			m[i][j] = float64(dist[i*ny+j])
		}
	}
	return m, nil
}

// MaxRelDiff returns the largest difference between a and b relative to the
// magnitude of the reference value b, with magnitudes below one treated as one.
// It panics if the matrices have different dimensions.
func MaxRelDiff(a, b sdfield.Matrix) float32 {
	if len(a) != len(b) {
		panic("matrix dimension mismatch")
	}
	var worst float32
	for i := range a {
		if len(a[i]) != len(b[i]) {
			panic("matrix dimension mismatch")
		}
		for j := range a[i] {
			diff := math32.Abs(float32(a[i][j] - b[i][j]))
			scale := math32.Max(1, math32.Abs(float32(b[i][j])))
			worst = math32.Max(worst, diff/scale)
		}
	}
	return worst
}
