package sdfield

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/sdfield/internal/d2"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrNegativeSteps is reported by Domain.Validate when a step count is negative.
	ErrNegativeSteps = errors.New("negative domain step count")
	// ErrInvertedRange is reported by Domain.Validate when P0 exceeds P1 on a sampled axis.
	ErrInvertedRange = errors.New("inverted domain range")
)

// Domain is an axis-aligned sampling region together with its resolution.
// Only the x and y components are consulted when sampling 2D fields; the z
// components are kept so a Domain can describe a volume.
type Domain struct {
	P0, P1 r3.Vec
	Steps  V3i
}

// NewDomain2 returns a domain spanning the rectangle with corners (x0,y0) and
// (x1,y1) sampled nx by ny times.
func NewDomain2(x0, y0, x1, y1 float64, nx, ny int) Domain {
	return Domain{
		P0:    r3.Vec{X: x0, Y: y0},
		P1:    r3.Vec{X: x1, Y: y1},
		Steps: V3i{nx, ny, 0},
	}
}

// Validate reports whether the domain describes a well formed sampling region.
// Sampling never calls Validate: an inverted range is sampled from P0 towards P1
// and zero steps yield an empty matrix.
func (d Domain) Validate() error {
	if d.Steps[0] < 0 || d.Steps[1] < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeSteps, d.Steps.XY())
	}
	if d.P0.X > d.P1.X || d.P0.Y > d.P1.Y {
		return fmt.Errorf("%w: p0=(%g,%g) p1=(%g,%g)", ErrInvertedRange, d.P0.X, d.P0.Y, d.P1.X, d.P1.Y)
	}
	return nil
}

// Xs returns the x coordinates sampled by the domain.
func (d Domain) Xs() []float64 {
	return d2.Linspace(d.P0.X, d.P1.X, d.Steps[0])
}

// Ys returns the y coordinates sampled by the domain.
func (d Domain) Ys() []float64 {
	return d2.Linspace(d.P0.Y, d.P1.Y, d.Steps[1])
}

// Matrix holds sampled field values indexed [x][y].
type Matrix [][]float64

// newMatrix allocates an nx by ny matrix backed by a single slice.
func newMatrix(nx, ny int) Matrix {
	nx, ny = max(nx, 0), max(ny, 0)
	buf := make([]float64, nx*ny)
	m := make(Matrix, nx)
	for i := range m {
		m[i] = buf[i*ny : (i+1)*ny : (i+1)*ny]
	}
	return m
}

// Dims returns the number of x and y samples in the matrix.
func (m Matrix) Dims() (nx, ny int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// At returns the value sampled at x index i and y index j.
func (m Matrix) At(i, j int) float64 {
	return m[i][j]
}

// MinMax returns the smallest and largest values in the matrix ignoring NaNs.
// An empty matrix returns +Inf, -Inf.
func (m Matrix) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, col := range m {
		for _, v := range col {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}
