package form2

import (
	"math"

	"github.com/soypat/sdfield"
	"github.com/soypat/sdfield/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Geometry parameters are not validated. A zero size degenerates to point or
// line distances and a negative size inverts or shifts the field.

// 2D Circle

// circle is the 2d signed distance object for a circle.
type circle struct {
	radius float64
}

// Circle returns the field of a circle centered at the origin.
func Circle(radius float64) sdfield.Field {
	return &circle{radius: radius}
}

// Evaluate returns the minimum distance to a 2d circle.
func (s *circle) Evaluate(p r2.Vec) float64 {
	return r2.Norm(p) - s.radius
}

// 2D Rectangle

// rectangle is the 2d signed distance object for an axis aligned rectangle.
type rectangle struct {
	half r2.Vec
}

// Rectangle returns the field of a w by h rectangle centered at the origin.
func Rectangle(w, h float64) sdfield.Field {
	return &rectangle{half: r2.Vec{X: 0.5 * w, Y: 0.5 * h}}
}

// Evaluate returns the distance to a 2d rectangle. The sign is exact
// everywhere but outside the rectangle the magnitude exceeds the Euclidean
// distance by the largest axis overshoot.
func (s *rectangle) Evaluate(p r2.Vec) float64 {
	d := r2.Sub(d2.AbsElem(p), s.half)
	outside := r2.Norm(d2.MaxElem(d, r2.Vec{}))
	return outside + d2.Max(d)
}

// 2D Straight (infinite line)

type straight struct{}

// Straight returns the field of the infinite line through the origin along the x axis.
func Straight() sdfield.Field {
	return straight{}
}

// Evaluate returns the distance to the x axis.
func (straight) Evaluate(p r2.Vec) float64 {
	return math.Abs(p.Y)
}

// 2D Line segment

// line is the 2d signed distance object for a line segment.
type line struct {
	l float64 // half length
}

// Line returns a line segment from (-l/2,0) to (l/2,0).
func Line(l float64) sdfield.Field {
	return &line{l: l / 2}
}

// Evaluate returns the minimum distance to a 2d line segment.
func (s *line) Evaluate(p r2.Vec) float64 {
	switch {
	case p.X < -s.l:
		return r2.Norm(r2.Sub(p, r2.Vec{X: -s.l}))
	case p.X > s.l:
		return r2.Norm(r2.Sub(p, r2.Vec{X: s.l}))
	}
	return math.Abs(p.Y)
}

// 2D Plane

type plane struct{}

// Plane returns the half-plane y <= 0. The boundary is the x axis.
func Plane() sdfield.Field {
	return plane{}
}

// Evaluate returns the signed distance to the x axis, negative below it.
func (plane) Evaluate(p r2.Vec) float64 {
	return p.Y
}
