package sdfield

import (
	"math"

	"github.com/soypat/sdfield/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// 2D signed distance field algebra.

// Field is the interface to a 2d signed distance field.
//
// Implementations must be pure: the result depends only on p and
// on the field's own immutable parameters, and Evaluate must not panic
// for finite input. Fields are safe for concurrent use.
type Field interface {
	// Evaluate takes a point in 2D space as input and returns
	// the distance from the point to the field's boundary. The distance
	// is negative if the point is contained within the field's shape.
	Evaluate(p r2.Vec) float64
}

// FieldFunc adapts an ordinary distance function into a Field.
type FieldFunc func(p r2.Vec) float64

// Evaluate calls f(p).
func (f FieldFunc) Evaluate(p r2.Vec) float64 {
	return f(p)
}

// Mat2 is a row-major 2x2 matrix.
type Mat2 [2][2]float64

// Identity2 returns the 2x2 identity matrix.
func Identity2() Mat2 {
	return Mat2{{1, 0}, {0, 1}}
}

// MulPosition returns M·p.
func (m Mat2) MulPosition(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: m[0][0]*p.X + m[0][1]*p.Y,
		Y: m[1][0]*p.X + m[1][1]*p.Y,
	}
}

// Translate SDF2 (distance preserving)

// translate2 moves a field by an offset.
type translate2 struct {
	sdf    Field
	offset r2.Vec
}

// Translate2D returns the field moved by offset.
func Translate2D(sdf Field, offset r2.Vec) Field {
	if sdf == nil {
		panic("nil sdf argument")
	}
	return &translate2{sdf: sdf, offset: offset}
}

// Evaluate returns the minimum distance to a translated field.
func (s *translate2) Evaluate(p r2.Vec) float64 {
	return s.sdf.Evaluate(r2.Sub(p, s.offset))
}

// rotate2 rotates the query point about an axis before evaluating the child.
type rotate2 struct {
	sdf Field
	rot r3.Rotation
}

// Rotate2D returns a field whose query points are rotated by alpha radians
// about axis before being evaluated by sdf. The point is embedded in 3D with
// z=0 and only the resulting x and y components are used, so only rotations
// about the z axis keep the field planar. Rotate2D panics if axis has zero length.
func Rotate2D(sdf Field, alpha float64, axis r3.Vec) Field {
	if sdf == nil {
		panic("nil sdf argument")
	}
	if r3.Norm(axis) == 0 {
		panic("zero length rotation axis")
	}
	return &rotate2{sdf: sdf, rot: r3.NewRotation(alpha, axis)}
}

// RotateZ2D is shorthand for rotating about the z axis.
func RotateZ2D(sdf Field, alpha float64) Field {
	return Rotate2D(sdf, alpha, r3.Vec{Z: 1})
}

// Evaluate returns the minimum distance to a rotated field.
func (s *rotate2) Evaluate(p r2.Vec) float64 {
	q := s.rot.Rotate(r3.Vec{X: p.X, Y: p.Y})
	return s.sdf.Evaluate(r2.Vec{X: q.X, Y: q.Y})
}

// Non-uniform scaling and linear maps (distance *not* preserved)

// scale2 multiplies the query point element-wise.
type scale2 struct {
	sdf    Field
	factor r2.Vec
}

// Scale2D returns a field evaluated at p scaled element-wise by factor.
// A factor greater than one shrinks the shape along that axis.
// Distance is *not* preserved unless the scaling is uniform with |factor| = 1.
func Scale2D(sdf Field, factor r2.Vec) Field {
	if sdf == nil {
		panic("nil sdf argument")
	}
	return &scale2{sdf: sdf, factor: factor}
}

// Evaluate returns the approximate distance to a scaled field.
func (s *scale2) Evaluate(p r2.Vec) float64 {
	return s.sdf.Evaluate(d2.MulElem(p, s.factor))
}

// matrix2 maps the query point with a 2x2 matrix.
type matrix2 struct {
	sdf Field
	m   Mat2
}

// Matrix2D returns a field evaluated at M·p.
// Distance is only preserved for orthogonal matrices.
func Matrix2D(sdf Field, m Mat2) Field {
	if sdf == nil {
		panic("nil sdf argument")
	}
	return &matrix2{sdf: sdf, m: m}
}

// Evaluate returns the approximate distance to a linearly mapped field.
func (s *matrix2) Evaluate(p r2.Vec) float64 {
	return s.sdf.Evaluate(s.m.MulPosition(p))
}

// union2 is a union of multiple fields.
type union2 struct {
	sdf []Field
}

// Union2D returns the union of multiple fields. The distance
// is the minimum of all the fields' distances.
func Union2D(sdf ...Field) Field {
	if len(sdf) <= 1 {
		panic("union requires at least 2 sdfs")
	}
	for _, x := range sdf {
		if x == nil {
			panic("nil argument found")
		}
	}
	return &union2{sdf: sdf}
}

// Evaluate returns the minimum distance to the field union.
func (s *union2) Evaluate(p r2.Vec) float64 {
	d := s.sdf[0].Evaluate(p)
	for _, x := range s.sdf[1:] {
		d = math.Min(d, x.Evaluate(p))
	}
	return d
}

// intersection2 is the intersection of multiple fields.
type intersection2 struct {
	sdf []Field
}

// Intersect2D returns the intersection of multiple fields. The distance
// is the maximum of all the fields' distances.
func Intersect2D(sdf ...Field) Field {
	if len(sdf) <= 1 {
		panic("intersection requires at least 2 sdfs")
	}
	for _, x := range sdf {
		if x == nil {
			panic("nil argument found")
		}
	}
	return &intersection2{sdf: sdf}
}

// Evaluate returns the minimum distance to the field intersection.
func (s *intersection2) Evaluate(p r2.Vec) float64 {
	d := s.sdf[0].Evaluate(p)
	for _, x := range s.sdf[1:] {
		d = math.Max(d, x.Evaluate(p))
	}
	return d
}

// diff2 is the difference of two fields.
type diff2 struct {
	s0 Field
	s1 Field
}

// Difference2D returns the difference of two fields, s0 - s1:
// points inside s0 and outside s1.
func Difference2D(s0, s1 Field) Field {
	if s0 == nil || s1 == nil {
		panic("nil sdf argument")
	}
	return &diff2{s0: s0, s1: s1}
}

// Evaluate returns the minimum distance to the difference of two fields.
func (s *diff2) Evaluate(p r2.Vec) float64 {
	return math.Max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

// not2 is the complement of a field.
type not2 struct {
	sdf Field
}

// Not2D returns the complement of a field: inside and outside swap.
func Not2D(sdf Field) Field {
	if sdf == nil {
		panic("nil sdf argument")
	}
	return &not2{sdf: sdf}
}

// Evaluate returns the negated distance of the wrapped field.
func (s *not2) Evaluate(p r2.Vec) float64 {
	return -s.sdf.Evaluate(p)
}

// smooth2 offsets the distance function of an existing field.
type smooth2 struct {
	sdf Field
	k   float64
}

// Smooth2D returns a field whose distance is that of sdf minus k.
// This dilates the shape by k (erodes for negative k) which rounds
// convex corners. It is a uniform offset, not a blend between shapes.
func Smooth2D(sdf Field, k float64) Field {
	if sdf == nil {
		panic("nil sdf argument")
	}
	return &smooth2{sdf: sdf, k: k}
}

// Evaluate returns the minimum distance to an offset field.
func (s *smooth2) Evaluate(p r2.Vec) float64 {
	return s.sdf.Evaluate(p) - s.k
}
