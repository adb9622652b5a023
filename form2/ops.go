package form2

import (
	"github.com/soypat/sdfield"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// The functions below build the operators of package sdfield and return
// an error instead of panicking on invalid arguments such as nil fields.

// Translate returns s moved by offset.
func Translate(s sdfield.Field, offset r2.Vec) (f sdfield.Field, err error) {
	defer catch(&err)
	return sdfield.Translate2D(s, offset), err
}

// Rotate returns s with query points rotated by alpha radians about axis.
func Rotate(s sdfield.Field, alpha float64, axis r3.Vec) (f sdfield.Field, err error) {
	defer catch(&err)
	return sdfield.Rotate2D(s, alpha, axis), err
}

// Scale returns s with query points scaled element-wise by factor.
func Scale(s sdfield.Field, factor r2.Vec) (f sdfield.Field, err error) {
	defer catch(&err)
	return sdfield.Scale2D(s, factor), err
}

// Matrix returns s with query points mapped by m.
func Matrix(s sdfield.Field, m sdfield.Mat2) (f sdfield.Field, err error) {
	defer catch(&err)
	return sdfield.Matrix2D(s, m), err
}

// Union returns the union of two or more fields.
func Union(s ...sdfield.Field) (f sdfield.Field, err error) {
	defer catch(&err)
	return sdfield.Union2D(s...), err
}

// Intersection returns the intersection of two or more fields.
func Intersection(s ...sdfield.Field) (f sdfield.Field, err error) {
	defer catch(&err)
	return sdfield.Intersect2D(s...), err
}

// Difference returns a - b.
func Difference(a, b sdfield.Field) (f sdfield.Field, err error) {
	defer catch(&err)
	return sdfield.Difference2D(a, b), err
}

// Not returns the complement of s.
func Not(s sdfield.Field) (f sdfield.Field, err error) {
	defer catch(&err)
	return sdfield.Not2D(s), err
}

// Smooth returns s offset outwards by k.
func Smooth(s sdfield.Field, k float64) (f sdfield.Field, err error) {
	defer catch(&err)
	return sdfield.Smooth2D(s, k), err
}
