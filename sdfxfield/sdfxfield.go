// Package sdfxfield adapts fields between this module and the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfxfield

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/soypat/sdfield"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// fromSDFX wraps an sdf.SDF2 to implement sdfield.Field.
type fromSDFX struct {
	s sdf.SDF2
}

// FromSDFX returns a field evaluating s.
func FromSDFX(s sdf.SDF2) sdfield.Field {
	if s == nil {
		panic("nil sdf argument")
	}
	return &fromSDFX{s: s}
}

// Evaluate returns the distance reported by the wrapped sdfx shape.
func (f *fromSDFX) Evaluate(p r2.Vec) float64 {
	return f.s.Evaluate(v2.Vec{X: p.X, Y: p.Y})
}

// toSDFX wraps a field to implement sdf.SDF2. Fields carry no bounds so
// the box is supplied by the caller.
type toSDFX struct {
	f  sdfield.Field
	bb sdf.Box2
}

var _ sdf.SDF2 = (*toSDFX)(nil)

// ToSDFX returns an sdfx shape evaluating f whose bounding box is bb.
func ToSDFX(f sdfield.Field, bb sdf.Box2) sdf.SDF2 {
	if f == nil {
		panic("nil sdf argument")
	}
	return &toSDFX{f: f, bb: bb}
}

// Evaluate returns the field's distance at p.
func (s *toSDFX) Evaluate(p v2.Vec) float64 {
	return s.f.Evaluate(r2.Vec{X: p.X, Y: p.Y})
}

// BoundingBox returns the box given to ToSDFX.
func (s *toSDFX) BoundingBox() sdf.Box2 {
	return s.bb
}

// DomainBox returns the x-y rectangle spanned by d.
func DomainBox(d sdfield.Domain) sdf.Box2 {
	return sdf.Box2{
		Min: v2.Vec{X: min(d.P0.X, d.P1.X), Y: min(d.P0.Y, d.P1.Y)},
		Max: v2.Vec{X: max(d.P0.X, d.P1.X), Y: max(d.P0.Y, d.P1.Y)},
	}
}

// Domain returns a domain covering the bounding box of s sampled nx by ny times.
func Domain(s sdf.SDF2, nx, ny int) sdfield.Domain {
	bb := s.BoundingBox()
	return sdfield.Domain{
		P0:    r3.Vec{X: bb.Min.X, Y: bb.Min.Y},
		P1:    r3.Vec{X: bb.Max.X, Y: bb.Max.Y},
		Steps: sdfield.V3i{nx, ny, 0},
	}
}
