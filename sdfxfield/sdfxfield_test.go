package sdfxfield

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/soypat/sdfield"
	"github.com/soypat/sdfield/form2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCircleAgrees(t *testing.T) {
	sc, err := sdf.Circle2D(5)
	if err != nil {
		t.Fatal(err)
	}
	d := sdfield.NewDomain2(-10, -10, 10, 10, 41, 41)
	got := sdfield.Sample(FromSDFX(sc), d)
	want := sdfield.Sample(form2.Circle(5), d)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("sdfx circle mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	f := sdfield.Difference2D(form2.Rectangle(8, 4), sdfield.Translate2D(form2.Circle(1.5), r2.Vec{X: 2}))
	d := sdfield.NewDomain2(-6, -3, 6, 3, 25, 13)
	s := ToSDFX(f, DomainBox(d))
	back := FromSDFX(s)
	if diff := cmp.Diff(sdfield.Sample(f, d), sdfield.Sample(back, d)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	bb := s.BoundingBox()
	if bb.Min != (v2.Vec{X: -6, Y: -3}) || bb.Max != (v2.Vec{X: 6, Y: 3}) {
		t.Errorf("bounding box %v", bb)
	}
}

func TestComposeWithSDFX(t *testing.T) {
	// Union computed by sdfx over one of our fields.
	sc, err := sdf.Circle2D(1)
	if err != nil {
		t.Fatal(err)
	}
	d := sdfield.NewDomain2(-4, -4, 4, 4, 9, 9)
	ours := ToSDFX(sdfield.Translate2D(form2.Circle(1), r2.Vec{X: 2}), DomainBox(d))
	u := FromSDFX(sdf.Union2D(sc, ours))
	for _, p := range []r2.Vec{{}, {X: 2}, {X: 1}, {X: -3, Y: 3}} {
		want := math.Min(r2.Norm(p)-1, r2.Norm(r2.Sub(p, r2.Vec{X: 2}))-1)
		if got := u.Evaluate(p); math.Abs(got-want) > 1e-9 {
			t.Errorf("union at %v: got %g, want %g", p, got, want)
		}
	}
}

func TestDomain(t *testing.T) {
	sc, err := sdf.Circle2D(3)
	if err != nil {
		t.Fatal(err)
	}
	d := Domain(sc, 10, 20)
	if d.Steps != (sdfield.V3i{10, 20, 0}) {
		t.Errorf("steps %v", d.Steps)
	}
	if d.P0.X != -3 || d.P1.Y != 3 {
		t.Errorf("domain corners %v %v", d.P0, d.P1)
	}
	if err := d.Validate(); err != nil {
		t.Error(err)
	}
	inv := DomainBox(sdfield.NewDomain2(1, 2, -1, -2, 2, 2))
	if inv.Min != (v2.Vec{X: -1, Y: -2}) {
		t.Errorf("inverted domain box %v", inv)
	}
}
