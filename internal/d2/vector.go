package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

func Max(a r2.Vec) float64 {
	return math.Max(a.X, a.Y)
}

func AbsElem(a r2.Vec) r2.Vec {
	return r2.Vec{
		X: math.Abs(a.X),
		Y: math.Abs(a.Y),
	}
}

func MulElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.X * b.X,
		Y: a.Y * b.Y,
	}
}

// Linspace returns n evenly spaced values over [a, b]. Both endpoints
// are included when n > 1. A single value is a. Non-positive n returns
// an empty slice.
func Linspace(a, b float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	v := make([]float64, n)
	v[0] = a
	if n == 1 {
		return v
	}
	step := (b - a) / float64(n-1)
	for i := 1; i < n-1; i++ {
		v[i] = a + float64(i)*step
	}
	v[n-1] = b
	return v
}
