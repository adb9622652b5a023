package sdfield

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"
)

// Sample evaluates s at every grid point of the domain. The result is
// indexed [x][y] and has dimensions Steps[0] by Steps[1]. Every call
// resamples the whole grid.
func Sample(s Field, d Domain) Matrix {
	xs, ys := d.Xs(), d.Ys()
	m := newMatrix(len(xs), len(ys))
	for i, x := range xs {
		sampleColumn(s, m[i], x, ys)
	}
	return m
}

// SampleConcurrent returns the same matrix as Sample, evaluating columns of
// the grid on up to workers goroutines. If workers is not positive the
// number of CPUs is used. Cancelling ctx stops sampling of columns not yet
// started and returns the context's error.
func SampleConcurrent(ctx context.Context, s Field, d Domain, workers int) (Matrix, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	xs, ys := d.Xs(), d.Ys()
	m := newMatrix(len(xs), len(ys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, x := range xs {
		col := m[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sampleColumn(s, col, x, ys)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

func sampleColumn(s Field, dst []float64, x float64, ys []float64) {
	for j, y := range ys {
		dst[j] = s.Evaluate(r2.Vec{X: x, Y: y})
	}
}
