// SPDX-License-Identifier: MIT
package constraints_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvopt/constraints"
	"github.com/katalvlaran/lvopt/symbolic"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentUse shares one instance of each set between goroutines.
// Run with -race to check that no operation mutates the set.
func TestConcurrentUse(t *testing.T) {
	ball, err := constraints.NewBall2([]float64{1, 2, 3}, 1.5)
	require.NoError(t, err)
	box, err := constraints.NewRectangle([]float64{0, 0, 0}, []float64{1, 1, 1})
	require.NoError(t, err)
	prod, err := constraints.NewCartesianProduct([]int{1, 3},
		[]constraints.Constraint{constraints.NewZero(), constraints.NewNoConstraints()})
	require.NoError(t, err)
	sets := []constraints.Constraint{ball, box, prod}

	points := make([][]float64, 64)
	rng := rand.New(rand.NewSource(8))
	for i := range points {
		points[i] = []float64{rng.NormFloat64() * 4, rng.NormFloat64() * 4, rng.NormFloat64() * 4}
	}
	want := make([][]float64, len(sets))
	for i, c := range sets {
		want[i] = make([]float64, len(points))
		for j, u := range points {
			want[i][j] = numericDist(t, c, u)
		}
	}

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			for i, c := range sets {
				for j, u := range points {
					s, err := c.DistanceSquared(u)
					if err != nil {
						return err
					}
					if v, _ := s.Float64(); v != want[i][j] {
						return fmt.Errorf("worker %d: %v at %v: got %g, want %g", w, c, u, v, want[i][j])
					}
					if _, err := c.DistanceSquared(symbolic.NewVector("u", 3)); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
