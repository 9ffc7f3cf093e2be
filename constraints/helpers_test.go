// SPDX-License-Identifier: MIT
package constraints_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvopt/constraints"
	"github.com/katalvlaran/lvopt/symbolic"
	"github.com/stretchr/testify/require"
)

// approx compares float slices up to an absolute 1e-12.
var approx = cmpopts.EquateApprox(0, 1e-12)

// numericDist evaluates DistanceSquared on concrete numbers.
func numericDist(t *testing.T, c constraints.Constraint, x []float64) float64 {
	t.Helper()
	s, err := c.DistanceSquared(x)
	require.NoError(t, err)
	v, ok := s.Float64()
	require.True(t, ok, "numeric point must give a numeric result")

	return v
}

// symbolicDist builds DistanceSquared on symbols u_i and evaluates it at x.
func symbolicDist(t *testing.T, c constraints.Constraint, x []float64) float64 {
	t.Helper()
	u := symbolic.NewVector("u", len(x))
	s, err := c.DistanceSquared(u)
	require.NoError(t, err)
	e, ok := s.Expr()
	require.True(t, ok, "symbolic point must give a symbolic result")
	env, err := u.Bind(x)
	require.NoError(t, err)
	v, err := e.Eval(env)
	require.NoError(t, err)

	return v
}

// numericProject evaluates Project on concrete numbers.
func numericProject(t *testing.T, c constraints.Constraint, x []float64) []float64 {
	t.Helper()
	p, err := c.Project(x)
	require.NoError(t, err)
	v, ok := p.Float64s()
	require.True(t, ok)

	return v
}

// symbolicProject builds Project on symbols and evaluates it at x.
func symbolicProject(t *testing.T, c constraints.Constraint, x []float64) []float64 {
	t.Helper()
	u := symbolic.NewVector("u", len(x))
	p, err := c.Project(u)
	require.NoError(t, err)
	exprs, ok := p.Exprs()
	require.True(t, ok)
	env, err := u.Bind(x)
	require.NoError(t, err)
	v, err := exprs.Eval(env)
	require.NoError(t, err)

	return v
}

// requireSameVector fails with a readable diff.
func requireSameVector(t *testing.T, want, got []float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}
