// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/lvopt/constraints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh root command and captures both streams.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errb.String(), err
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"outside unit ball", []string{"distance", "--radius", "1", "--point", "2,0"}, "1\n"},
		{"at shifted center", []string{"distance", "--center", "1,1", "-r", "2", "-p", "1,1"}, "0\n"},
		{"rectangle", []string{"distance", "-k", "rectangle", "--xmin", "0,0", "--xmax", "1,1", "-p", "2,-1"}, "2\n"},
		{"halfspace", []string{"distance", "-k", "halfspace", "--normal", "0,1", "--offset", "1", "-p", "5,3"}, "4\n"},
		{"zero", []string{"distance", "-k", "zero", "-p", "3,4"}, "25\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestDistance_Symbolic(t *testing.T) {
	out, _, err := run(t, "distance", "--symbolic", "--dim", "2")
	require.NoError(t, err)
	assert.Equal(t, "fmax(0, (sign((norm_2([u_0, u_1])-1))*sq((norm_2([u_0, u_1])-1))))\n", out)

	out, _, err = run(t, "distance", "-s", "-p", "2,0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "at [2, 0]: 1", lines[1])

	// a fixed-dimension set needs neither --point nor --dim
	out, _, err = run(t, "distance", "-s", "--center", "0,0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "u_2")

	_, _, err = run(t, "distance", "-s")
	require.ErrorIs(t, err, errNoPoint)
}

func TestDistance_Errors(t *testing.T) {
	_, _, err := run(t, "distance", "--radius", "-1", "--point", "0,0")
	require.ErrorIs(t, err, constraints.ErrInvalidParameter)

	_, _, err = run(t, "distance", "--kind", "sphere", "--point", "0,0")
	require.ErrorIs(t, err, constraints.ErrUnknownKind)

	_, _, err = run(t, "distance", "--center", "0,0", "--point", "1,2,3")
	require.ErrorIs(t, err, constraints.ErrDimensionMismatch)

	_, _, err = run(t, "distance")
	require.ErrorIs(t, err, errNoPoint)

	_, _, err = run(t, "distance", "--point", "a,b")
	require.Error(t, err)
}

func TestProject(t *testing.T) {
	out, _, err := run(t, "project", "-k", "rectangle", "--xmin", "0,0", "--xmax", "1,1", "-p", "2,-1")
	require.NoError(t, err)
	assert.Equal(t, "[1, 0]\n", out)

	out, _, err = run(t, "project", "-k", "ballinf", "-r", "1", "-s", "--dim", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[(-fmax("), out)

	out, stderr, err := run(t, "project", "-k", "rectangle", "--xmin", "0,0", "--xmax", "1,1", "-p", "0.5,1")
	require.NoError(t, err)
	assert.Equal(t, "[0.5, 1]\n", out)
	assert.Contains(t, stderr, "point is already in the set")

	_, stderr, err = run(t, "project", "-k", "rectangle", "--xmin", "0,0", "--xmax", "1,1", "-p", "1.05,0", "--tol", "0.1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "point is already in the set")

	_, stderr, err = run(t, "project", "-k", "zero", "-p", "3,4")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "already in the set")

	_, _, err = run(t, "project", "-k", "zero", "-p", "3,4", "--tol", "-1")
	require.Error(t, err)

	out, stderr, err = run(t, "project", "--point", "2,0")
	require.ErrorIs(t, err, constraints.ErrNotImplemented)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "projection is not available")
}

func TestGradient(t *testing.T) {
	out, _, err := run(t, "gradient", "--radius", "1", "--point", "2,0")
	require.NoError(t, err)
	assert.Equal(t, "[2, 0]\n", out)

	out, _, err = run(t, "gradient", "-k", "halfspace", "--normal", "0,2", "--offset", "2", "-p", "5,3")
	require.NoError(t, err)
	assert.Equal(t, "[0, 4]\n", out) // 2t·a/‖a‖ with t = 2
}

func TestKinds(t *testing.T) {
	out, _, err := run(t, "kinds")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(constraints.Kinds()))
	assert.Equal(t, "ball2", lines[0])
	assert.Equal(t, "cartesian_product", lines[len(lines)-1])
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := run(t, "distance", "--verbose", "--point", "2,0")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "domain=numeric")

	_, stderr, err = run(t, "distance", "--point", "2,0")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "level=DEBUG")
}
