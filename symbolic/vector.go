// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"
	"sort"
	"strings"
)

// Vector is a fixed-length column of expressions.
type Vector []Expr

// NewVector returns the symbols name_0 … name_{n-1}.
// A non-positive n yields an empty vector.
func NewVector(name string, n int) Vector {
	if n <= 0 {
		return Vector{}
	}
	v := make(Vector, n)
	for i := range v {
		v[i] = NewSymbol(fmt.Sprintf("%s_%d", name, i))
	}

	return v
}

// Consts lifts numbers into constant expressions.
func Consts(vals []float64) Vector {
	v := make(Vector, len(vals))
	for i, x := range vals {
		v[i] = Const(x)
	}

	return v
}

// Len returns the number of elements.
func (v Vector) Len() int { return len(v) }

func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = x.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Eval evaluates every element against env.
func (v Vector) Eval(env Env) ([]float64, error) {
	out := make([]float64, len(v))
	memo := make(map[Expr]float64)
	for i, x := range v {
		val, err := evaluate(x, env, memo)
		if err != nil {
			return nil, symbolicErrorf(fmt.Sprintf("Vector.Eval[%d]", i), err)
		}
		out[i] = val
	}

	return out, nil
}

// Bind pairs the symbols of v with vals.
//
// Errors: ErrArity on length mismatch, ErrNotSymbol for compound elements.
func (v Vector) Bind(vals []float64) (Env, error) {
	if len(vals) != len(v) {
		return nil, symbolicErrorf("Vector.Bind", ErrArity)
	}
	env := make(Env, len(v))
	for i, x := range v {
		s, ok := x.(*Symbol)
		if !ok {
			return nil, symbolicErrorf(fmt.Sprintf("Vector.Bind[%d]", i), ErrNotSymbol)
		}
		env[s.name] = vals[i]
	}

	return env, nil
}

// Gradient returns ∂e/∂wrtᵢ for every symbol in wrt.
func Gradient(e Expr, wrt Vector) (Vector, error) {
	out := make(Vector, len(wrt))
	for i, x := range wrt {
		s, ok := x.(*Symbol)
		if !ok {
			return nil, symbolicErrorf(fmt.Sprintf("Gradient[%d]", i), ErrNotSymbol)
		}
		out[i] = e.Diff(s.name)
	}

	return out, nil
}

// Jacobian returns the len(f)×len(wrt) matrix of partial derivatives, row by row.
func Jacobian(f, wrt Vector) ([]Vector, error) {
	rows := make([]Vector, len(f))
	for i, fi := range f {
		g, err := Gradient(fi, wrt)
		if err != nil {
			return nil, symbolicErrorf(fmt.Sprintf("Jacobian[%d]", i), err)
		}
		rows[i] = g
	}

	return rows, nil
}

// Vars returns the sorted names of the symbols e depends on.
func Vars(e Expr) []string {
	seen := make(map[string]struct{})
	visit(e, make(map[Expr]struct{}), func(n Expr) {
		if s, ok := n.(*Symbol); ok {
			seen[s.name] = struct{}{}
		}
	})
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Size counts the distinct nodes of the graph rooted at e.
func Size(e Expr) int {
	count := 0
	visit(e, make(map[Expr]struct{}), func(Expr) { count++ })

	return count
}

func visit(e Expr, seen map[Expr]struct{}, f func(Expr)) {
	if _, ok := seen[e]; ok {
		return
	}
	seen[e] = struct{}{}
	f(e)
	for _, k := range e.children() {
		visit(k, seen, f)
	}
}
