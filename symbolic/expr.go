// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"
	"math"
	"strconv"
)

// Expr is a node of an immutable expression graph.
type Expr interface {
	fmt.Stringer

	// Eval computes the value of the expression with symbols bound by env.
	Eval(env Env) (float64, error)

	// Diff returns the partial derivative with respect to the symbol name.
	Diff(name string) Expr

	// Equal reports structural equality.
	Equal(other Expr) bool

	// children lists direct operands in evaluation order.
	children() []Expr

	// compute applies the node to already evaluated operands.
	compute(args []float64) float64

	// derive builds the derivative from the operands' derivatives.
	derive(d []Expr) Expr
}

// Env binds symbol names to values.
type Env map[string]float64

// Constant is a float64 leaf.
type Constant struct{ val float64 }

// Symbol is a named scalar leaf.
type Symbol struct{ name string }

// Const returns a constant node.
func Const(v float64) *Constant { return &Constant{val: v} }

// NewSymbol returns a scalar symbol called name.
func NewSymbol(name string) *Symbol { return &Symbol{name: name} }

// Value returns the constant's value.
func (c *Constant) Value() float64 { return c.val }

func (c *Constant) String() string { return strconv.FormatFloat(c.val, 'g', -1, 64) }

func (c *Constant) Eval(Env) (float64, error) { return c.val, nil }

func (c *Constant) Diff(string) Expr { return zero() }

func (c *Constant) Equal(other Expr) bool {
	o, ok := other.(*Constant)
	if !ok {
		return false
	}
	// NaN constants compare equal to each other structurally.
	return o.val == c.val || (math.IsNaN(o.val) && math.IsNaN(c.val))
}

func (c *Constant) children() []Expr          { return nil }
func (c *Constant) compute([]float64) float64 { return c.val }
func (c *Constant) derive([]Expr) Expr        { return zero() }

// Name returns the symbol's name.
func (s *Symbol) Name() string { return s.name }

func (s *Symbol) String() string { return s.name }

func (s *Symbol) Eval(env Env) (float64, error) {
	v, ok := env[s.name]
	if !ok {
		return 0, symbolicErrorf(s.name, ErrUnboundSymbol)
	}

	return v, nil
}

func (s *Symbol) Diff(name string) Expr {
	if s.name == name {
		return one()
	}

	return zero()
}

func (s *Symbol) Equal(other Expr) bool {
	o, ok := other.(*Symbol)
	return ok && o.name == s.name
}

func (s *Symbol) children() []Expr          { return nil }
func (s *Symbol) compute([]float64) float64 { return 0 } // never called; leaves are resolved by evaluate
func (s *Symbol) derive([]Expr) Expr        { return zero() }

func zero() *Constant { return Const(0) }
func one() *Constant  { return Const(1) }

func isConst(e Expr, v float64) bool {
	c, ok := e.(*Constant)
	return ok && c.val == v
}

func constValue(e Expr) (float64, bool) {
	c, ok := e.(*Constant)
	if !ok {
		return 0, false
	}

	return c.val, true
}

// evaluate walks the DAG once, memoizing shared nodes.
func evaluate(e Expr, env Env, memo map[Expr]float64) (float64, error) {
	if v, ok := memo[e]; ok {
		return v, nil
	}
	var v float64
	switch n := e.(type) {
	case *Constant:
		v = n.val
	case *Symbol:
		var err error
		if v, err = n.Eval(env); err != nil {
			return 0, err
		}
	default:
		kids := e.children()
		args := make([]float64, len(kids))
		for i, k := range kids {
			a, err := evaluate(k, env, memo)
			if err != nil {
				return 0, err
			}
			args[i] = a
		}
		v = e.compute(args)
	}
	memo[e] = v

	return v, nil
}

// differentiate builds ∂e/∂name, memoizing shared nodes so the result keeps
// the sharing of the input graph.
func differentiate(e Expr, name string, memo map[Expr]Expr) Expr {
	if d, ok := memo[e]; ok {
		return d
	}
	var d Expr
	switch n := e.(type) {
	case *Constant:
		d = zero()
	case *Symbol:
		d = n.Diff(name)
	default:
		kids := e.children()
		dk := make([]Expr, len(kids))
		allZero := true
		for i, k := range kids {
			dk[i] = differentiate(k, name, memo)
			if !isConst(dk[i], 0) {
				allZero = false
			}
		}
		if allZero {
			d = zero()
		} else {
			d = e.derive(dk)
		}
	}
	memo[e] = d

	return d
}

func evalNode(e Expr, env Env) (float64, error) {
	return evaluate(e, env, make(map[Expr]float64))
}

func diffNode(e Expr, name string) Expr {
	return differentiate(e, name, make(map[Expr]Expr))
}
