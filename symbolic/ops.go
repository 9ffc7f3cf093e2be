// SPDX-License-Identifier: MIT

package symbolic

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvopt/matrix"
)

type unaryOp uint8

const (
	opNeg unaryOp = iota + 1
	opSign
	opSqrt
)

type binaryOp uint8

const (
	opAdd binaryOp = iota + 1
	opSub
	opMul
	opDiv
	opFMax
	opFMin
	opStep
)

type unary struct {
	op unaryOp
	x  Expr
}

type binary struct {
	op   binaryOp
	x, y Expr
}

type power struct {
	x Expr
	n int
}

type norm2 struct{ xs []Expr }

// ---------- constructors ----------

// Neg returns -x.
func Neg(x Expr) Expr {
	if v, ok := constValue(x); ok {
		return Const(-v)
	}
	if u, ok := x.(*unary); ok && u.op == opNeg {
		return u.x
	}

	return &unary{op: opNeg, x: x}
}

// Sign returns sign(x) ∈ {-1, 0, 1}.
func Sign(x Expr) Expr {
	if v, ok := constValue(x); ok {
		return Const(matrix.SignOf(v))
	}

	return &unary{op: opSign, x: x}
}

// Sqrt returns √x.
func Sqrt(x Expr) Expr {
	if v, ok := constValue(x); ok {
		return Const(math.Sqrt(v))
	}

	return &unary{op: opSqrt, x: x}
}

// Add returns x + y.
func Add(x, y Expr) Expr {
	if isConst(x, 0) {
		return y
	}
	if isConst(y, 0) {
		return x
	}

	return foldBinary(opAdd, x, y)
}

// Sub returns x - y.
func Sub(x, y Expr) Expr {
	if isConst(y, 0) {
		return x
	}
	if isConst(x, 0) {
		return Neg(y)
	}

	return foldBinary(opSub, x, y)
}

// Mul returns x * y.
func Mul(x, y Expr) Expr {
	if isConst(x, 0) || isConst(y, 0) {
		return zero()
	}
	if isConst(x, 1) {
		return y
	}
	if isConst(y, 1) {
		return x
	}
	if isConst(x, -1) {
		return Neg(y)
	}
	if isConst(y, -1) {
		return Neg(x)
	}

	return foldBinary(opMul, x, y)
}

// Div returns x / y. Division by zero follows IEEE-754.
func Div(x, y Expr) Expr {
	if isConst(y, 1) {
		return x
	}
	if isConst(x, 0) {
		if _, ok := constValue(y); !ok {
			return zero()
		}
	}

	return foldBinary(opDiv, x, y)
}

// FMax returns the NaN-ignoring maximum of x and y.
func FMax(x, y Expr) Expr { return foldBinary(opFMax, x, y) }

// FMin returns the NaN-ignoring minimum of x and y.
func FMin(x, y Expr) Expr { return foldBinary(opFMin, x, y) }

// Step returns 1 when x > y, ½ when x == y and 0 when x < y.
// It is the weight FMax uses to split derivatives.
func Step(x, y Expr) Expr { return foldBinary(opStep, x, y) }

// Pow returns x^n for an integer exponent n.
func Pow(x Expr, n int) Expr {
	switch n {
	case 0:
		return one()
	case 1:
		return x
	}
	if v, ok := constValue(x); ok {
		return Const(math.Pow(v, float64(n)))
	}

	return &power{x: x, n: n}
}

// Norm2 returns the Euclidean norm ‖(x₀, …, xₙ₋₁)‖₂.
// An empty argument list yields the constant 0.
func Norm2(xs ...Expr) Expr {
	if len(xs) == 0 {
		return zero()
	}
	vals := make([]float64, len(xs))
	allConst := true
	for i, x := range xs {
		v, ok := constValue(x)
		if !ok {
			allConst = false
			break
		}
		vals[i] = v
	}
	if allConst {
		return Const(normOf(vals))
	}
	cp := make([]Expr, len(xs))
	copy(cp, xs)

	return &norm2{xs: cp}
}

// Sum returns x₀ + x₁ + … (0 for no terms).
func Sum(xs ...Expr) Expr {
	var acc Expr = zero()
	for _, x := range xs {
		acc = Add(acc, x)
	}

	return acc
}

// Dot returns Σ xᵢ·yᵢ over the common prefix of x and y.
func Dot(x, y []Expr) Expr {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	var acc Expr = zero()
	for i := 0; i < n; i++ {
		acc = Add(acc, Mul(x[i], y[i]))
	}

	return acc
}

func foldBinary(op binaryOp, x, y Expr) Expr {
	b := &binary{op: op, x: x, y: y}
	xv, okx := constValue(x)
	yv, oky := constValue(y)
	if okx && oky {
		return Const(b.compute([]float64{xv, yv}))
	}

	return b
}

func normOf(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v * v
	}

	return math.Sqrt(sum)
}

func stepOf(x, y float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	case x > y:
		return 1
	case x == y:
		return 0.5
	default:
		return 0
	}
}

// ---------- unary ----------

func (u *unary) String() string {
	switch u.op {
	case opNeg:
		return "(-" + u.x.String() + ")"
	case opSign:
		return "sign(" + u.x.String() + ")"
	default:
		return "sqrt(" + u.x.String() + ")"
	}
}

func (u *unary) Eval(env Env) (float64, error) { return evalNode(u, env) }
func (u *unary) Diff(name string) Expr         { return diffNode(u, name) }
func (u *unary) children() []Expr              { return []Expr{u.x} }

func (u *unary) Equal(other Expr) bool {
	o, ok := other.(*unary)
	return ok && o.op == u.op && o.x.Equal(u.x)
}

func (u *unary) compute(a []float64) float64 {
	switch u.op {
	case opNeg:
		return -a[0]
	case opSign:
		return matrix.SignOf(a[0])
	default:
		return math.Sqrt(a[0])
	}
}

func (u *unary) derive(d []Expr) Expr {
	switch u.op {
	case opNeg:
		return Neg(d[0])
	case opSign:
		return zero()
	default:
		// d√x = dx / (2√x)
		return Div(d[0], Mul(Const(2), u))
	}
}

// ---------- binary ----------

var binarySymbols = map[binaryOp]string{
	opAdd: "+",
	opSub: "-",
	opMul: "*",
	opDiv: "/",
}

var binaryNames = map[binaryOp]string{
	opFMax: "fmax",
	opFMin: "fmin",
	opStep: "step",
}

func (b *binary) String() string {
	if sym, ok := binarySymbols[b.op]; ok {
		return "(" + b.x.String() + sym + b.y.String() + ")"
	}

	return binaryNames[b.op] + "(" + b.x.String() + ", " + b.y.String() + ")"
}

func (b *binary) Eval(env Env) (float64, error) { return evalNode(b, env) }
func (b *binary) Diff(name string) Expr         { return diffNode(b, name) }
func (b *binary) children() []Expr              { return []Expr{b.x, b.y} }

func (b *binary) Equal(other Expr) bool {
	o, ok := other.(*binary)
	return ok && o.op == b.op && o.x.Equal(b.x) && o.y.Equal(b.y)
}

func (b *binary) compute(a []float64) float64 {
	x, y := a[0], a[1]
	switch b.op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	case opDiv:
		return x / y
	case opFMax:
		return matrix.FMaxOf(x, y)
	case opFMin:
		return matrix.FMinOf(x, y)
	default:
		return stepOf(x, y)
	}
}

func (b *binary) derive(d []Expr) Expr {
	dx, dy := d[0], d[1]
	switch b.op {
	case opAdd:
		return Add(dx, dy)
	case opSub:
		return Sub(dx, dy)
	case opMul:
		return Add(Mul(dx, b.y), Mul(b.x, dy))
	case opDiv:
		if isConst(dy, 0) {
			return Div(dx, b.y)
		}
		return Div(Sub(Mul(dx, b.y), Mul(b.x, dy)), Pow(b.y, 2))
	case opFMax:
		w := Step(b.x, b.y)
		return Add(Mul(w, dx), Mul(Sub(one(), w), dy))
	case opFMin:
		w := Step(b.y, b.x)
		return Add(Mul(w, dx), Mul(Sub(one(), w), dy))
	default:
		return zero()
	}
}

// ---------- power ----------

func (p *power) String() string {
	if p.n == 2 {
		return "sq(" + p.x.String() + ")"
	}

	return "pow(" + p.x.String() + ", " + strconv.Itoa(p.n) + ")"
}

func (p *power) Eval(env Env) (float64, error) { return evalNode(p, env) }
func (p *power) Diff(name string) Expr         { return diffNode(p, name) }
func (p *power) children() []Expr              { return []Expr{p.x} }

func (p *power) Equal(other Expr) bool {
	o, ok := other.(*power)
	return ok && o.n == p.n && o.x.Equal(p.x)
}

func (p *power) compute(a []float64) float64 { return math.Pow(a[0], float64(p.n)) }

func (p *power) derive(d []Expr) Expr {
	// d xⁿ = n·xⁿ⁻¹·dx
	return Mul(Mul(Const(float64(p.n)), Pow(p.x, p.n-1)), d[0])
}

// ---------- norm_2 ----------

func (n *norm2) String() string {
	parts := make([]string, len(n.xs))
	for i, x := range n.xs {
		parts[i] = x.String()
	}

	return "norm_2([" + strings.Join(parts, ", ") + "])"
}

func (n *norm2) Eval(env Env) (float64, error) { return evalNode(n, env) }
func (n *norm2) Diff(name string) Expr         { return diffNode(n, name) }
func (n *norm2) children() []Expr              { return n.xs }

func (n *norm2) Equal(other Expr) bool {
	o, ok := other.(*norm2)
	if !ok || len(o.xs) != len(n.xs) {
		return false
	}
	for i := range n.xs {
		if !o.xs[i].Equal(n.xs[i]) {
			return false
		}
	}

	return true
}

func (n *norm2) compute(a []float64) float64 { return normOf(a) }

func (n *norm2) derive(d []Expr) Expr {
	// d‖x‖ = Σ xᵢ·dxᵢ / ‖x‖
	return Div(Dot(n.xs, d), n)
}
