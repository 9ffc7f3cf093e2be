// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"
	"strings"
)

// Function binds positional inputs to a list of output expressions, the
// shape a code generator compiles. Call evaluates it directly.
type Function struct {
	name    string
	inputs  []string
	outputs Vector
}

// NewFunction validates that inputs are distinct symbols and that every
// output depends only on them.
//
// Errors: ErrNotSymbol, ErrDuplicateSymbol, ErrFreeSymbol.
func NewFunction(name string, inputs Vector, outputs ...Expr) (*Function, error) {
	tag := "NewFunction(" + name + ")"
	names := make([]string, len(inputs))
	known := make(map[string]struct{}, len(inputs))
	for i, x := range inputs {
		s, ok := x.(*Symbol)
		if !ok {
			return nil, symbolicErrorf(fmt.Sprintf("%s: input %d", tag, i), ErrNotSymbol)
		}
		if _, dup := known[s.name]; dup {
			return nil, symbolicErrorf(fmt.Sprintf("%s: %s", tag, s.name), ErrDuplicateSymbol)
		}
		known[s.name] = struct{}{}
		names[i] = s.name
	}
	for i, out := range outputs {
		for _, v := range Vars(out) {
			if _, ok := known[v]; !ok {
				return nil, symbolicErrorf(fmt.Sprintf("%s: output %d uses %s", tag, i, v), ErrFreeSymbol)
			}
		}
	}
	outs := make(Vector, len(outputs))
	copy(outs, outputs)

	return &Function{name: name, inputs: names, outputs: outs}, nil
}

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// NumInputs returns the input arity.
func (f *Function) NumInputs() int { return len(f.inputs) }

// NumOutputs returns the number of outputs.
func (f *Function) NumOutputs() int { return len(f.outputs) }

// Call evaluates all outputs at x.
//
// Errors: ErrArity when len(x) differs from the input arity.
func (f *Function) Call(x []float64) ([]float64, error) {
	if len(x) != len(f.inputs) {
		return nil, symbolicErrorf(fmt.Sprintf("%s: got %d args, want %d", f.name, len(x), len(f.inputs)), ErrArity)
	}
	env := make(Env, len(x))
	for i, n := range f.inputs {
		env[n] = x[i]
	}
	out, err := f.outputs.Eval(env)
	if err != nil {
		return nil, symbolicErrorf(f.name, err)
	}

	return out, nil
}

func (f *Function) String() string {
	outs := make([]string, len(f.outputs))
	for i, o := range f.outputs {
		outs[i] = o.String()
	}

	return f.name + "(" + strings.Join(f.inputs, ", ") + ") -> [" + strings.Join(outs, ", ") + "]"
}
