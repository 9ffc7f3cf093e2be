// SPDX-License-Identifier: MIT

package symbolic

import (
	"errors"
	"fmt"
)

var (
	// ErrUnboundSymbol is returned by Eval when a symbol has no value in Env.
	ErrUnboundSymbol = errors.New("symbolic: unbound symbol")

	// ErrNotSymbol is returned when a differentiation variable or function
	// input is a compound expression instead of a plain symbol.
	ErrNotSymbol = errors.New("symbolic: expression is not a symbol")

	// ErrDuplicateSymbol is returned when a function lists an input twice.
	ErrDuplicateSymbol = errors.New("symbolic: duplicate symbol")

	// ErrFreeSymbol is returned when a function output depends on a symbol
	// that is not one of its inputs.
	ErrFreeSymbol = errors.New("symbolic: free symbol in function output")

	// ErrArity is returned when a function is called with the wrong number of arguments.
	ErrArity = errors.New("symbolic: wrong number of arguments")
)

func symbolicErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
