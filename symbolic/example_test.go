// SPDX-License-Identifier: MIT
package symbolic_test

import (
	"fmt"

	"github.com/katalvlaran/lvopt/symbolic"
)

// ExampleGradient differentiates the squared excess distance to the unit ball.
func ExampleGradient() {
	u := symbolic.NewVector("u", 2)
	t := symbolic.Sub(symbolic.Norm2(u...), symbolic.Const(1))
	f := symbolic.FMax(symbolic.Const(0), symbolic.Mul(symbolic.Sign(t), symbolic.Pow(t, 2)))

	g, _ := symbolic.Gradient(f, u)
	env, _ := u.Bind([]float64{2, 0})
	val, _ := f.Eval(env)
	grad, _ := g.Eval(env)
	fmt.Println(val, grad)
	// Output:
	// 1 [2 0]
}
