// SPDX-License-Identifier: MIT
package constraints_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvopt/constraints"
	"github.com/katalvlaran/lvopt/symbolic"
)

// ExampleNewBall2 evaluates the squared distance to the unit ball in both domains.
func ExampleNewBall2() {
	ball, err := constraints.NewBall2(nil, 1.0)
	if err != nil {
		panic(err)
	}

	d, _ := ball.DistanceSquared([]float64{2, 0})
	fmt.Println(d)

	e, _ := ball.DistanceSquared(symbolic.NewVector("u", 2))
	fmt.Println(e)

	_, err = ball.Project([]float64{2, 0})
	fmt.Println(errors.Is(err, constraints.ErrNotImplemented))
	// Output:
	// 1
	// fmax(0, (sign((norm_2([u_0, u_1])-1))*sq((norm_2([u_0, u_1])-1))))
	// true
}

// ExampleNew builds a set from its kind name.
func ExampleNew() {
	kind, err := constraints.ParseKind("rectangle")
	if err != nil {
		panic(err)
	}
	box, err := constraints.New(kind, constraints.Params{XMin: []float64{0, 0}, XMax: []float64{1, 1}})
	if err != nil {
		panic(err)
	}
	p, _ := box.Project([]float64{2, -1})
	d, _ := box.DistanceSquared([]float64{2, -1})
	fmt.Println(box, p, d)
	// Output:
	// Rectangle(xmin=[0, 0], xmax=[1, 1]) [1, 0] 2
}
