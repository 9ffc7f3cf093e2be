// SPDX-License-Identifier: MIT

// Command setdist evaluates constraint sets from the command line.
//
// It builds one set from flags and reports the squared distance of a point to
// it, its projection, or the symbolic penalty graph and its gradient:
//
//	setdist distance --kind ball2 --radius 1 --point 2,0
//	setdist distance --kind ball2 --radius 1 --center 1,1 --dim 2 --symbolic
//	setdist project  --kind rectangle --xmin 0,0 --xmax 1,1 --point 2,-1
//	setdist gradient --kind halfspace --normal 1,1 --offset 1 --point 2,2
//	setdist kinds
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
