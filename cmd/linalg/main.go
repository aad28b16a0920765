// SPDX-License-Identifier: MIT

// Command linalg runs the dense linear-algebra kernels on matrices read from
// YAML (or JSON) documents.
//
//	linalg det -f m.yaml
//	linalg charpoly --reduced --complex -f m.yaml
//	linalg independent --columns -f vectors.yaml
//
// Document keys:
//
//	matrix:  [[1, 2], [3, "4+1i"]]
//	vectors: [[1, 0, 0], [0, 1, 0]]
//	rhs:     [1, 2]
//
// Entries are numbers or complex literals of the form N, Ni or N±Ni. Without
// --complex every entry must be real.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "linalg:", err)
		os.Exit(1)
	}
}
