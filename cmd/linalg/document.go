// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

var (
	errNoMatrix    = errors.New("document has no matrix")
	errNoVectors   = errors.New("document has no vectors")
	errNoRHS       = errors.New("document has no rhs")
	errComplexData = errors.New("complex entry in real mode (use --complex)")
)

// document is the input file layout.
type document struct {
	Matrix  [][]entry `yaml:"matrix"`
	Vectors [][]entry `yaml:"vectors"`
	RHS     []entry   `yaml:"rhs"`
}

// entry is one scalar literal; the Real domain accepts it only when im == 0.
type entry complex128

// UnmarshalYAML accepts YAML numbers and complex literals such as "1-2.5i".
func (e *entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar entry", node.Line)
	}
	c, err := strconv.ParseComplex(strings.ReplaceAll(node.Value, " ", ""), 128)
	if err != nil {
		return fmt.Errorf("line %d: %q is not a number: %w", node.Line, node.Value, err)
	}
	*e = entry(c)

	return nil
}

// readDocument decodes r. An empty input yields an empty document.
func readDocument(r io.Reader) (*document, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return &doc, nil
}

// convert maps entries into T.
func convert[T scalar.Number](in []entry) ([]T, error) {
	out := make([]T, len(in))
	for i, e := range in {
		c := complex128(e)
		if scalar.IsRealDomain[T]() && imag(c) != 0 {
			return nil, fmt.Errorf("%s: %w", scalar.Format(c), errComplexData)
		}
		out[i] = scalar.FromComplex[T](c)
	}

	return out, nil
}

// matrixOf builds the document matrix in T with the given options.
func matrixOf[T scalar.Number](doc *document, opts ...matrix.Option) (*matrix.Dense[T], error) {
	if len(doc.Matrix) == 0 {
		return nil, errNoMatrix
	}
	rows := make([][]T, len(doc.Matrix))
	var err error
	for i, r := range doc.Matrix {
		if rows[i], err = convert[T](r); err != nil {
			return nil, fmt.Errorf("matrix row %d: %w", i, err)
		}
	}

	return matrix.FromRows(rows, opts...)
}

// vectorsOf builds the document vectors as Column vectors in T.
func vectorsOf[T scalar.Number](doc *document) ([]*matrix.Vector[T], error) {
	if len(doc.Vectors) == 0 {
		return nil, errNoVectors
	}
	out := make([]*matrix.Vector[T], len(doc.Vectors))
	for i, raw := range doc.Vectors {
		vals, err := convert[T](raw)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		if out[i], err = matrix.NewVector(vals, matrix.Column); err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
	}

	return out, nil
}

// rhsOf builds the right-hand side of a linear system in T.
func rhsOf[T scalar.Number](doc *document) (*matrix.Vector[T], error) {
	if len(doc.RHS) == 0 {
		return nil, errNoRHS
	}
	vals, err := convert[T](doc.RHS)
	if err != nil {
		return nil, fmt.Errorf("rhs: %w", err)
	}

	return matrix.NewVector(vals, matrix.Column)
}
