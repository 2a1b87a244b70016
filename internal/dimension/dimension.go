// Package dimension tags values with a physical dimension, or marks them
// dimensionless. The tag travels beside a value and is never stored inside a
// numeric container.
package dimension

import (
	"strings"
)

// Dimensioned is implemented by anything that may carry a physical dimension.
type Dimensioned interface {
	HasDimension() bool
	Dimension() string
}

// Dimension is a named physical dimension, or none.
type Dimension struct {
	name string
}

// Of returns the dimension with the given name. A blank name is dimensionless.
func Of(name string) Dimension {
	return Dimension{name: strings.TrimSpace(name)}
}

// Dimensionless returns the empty dimension.
func Dimensionless() Dimension {
	return Dimension{}
}

func (d Dimension) HasDimension() bool {
	return d.name != ""
}

// Dimension returns the name, or "" when dimensionless.
func (d Dimension) Dimension() string {
	return d.name
}

// Compare orders dimensions by name; dimensionless sorts first.
func (d Dimension) Compare(o Dimension) int {
	return strings.Compare(d.name, o.name)
}

func (d Dimension) Equal(o Dimension) bool {
	return d.name == o.name
}

func (d Dimension) String() string {
	if d.name == "" {
		return "DIMENSIONLESS"
	}
	return d.name
}

// Tagged attaches a Dimension to a value of any type.
type Tagged[T any] struct {
	value T
	dim   Dimension
}

// Attach pairs v with d.
func Attach[T any](v T, d Dimension) Tagged[T] {
	return Tagged[T]{value: v, dim: d}
}

func (t Tagged[T]) Value() T {
	return t.value
}

func (t Tagged[T]) HasDimension() bool {
	return t.dim.HasDimension()
}

func (t Tagged[T]) Dimension() string {
	return t.dim.Dimension()
}

// Match reports whether a and b carry the same dimension, treating two
// dimensionless values as matching.
func Match(a, b Dimensioned) bool {
	if a.HasDimension() != b.HasDimension() {
		return false
	}
	return a.Dimension() == b.Dimension()
}
