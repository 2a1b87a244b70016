package values

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector is an ordered, immutable sequence of doubles.
type Vector struct {
	data []float64
}

// NewVector copies data into a new Vector. A nil slice yields an empty vector.
func NewVector(data []float64) Vector {
	return Vector{data: slices.Clone(data)}
}

// NewVectorFromPointers dereferences every element of ptrs into a new Vector.
// It fails with ErrValue if any element is nil.
func NewVectorFromPointers(ptrs []*float64) (Vector, error) {
	data, idx, ok := unbox(ptrs)
	if !ok {
		return Vector{}, fmt.Errorf("vector element %d: %w", idx, ErrValue)
	}
	return Vector{data: data}, nil
}

// Doubles returns a copy of the stored values.
func (v Vector) Doubles() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}

// Len returns the number of values.
func (v Vector) Len() int {
	return len(v.data)
}

// At returns the value at index i. It panics if i is out of range, like a slice index.
func (v Vector) At(i int) float64 {
	return v.data[i]
}

// Equal reports whether both vectors hold the same values in the same order.
// NaN equals NaN.
func (v Vector) Equal(o Vector) bool {
	return floats.Same(v.data, o.data)
}

// VecDense returns an independent gonum vector holding the values, or nil when
// the vector is empty.
func (v Vector) VecDense() *mat.VecDense {
	if len(v.data) == 0 {
		return nil
	}
	return mat.NewVecDense(len(v.data), v.Doubles())
}

func (v Vector) String() string {
	return fmt.Sprintf("%v", v.data)
}
