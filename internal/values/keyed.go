package values

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// KeyedTuple associates a scalar key with an array of doubles, for example a
// probability threshold with the ensemble members that relate to it.
type KeyedTuple struct {
	key    float64
	values []float64
}

// NewKeyedTuple copies values into a new KeyedTuple.
func NewKeyedTuple(key float64, values []float64) KeyedTuple {
	return KeyedTuple{key: key, values: slices.Clone(values)}
}

// NewKeyedTupleFromPointers dereferences every element of ptrs. It fails with
// ErrValue if any element is nil.
func NewKeyedTupleFromPointers(key float64, ptrs []*float64) (KeyedTuple, error) {
	vals, idx, ok := unbox(ptrs)
	if !ok {
		return KeyedTuple{}, fmt.Errorf("keyed tuple %v element %d: %w", key, idx, ErrValue)
	}
	return KeyedTuple{key: key, values: vals}, nil
}

// Key returns the key.
func (k KeyedTuple) Key() float64 {
	return k.key
}

// Values returns a copy of the associated values.
func (k KeyedTuple) Values() []float64 {
	out := make([]float64, len(k.values))
	copy(out, k.values)
	return out
}

// Len returns the number of associated values.
func (k KeyedTuple) Len() int {
	return len(k.values)
}

// Equal reports whether both tuples have the same key and values. NaN equals NaN.
func (k KeyedTuple) Equal(o KeyedTuple) bool {
	return CompareDoubles(k.key, o.key) == 0 && floats.Same(k.values, o.values)
}

func (k KeyedTuple) String() string {
	return fmt.Sprintf("%v=%v", k.key, k.values)
}
