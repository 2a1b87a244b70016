// Package values holds the immutable numeric containers passed between
// evaluation components. Constructors copy their input and accessors copy their
// output, so no caller ever shares backing storage with a container.
package values

import "math"

// CompareDoubles orders a and b totally. NaN sorts after every other value and
// equals itself; -0 and +0 are equal.
func CompareDoubles(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// unbox copies ptrs into a fresh slice, failing on the first nil element.
func unbox(ptrs []*float64) ([]float64, int, bool) {
	out := make([]float64, len(ptrs))
	for i, p := range ptrs {
		if p == nil {
			return nil, i, false
		}
		out[i] = *p
	}
	return out, 0, true
}
