package values

import "fmt"

// Pair holds two associated doubles, such as an observation and a prediction.
type Pair struct {
	one float64
	two float64
}

// NewPair creates a Pair.
func NewPair(one, two float64) Pair {
	return Pair{one: one, two: two}
}

// ItemOne returns the first item.
func (p Pair) ItemOne() float64 {
	return p.one
}

// ItemTwo returns the second item.
func (p Pair) ItemTwo() float64 {
	return p.two
}

// Compare orders pairs by ItemOne, then ItemTwo, using CompareDoubles.
func (p Pair) Compare(o Pair) int {
	if c := CompareDoubles(p.one, o.one); c != 0 {
		return c
	}
	return CompareDoubles(p.two, o.two)
}

// Equal reports whether Compare returns 0.
func (p Pair) Equal(o Pair) bool {
	return p.Compare(o) == 0
}

func (p Pair) String() string {
	return fmt.Sprintf("(%v,%v)", p.one, p.two)
}
