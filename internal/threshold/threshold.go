// Package threshold models validated comparison boundaries. A Threshold is
// checked once, when it is built, and is immutable afterwards.
package threshold

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Threshold is a scalar boundary, or an inclusive range for Between, paired
// with a comparison operator.
type Threshold struct {
	value    float64
	upper    float64
	hasUpper bool
	op       Operator
}

// New validates and builds a Threshold. upper must be non-nil for two-sided
// operators and nil otherwise. Every violation wraps ErrRange.
func New(value float64, upper *float64, op Operator) (Threshold, error) {
	if !op.Valid() {
		return Threshold{}, fmt.Errorf("unknown operator %q: %w", string(op), ErrRange)
	}
	if math.IsNaN(value) {
		return Threshold{}, fmt.Errorf("lower bound is NaN: %w", ErrRange)
	}

	t := Threshold{value: value, op: op}

	if !op.IsTwoSided() {
		if upper != nil {
			return Threshold{}, fmt.Errorf("operator %s takes no upper bound, got %v: %w", op, *upper, ErrRange)
		}
		return t, nil
	}

	if upper == nil {
		return Threshold{}, fmt.Errorf("operator %s requires an upper bound: %w", op, ErrRange)
	}
	if math.IsNaN(*upper) {
		return Threshold{}, fmt.Errorf("upper bound is NaN: %w", ErrRange)
	}
	if *upper < value {
		return Threshold{}, fmt.Errorf("upper bound %v is below lower bound %v: %w", *upper, value, ErrRange)
	}

	t.upper = *upper
	t.hasUpper = true
	return t, nil
}

// NewOneSided builds a Threshold for any operator except Between.
func NewOneSided(value float64, op Operator) (Threshold, error) {
	return New(value, nil, op)
}

// NewBetween builds an inclusive range threshold.
func NewBetween(lower, upper float64) (Threshold, error) {
	return New(lower, &upper, Between)
}

// Value returns the lower (or only) bound.
func (t Threshold) Value() float64 {
	return t.value
}

// UpperValue returns the upper bound and whether one is present.
func (t Threshold) UpperValue() (float64, bool) {
	return t.upper, t.hasUpper
}

// Operator returns the comparison operator.
func (t Threshold) Operator() Operator {
	return t.op
}

// Evaluate reports whether x satisfies the threshold. A NaN candidate never does.
func (t Threshold) Evaluate(x float64) bool {
	switch t.op {
	case Greater:
		return x > t.value
	case GreaterEqual:
		return x >= t.value
	case Less:
		return x < t.value
	case LessEqual:
		return x <= t.value
	case Equal:
		return x == t.value
	case Between:
		return t.value <= x && x <= t.upper
	}
	return false
}

// Compare orders thresholds by lower bound, then upper bound (absent first),
// then operator.
func (t Threshold) Compare(o Threshold) int {
	if c := cmp.Compare(t.value, o.value); c != 0 {
		return c
	}
	switch {
	case t.hasUpper && !o.hasUpper:
		return 1
	case !t.hasUpper && o.hasUpper:
		return -1
	case t.hasUpper:
		if c := cmp.Compare(t.upper, o.upper); c != 0 {
			return c
		}
	}
	return cmp.Compare(operatorOrder[t.op], operatorOrder[o.op])
}

// Equal reports whether Compare returns 0.
func (t Threshold) Equal(o Threshold) bool {
	return t.Compare(o) == 0
}

func (t Threshold) String() string {
	if t.hasUpper {
		return fmt.Sprintf("%s [%v, %v]", t.op, t.value, t.upper)
	}
	return fmt.Sprintf("%s %v", t.op, t.value)
}

// Sort orders ts in place by Compare.
func Sort(ts []Threshold) {
	slices.SortStableFunc(ts, Threshold.Compare)
}

// Dedup returns a sorted copy of ts with equal thresholds collapsed.
func Dedup(ts []Threshold) []Threshold {
	out := slices.Clone(ts)
	Sort(out)
	return slices.CompactFunc(out, Threshold.Equal)
}
