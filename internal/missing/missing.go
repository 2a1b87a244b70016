// Package missing defines what "no data" means for doubles, strings and durations.
package missing

import (
	"math"
	"time"
)

const (
	// Double is the sentinel written in place of an absent double.
	Double = -999.0

	// String is the sentinel written in place of an absent string.
	String = "NA"

	// Duration is the sentinel written in place of an absent duration.
	Duration = time.Duration(math.MinInt64)

	// Epsilon is the tolerance used when comparing a double to Double.
	Epsilon = 1e-8
)

// IsMissingValue reports whether x is NaN or equal to Double within Epsilon.
func IsMissingValue(x float64) bool {
	if math.IsNaN(x) {
		return true
	}
	return math.Abs(x-Double) <= Epsilon
}

// IsNotMissingValue is the negation of IsMissingValue.
func IsNotMissingValue(x float64) bool {
	return !IsMissingValue(x)
}

// IsMissingString reports whether s is the String sentinel.
func IsMissingString(s string) bool {
	return s == String
}

// IsMissingDuration reports whether d is the Duration sentinel.
func IsMissingDuration(d time.Duration) bool {
	return d == Duration
}

// CountMissing returns how many entries of xs are missing.
func CountMissing(xs []float64) int {
	n := 0
	for _, x := range xs {
		if IsMissingValue(x) {
			n++
		}
	}
	return n
}
