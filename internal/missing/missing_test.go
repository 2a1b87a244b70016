package missing

import (
	"math"
	"testing"
	"time"
)

func TestIsMissingValue(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		want bool
	}{
		{"nan", math.NaN(), true},
		{"sentinel", Double, true},
		{"within epsilon", Double + Epsilon/2, true},
		{"outside epsilon", Double + 1e-6, false},
		{"ordinary", 42.0, false},
		{"zero", 0, false},
		{"infinity", math.Inf(1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsMissingValue(tc.x); got != tc.want {
				t.Errorf("expected IsMissingValue(%v) = %v, got %v", tc.x, tc.want, got)
			}
			if got := IsNotMissingValue(tc.x); got == tc.want {
				t.Errorf("expected IsNotMissingValue(%v) = %v, got %v", tc.x, !tc.want, got)
			}
		})
	}
}

func TestMissingStringAndDuration(t *testing.T) {
	if !IsMissingString(String) {
		t.Error("expected String sentinel to be missing")
	}
	if IsMissingString("") {
		t.Error("expected empty string not to be missing")
	}
	if !IsMissingDuration(Duration) {
		t.Error("expected Duration sentinel to be missing")
	}
	if IsMissingDuration(time.Hour) {
		t.Error("expected one hour not to be missing")
	}
}

func TestCountMissing(t *testing.T) {
	xs := []float64{1, math.NaN(), Double, 3}
	if got := CountMissing(xs); got != 2 {
		t.Errorf("expected 2 missing values, got %d", got)
	}
	if got := CountMissing(nil); got != 0 {
		t.Errorf("expected 0 missing values for nil, got %d", got)
	}
}
