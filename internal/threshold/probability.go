package threshold

// ProbabilityThreshold is a Threshold whose bounds are probabilities.
type ProbabilityThreshold struct {
	t Threshold
}

// NewProbability runs the range checks of New, then requires every bound to lie
// in [0,1]. A bound outside the unit interval fails with *DomainError.
func NewProbability(value float64, upper *float64, op Operator) (ProbabilityThreshold, error) {
	t, err := New(value, upper, op)
	if err != nil {
		return ProbabilityThreshold{}, err
	}
	if value < 0 || value > 1 {
		return ProbabilityThreshold{}, &DomainError{Bound: "lower", Value: value}
	}
	if upper != nil && (*upper < 0 || *upper > 1) {
		return ProbabilityThreshold{}, &DomainError{Bound: "upper", Value: *upper}
	}
	return ProbabilityThreshold{t: t}, nil
}

// Threshold returns the underlying threshold.
func (p ProbabilityThreshold) Threshold() Threshold {
	return p.t
}

// Value returns the lower (or only) probability.
func (p ProbabilityThreshold) Value() float64 {
	return p.t.Value()
}

// UpperValue returns the upper probability and whether one is present.
func (p ProbabilityThreshold) UpperValue() (float64, bool) {
	return p.t.UpperValue()
}

// Operator returns the comparison operator.
func (p ProbabilityThreshold) Operator() Operator {
	return p.t.Operator()
}

// Evaluate applies the underlying threshold to x.
func (p ProbabilityThreshold) Evaluate(x float64) bool {
	return p.t.Evaluate(x)
}

// Compare orders probability thresholds the same way as thresholds.
func (p ProbabilityThreshold) Compare(o ProbabilityThreshold) int {
	return p.t.Compare(o.t)
}

func (p ProbabilityThreshold) String() string {
	return "Pr " + p.t.String()
}
