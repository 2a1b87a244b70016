package threshold

import (
	"errors"
	"fmt"
)

var (
	// ErrRange is returned when the bounds of a threshold are inconsistent with
	// its operator.
	ErrRange = errors.New("threshold: invalid range")

	// ErrDomain is matched by every DomainError.
	ErrDomain = errors.New("threshold: probability outside [0,1]")
)

// DomainError reports a probability bound outside the unit interval.
type DomainError struct {
	Bound string // "lower" or "upper"
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("threshold: probability %s bound %v is outside [0,1]", e.Bound, e.Value)
}

// Is lets errors.Is match ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}
