package threshold

import (
	"fmt"
	"strings"
)

// Operator is the comparison applied between a candidate value and a threshold.
type Operator string

const (
	Greater      Operator = "GREATER"
	GreaterEqual Operator = "GREATER_EQUAL"
	Less         Operator = "LESS"
	LessEqual    Operator = "LESS_EQUAL"
	Equal        Operator = "EQUAL"
	Between      Operator = "BETWEEN"
)

// operatorOrder fixes the position of each operator when thresholds are sorted.
var operatorOrder = map[Operator]int{
	Greater:      0,
	GreaterEqual: 1,
	Less:         2,
	LessEqual:    3,
	Equal:        4,
	Between:      5,
}

var operatorSymbols = map[string]Operator{
	">":  Greater,
	">=": GreaterEqual,
	"<":  Less,
	"<=": LessEqual,
	"==": Equal,
}

// ParseOperator accepts the operator name in any case, or one of the symbols
// >, >=, <, <=, ==.
func ParseOperator(s string) (Operator, error) {
	s = strings.TrimSpace(s)
	if op, ok := operatorSymbols[s]; ok {
		return op, nil
	}
	op := Operator(strings.ToUpper(s))
	if !op.Valid() {
		return "", fmt.Errorf("unknown operator %q: %w", s, ErrRange)
	}
	return op, nil
}

// Valid reports whether op is one of the six known operators.
func (op Operator) Valid() bool {
	_, ok := operatorOrder[op]
	return ok
}

// IsTwoSided reports whether op needs both a lower and an upper bound.
func (op Operator) IsTwoSided() bool {
	return op == Between
}

func (op Operator) String() string {
	return string(op)
}
