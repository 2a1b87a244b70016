// Package screening builds validated thresholds from declarations and turns
// construction failures and data problems into evaluation events.
package screening

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/todmy/forecast-values/internal/dimension"
	"github.com/todmy/forecast-values/internal/event"
	"github.com/todmy/forecast-values/internal/missing"
	"github.com/todmy/forecast-values/internal/threshold"
	"github.com/todmy/forecast-values/internal/values"
	"github.com/todmy/forecast-values/pkg/logger"
	"github.com/todmy/forecast-values/pkg/models"
)

// Config holds screening options
type Config struct {
	ProbabilityWarnOnEdge bool // warn on probability bounds of exactly 0 or 1
	MissingCheck          bool // report missing values in screened vectors
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		ProbabilityWarnOnEdge: true,
		MissingCheck:          true,
	}
}

// Declared is a threshold that passed validation, with its declared name and units
type Declared struct {
	Name        string
	Units       dimension.Dimension
	Threshold   threshold.Threshold
	Probability *threshold.ProbabilityThreshold // nil for ordinary thresholds
}

func (d Declared) HasDimension() bool {
	return d.Units.HasDimension()
}

func (d Declared) Dimension() string {
	return d.Units.Dimension()
}

// IsProbability reports whether the threshold was built as a probability threshold
func (d Declared) IsProbability() bool {
	return d.Probability != nil
}

func (d Declared) compare(o Declared) int {
	switch {
	case d.IsProbability() && !o.IsProbability():
		return 1
	case !d.IsProbability() && o.IsProbability():
		return -1
	}
	if c := d.Units.Compare(o.Units); c != 0 {
		return c
	}
	return d.Threshold.Compare(o.Threshold)
}

// Screener turns threshold declarations into validated thresholds
type Screener struct {
	config Config
}

// NewScreener creates a new Screener
func NewScreener(config Config) *Screener {
	return &Screener{config: config}
}

// BuildThresholds validates every declaration. Declarations that fail produce
// ERROR events and are left out of the result. The result is sorted, and
// repeated thresholds are dropped with an INFO event.
func (s *Screener) BuildThresholds(decls []models.ThresholdDeclaration) ([]Declared, []event.Event) {
	var declared []Declared
	var events []event.Event

	for i, decl := range decls {
		name := decl.Name
		if name == "" {
			name = fmt.Sprintf("threshold #%d", i+1)
		}

		d, err := build(name, decl)
		if err != nil {
			logger.Debug("Threshold rejected", zap.String("name", name), zap.Error(err))
			events = append(events, event.Errorf("%s: %s", name, describe(err)))
			continue
		}

		if d.IsProbability() && dimension.Of(decl.Dimension).HasDimension() {
			events = append(events, event.Warnf("%s: dimension %s ignored for probability threshold", name, decl.Dimension))
		}
		if d.IsProbability() && s.config.ProbabilityWarnOnEdge {
			events = append(events, edgeWarnings(name, *d.Probability)...)
		}

		events = append(events, event.Debugf("%s: built %s", name, describeDeclared(d)))
		declared = append(declared, d)
	}

	slices.SortStableFunc(declared, Declared.compare)

	out := make([]Declared, 0, len(declared))
	for _, d := range declared {
		if n := len(out); n > 0 && d.compare(out[n-1]) == 0 {
			events = append(events, event.Infof("%s: duplicates %s and was dropped", d.Name, out[n-1].Name))
			continue
		}
		out = append(out, d)
	}

	logger.Debug("Thresholds screened",
		zap.Int("declared", len(decls)),
		zap.Int("accepted", len(out)),
	)

	return out, events
}

// CheckDimensions returns a WARN event when left and right carry different dimensions
func (s *Screener) CheckDimensions(left, right dimension.Dimensioned, what string) []event.Event {
	if dimension.Match(left, right) {
		return nil
	}
	return []event.Event{
		event.Warnf("%s: dimension mismatch between %s and %s", what, label(left), label(right)),
	}
}

// CheckThresholdUnits warns for every ordinary threshold whose units differ from the data.
// Probability thresholds are dimensionless by construction and are skipped.
func (s *Screener) CheckThresholdUnits(declared []Declared, data dimension.Dimensioned) []event.Event {
	var events []event.Event
	for _, d := range declared {
		if d.IsProbability() {
			continue
		}
		events = append(events, s.CheckDimensions(d, data, d.Name)...)
	}
	return events
}

// CheckMissing reports how many values of v are missing. Values are not filtered.
func (s *Screener) CheckMissing(name string, v values.Vector) []event.Event {
	if !s.config.MissingCheck {
		return nil
	}
	n := missing.CountMissing(v.Doubles())
	if n == 0 {
		return nil
	}
	return []event.Event{event.Infof("%s: %d of %d values are missing", name, n, v.Len())}
}

func build(name string, decl models.ThresholdDeclaration) (Declared, error) {
	op, err := threshold.ParseOperator(decl.Operator)
	if err != nil {
		return Declared{}, err
	}

	d := Declared{Name: name, Units: dimension.Of(decl.Dimension)}

	if decl.Probability {
		p, err := threshold.NewProbability(decl.Value, decl.Upper, op)
		if err != nil {
			return Declared{}, err
		}
		d.Threshold = p.Threshold()
		d.Probability = &p
		d.Units = dimension.Dimensionless()
		return d, nil
	}

	t, err := threshold.New(decl.Value, decl.Upper, op)
	if err != nil {
		return Declared{}, err
	}
	d.Threshold = t
	return d, nil
}

func edgeWarnings(name string, p threshold.ProbabilityThreshold) []event.Event {
	var events []event.Event
	if v := p.Value(); v == 0 || v == 1 {
		events = append(events, event.Warnf("%s: probability lower bound %v is at the edge of [0,1]", name, v))
	}
	if u, ok := p.UpperValue(); ok && (u == 0 || u == 1) {
		events = append(events, event.Warnf("%s: probability upper bound %v is at the edge of [0,1]", name, u))
	}
	return events
}

func describe(err error) string {
	var de *threshold.DomainError
	if errors.As(err, &de) {
		return fmt.Sprintf("probability %s bound %v is outside [0,1]", de.Bound, de.Value)
	}
	return err.Error()
}

func describeDeclared(d Declared) string {
	if d.IsProbability() {
		return d.Probability.String()
	}
	if d.Units.HasDimension() {
		return fmt.Sprintf("%s %s", d.Threshold, d.Units)
	}
	return d.Threshold.String()
}

func label(d dimension.Dimensioned) string {
	if !d.HasDimension() {
		return "dimensionless"
	}
	return d.Dimension()
}
