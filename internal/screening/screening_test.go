package screening

import (
	"math"
	"strings"
	"testing"

	"github.com/todmy/forecast-values/internal/dimension"
	"github.com/todmy/forecast-values/internal/event"
	"github.com/todmy/forecast-values/internal/missing"
	"github.com/todmy/forecast-values/internal/values"
	"github.com/todmy/forecast-values/pkg/models"
)

func ptr(f float64) *float64 {
	return &f
}

func countByType(events []event.Event) map[event.Type]int {
	counts := make(map[event.Type]int)
	for _, e := range events {
		counts[e.Type()]++
	}
	return counts
}

func findMessage(events []event.Event, typ event.Type, fragment string) bool {
	for _, e := range events {
		if e.Type() == typ && strings.Contains(e.Message(), fragment) {
			return true
		}
	}
	return false
}

func TestBuildThresholds(t *testing.T) {
	s := NewScreener(DefaultConfig())

	decls := []models.ThresholdDeclaration{
		{Name: "flood", Value: 3.5, Operator: ">=", Dimension: "M"},
		{Name: "bad range", Value: 5, Upper: ptr(3), Operator: "between"},
		{Name: "bad prob", Value: 1.5, Operator: "greater", Probability: true},
		{Name: "edge", Value: 0, Upper: ptr(1), Operator: "BETWEEN", Probability: true},
		{Name: "flood again", Value: 3.5, Operator: "GREATER_EQUAL", Dimension: "M"},
		{Value: 1, Operator: "LESS"},
	}

	declared, events := s.BuildThresholds(decls)

	if len(declared) != 3 {
		t.Fatalf("expected 3 accepted thresholds, got %d", len(declared))
	}

	wantOrder := []string{"threshold #6", "flood", "edge"}
	for i, name := range wantOrder {
		if declared[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, declared[i].Name)
		}
	}
	if !declared[2].IsProbability() {
		t.Error("expected edge to be a probability threshold")
	}
	if !declared[1].Threshold.Evaluate(3.5) {
		t.Error("expected flood threshold to hold at 3.5")
	}

	counts := countByType(events)
	if counts[event.Error] != 2 {
		t.Errorf("expected 2 ERROR events, got %d", counts[event.Error])
	}
	if counts[event.Warn] != 2 {
		t.Errorf("expected 2 WARN events, got %d", counts[event.Warn])
	}
	if counts[event.Info] != 1 {
		t.Errorf("expected 1 INFO event, got %d", counts[event.Info])
	}
	if counts[event.Debug] != 4 {
		t.Errorf("expected 4 DEBUG events, got %d", counts[event.Debug])
	}

	if !findMessage(events, event.Error, "bad prob: probability lower bound 1.5 is outside [0,1]") {
		t.Error("expected domain error event naming the lower bound")
	}
	if !findMessage(events, event.Error, "bad range: upper bound 3 is below lower bound 5") {
		t.Error("expected range error event")
	}
	if !findMessage(events, event.Info, "flood again: duplicates flood") {
		t.Error("expected duplicate event")
	}
}

func TestBuildThresholds_EdgeWarningsDisabled(t *testing.T) {
	s := NewScreener(Config{ProbabilityWarnOnEdge: false})

	_, events := s.BuildThresholds([]models.ThresholdDeclaration{
		{Name: "sure", Value: 1, Operator: "EQUAL", Probability: true, Dimension: "CMS"},
	})

	counts := countByType(events)
	if counts[event.Warn] != 1 {
		t.Fatalf("expected only the ignored-dimension warning, got %d warnings", counts[event.Warn])
	}
	if !findMessage(events, event.Warn, "dimension CMS ignored") {
		t.Error("expected ignored-dimension warning")
	}
}

func TestBuildThresholds_UnknownOperator(t *testing.T) {
	s := NewScreener(DefaultConfig())

	declared, events := s.BuildThresholds([]models.ThresholdDeclaration{
		{Name: "odd", Value: 1, Operator: "approx"},
	})
	if len(declared) != 0 {
		t.Errorf("expected no thresholds, got %d", len(declared))
	}
	if !findMessage(events, event.Error, "odd: unknown operator") {
		t.Errorf("expected unknown operator event, got %v", events)
	}
}

func TestCheckDimensions(t *testing.T) {
	s := NewScreener(DefaultConfig())

	obs := dimension.Attach(values.NewVector([]float64{1}), dimension.Of("CMS"))
	fcst := dimension.Attach(values.NewVector([]float64{2}), dimension.Of("CFS"))

	events := s.CheckDimensions(obs, fcst, "streamflow pairs")
	if len(events) != 1 || events[0].Type() != event.Warn {
		t.Fatalf("expected one WARN event, got %v", events)
	}
	if !strings.Contains(events[0].Message(), "between CMS and CFS") {
		t.Errorf("unexpected message %q", events[0].Message())
	}

	if events := s.CheckDimensions(obs, obs, "same"); len(events) != 0 {
		t.Errorf("expected no events for matching dimensions, got %v", events)
	}
}

func TestCheckThresholdUnits(t *testing.T) {
	s := NewScreener(DefaultConfig())

	declared, _ := s.BuildThresholds([]models.ThresholdDeclaration{
		{Name: "stage", Value: 3, Operator: ">", Dimension: "FT"},
		{Name: "flow", Value: 10, Operator: ">", Dimension: "CMS"},
		{Name: "prob", Value: 0.5, Operator: ">", Probability: true},
	})

	events := s.CheckThresholdUnits(declared, dimension.Of("CMS"))
	if len(events) != 1 {
		t.Fatalf("expected one warning, got %v", events)
	}
	if !strings.HasPrefix(events[0].Message(), "stage:") {
		t.Errorf("expected warning for stage, got %q", events[0].Message())
	}
}

func TestCheckMissing(t *testing.T) {
	s := NewScreener(DefaultConfig())
	v := values.NewVector([]float64{1, math.NaN(), missing.Double, 4})

	events := s.CheckMissing("observed", v)
	if len(events) != 1 || events[0].Message() != "observed: 2 of 4 values are missing" {
		t.Fatalf("unexpected events %v", events)
	}
	if v.Len() != 4 {
		t.Error("expected vector to be left unfiltered")
	}

	quiet := NewScreener(Config{MissingCheck: false})
	if events := quiet.CheckMissing("observed", v); len(events) != 0 {
		t.Errorf("expected no events when disabled, got %v", events)
	}
}
