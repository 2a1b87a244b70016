package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = `
logging:
  level: debug
  format: console
screening:
  probabilityWarnOnEdge: false
thresholds:
  - name: flood stage
    value: 3.5
    operator: GREATER_EQUAL
    dimension: M
  - name: likely
    value: 0.2
    upper: 0.8
    operator: BETWEEN
    probability: true
`

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.OutputPath != "stderr" {
		t.Errorf("expected default output stderr, got %s", cfg.Logging.OutputPath)
	}
	if cfg.Screening.ProbabilityWarnOnEdge {
		t.Error("expected probabilityWarnOnEdge to be overridden to false")
	}
	if !cfg.Screening.MissingCheck {
		t.Error("expected missingCheck default true")
	}

	if len(cfg.Thresholds) != 2 {
		t.Fatalf("expected 2 thresholds, got %d", len(cfg.Thresholds))
	}
	first := cfg.Thresholds[0]
	if first.Name != "flood stage" || first.Value != 3.5 || first.Upper != nil || first.Dimension != "M" {
		t.Errorf("unexpected first threshold %+v", first)
	}
	second := cfg.Thresholds[1]
	if second.Upper == nil || *second.Upper != 0.8 || !second.Probability {
		t.Errorf("unexpected second threshold %+v", second)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FVALUES_LOGGING_LEVEL", "warn")
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env override warn, got %s", cfg.Logging.Level)
	}
}
