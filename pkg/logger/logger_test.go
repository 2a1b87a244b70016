package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", "json", "stdout"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestInit_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := Init("info", "json", path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { Log = zap.NewNop() }()

	Info("threshold screened")
	Debug("hidden below info")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"message":"threshold screened"`) {
		t.Errorf("expected info line in log, got %s", out)
	}
	if strings.Contains(out, "hidden below info") {
		t.Errorf("expected debug line to be filtered, got %s", out)
	}
}
