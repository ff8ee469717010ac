package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "maeplot.log")

	if err := Init(Options{Path: logPath}); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	Logger().Info("structured", zap.String("basis", "chebyshev"))
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), data)
	}

	var first, second map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if first["msg"] != "hello world" {
		t.Fatalf("expected LogEvent content, got: %v", first["msg"])
	}
	if second["basis"] != "chebyshev" {
		t.Fatalf("expected structured field, got: %v", second)
	}
	if first["run_id"] == "" || first["run_id"] != second["run_id"] {
		t.Fatalf("expected a shared run_id, got %v and %v", first["run_id"], second["run_id"])
	}
}

func TestInitDiscard(t *testing.T) {
	if err := Init(Options{}); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogEvent("discard")
	if Logger().Core().Enabled(zap.InfoLevel) {
		t.Fatal("expected a no-op logger without outputs")
	}
	if err := Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}

func TestReinitAppends(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	for i := 0; i < 2; i++ {
		if err := Init(Options{Path: logPath}); err != nil {
			t.Fatalf("Init error: %v", err)
		}
		LogEvent("run %d", i)
	}
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "run 0") || !strings.Contains(string(data), "run 1") {
		t.Fatalf("expected both runs in log, got %s", data)
	}
}
