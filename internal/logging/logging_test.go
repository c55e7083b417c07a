package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenSplitsLevels(t *testing.T) {
	dir := t.TempDir()
	errorPath := filepath.Join(dir, "errors.log")
	combinedPath := filepath.Join(dir, "combined.log")

	log, closer, err := Open(errorPath, combinedPath)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	log.Info("info entry")
	log.Error("error entry")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	errorData, err := os.ReadFile(errorPath)
	if err != nil {
		t.Fatalf("Failed to read error log: %v", err)
	}
	combinedData, err := os.ReadFile(combinedPath)
	if err != nil {
		t.Fatalf("Failed to read combined log: %v", err)
	}

	if strings.Contains(string(errorData), "info entry") {
		t.Error("Info entries must not reach the error log")
	}
	if !strings.Contains(string(errorData), "error entry") {
		t.Error("Error entries must reach the error log")
	}
	if !strings.Contains(string(combinedData), "info entry") ||
		!strings.Contains(string(combinedData), "error entry") {
		t.Error("The combined log must receive both levels")
	}
}

func TestOpenAppends(t *testing.T) {
	dir := t.TempDir()
	errorPath := filepath.Join(dir, "errors.log")
	combinedPath := filepath.Join(dir, "combined.log")

	for i := 0; i < 2; i++ {
		log, closer, err := Open(errorPath, combinedPath)
		if err != nil {
			t.Fatalf("Open %d returned error: %v", i, err)
		}
		log.Info("run entry")
		closer.Close()
	}

	data, err := os.ReadFile(combinedPath)
	if err != nil {
		t.Fatalf("Failed to read combined log: %v", err)
	}
	if got := strings.Count(string(data), "run entry"); got != 2 {
		t.Errorf("Expected 2 appended entries, got %d", got)
	}
}
