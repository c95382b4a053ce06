package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLevelFallback(t *testing.T) {
	if _, err := Init(Config{Level: "nonsense"}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level fallback, got %s", Log.GetLevel())
	}
}

func TestInitFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nightwatch.log")
	closer, err := Init(Config{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Log.WithField("day", 3).Debug("planned")
	closer.Close()
	defer Init(Config{Level: "info"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read log: %v", err)
	}
	if !strings.Contains(string(data), `"day":3`) || !strings.Contains(string(data), `"msg":"planned"`) {
		t.Errorf("Unexpected log output: %s", data)
	}
}
