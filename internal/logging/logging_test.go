package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fogmaze.log")

	log, closer, err := New(Options{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	log.WithField("session_id", "abc").Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `"session_id":"abc"`) {
		t.Errorf("log file missing structured field: %s", content)
	}
}

func TestNewDefaultsToInfo(t *testing.T) {
	log, _, err := New(Options{Level: "nonsense"})
	if err != nil {
		t.Fatal(err)
	}
	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", log.GetLevel())
	}
}
