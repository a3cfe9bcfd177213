package logging_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"bog/internal/util/logging"
)

func TestNewLogger_Environments(t *testing.T) {
	for _, env := range []string{"", "production", "Development"} {
		if _, err := logging.NewLogger(&logging.LoggerConfig{Environment: env}); err != nil {
			t.Fatalf("env %q: %v", env, err)
		}
	}
	if _, err := logging.NewLogger(&logging.LoggerConfig{Environment: "staging"}); err == nil {
		t.Fatal("expected error for unknown env")
	}
}

func TestLogger_KeyValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := logging.New(zap.New(core)).Named("store")

	l.Info("rerooted", "fingerprint", "abc")
	l.Warn("chmod failed", "dir", "/x")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if entries[0].LoggerName != "store" || entries[0].ContextMap()["fingerprint"] != "abc" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}
