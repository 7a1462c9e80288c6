package log

import (
	"context"
	"testing"
)

func TestTestLogger_CapturesEntries(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)

	logger.Info("fit complete", SamplesKey, 100, FeaturesKey, 4)
	logger.Debug("trial accepted", "class", 1.0)

	entries, err := logger.Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["message"] != "fit complete" {
		t.Errorf("message = %v", entries[0]["message"])
	}
	if entries[0][SamplesKey] != float64(100) {
		t.Errorf("samples attr = %v, want 100", entries[0][SamplesKey])
	}
}

func TestTestLogger_LevelFiltering(t *testing.T) {
	logger, _ := NewTestLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	entries, err := logger.Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !logger.ContainsMessage("visible") {
		t.Error("expected warn entry to be captured")
	}
}

func TestTestLogger_With(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)

	tagged := logger.With(ComponentKey, "pattern.rafc")
	tagged.Info("fit complete")

	entries, err := logger.Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0][ComponentKey] != "pattern.rafc" {
		t.Errorf("component attr = %v", entries[0][ComponentKey])
	}
}

func TestTestLoggerProvider(t *testing.T) {
	provider, _ := NewTestLoggerProvider(LevelInfo)

	logger := provider.GetLoggerWithName("test.component")
	if !logger.Enabled(context.Background(), LevelInfo) {
		t.Error("info should be enabled at info level")
	}
	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("debug should be filtered at info level")
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}
