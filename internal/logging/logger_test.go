package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNewLoggerReturnsUsableLogger(t *testing.T) {
	logger := NewLogger(Config{Level: "debug", Service: "draft-board-service", Version: "test"})
	if logger == nil {
		t.Fatalf("expected logger")
	}
	logger = NewLogger(Config{Format: "json"})
	if logger == nil {
		t.Fatalf("expected json logger")
	}
}

func TestFromContext(t *testing.T) {
	fallback := slog.Default()
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback logger when none stored")
	}

	stored := slog.Default().With("k", "v")
	ctx := WithLogger(context.Background(), stored)
	if got := FromContext(ctx, fallback); got != stored {
		t.Fatalf("expected stored logger")
	}

	if got := FromContext(nil, fallback); got != fallback { //nolint:staticcheck // nil context is part of the contract
		t.Fatalf("expected fallback for nil context")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", nil)
}
