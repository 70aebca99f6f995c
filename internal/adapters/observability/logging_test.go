package observability_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cupid_fragments/internal/adapters/observability"
)

func TestNewLogger_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger(&buf, "prod", "api", "warn")

	l.Info().Msg("dropped")
	l.Warn().Str("fragment", "header").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("info should be filtered at warn level, got %d lines", len(lines))
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if rec["service"] != "api" || rec["fragment"] != "header" || rec["message"] != "kept" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestNewLogger_DevConsole(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger(&buf, "dev", "cli", "")
	l.Info().Msg("hello")
	if strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), "hello") {
		t.Fatalf("dev logger should write console lines: %q", buf.String())
	}
}
