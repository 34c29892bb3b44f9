package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_JSON_MergesFieldsAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "pet-wellness-web", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"session_id": "s-1"}).Warn("backend failed", map[string]any{
		"error": errors.New("boom"),
		"":      "ignored",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json line: %v", err)
	}
	if entry["level"] != "warn" || entry["message"] != "backend failed" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if entry["app"] != "pet-wellness-web" || entry["session_id"] != "s-1" || entry["error"] != "boom" {
		t.Fatalf("missing merged fields: %#v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key must be dropped")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"": Info, "DEBUG": Debug, "warning": Warn, "error": Error, "nope": Info}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%s want %s", in, got, want)
		}
	}
}
