package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"DEBUG":   Debug,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestLogger_JSON_WithFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, App: "pets", Out: &buf})

	l.Info("skipped", nil)
	l.With(map[string]any{"pet_id": "1"}).Warn("log fetch failed", map[string]any{
		"collection": "weight_logs",
		"err":        errors.New("boom"),
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (info filtered), got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if entry["msg"] != "log fetch failed" || entry["level"] != "WARN" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if entry["app"] != "pets" || entry["pet_id"] != "1" || entry["collection"] != "weight_logs" {
		t.Fatalf("missing fields: %#v", entry)
	}
	if entry["err"] != "boom" {
		t.Fatalf("expected error rendered as string, got %#v", entry["err"])
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: ParseFormat("text"), Out: &buf})
	l.Debug("hello", map[string]any{"b": 2, "a": 1})

	out := buf.String()
	if !strings.Contains(out, "msg=hello") || !strings.Contains(out, "a=1 b=2") {
		t.Fatalf("unexpected text output: %q", out)
	}
}
