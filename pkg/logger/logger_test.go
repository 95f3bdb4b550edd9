package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestGet_Default(t *testing.T) {
	if found := Get(context.Background()); found != slog.Default() {
		t.Fatal("Get(): wanted slog.Default() for a bare context")
	}
}

func TestSetGet(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug")
	if err != nil {
		t.Fatalf("New(): unexpected err: %v", err)
	}

	Get(Set(context.Background(), l)).Debug("hello", "n", 1)
	if found := buf.String(); !strings.Contains(found, `"msg":"hello"`) {
		t.Fatalf("wanted JSON record with `hello`; found `%s`", found)
	}
}

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		input  string
		wanted slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	} {
		found, err := ParseLevel(tc.input)
		if err != nil {
			t.Fatalf("ParseLevel(%q): unexpected err: %v", tc.input, err)
		}
		if found != tc.wanted {
			t.Fatalf("ParseLevel(%q): wanted `%v`; found `%v`", tc.input, tc.wanted, found)
		}
	}

	if _, err := ParseLevel("loud"); !errors.Is(err, InvalidLevelErr) {
		t.Fatalf("ParseLevel(loud): wanted `%v`; found `%v`", InvalidLevelErr, err)
	}
}
