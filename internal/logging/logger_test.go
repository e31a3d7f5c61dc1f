// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "unknown", want: slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q): expected %v got %v", tc.in, tc.want, got)
		}
	}
}

func TestUseJSON(t *testing.T) {
	cases := []struct {
		env    string
		format string
		want   bool
	}{
		{env: "dev", format: "", want: false},
		{env: "prod", format: "", want: true},
		{env: "dev", format: "json", want: true},
		{env: "prod", format: "text", want: false},
		{env: "prod", format: "JSON", want: true},
		{env: "dev", format: "bogus", want: false},
	}

	for _, tc := range cases {
		if got := useJSON(tc.env, tc.format); got != tc.want {
			t.Fatalf("useJSON(%q, %q): expected %v got %v", tc.env, tc.format, got, tc.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "")
	if logger := NewLogger("dev"); logger == nil {
		t.Fatal("expected dev logger")
	}
	if logger := NewLogger("prod"); logger == nil {
		t.Fatal("expected prod logger")
	}
}
