package hues_test

import (
	"testing"

	"github.com/skanderjeddi/hues"
)

func TestLevelString(t *testing.T) {
	cases := []struct {
		level hues.Level
		want  string
	}{
		{hues.TraceLevel, "TRACE"},
		{hues.DebugLevel, "DEBUG"},
		{hues.InfoLevel, "INFO"},
		{hues.WarnLevel, "WARN"},
		{hues.SevereLevel, "SEVERE"},
		{hues.CriticalLevel, "CRITICAL"},
		{hues.UnknownLevel, "???"},
		{hues.Level(42), "???"},
	}
	for _, tc := range cases {
		if got := tc.level.String(); got != tc.want {
			t.Fatalf("level %d: got %q want %q", tc.level, got, tc.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want hues.Level
		ok   bool
	}{
		{"trace", hues.TraceLevel, true},
		{"TRACE", hues.TraceLevel, true},
		{" debug ", hues.DebugLevel, true},
		{"info", hues.InfoLevel, true},
		{"warn", hues.WarnLevel, true},
		{"warning", hues.WarnLevel, true},
		{"severe", hues.SevereLevel, true},
		{"error", hues.SevereLevel, true},
		{"critical", hues.CriticalLevel, true},
		{"fatal", hues.CriticalLevel, true},
		{"", hues.UnknownLevel, false},
		{"verbose", hues.UnknownLevel, false},
	}
	for _, tc := range cases {
		got, ok := hues.ParseLevel(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("HUES_TEST_LEVEL", "severe")
	if level, ok := hues.LevelFromEnv("HUES_TEST_LEVEL"); !ok || level != hues.SevereLevel {
		t.Fatalf("expected severe from env, got %v, %v", level, ok)
	}
	if _, ok := hues.LevelFromEnv("HUES_TEST_LEVEL_MISSING"); ok {
		t.Fatalf("expected missing key to report false")
	}
	if _, ok := hues.LevelFromEnv(""); ok {
		t.Fatalf("expected empty key to report false")
	}
}
