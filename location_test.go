package hues_test

import (
	"strings"
	"testing"

	"github.com/skanderjeddi/hues"
)

func TestHere(t *testing.T) {
	location := hues.Here()
	if location.File != "location_test.go" {
		t.Fatalf("file: got %q want %q", location.File, "location_test.go")
	}
	if location.Function != "TestHere" {
		t.Fatalf("function: got %q want %q", location.Function, "TestHere")
	}
	if location.Line <= 0 {
		t.Fatalf("line: got %d", location.Line)
	}
}

func TestLocationString(t *testing.T) {
	location := hues.Location{File: "server.go", Function: "handle", Line: 42}
	if got := location.String(); got != "handle @ server.go:42" {
		t.Fatalf("got %q", got)
	}
}

func TestConvenienceMethodsCaptureCallSite(t *testing.T) {
	var buf strings.Builder
	logger := hues.NewWithOptions(&buf, hues.Options{NoColor: true})
	logger.Info("ready\n")
	out := buf.String()
	if !strings.Contains(out, "location_test.go") {
		t.Fatalf("expected call site file in header, got %q", out)
	}
	if !strings.Contains(out, "TestConvenienceMethodsCaptureCallSite") {
		t.Fatalf("expected calling function in header, got %q", out)
	}
}
