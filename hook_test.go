package hues_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/skanderjeddi/hues"
)

func TestHookedTracesAndDelegates(t *testing.T) {
	var buf bytes.Buffer
	logger := hues.NewWithOptions(&buf, hues.Options{NoColor: true})

	sum := hues.Hooked(logger, "sum", func(a, b int) int { return a + b }).(func(int, int) int)
	if got := sum(2, 3); got != 5 {
		t.Fatalf("delegation broken: got %d want 5", got)
	}

	out := buf.String()
	if !strings.Contains(out, "'sum' called at") {
		t.Fatalf("trace line missing: %q", out)
	}
	if !strings.Contains(out, "hook_test.go") {
		t.Fatalf("trace not attributed to the call site: %q", out)
	}
}

func TestHookedVariadic(t *testing.T) {
	var buf bytes.Buffer
	logger := hues.NewWithOptions(&buf, hues.Options{NoColor: true})

	join := hues.Hooked(logger, "join", func(sep string, parts ...string) string {
		return strings.Join(parts, sep)
	}).(func(string, ...string) string)

	if got := join("-", "a", "b", "c"); got != "a-b-c" {
		t.Fatalf("variadic delegation broken: got %q", got)
	}
	if !strings.Contains(buf.String(), "'join' called at") {
		t.Fatalf("trace line missing: %q", buf.String())
	}
}

func TestHookedBelowMinLevelStaysQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := hues.NewWithOptions(&buf, hues.Options{NoColor: true, MinLevel: hues.InfoLevel})

	ping := hues.Hooked(logger, "ping", func() bool { return true }).(func() bool)
	if !ping() {
		t.Fatalf("delegation broken")
	}
	if buf.Len() != 0 {
		t.Fatalf("trace level disabled but output emitted: %q", buf.String())
	}
}

func TestHookedRejectsNonFunctions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-function input")
		}
	}()
	hues.Hooked(nil, "nope", 42)
}
