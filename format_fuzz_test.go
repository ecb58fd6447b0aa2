package hues_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/skanderjeddi/hues"
)

func FuzzFormatVariants(f *testing.F) {
	seeds := []string{
		"",
		"plain text",
		"#d #t #L #c",
		"#zz literal fallback",
		"%d and %s and %zz",
		"%%%%",
		"#",
		"%",
		"trailing prefix #",
		"#ptl %05d #F:#l",
	}
	for _, seed := range seeds {
		f.Add(seed, "argument", 42)
	}
	f.Fuzz(func(t *testing.T, template string, s string, n int) {
		logger := hues.New(io.Discard)

		dst := make([]byte, 256)
		strict := logger.Format(dst, template, hues.InfoLevel, s, n)
		if strict < 0 {
			t.Fatalf("negative logical length %d", strict)
		}

		extended := make([]byte, 256)
		if got := logger.Formatf(extended, template, hues.InfoLevel, s, n); got < 0 {
			t.Fatalf("negative logical length %d", got)
		}

		// Rendering must be repeatable for templates without #d/#t.
		if !bytes.ContainsAny([]byte(template), "dt") {
			again := make([]byte, 256)
			if got := logger.Format(again, template, hues.InfoLevel, s, n); got != strict || !bytes.Equal(dst, again) {
				t.Fatalf("strict render not repeatable for %q", template)
			}
		}
	})
}
