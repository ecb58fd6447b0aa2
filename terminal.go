package hues

import (
	"io"

	"golang.org/x/term"
)

// One file for all platforms: x/term carries the per-OS ioctl differences,
// so no build-tagged variants are needed here.
type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
