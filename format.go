package hues

import (
	"fmt"
	"strings"
)

// BufferSize is the scratch capacity used for a single rendered log line.
// Output beyond it is silently truncated.
const BufferSize = 4096

// maxTokenLen bounds specifier tokens and native directive probes.
const maxTokenLen = 3

// Handler writes the formatted value for one specifier into dst, clamped to
// len(dst), and returns the number of bytes the value would occupy were the
// buffer unbounded. sub is the byte immediately following the prefix in the
// template, letting one handler disambiguate same-letter variants. A handler
// consumes zero or one value from args.
type Handler func(dst []byte, sub byte, args *Args) int

// Specifier binds a token of one to three bytes to its handler. Tables are
// ordered: within a token length, earlier registrations win.
type Specifier struct {
	Token   string
	Handler Handler
}

// Format renders template into dst using the logger's prefix and specifier
// table. Characters that are not part of a recognized specifier are copied
// verbatim; native %-directives receive no special treatment. It returns the
// logical number of bytes produced, which exceeds len(dst) when the output
// was truncated.
func (l *Logger) Format(dst []byte, template string, args ...any) int {
	prefix, specifiers := l.formatTable()
	return render(dst, prefix, specifiers, template, NewArgs(args...), false)
}

// Formatf renders template like Format but additionally recognizes native
// fmt %-directives, each consuming exactly one argument. A %% escape
// renders as a literal percent sign without consuming anything; directives
// that do not format cleanly are copied through as literal text.
func (l *Logger) Formatf(dst []byte, template string, args ...any) int {
	prefix, specifiers := l.formatTable()
	return render(dst, prefix, specifiers, template, NewArgs(args...), true)
}

// matchSpecifier finds the best specifier for the template bytes following
// the prefix. Longest token wins; registration order breaks ties within a
// length. Without a match it reports a one-byte span so the caller copies
// the prefix and the byte after it verbatim.
func matchSpecifier(specifiers []Specifier, rest string) (Handler, int) {
	for length := maxTokenLen; length >= 1; length-- {
		if length > len(rest) {
			continue
		}
		for _, s := range specifiers {
			if len(s.Token) == length && rest[:length] == s.Token {
				return s.Handler, length
			}
		}
	}
	return nil, 1
}

// render is the single engine behind both variants; printfFallback selects
// the extended behavior.
func render(dst []byte, prefix byte, specifiers []Specifier, template string, args *Args, printfFallback bool) int {
	out := 0     // bytes placed into dst
	logical := 0 // bytes the output would occupy unbounded
	i := 0
	for i < len(template) {
		switch {
		case template[i] == prefix:
			handler, tokenLen := matchSpecifier(specifiers, template[i+1:])
			if handler == nil {
				// Fallback to literal: the prefix and the byte after it.
				span := 2
				if i+1 >= len(template) {
					span = 1
				}
				for j := 0; j < span; j++ {
					if out < len(dst) {
						dst[out] = template[i+j]
						out++
					}
					logical++
				}
				i += span
				continue
			}
			produced := handler(dst[out:], template[i+1], args)
			logical += produced
			if produced > len(dst)-out {
				out = len(dst)
			} else {
				out += produced
			}
			i += tokenLen + 1
		case printfFallback && template[i] == '%':
			i, out, logical = renderDirective(dst, template, i, args, out, logical)
		default:
			if out < len(dst) {
				dst[out] = template[i]
				out++
			}
			logical++
			i++
		}
	}
	return logical
}

// renderDirective probes native directive widths 1..3 at template[i] == '%'.
// The probe formats against a peeked argument, so the shared cursor advances
// only when a candidate is accepted. A candidate succeeds when fmt produced
// something other than the directive literal, stayed under the scratch
// limit, and reported no error marker. The markers are matched in fmt's
// anchored "%!(" and "%!verb(" shapes so an argument value that merely
// contains "%!" still formats. When every width fails, the directive span
// is copied through unchanged.
func renderDirective(dst []byte, template string, i int, args *Args, out, logical int) (int, int, int) {
	// A %% escape is literal text: one '%', no argument.
	if i+1 < len(template) && template[i+1] == '%' {
		if out < len(dst) {
			dst[out] = '%'
			out++
		}
		logical++
		return i + 2, out, logical
	}
	maxProbe := len(template) - i - 1
	if maxProbe > maxTokenLen {
		maxProbe = maxTokenLen
	}
	lastLen := 0
	for length := 1; length <= maxProbe; length++ {
		lastLen = length
		directive := template[i : i+length+1]
		arg, ok := args.peek()
		if !ok {
			continue
		}
		rendered := fmt.Sprintf(directive, arg)
		if len(rendered) >= BufferSize || rendered == directive || formatFailed(rendered, directive) {
			continue
		}
		// Substitution happened: exactly one value was consumed.
		args.Next()
		for j := 0; j < len(rendered); j++ {
			if out < len(dst) {
				dst[out] = rendered[j]
				out++
			}
			logical++
		}
		return i + length + 1, out, logical
	}
	// Copy the probed span as literal text, preserving forward progress.
	span := lastLen + 1
	for j := 0; j < span; j++ {
		if out < len(dst) {
			dst[out] = template[i+j]
			out++
		}
		logical++
	}
	return i + span, out, logical
}

// formatFailed reports whether fmt flagged the probe: a bad or incomplete
// directive renders as "%!(...)" or "%!v(...)" where v is the probed verb.
func formatFailed(rendered, directive string) bool {
	verb := directive[len(directive)-1]
	return strings.Contains(rendered, "%!(") ||
		strings.Contains(rendered, "%!"+string(verb)+"(")
}
