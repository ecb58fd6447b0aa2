package hues

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/skanderjeddi/hues/ansi"
)

// DefaultHeaderFormat is the header template installed by New and Init. It
// renders the date, time, level name and full call site ahead of every
// message body.
const DefaultHeaderFormat = "(#d-#t) [#L in #c]  "

// DefaultPrefix is the specifier escape character installed by New and Init.
const DefaultPrefix = '#'

// Message is one log record: a severity, a template string and the call
// site it was produced from. Messages are transient; they exist for the
// duration of a single render.
type Message struct {
	Level    Level
	Contents string
	Location Location
}

// Options configures a Logger built by NewWithOptions. The zero value gives
// the stock configuration: trace level, default header and prefix, dark
// theme, built-in specifiers, color on.
type Options struct {
	// MinLevel sets the minimum level the logger will emit.
	MinLevel Level

	// HeaderFormat overrides the header template. Empty selects
	// DefaultHeaderFormat.
	HeaderFormat string

	// Prefix overrides the specifier escape character. Zero selects
	// DefaultPrefix.
	Prefix byte

	// Theme overrides the level color table. Nil selects DarkTheme.
	Theme Theme

	// Specifiers are appended after the built-in table, so they can shadow a
	// built-in token only by being longer, never by replacing it.
	Specifiers []Specifier

	// ErrorWriter receives diagnostics such as missing theme entries.
	// Nil selects os.Stderr.
	ErrorWriter io.Writer

	// NoColor forces escape codes off regardless of the other color knobs.
	NoColor bool

	// AutoColor enables color only when the destination is a terminal
	// (or ForceColor is set). When false, color is unconditionally on,
	// matching the traditional behavior.
	AutoColor bool

	// ForceColor bypasses AutoColor's terminal detection.
	ForceColor bool
}

// Logger renders colorized log lines to its writer. Each Logger owns its
// whole configuration, so independent instances never interfere; the
// accessors are safe for concurrent use.
type Logger struct {
	mu           sync.RWMutex
	writer       io.Writer
	errWriter    io.Writer
	minLevel     Level
	headerFormat string
	prefix       byte
	specifiers   []Specifier
	theme        Theme
	color        bool
}

// New returns a Logger writing to w with the stock configuration. A nil
// writer selects os.Stdout.
func New(w io.Writer) *Logger {
	return NewWithOptions(w, Options{})
}

// NewAutoColor returns a stock Logger that emits color only when w is a
// terminal.
func NewAutoColor(w io.Writer) *Logger {
	return NewWithOptions(w, Options{AutoColor: true})
}

// NewWithOptions builds a Logger with explicit settings.
func NewWithOptions(w io.Writer, opts Options) *Logger {
	if w == nil {
		w = os.Stdout
	}
	errWriter := opts.ErrorWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	headerFormat := opts.HeaderFormat
	if headerFormat == "" {
		headerFormat = DefaultHeaderFormat
	}
	prefix := opts.Prefix
	if prefix == 0 {
		prefix = DefaultPrefix
	}
	theme := opts.Theme
	if theme == nil {
		theme = DarkTheme()
	}
	specifiers := builtinSpecifiers()
	specifiers = append(specifiers, opts.Specifiers...)
	color := !opts.NoColor
	if color && opts.AutoColor {
		color = opts.ForceColor || isTerminal(w)
	}
	return &Logger{
		writer:       w,
		errWriter:    errWriter,
		minLevel:     opts.MinLevel,
		headerFormat: headerFormat,
		prefix:       prefix,
		specifiers:   specifiers,
		theme:        theme,
		color:        color,
	}
}

// MinLevel returns the minimum level the logger emits.
func (l *Logger) MinLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.minLevel
}

// SetMinLevel sets the minimum level the logger emits.
func (l *Logger) SetMinLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// MinLevelFromEnv configures the minimum level from the value of key in the
// environment. Recognized values are the same as ParseLevel; missing or
// invalid values leave the logger unchanged. It returns the receiver.
func (l *Logger) MinLevelFromEnv(key string) *Logger {
	if level, ok := LevelFromEnv(key); ok {
		l.SetMinLevel(level)
	}
	return l
}

// HeaderFormat returns the header template rendered ahead of every message.
func (l *Logger) HeaderFormat() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.headerFormat
}

// SetHeaderFormat replaces the header template.
func (l *Logger) SetHeaderFormat(headerFormat string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.headerFormat = headerFormat
}

// Prefix returns the specifier escape character.
func (l *Logger) Prefix() byte {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.prefix
}

// SetPrefix replaces the specifier escape character.
func (l *Logger) SetPrefix(prefix byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}

// Theme returns the active level color table.
func (l *Logger) Theme() Theme {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.theme
}

// SetTheme replaces the active level color table.
func (l *Logger) SetTheme(theme Theme) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.theme = theme
}

// UseDarkTheme installs the stock dark theme.
func (l *Logger) UseDarkTheme() { l.SetTheme(DarkTheme()) }

// UseLightTheme installs the stock light theme.
func (l *Logger) UseLightTheme() { l.SetTheme(LightTheme()) }

// Specifiers returns the active specifier table in match order.
func (l *Logger) Specifiers() []Specifier {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.specifiers
}

// SetSpecifiers replaces the whole specifier table.
func (l *Logger) SetSpecifiers(specifiers []Specifier) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.specifiers = specifiers
}

// Register appends a specifier to the table. Tokens must be one to three
// bytes and the handler non-nil. Earlier registrations of the same token
// keep winning at that length; a later registration can only take
// precedence through a longer token.
func (l *Logger) Register(token string, handler Handler) error {
	if len(token) < 1 || len(token) > maxTokenLen {
		return fmt.Errorf("hues: specifier token %q must be 1 to %d bytes", token, maxTokenLen)
	}
	if handler == nil {
		return fmt.Errorf("hues: specifier %q registered with nil handler", token)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.specifiers = append(l.specifiers, Specifier{Token: token, Handler: handler})
	return nil
}

// Output returns the destination writer.
func (l *Logger) Output() io.Writer {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.writer
}

// SetOutput redirects rendered lines to w. A nil writer selects os.Stdout.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = w
}

// SetErrorWriter redirects diagnostics to w. A nil writer selects os.Stderr.
func (l *Logger) SetErrorWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errWriter = w
}

func (l *Logger) formatTable() (byte, []Specifier) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.prefix, l.specifiers
}

func (l *Logger) shouldLog(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.minLevel
}

// Trace logs contents at TraceLevel, capturing the caller's location.
func (l *Logger) Trace(contents string, args ...any) { l.logCall(TraceLevel, contents, args) }

// Debug logs contents at DebugLevel, capturing the caller's location.
func (l *Logger) Debug(contents string, args ...any) { l.logCall(DebugLevel, contents, args) }

// Info logs contents at InfoLevel, capturing the caller's location.
func (l *Logger) Info(contents string, args ...any) { l.logCall(InfoLevel, contents, args) }

// Warn logs contents at WarnLevel, capturing the caller's location.
func (l *Logger) Warn(contents string, args ...any) { l.logCall(WarnLevel, contents, args) }

// Severe logs contents at SevereLevel, capturing the caller's location.
func (l *Logger) Severe(contents string, args ...any) { l.logCall(SevereLevel, contents, args) }

// Critical logs contents at CriticalLevel, capturing the caller's location.
func (l *Logger) Critical(contents string, args ...any) { l.logCall(CriticalLevel, contents, args) }

// logCall sits exactly one frame below the exported level methods so the
// capture skip stays constant.
func (l *Logger) logCall(level Level, contents string, args []any) {
	if !l.shouldLog(level) {
		return
	}
	l.Log(Message{Level: level, Contents: contents, Location: capture(3)}, args...)
}

// Log renders msg through the header and message templates and writes the
// result to the output writer in a single call.
//
// The header and body share one argument cursor seeded with the message
// level, then the message location, then args in order. The built-in header
// specifiers consume the two seeded values, so args line up with the
// specifiers of the message body alone.
func (l *Logger) Log(msg Message, args ...any) {
	l.mu.RLock()
	writer := l.writer
	errWriter := l.errWriter
	minLevel := l.minLevel
	headerFormat := l.headerFormat
	prefix := l.prefix
	specifiers := l.specifiers
	theme := l.theme
	color := l.color
	l.mu.RUnlock()

	if msg.Level < minLevel {
		return
	}
	style, ok := theme.Style(msg.Level)
	if !ok {
		fmt.Fprintf(errWriter, "hues: no style configured for level %d\n", msg.Level)
		return
	}

	bufp := acquireBuffer()
	defer releaseBuffer(bufp)
	buf := *bufp

	out := 0
	if color {
		b := buf[:0]
		b = ansi.AppendBackground(b, style.Background.R, style.Background.G, style.Background.B)
		b = ansi.AppendForeground(b, style.Foreground.R, style.Foreground.G, style.Foreground.B)
		out = len(b)
	}

	values := make([]any, 0, len(args)+2)
	values = append(values, msg.Level, msg.Location)
	values = append(values, args...)
	cursor := NewArgs(values...)

	out = clampAdvance(out, render(buf[out:], prefix, specifiers, headerFormat, cursor, true))
	out = clampAdvance(out, render(buf[out:], prefix, specifiers, msg.Contents, cursor, true))

	if color {
		// The reset is spliced in ahead of a trailing newline so the next
		// terminal line starts unstyled.
		if out > 0 && buf[out-1] == '\n' {
			out--
			out = clampAdvance(out, place(buf[out:], ansi.Reset))
			if out < len(buf) {
				buf[out] = '\n'
				out++
			}
		} else {
			out = clampAdvance(out, place(buf[out:], ansi.Reset))
		}
	}
	_, _ = writer.Write(buf[:out])
}

// clampAdvance adds a logical render length to a buffer position without
// running past the scratch capacity.
func clampAdvance(out, produced int) int {
	out += produced
	if out > BufferSize {
		return BufferSize
	}
	return out
}
