package hues

import (
	"io"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger = New(nil)
)

// Default returns the package-level logger the top-level functions operate
// on.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Init resets the package-level logger to the stock configuration: trace
// minimum level, '#' prefix, the default header template, the built-in
// specifier table and the dark theme, writing to standard output.
func Init() {
	SetDefault(New(nil))
}

// Trace logs contents on the default logger at TraceLevel.
func Trace(contents string, args ...any) { Default().logCall(TraceLevel, contents, args) }

// Debug logs contents on the default logger at DebugLevel.
func Debug(contents string, args ...any) { Default().logCall(DebugLevel, contents, args) }

// Info logs contents on the default logger at InfoLevel.
func Info(contents string, args ...any) { Default().logCall(InfoLevel, contents, args) }

// Warn logs contents on the default logger at WarnLevel.
func Warn(contents string, args ...any) { Default().logCall(WarnLevel, contents, args) }

// Severe logs contents on the default logger at SevereLevel.
func Severe(contents string, args ...any) { Default().logCall(SevereLevel, contents, args) }

// Critical logs contents on the default logger at CriticalLevel.
func Critical(contents string, args ...any) { Default().logCall(CriticalLevel, contents, args) }

// Log renders msg through the default logger.
func Log(msg Message, args ...any) {
	Default().Log(msg, args...)
}

// Format renders template with the default logger's specifier table, custom
// specifiers only.
func Format(dst []byte, template string, args ...any) int {
	return Default().Format(dst, template, args...)
}

// Formatf renders template with the default logger's specifier table plus
// native %-directive fallback.
func Formatf(dst []byte, template string, args ...any) int {
	return Default().Formatf(dst, template, args...)
}

// Register appends a specifier to the default logger's table.
func Register(token string, handler Handler) error {
	return Default().Register(token, handler)
}

// SetMinLevel sets the default logger's minimum level.
func SetMinLevel(level Level) { Default().SetMinLevel(level) }

// SetHeaderFormat replaces the default logger's header template.
func SetHeaderFormat(headerFormat string) { Default().SetHeaderFormat(headerFormat) }

// SetPrefix replaces the default logger's specifier escape character.
func SetPrefix(prefix byte) { Default().SetPrefix(prefix) }

// SetTheme replaces the default logger's level color table.
func SetTheme(theme Theme) { Default().SetTheme(theme) }

// UseDarkTheme installs the stock dark theme on the default logger.
func UseDarkTheme() { Default().UseDarkTheme() }

// UseLightTheme installs the stock light theme on the default logger.
func UseLightTheme() { Default().UseLightTheme() }

// SetOutput redirects the default logger's rendered lines to w.
func SetOutput(w io.Writer) { Default().SetOutput(w) }
