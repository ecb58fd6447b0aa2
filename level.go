package hues

import (
	"os"
	"strings"
)

// Level defines log severities, ordered from most verbose to most severe.
type Level int

const (
	// TraceLevel defines trace log level.
	TraceLevel Level = iota
	// DebugLevel defines debug log level.
	DebugLevel
	// InfoLevel defines info log level.
	InfoLevel
	// WarnLevel defines warn log level.
	WarnLevel
	// SevereLevel defines severe log level.
	SevereLevel
	// CriticalLevel defines critical log level.
	CriticalLevel
	// UnknownLevel defines the catch-all level for unclassified messages.
	UnknownLevel
)

// String returns the display name of the level. Levels outside the known
// range render as the unknown marker.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case SevereLevel:
		return "SEVERE"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "???"
	}
}

// ParseLevel converts a textual level into a Level value. It accepts values
// such as "trace", "debug", "info", "warn", "warning", "severe", "error",
// "critical" and "fatal" (case insensitive). The boolean reports whether the
// input was recognized; unrecognized input yields UnknownLevel.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "severe", "error":
		return SevereLevel, true
	case "critical", "fatal":
		return CriticalLevel, true
	default:
		return UnknownLevel, false
	}
}

// LevelFromEnv looks up key in the environment and parses it into a Level.
func LevelFromEnv(key string) (Level, bool) {
	if key == "" {
		return UnknownLevel, false
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return UnknownLevel, false
	}
	return ParseLevel(value)
}
