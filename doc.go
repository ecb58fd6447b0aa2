// Package hues is a small console logging library that renders log lines
// through a mini-template format language and colors them per level with
// 24-bit ANSI escape sequences.
//
// # Format language
//
// Templates mix literal text with prefix-escaped specifiers. The default
// prefix is '#'; each specifier token is one to three characters and maps to
// a handler that consumes zero or one argument from the shared argument
// cursor. The longest registered token wins, registration order breaks ties,
// and anything unrecognized is copied through verbatim. The location
// specifiers (#f, #F, #l, #c) each consume a Location argument:
//
//	hues.Info("listening at #c on port %d\n", hues.Here(), 8080)
//
// Formatf additionally understands native fmt-style %-directives, probing
// candidate directive widths against a snapshot of the argument cursor so a
// failed probe never disturbs the arguments meant for later specifiers.
//
// # Loggers
//
// Every Logger owns its configuration: minimum level, header template,
// prefix character, specifier table, theme and writers. The package-level
// functions operate on a shared default logger that Init resets to the
// stock configuration (trace level, '#' prefix, dark theme, built-in
// specifiers).
//
//	logger := hues.New(os.Stdout)
//	logger.SetMinLevel(hues.WarnLevel)
//	logger.Warn("cache bust for %s\n", "user:42")
//
// Rendering is bounded: each line is produced into a fixed 4096-byte
// scratch buffer and written in a single Write call. Output beyond the
// buffer is silently truncated, never grown.
package hues
