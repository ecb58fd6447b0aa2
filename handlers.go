package hues

import (
	"os"
	"strconv"
	"time"
)

// Built-in specifier tokens.
const (
	dateFormat = "02/01/2006"
	timeFormat = "15:04:05"
)

// builtinSpecifiers returns the stock table installed by New and Init:
//
//	#d  current date          #f  function name
//	#t  current time          #F  file name
//	#L  level display name    #l  line number
//	#p  process id            #c  function @ file:line
func builtinSpecifiers() []Specifier {
	return []Specifier{
		{Token: "d", Handler: formatDate},
		{Token: "t", Handler: formatTime},
		{Token: "L", Handler: formatLevel},
		{Token: "f", Handler: formatFunction},
		{Token: "F", Handler: formatFile},
		{Token: "l", Handler: formatLine},
		{Token: "c", Handler: formatFullLocation},
		{Token: "p", Handler: formatPID},
	}
}

// place copies s into dst clamped to capacity and returns the logical
// length of s, snprintf-style.
func place(dst []byte, s string) int {
	copy(dst, s)
	return len(s)
}

func formatDate(dst []byte, sub byte, args *Args) int {
	return place(dst, time.Now().Format(dateFormat))
}

func formatTime(dst []byte, sub byte, args *Args) int {
	return place(dst, time.Now().Format(timeFormat))
}

// formatLevel consumes one Level value. A missing or mistyped argument
// renders nothing; the argument, if any, stays consumed so later specifiers
// keep their alignment.
func formatLevel(dst []byte, sub byte, args *Args) int {
	v, ok := args.Next()
	if !ok {
		return 0
	}
	level, ok := v.(Level)
	if !ok {
		return 0
	}
	return place(dst, level.String())
}

func nextLocation(args *Args) (Location, bool) {
	v, ok := args.Next()
	if !ok {
		return Location{}, false
	}
	location, ok := v.(Location)
	return location, ok
}

func formatFunction(dst []byte, sub byte, args *Args) int {
	location, ok := nextLocation(args)
	if !ok {
		return 0
	}
	return place(dst, location.Function)
}

func formatFile(dst []byte, sub byte, args *Args) int {
	location, ok := nextLocation(args)
	if !ok {
		return 0
	}
	return place(dst, location.File)
}

func formatLine(dst []byte, sub byte, args *Args) int {
	location, ok := nextLocation(args)
	if !ok {
		return 0
	}
	return place(dst, strconv.Itoa(location.Line))
}

func formatFullLocation(dst []byte, sub byte, args *Args) int {
	location, ok := nextLocation(args)
	if !ok {
		return 0
	}
	return place(dst, location.String())
}

func formatPID(dst []byte, sub byte, args *Args) int {
	return place(dst, strconv.Itoa(os.Getpid()))
}
