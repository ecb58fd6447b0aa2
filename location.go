package hues

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const (
	unknownLocation = "unknown"
	huesModulePath  = "github.com/skanderjeddi/hues"
)

// Location identifies the call site a message was logged from.
type Location struct {
	File     string
	Function string
	Line     int
}

// String renders the location as "function @ file:line", the same form the
// built-in 'c' specifier produces.
func (l Location) String() string {
	return l.Function + " @ " + l.File + ":" + strconv.Itoa(l.Line)
}

// Here captures the caller's code location. If the caller cannot be
// determined the fields read "unknown" with a zero line.
//
// Example:
//
//	hues.Log(hues.Message{Level: hues.InfoLevel, Contents: "up\n", Location: hues.Here()})
func Here() Location {
	return capture(2)
}

// capture resolves the frame skip levels above capture itself.
func capture(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: unknownLocation, Function: unknownLocation}
	}
	return Location{
		File:     filepath.Base(file),
		Function: functionNameForPC(pc),
		Line:     line,
	}
}

func functionNameForPC(pc uintptr) string {
	if pc == 0 {
		return unknownLocation
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownLocation
	}
	return trimFunctionName(fn.Name())
}

func trimFunctionName(name string) string {
	if name == "" {
		return unknownLocation
	}
	// Remove package path and package prefix.
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return unknownLocation
	}
	return name
}

// callerLocation walks the stack and returns the first frame that is neither
// within this module nor inside the reflect machinery. Hooked functions use
// it to attribute a trace line to the real call site.
func callerLocation() Location {
	pcs := make([]uintptr, 16)
	// Skip runtime.Callers and callerLocation.
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return Location{File: unknownLocation, Function: unknownLocation}
	}
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function == "" {
			if !more {
				break
			}
			continue
		}
		if strings.HasPrefix(frame.Function, huesModulePath+".") ||
			strings.HasPrefix(frame.Function, huesModulePath+"/") ||
			strings.HasPrefix(frame.Function, "reflect.") {
			if !more {
				break
			}
			continue
		}
		return Location{
			File:     filepath.Base(frame.File),
			Function: trimFunctionName(frame.Function),
			Line:     frame.Line,
		}
	}
	return Location{File: unknownLocation, Function: unknownLocation}
}
