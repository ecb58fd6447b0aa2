package hues

import "reflect"

// Hooked wraps fn in a tracing decorator of the same signature: every call
// first logs "'<name>' called at <location>" at TraceLevel on l, attributed
// to the wrapper's caller, and then invokes fn with the original arguments.
// The returned value must be type-asserted back to the function's type:
//
//	sum := hues.Hooked(logger, "sum", func(a, b int) int { return a + b }).(func(int, int) int)
//	total := sum(2, 3)
//
// A nil logger selects the package default. Hooked panics when fn is not a
// function, mirroring the reflect contract.
func Hooked(l *Logger, name string, fn any) any {
	if l == nil {
		l = Default()
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic("hues: Hooked requires a function")
	}
	t := v.Type()
	wrapped := reflect.MakeFunc(t, func(in []reflect.Value) []reflect.Value {
		location := callerLocation()
		l.Log(Message{
			Level:    TraceLevel,
			Contents: "'" + name + "' called at #c\n",
			Location: location,
		}, location)
		if t.IsVariadic() {
			return v.CallSlice(in)
		}
		return v.Call(in)
	})
	return wrapped.Interface()
}
