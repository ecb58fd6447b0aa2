package hues

// Args is the shared argument cursor a render pass walks. Handlers pop
// values in template order; the printf fallback peeks at the next value so
// a failed directive probe never advances the cursor.
type Args struct {
	values []any
	pos    int
}

// NewArgs wraps values in a cursor positioned at the first value.
func NewArgs(values ...any) *Args {
	return &Args{values: values}
}

// Next consumes and returns the next argument. The boolean reports whether
// one was available.
func (a *Args) Next() (any, bool) {
	if a.pos >= len(a.values) {
		return nil, false
	}
	v := a.values[a.pos]
	a.pos++
	return v, true
}

// Remaining reports how many arguments are left to consume.
func (a *Args) Remaining() int {
	return len(a.values) - a.pos
}

// peek returns the next argument without consuming it.
func (a *Args) peek() (any, bool) {
	if a.pos >= len(a.values) {
		return nil, false
	}
	return a.values[a.pos], true
}
