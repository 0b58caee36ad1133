package parse

import (
	"github.com/dhamidi/rewind/text"
)

// Value is what a successful parse produces. Leaf parsers yield runes, ints,
// and strings; composite parsers yield ordered []Value slices, so a full
// parse result is a nested heterogeneous tree.
type Value = any

// Parser is anything that can consume characters from a cursor and produce
// a value. On failure the cursor may have advanced; see Rollback for the
// restoration contract.
type Parser interface {
	Parse(cur *text.Cursor) (Value, error)
}

// Func adapts an ordinary function to the Parser interface.
type Func func(cur *text.Cursor) (Value, error)

// Parse calls f.
func (f Func) Parse(cur *text.Cursor) (Value, error) {
	return f(cur)
}
