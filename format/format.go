// Package format renders parse results. The trees produced by the parse
// package are nested []Value slices of ints, strings, and runes; the
// encoders here turn them into a bracketed text form or JSON.
package format

import (
	"encoding"

	"github.com/dhamidi/rewind/parse"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(v parse.Value) error
}
