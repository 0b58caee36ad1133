package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/rewind/parse"
)

// TextEncoder renders parse trees in a bracketed single-line form: ints
// bare, strings and runes quoted, slices in square brackets, the absent
// value as nil. "1 + 2" parses to the tree rendered as
//
//	[1, " ", [["+", " ", 2]]]
type TextEncoder struct {
	w io.Writer
	v parse.Value
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(v parse.Value) error {
	e.v = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var b strings.Builder
	writeValue(&b, e.v)
	return []byte(b.String()), nil
}

// Text renders v the way TextEncoder does and returns it as a string.
func Text(v parse.Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v parse.Value) {
	switch x := v.(type) {
	case nil:
		b.WriteString("nil")
	case int:
		b.WriteString(strconv.Itoa(x))
	case string:
		b.WriteString(strconv.Quote(x))
	case rune:
		b.WriteString(strconv.QuoteRune(x))
	case []parse.Value:
		b.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, item)
		}
		b.WriteByte(']')
	default:
		fmt.Fprintf(b, "%v", x)
	}
}
