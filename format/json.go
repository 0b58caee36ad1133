package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/rewind/parse"
)

// JSONEncoder renders parse trees as indented JSON. Runes become one-rune
// strings, since JSON would otherwise show their code points.
type JSONEncoder struct {
	w io.Writer
	v parse.Value
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(v parse.Value) error {
	e.v = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(jsonValue(e.v), "", "  ")
}

// JSON renders v the way JSONEncoder does and returns the bytes.
func JSON(v parse.Value) ([]byte, error) {
	return json.Marshal(jsonValue(v))
}

func jsonValue(v parse.Value) any {
	switch x := v.(type) {
	case rune:
		return string(x)
	case []parse.Value:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = jsonValue(item)
		}
		return out
	default:
		return v
	}
}
