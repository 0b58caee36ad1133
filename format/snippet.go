package format

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/rewind/parse"
	"github.com/dhamidi/rewind/text"
)

// ErrorSnippet renders a parse failure against the input of the cursor
// the parse ran on: the failing line, a caret under the offset where the
// failure points, and the message prefixed with its line:column position.
// Failures without an offset render as their message alone.
func ErrorSnippet(cur *text.Cursor, err error) string {
	var nm *parse.NoMatch
	if !errors.As(err, &nm) {
		if errors.Is(err, io.EOF) {
			return "unexpected end of input"
		}
		return err.Error()
	}
	input := cur.Input()
	line, col := text.LineCol(input, nm.Pos)
	excerpt := text.Line(input, nm.Pos)
	return fmt.Sprintf("%d:%d: %s\n%s\n%s^", line, col, nm, excerpt, strings.Repeat(" ", col-1))
}
