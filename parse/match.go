package parse

import (
	"fmt"

	"github.com/dhamidi/rewind/text"
)

// Predicate decides whether a single rune belongs to a character class.
type Predicate func(r rune) bool

// Match reads one rune from cur and tests it against pred. On success the
// rune stays consumed and is returned. On a rejected rune the cursor is
// restored to where it was and a NoMatch names the rune. At end of input
// io.EOF is returned and nothing was consumed.
func Match(cur *text.Cursor, pred Predicate) (rune, error) {
	start := cur.Pos()
	r, _, err := cur.ReadRune()
	if err != nil {
		return 0, err
	}
	if pred(r) {
		return r, nil
	}
	cur.SeekTo(start)
	return 0, &NoMatch{Pos: start, Msg: fmt.Sprintf("could not match %q with the given predicate", r)}
}

// Peek is Match without consumption: on success the cursor is restored as
// well, so the rune is only observed. Failures behave exactly like Match.
func Peek(cur *text.Cursor, pred Predicate) (rune, error) {
	start := cur.Pos()
	r, err := Match(cur, pred)
	if err != nil {
		return 0, err
	}
	cur.SeekTo(start)
	return r, nil
}

// Class matches a single rune satisfying Is and yields it as the value.
type Class struct {
	Is Predicate
}

func (c Class) Parse(cur *text.Cursor) (Value, error) {
	r, err := Match(cur, c.Is)
	if err != nil {
		return nil, err
	}
	return r, nil
}
