package parse

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/rewind/text"
)

// Number parses an unsigned decimal integer literal and yields it as an
// int. The literal may only end at whitespace or end of input: when a
// non-digit rune follows the digits, a whitespace peek runs and its failure
// escapes uncaught, failing the whole literal. "123 456" yields 123 with
// the cursor on the space, while "123+456" fails with the cursor restored
// to the start.
//
// The conversion of the collected digits can itself fail (overflow, or
// digits outside ASCII that unicode.IsDigit accepts but strconv rejects);
// that failure surfaces as a NoMatch carrying the strconv error.
type Number struct{}

func (Number) Parse(cur *text.Cursor) (Value, error) {
	return Rollback{Step: Func(scanNumber)}.Parse(cur)
}

func scanNumber(cur *text.Cursor) (Value, error) {
	start := cur.Pos()
	first, err := Match(cur, unicode.IsDigit)
	if err != nil {
		return nil, err
	}
	digits := []rune{first}
	for {
		r, err := Match(cur, unicode.IsDigit)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// A concrete non-digit follows. Only whitespace may end the
			// literal; the peek's failure is passed through unhandled.
			if _, perr := Peek(cur, unicode.IsSpace); perr != nil {
				return nil, perr
			}
			break
		}
		digits = append(digits, r)
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return nil, &NoMatch{Pos: start, Msg: "invalid integer literal", Err: err}
	}
	return n, nil
}

// Name parses an identifier, a letter followed by letters or digits, and
// yields it as a string. It shares Number's boundary rule: a non-matching
// rune after the identifier must be whitespace, or the whole identifier
// fails.
type Name struct{}

func (Name) Parse(cur *text.Cursor) (Value, error) {
	return Rollback{Step: Func(scanName)}.Parse(cur)
}

func scanName(cur *text.Cursor) (Value, error) {
	first, err := Match(cur, unicode.IsLetter)
	if err != nil {
		return nil, err
	}
	letters := []rune{first}
	for {
		r, err := Match(cur, isAlphanumeric)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if _, perr := Peek(cur, unicode.IsSpace); perr != nil {
				return nil, perr
			}
			break
		}
		letters = append(letters, r)
	}
	return string(letters), nil
}

// Keyword parses the exact string Word and yields it. It reads as many
// runes as Word contains (fewer when input runs out first) and compares;
// on a mismatch the consumed runes are restored and the failure reports
// what was actually read. On empty input that is a NoMatch comparing ""
// against Word, not an end-of-input failure.
type Keyword struct {
	Word string
}

func (k Keyword) Parse(cur *text.Cursor) (Value, error) {
	return Rollback{Step: Func(func(cur *text.Cursor) (Value, error) {
		start := cur.Pos()
		var got []rune
		for i := 0; i < utf8.RuneCountInString(k.Word); i++ {
			r, _, err := cur.ReadRune()
			if err != nil {
				break
			}
			got = append(got, r)
		}
		if string(got) == k.Word {
			return k.Word, nil
		}
		return nil, &NoMatch{Pos: start, Msg: fmt.Sprintf("expected %q to match %q", string(got), k.Word)}
	})}.Parse(cur)
}

// Whitespace parses a run of whitespace runes and yields it as a string,
// possibly empty. Min runes are mandatory: failing to find them, whether
// because of a non-space rune or end of input, becomes a NoMatch and the
// cursor is restored. Beyond Min the run extends greedily, and unlike
// ZeroOrMore this tail also swallows end of input silently.
type Whitespace struct {
	Min int
}

func (w Whitespace) Parse(cur *text.Cursor) (Value, error) {
	return Rollback{Step: Func(func(cur *text.Cursor) (Value, error) {
		start := cur.Pos()
		var run []rune
		for i := 0; i < w.Min; i++ {
			r, err := Match(cur, unicode.IsSpace)
			if err != nil {
				return nil, &NoMatch{Pos: start, Msg: "not enough whitespace to match"}
			}
			run = append(run, r)
		}
		for {
			r, err := Match(cur, unicode.IsSpace)
			if err != nil {
				break
			}
			run = append(run, r)
		}
		return string(run), nil
	})}.Parse(cur)
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
