package parse

import "errors"

// ErrTooDeep is reported, wrapped in a NoMatch, when a Ref exhausts the
// cursor's recursion budget. Detect it with errors.Is.
var ErrTooDeep = errors.New("recursion limit exceeded")

// NoMatch reports that the input at a given offset does not satisfy a rule.
// It is the recoverable failure kind: parsers that fail with NoMatch arrange,
// via Rollback, for the cursor to be back where the rule started, so an
// enclosing Choice can try the next candidate from the same position.
//
// End of input is the other failure kind and is reported as io.EOF, exactly
// as the cursor's ReadRune returns it. No restoration is promised for it.
type NoMatch struct {
	Pos int    // byte offset at which the rule gave up
	Msg string // human-readable description
	Err error  // underlying cause, if any
}

func (e *NoMatch) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Msg
	}
}

func (e *NoMatch) Unwrap() error {
	return e.Err
}

// IsNoMatch reports whether err is (or wraps) a NoMatch failure.
func IsNoMatch(err error) bool {
	var nm *NoMatch
	return errors.As(err, &nm)
}
