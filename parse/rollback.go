package parse

import (
	"github.com/dhamidi/rewind/text"
)

// Rollback runs Step and, if it fails with NoMatch, seeks the cursor back
// to where Step began before passing the failure on. This is what makes a
// parser safe to use as a Choice candidate: after a NoMatch the next
// candidate sees the original offset.
//
// End of input (io.EOF) is deliberately not restored. A step that consumed
// part of the input and then ran out leaves the cursor wherever it stopped.
type Rollback struct {
	Step Parser
}

func (rb Rollback) Parse(cur *text.Cursor) (Value, error) {
	start := cur.Pos()
	v, err := rb.Step.Parse(cur)
	if err != nil && IsNoMatch(err) {
		cur.SeekTo(start)
	}
	return v, err
}
