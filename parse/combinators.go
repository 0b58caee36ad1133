package parse

import (
	"errors"
	"io"

	"github.com/dhamidi/rewind/text"
)

// Sequence runs Steps in order and collects their values into a []Value.
// The first failure, of either kind, aborts the whole sequence unchanged:
// no rollback happens here, so input consumed by earlier steps stays
// consumed. Callers wanting atomicity wrap the sequence in Rollback.
type Sequence struct {
	Steps []Parser
}

func (s Sequence) Parse(cur *text.Cursor) (Value, error) {
	out := make([]Value, 0, len(s.Steps))
	for _, step := range s.Steps {
		v, err := step.Parse(cur)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Choice tries Candidates in order from the same starting offset and
// returns the first success. Every failure is swallowed, end of input
// included. Choice itself never seeks: it relies on each candidate either
// succeeding or restoring the cursor per the Rollback contract, so a
// candidate without that discipline corrupts the position seen by the rest.
type Choice struct {
	Candidates []Parser
}

func (c Choice) Parse(cur *text.Cursor) (Value, error) {
	for _, cand := range c.Candidates {
		v, err := cand.Parse(cur)
		if err == nil {
			return v, nil
		}
	}
	return nil, &NoMatch{Pos: cur.Pos(), Msg: "exhausted all parsers"}
}

// ZeroOrMore applies Step repeatedly until it fails. A NoMatch ends the
// repetition cleanly, yielding the (possibly empty) collected values. Any
// other failure, in particular io.EOF raised after partial consumption,
// propagates to the caller instead of being treated as a clean stop.
type ZeroOrMore struct {
	Step Parser
}

func (z ZeroOrMore) Parse(cur *text.Cursor) (Value, error) {
	out := []Value{}
	for {
		v, err := z.Step.Parse(cur)
		if err != nil {
			if IsNoMatch(err) {
				break
			}
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// OneOrMore applies Step repeatedly until it fails with either kind, then
// requires at least one success. With zero successes it fails with NoMatch
// and leaves the cursor wherever the first attempt left it.
type OneOrMore struct {
	Step Parser
}

func (o OneOrMore) Parse(cur *text.Cursor) (Value, error) {
	out := []Value{}
	for {
		v, err := o.Step.Parse(cur)
		if err != nil {
			if IsNoMatch(err) || errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, &NoMatch{Pos: cur.Pos(), Msg: "expected one or more tokens"}
	}
	return out, nil
}

// Maybe applies Step and converts any failure into the absent value, nil.
// It never fails and never consumes input on failure beyond what Step's own
// rollback discipline leaves behind.
type Maybe struct {
	Step Parser
}

func (m Maybe) Parse(cur *text.Cursor) (Value, error) {
	v, err := m.Step.Parse(cur)
	if err != nil {
		return nil, nil
	}
	return v, nil
}
