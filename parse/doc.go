// Package parse implements backtracking parser combinators over a seekable
// cursor.
//
// # Overview
//
// A parser is anything implementing a single method against a text.Cursor:
//
//	type Parser interface {
//	    Parse(cur *text.Cursor) (Value, error)
//	}
//
// Small parsers recognize one rune or one literal; combinators compose them
// into grammars. There is no separate lexer: every parser reads raw runes
// from the shared cursor, and backtracking works by seeking the cursor to
// an earlier offset. Results are plain values (runes, ints, strings) that
// composite parsers collect into nested []Value trees.
//
// # Failure Kinds
//
// Parsers fail in exactly two ways:
//
//   - *NoMatch: the input at this position does not satisfy the rule. This
//     is the recoverable kind. A parser that fails with NoMatch arranges,
//     via Rollback, for the cursor to be back on the offset where the rule
//     started, so an alternative can be tried from the same position.
//   - io.EOF: the input ran out mid-rule. No cursor restoration is
//     promised; input consumed before the end was reached stays consumed.
//
// Everything else in the package follows from how the combinators treat
// these two kinds:
//
//	Rollback    restores on NoMatch only, lets io.EOF through untouched
//	Sequence    stops on either kind, never restores
//	Choice      swallows both kinds, tries the next candidate, never seeks
//	ZeroOrMore  stops cleanly on NoMatch, propagates io.EOF
//	OneOrMore   stops on either kind, fails when nothing matched
//	Maybe       converts both kinds into the absent value nil
//
// # Building Grammars
//
// Rules are built from struct literals and read roughly like the grammar
// they implement:
//
//	operator := parse.Choice{Candidates: []parse.Parser{
//	    parse.Keyword{Word: "+"},
//	    parse.Keyword{Word: "-"},
//	}}
//	term := parse.Sequence{Steps: []parse.Parser{
//	    operator,
//	    parse.Whitespace{},
//	    parse.Number{},
//	}}
//
// Rules that mention each other before both exist go through a Ref cell:
//
//	expr := &parse.Ref{}
//	value := parse.Choice{Candidates: []parse.Parser{parse.Number{}, expr}}
//	// ... build the full expression rule out of value ...
//	expr.Bind(sum)
//
// # Recursion
//
// Grammars routed through Ref cells may recurse, and a grammar that
// re-enters a rule at the same offset will recurse forever. By default
// that behavior is preserved. A cursor constructed with
// text.WithMaxDepth(n) instead makes the offending Ref fail with a
// NoMatch wrapping ErrTooDeep once n levels are active, which an
// enclosing Choice treats like any other failed candidate.
//
// # Concurrency
//
// Parser values are immutable after construction and safe to share; all
// mutable parse state lives in the cursor, which belongs to one
// goroutine at a time. Run concurrent parses by giving each its own
// cursor over the same input.
package parse
