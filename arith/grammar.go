// Package arith wires the demonstration arithmetic expression grammar out
// of the parse combinators. It recognizes structure only and never
// evaluates anything: parsing "1 + 2" yields the nested value tree
//
//	[1, " ", [["+", " ", 2]]]
//
// The grammar carries known quirks, kept on purpose:
//
//   - Product is wired and exported but not referenced by Sum, so the
//     composed grammar has no operator precedence.
//   - Number and Name only end cleanly at whitespace, so unspaced input
//     such as "1+2" fails the literal, sends Value into Expression, and
//     re-enters the grammar at the same offset without terminating. Parse
//     such input only through a cursor with text.WithMaxDepth.
//   - The repetition inside Sum expects its operator immediately after the
//     previous operand, while Number stops in front of the separating
//     space. Chained input like "1 + 2 - 3" therefore parses only through
//     the first operand pair and leaves the rest unconsumed.
//
// A successful parse consumes a prefix of the input; callers that require
// full consumption compare the cursor's Pos against its Len afterwards.
package arith

import (
	_ "embed"

	"github.com/dhamidi/rewind/parse"
	"github.com/dhamidi/rewind/text"
)

// GrammarEBNF describes the rule shapes in EBNF, for documentation and the
// grammar tooling. The combinator wiring below is the authoritative
// definition.
//
//go:embed grammar.ebnf
var GrammarEBNF string

// Expression is the grammar's entry point. It is a deferred cell so Value
// can refer back to it; init binds it to Sum.
var Expression = &parse.Ref{}

var (
	Value   parse.Parser
	Product parse.Parser
	Sum     parse.Parser
)

func init() {
	Value = parse.Choice{Candidates: []parse.Parser{
		parse.Number{},
		Expression,
	}}
	Product = parse.Sequence{Steps: []parse.Parser{
		Value,
		parse.ZeroOrMore{Step: parse.Sequence{Steps: []parse.Parser{
			parse.Choice{Candidates: []parse.Parser{
				parse.Keyword{Word: "*"},
				parse.Keyword{Word: "/"},
			}},
			Value,
		}}},
	}}
	Sum = parse.Sequence{Steps: []parse.Parser{
		Value,
		parse.Whitespace{},
		parse.ZeroOrMore{Step: parse.Sequence{Steps: []parse.Parser{
			parse.Choice{Candidates: []parse.Parser{
				parse.Keyword{Word: "+"},
				parse.Keyword{Word: "-"},
			}},
			parse.Whitespace{},
			Value,
		}}},
	}}
	Expression.Bind(Sum)
}

// Parse reads one expression from cur.
func Parse(cur *text.Cursor) (parse.Value, error) {
	return Expression.Parse(cur)
}

// ParseString parses s, applying the given cursor options.
func ParseString(s string, opts ...text.Option) (parse.Value, error) {
	return Parse(text.FromString(s, opts...))
}
