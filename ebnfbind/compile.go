// Package ebnfbind compiles EBNF grammars into parse combinators.
package ebnfbind

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/rewind/parse"
)

// Compile builds a parser for every production of g and returns them by
// name. Productions reach each other through deferred cells, so mutually
// recursive rules work regardless of definition order.
//
// The compiled parsers are scannerless: literals match their exact text,
// ranges match a single rune, and nothing skips whitespace between parts.
// Alternatives are tried in source order and the first match wins, unlike
// longest-match tokenizers. Alternative candidates and the bodies of
// options and repetitions run under Rollback, so a branch that fails part
// way through restores what it consumed before the next parser looks at
// the cursor. An empty production matches the empty string.
func Compile(g ebnf.Grammar) (map[string]parse.Parser, error) {
	cells := make(map[string]*parse.Ref, len(g))
	for name := range g {
		cells[name] = &parse.Ref{}
	}
	c := &compiler{cells: cells}
	for name, prod := range g {
		if prod.Expr == nil {
			cells[name].Bind(parse.Sequence{})
			continue
		}
		p, err := c.compile(prod.Expr)
		if err != nil {
			return nil, fmt.Errorf("production %s: %w", name, err)
		}
		cells[name].Bind(p)
	}
	out := make(map[string]parse.Parser, len(cells))
	for name, cell := range cells {
		out[name] = cell
	}
	return out, nil
}

// Load reads an EBNF grammar from a file and compiles it.
func Load(filename string) (map[string]parse.Parser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	grammar, err := ebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}

	return Compile(grammar)
}

type compiler struct {
	cells map[string]*parse.Ref
}

func (c *compiler) compile(expr ebnf.Expression) (parse.Parser, error) {
	switch e := expr.(type) {
	case ebnf.Sequence:
		steps := make([]parse.Parser, 0, len(e))
		for _, item := range e {
			p, err := c.compile(item)
			if err != nil {
				return nil, err
			}
			steps = append(steps, p)
		}
		return parse.Sequence{Steps: steps}, nil

	case ebnf.Alternative:
		// Choice trusts each candidate to restore the cursor on failure,
		// which a compiled sequence on its own does not do.
		candidates := make([]parse.Parser, 0, len(e))
		for _, alt := range e {
			p, err := c.compile(alt)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, parse.Rollback{Step: p})
		}
		return parse.Choice{Candidates: candidates}, nil

	case *ebnf.Repetition:
		p, err := c.compile(e.Body)
		if err != nil {
			return nil, err
		}
		return parse.ZeroOrMore{Step: parse.Rollback{Step: p}}, nil

	case *ebnf.Option:
		p, err := c.compile(e.Body)
		if err != nil {
			return nil, err
		}
		return parse.Maybe{Step: parse.Rollback{Step: p}}, nil

	case *ebnf.Group:
		return c.compile(e.Body)

	case *ebnf.Token:
		return parse.Keyword{Word: unquote(e.String)}, nil

	case *ebnf.Range:
		return c.compileRange(e)

	case *ebnf.Name:
		cell, ok := c.cells[e.String]
		if !ok {
			return nil, fmt.Errorf("undefined production %s", e.String)
		}
		return cell, nil

	default:
		return nil, fmt.Errorf("unsupported expression %T", expr)
	}
}

func (c *compiler) compileRange(e *ebnf.Range) (parse.Parser, error) {
	lo, ok := singleRune(e.Begin.String)
	if !ok {
		return nil, fmt.Errorf("range start %q is not a single character", e.Begin.String)
	}
	hi, ok := singleRune(e.End.String)
	if !ok {
		return nil, fmt.Errorf("range end %q is not a single character", e.End.String)
	}
	if hi < lo {
		return nil, fmt.Errorf("empty range %q … %q", e.Begin.String, e.End.String)
	}
	return parse.Class{Is: func(r rune) bool {
		return lo <= r && r <= hi
	}}, nil
}

// unquote strips the surrounding quotes a token string may carry.
func unquote(s string) string {
	return strings.Trim(s, "\"")
}

func singleRune(s string) (rune, bool) {
	s = unquote(s)
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, false
	}
	return r, true
}
