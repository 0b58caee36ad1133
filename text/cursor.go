// Package text provides a seekable cursor over an in-memory character
// sequence. The cursor is the only mutable state shared by the parsers in
// this module: parsers read runes from it, note its offset before trying a
// rule, and seek back to that offset when the rule does not apply.
package text

import (
	"io"
	"unicode/utf8"
)

// Cursor reads runes from a byte slice and can be rewound to any earlier
// offset. A cursor must be used by one goroutine at a time; parsers sharing
// a cursor coordinate through Pos and SeekTo rather than through locks.
type Cursor struct {
	input    []byte
	pos      int
	depth    int
	maxDepth int
}

// Option configures a cursor at construction time.
type Option func(*Cursor)

// WithMaxDepth limits how many recursion levels Descend will grant. Zero,
// the default, means unlimited.
func WithMaxDepth(n int) Option {
	return func(c *Cursor) {
		c.maxDepth = n
	}
}

// New returns a cursor positioned at the start of input.
func New(input []byte, opts ...Option) *Cursor {
	c := &Cursor{input: input}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromString returns a cursor over the bytes of s.
func FromString(s string, opts ...Option) *Cursor {
	return New([]byte(s), opts...)
}

// FromReader buffers all of r into memory and returns a cursor over it.
// This is how non-seekable sources such as pipes become seekable input.
func FromReader(r io.Reader, opts ...Option) (*Cursor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(data, opts...), nil
}

// ReadRune decodes the rune at the current offset and advances past it.
// It returns io.EOF once the input is exhausted. Invalid UTF-8 yields
// utf8.RuneError with size 1, like the stdlib readers.
func (c *Cursor) ReadRune() (rune, int, error) {
	if c.pos >= len(c.input) {
		return 0, 0, io.EOF
	}
	r, size := utf8.DecodeRune(c.input[c.pos:])
	c.pos += size
	return r, size, nil
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// SeekTo rewinds or advances the cursor to the given byte offset. Seeking
// past the end is allowed; the next read reports io.EOF. Negative offsets
// panic.
func (c *Cursor) SeekTo(pos int) {
	if pos < 0 {
		panic("text: negative cursor offset")
	}
	c.pos = pos
}

// Len returns the total length of the input in bytes.
func (c *Cursor) Len() int {
	return len(c.input)
}

// Input returns the underlying bytes. Callers must not modify them.
func (c *Cursor) Input() []byte {
	return c.input
}

// Descend reserves one level of the recursion budget. It reports false when
// the budget is spent, leaving the depth unchanged so the caller can fail
// without a matching Ascend.
func (c *Cursor) Descend() bool {
	if c.maxDepth > 0 && c.depth >= c.maxDepth {
		return false
	}
	c.depth++
	return true
}

// Ascend releases one level of the recursion budget.
func (c *Cursor) Ascend() {
	if c.depth > 0 {
		c.depth--
	}
}

// Depth returns the number of recursion levels currently held.
func (c *Cursor) Depth() int {
	return c.depth
}
