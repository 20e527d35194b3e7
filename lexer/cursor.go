package lexer

import (
	"bytes"

	"github.com/cchamplin/libsass/token"
)

// Cursor holds the mutable state a parse walks: the immutable source
// buffer, the current byte position, the current line number, and the
// most recently lexed span. It exposes two access modes: Peek, which
// never mutates, and Lex, which advances Pos and Line on success.
type Cursor struct {
	Src   []byte
	Pos   int
	Line  int
	Lexed token.Token
	Path  string
}

// New returns a Cursor positioned at the start of src.
func New(path string, src []byte) *Cursor {
	return &Cursor{Src: src, Path: path, Line: 1}
}

// End reports whether the cursor has consumed the entire buffer.
func (c *Cursor) End() bool {
	return c.Pos >= len(c.Src)
}

// Peek tries c2 at pos without mutating the cursor. It returns the match
// end and true on success, or (pos, false) on failure.
func (c *Cursor) Peek(c2 Combinator) (int, bool) {
	return c.PeekAt(c2, c.Pos)
}

// PeekAt tries c2 at the given position without mutating the cursor.
func (c *Cursor) PeekAt(c2 Combinator, pos int) (int, bool) {
	end := c2(c.Src, pos)
	if end == noMatch {
		return pos, false
	}
	return end, true
}

// Lex tries c2 at the current position; on success it moves Pos to the
// match end, records the matched span in Lexed, and advances Line by the
// number of newlines within the match.
func (c *Cursor) Lex(c2 Combinator) bool {
	end := c2(c.Src, c.Pos)
	if end == noMatch {
		return false
	}
	c.Lexed = token.Make(c.Pos, end)
	c.Line += bytes.Count(c.Src[c.Pos:end], []byte{'\n'})
	c.Pos = end
	return true
}

// SkipSpaces consumes as much whitespace and block comments as possible
// without recording a Lexed span, mirroring lex<optional_spaces>() in
// the productions that call it between every token.
func (c *Cursor) SkipSpaces() {
	for {
		end := OptionalSpaces(c.Src, c.Pos)
		if end == c.Pos {
			return
		}
		c.Line += bytes.Count(c.Src[c.Pos:end], []byte{'\n'})
		c.Pos = end
	}
}

// FindFirst returns the position of the first byte at or after pos for
// which c matches a single-byte span, or -1 if none is found before the
// end of the buffer. It is used for interpolant/URL scanning, which look
// for a terminating byte rather than lexing a whole token.
func (c *Cursor) FindFirst(c2 Combinator, pos int) int {
	for p := pos; p < len(c.Src); p++ {
		if c2(c.Src, p) != noMatch {
			return p
		}
	}
	return -1
}
