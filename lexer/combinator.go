// Package lexer implements the SCSS lexical layer: composable byte-level
// pattern combinators, the SCSS token classes built from them, the
// peek/lex cursor the parser drives, and the selector look-ahead arbiter.
package lexer

import "strings"

// noMatch is the sentinel a Combinator returns when it fails to match at
// the given position. Go has no null pointer to reuse here, so -1 stands
// in for it; every caller must check for it rather than comparing to 0,
// since 0 is itself a valid source position.
const noMatch = -1

// Combinator is a pure function from a byte position to either the end of
// a match (an offset into src) or noMatch. It never mutates src.
type Combinator func(src []byte, pos int) int

// Exactly matches a single literal byte.
func Exactly(b byte) Combinator {
	return func(src []byte, pos int) int {
		if pos < len(src) && src[pos] == b {
			return pos + 1
		}
		return noMatch
	}
}

// Literal matches a literal byte string exactly, case-sensitively.
func Literal(s string) Combinator {
	return func(src []byte, pos int) int {
		if pos+len(s) > len(src) {
			return noMatch
		}
		if string(src[pos:pos+len(s)]) != s {
			return noMatch
		}
		return pos + len(s)
	}
}

// CaseInsensitiveKeyword matches a literal keyword ignoring ASCII case.
func CaseInsensitiveKeyword(kw string) Combinator {
	return func(src []byte, pos int) int {
		if pos+len(kw) > len(src) {
			return noMatch
		}
		if !strings.EqualFold(string(src[pos:pos+len(kw)]), kw) {
			return noMatch
		}
		return pos + len(kw)
	}
}

// ByteClass matches a single byte satisfying pred.
func ByteClass(pred func(byte) bool) Combinator {
	return func(src []byte, pos int) int {
		if pos < len(src) && pred(src[pos]) {
			return pos + 1
		}
		return noMatch
	}
}

// Seq succeeds iff every combinator in cs matches contiguously in order.
func Seq(cs ...Combinator) Combinator {
	return func(src []byte, pos int) int {
		p := pos
		for _, c := range cs {
			q := c(src, p)
			if q == noMatch {
				return noMatch
			}
			p = q
		}
		return p
	}
}

// Alt tries each combinator in order and returns the first match.
func Alt(cs ...Combinator) Combinator {
	return func(src []byte, pos int) int {
		for _, c := range cs {
			if q := c(src, pos); q != noMatch {
				return q
			}
		}
		return noMatch
	}
}

// Negate succeeds, without consuming, iff c fails to match at pos.
func Negate(c Combinator) Combinator {
	return func(src []byte, pos int) int {
		if c(src, pos) == noMatch {
			return pos
		}
		return noMatch
	}
}

// Optional always succeeds, consuming c if it matches.
func Optional(c Combinator) Combinator {
	return func(src []byte, pos int) int {
		if q := c(src, pos); q != noMatch {
			return q
		}
		return pos
	}
}

// Star consumes c zero or more times, greedily, and always succeeds.
func Star(c Combinator) Combinator {
	return func(src []byte, pos int) int {
		p := pos
		for {
			q := c(src, p)
			if q == noMatch || q == p {
				return p
			}
			p = q
		}
	}
}

// Plus consumes c one or more times, greedily.
func Plus(c Combinator) Combinator {
	return func(src []byte, pos int) int {
		p := c(src, pos)
		if p == noMatch {
			return noMatch
		}
		return Star(c)(src, p)
	}
}
