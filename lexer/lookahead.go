package lexer

// SelectorLookahead is the result of walking forward from a position to
// decide whether the upcoming statement is a ruleset header or a
// declaration. Found is the position of the selector's terminating '{',
// or -1 if the segment did not resolve to a selector header at all.
// HasInterpolants records whether any #{...} was seen along the way.
type SelectorLookahead struct {
	Found          int
	HasInterpolants bool
}

// combinatorPrefixedInterpolant matches one of the combinator-prefixed
// interpolant forms: a '.', '#', '-' or pseudo prefix immediately
// followed by an interpolant.
var combinatorPrefixedInterpolant = Alt(
	Seq(Exactly('.'), Interpolant),
	Seq(Exactly('#'), Interpolant),
	Seq(Exactly('-'), Interpolant),
	Seq(PseudoPrefix, Interpolant),
)

// selectorToken tries, in priority order, every token class that may
// legally appear inside a selector header.
var selectorToken = Alt(
	Identifier,
	IDName,
	ClassName,
	Seq(PseudoPrefix, Identifier),
	StringConstant,
	Universal,
	Exactly('('),
	Exactly(')'),
	Exactly('['),
	Exactly(']'),
	Exactly('+'),
	Exactly('~'),
	Exactly('>'),
	Exactly(','),
	Binomial,
	Seq(Optional(Sign), Optional(Digits), Exactly('n')),
	Seq(Optional(Sign), Digits),
	Number,
	Exactly('&'),
	Alt(ExactMatch, ClassMatch, DashMatch, PrefixMatch, SuffixMatch, SubstringMatch),
	combinatorPrefixedInterpolant,
	Interpolant,
)

// LookaheadForSelector walks forward from start through every token that
// may appear in a selector, greedily, and reports whether it ultimately
// reaches a '{'. It is how the statement dispatcher distinguishes a
// ruleset header from a property declaration that happens to begin with
// an identifier. The terminating-'}' check for HasInterpolants relies on
// the fact that a '}' ending the just-consumed span means that span was
// an interpolant.
func LookaheadForSelector(src []byte, start int) SelectorLookahead {
	p := start
	sawInterpolant := false

	for {
		// Whitespace between selector tokens (the descendant combinator,
		// or simply separating a trailing token from the header's '{')
		// is glue, not itself a token; skip it before trying the next
		// token class.
		sp := Spaces(src, p)
		tryFrom := p
		if sp != noMatch {
			tryFrom = sp
		}

		q := selectorToken(src, tryFrom)
		if q == noMatch {
			break
		}
		if src[q-1] == '}' {
			sawInterpolant = true
		}
		p = q
	}

	// Any trailing whitespace right before the '{' is still glue.
	if sp := Spaces(src, p); sp != noMatch {
		p = sp
	}

	result := SelectorLookahead{Found: -1, HasInterpolants: sawInterpolant}
	if end := Exactly('{')(src, p); end != noMatch {
		result.Found = p
	}
	return result
}
