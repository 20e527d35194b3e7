package lexer

// This file defines the SCSS token classes as named Combinator values,
// built from the primitives in combinator.go. Names follow standard
// CSS/SCSS grammar terminology so the parser reads as a direct
// transcription of the productions.

var (
	digit    = ByteClass(isDigit)
	hexDigit = ByteClass(isHexDigit)
	nameByte = ByteClass(isName)

	Digits = Plus(digit)
	Sign   = Alt(Exactly('+'), Exactly('-'))

	// Spaces matches one or more whitespace bytes.
	Spaces = Plus(ByteClass(isWhitespace))

	// BlockComment matches a /* ... */ comment, non-greedily up to the
	// first closing "*/".
	BlockComment Combinator = blockComment

	// SpacesAndComments consumes any interleaving of whitespace and block
	// comments.
	SpacesAndComments = Star(Alt(Spaces, BlockComment))

	// OptionalSpaces is SpacesAndComments, but always succeeds (as does
	// SpacesAndComments itself, since Star never fails); kept as a
	// separate name since the two are used in conceptually different
	// places in the grammar.
	OptionalSpaces = SpacesAndComments

	// Identifier matches a CSS/SCSS identifier: optional leading '-',
	// a name-start byte, then any number of name bytes.
	Identifier = Seq(Optional(Exactly('-')), ByteClass(isNameStart), Star(nameByte))

	// Variable matches "$" + identifier.
	Variable = Seq(Exactly('$'), Identifier)

	// Number matches an optional sign, digits, an optional fractional
	// part, with no exponent notation (SCSS numeric literals, unlike raw
	// CSS3 numbers, do not carry scientific notation).
	Number = Seq(
		Optional(Sign),
		Alt(
			Seq(Digits, Optional(Seq(Exactly('.'), Digits))),
			Seq(Exactly('.'), Digits),
		),
	)

	// Percentage matches a Number immediately followed by '%'.
	Percentage = Seq(Number, Exactly('%'))

	// Dimension matches a Number immediately followed by an identifier
	// unit, with no whitespace in between.
	Dimension = Seq(Number, Identifier)

	// Hex matches '#' followed by exactly 3 or 6 hex digits.
	Hex Combinator = hex

	// StringConstant matches a single- or double-quoted string, with
	// escapes preserved literally (the combinator only finds the
	// boundaries; it performs no unescaping).
	StringConstant Combinator = stringConstant

	// Interpolant matches "#{" up to the first "}" thereafter, with no
	// balanced-brace awareness.
	Interpolant Combinator = interpolant

	UriPrefix = CaseInsensitiveKeyword("url(")

	Important = Seq(Exactly('!'), OptionalSpaces, CaseInsensitiveKeyword("important"))
	DefaultFlag = Seq(Exactly('!'), OptionalSpaces, CaseInsensitiveKeyword("default"))

	TrueKwd  = CaseInsensitiveKeyword("true")
	FalseKwd = CaseInsensitiveKeyword("false")
	AndKwd   = CaseInsensitiveKeyword("and")
	OrKwd    = CaseInsensitiveKeyword("or")
	NotKwd   = CaseInsensitiveKeyword("not")
	OnlyKwd  = CaseInsensitiveKeyword("only")
	Even     = CaseInsensitiveKeyword("even")
	Odd      = CaseInsensitiveKeyword("odd")

	EqOp  = Literal("==")
	NeqOp = Literal("!=")
	GteOp = Literal(">=")
	LteOp = Literal("<=")
	GtOp  = Exactly('>')
	LtOp  = Exactly('<')

	// At-keywords.
	ImportKw  = CaseInsensitiveKeyword("@import")
	MixinKw   = CaseInsensitiveKeyword("@mixin")
	FunctionKw = CaseInsensitiveKeyword("@function")
	IncludeKw = CaseInsensitiveKeyword("@include")
	IfKw      = CaseInsensitiveKeyword("@if")
	ElseIfKw  = Seq(CaseInsensitiveKeyword("@else"), Spaces, CaseInsensitiveKeyword("if"))
	ElseKw    = CaseInsensitiveKeyword("@else")
	ForKw     = CaseInsensitiveKeyword("@for")
	EachKw    = CaseInsensitiveKeyword("@each")
	WhileKw   = CaseInsensitiveKeyword("@while")
	MediaKw   = CaseInsensitiveKeyword("@media")
	WarnKw    = CaseInsensitiveKeyword("@warn")
	ExtendKw  = CaseInsensitiveKeyword("@extend")
	ReturnKw  = CaseInsensitiveKeyword("@return")
	DirectiveKw Combinator = atKeyword

	FromKw    = CaseInsensitiveKeyword("from")
	ThroughKw = CaseInsensitiveKeyword("through")
	ToKw      = CaseInsensitiveKeyword("to")
	InKw      = CaseInsensitiveKeyword("in")

	// Selector-level tokens.
	TypeSelector = Identifier
	Universal    = Exactly('*')
	IDName       = Seq(Exactly('#'), Identifier)
	ClassName    = Seq(Exactly('.'), Identifier)
	PseudoPrefix = Alt(Literal("::"), Exactly(':'))
	PseudoNot    = Seq(Exactly(':'), CaseInsensitiveKeyword("not("))
	Functional   = Seq(Identifier, Exactly('('))

	ExactMatch     = Exactly('=')
	ClassMatch     = Literal("~=")
	DashMatch      = Literal("|=")
	PrefixMatch    = Literal("^=")
	SuffixMatch    = Literal("$=")
	SubstringMatch = Literal("*=")

	Binomial    = Seq(Optional(Sign), Optional(Digits), Exactly('n'), OptionalSpaces, Sign, OptionalSpaces, Digits)
	Coefficient = Seq(Optional(Sign), Optional(Digits))

	// IdentifierSchema matches an identifier that contains at least one
	// #{...} interpolant in place of literal name bytes, e.g. the
	// property name in `prefix-#{$side}: 1px`. A bare name with no
	// interpolant at all does not match here, that is plain Identifier's
	// job; the two are distinct productions.
	IdentifierSchema Combinator = identifierSchema

	// FunctionalSchema matches a function call whose name is itself an
	// interpolated identifier schema, e.g. `#{$fn}(1, 2)`.
	FunctionalSchema = Seq(IdentifierSchema, Exactly('('))
)

// blockComment consumes a "/* ... */" comment and returns the position
// just past the closing "*/", or noMatch if the opening isn't present or
// the comment is unterminated.
func blockComment(src []byte, pos int) int {
	if pos+2 > len(src) || src[pos] != '/' || src[pos+1] != '*' {
		return noMatch
	}
	for p := pos + 2; p+1 < len(src); p++ {
		if src[p] == '*' && src[p+1] == '/' {
			return p + 2
		}
	}
	return noMatch
}

// hex matches '#' followed by exactly 3 or 6 hex digits and nothing more
// (a 4th/5th digit would make it neither length, so it fails closed).
func hex(src []byte, pos int) int {
	if pos >= len(src) || src[pos] != '#' {
		return noMatch
	}
	p := pos + 1
	n := 0
	for p+n < len(src) && isHexDigit(src[p+n]) && n < 6 {
		n++
	}
	if n == 3 || n == 6 {
		return p + n
	}
	return noMatch
}

// stringConstant matches a quoted string body, consuming escaped quote
// bytes without interpreting them.
func stringConstant(src []byte, pos int) int {
	if pos >= len(src) {
		return noMatch
	}
	quote := src[pos]
	if quote != '"' && quote != '\'' {
		return noMatch
	}
	p := pos + 1
	for p < len(src) {
		if src[p] == '\\' && p+1 < len(src) {
			p += 2
			continue
		}
		if src[p] == quote {
			return p + 1
		}
		p++
	}
	return noMatch
}

// interpolant matches "#{" up to the first "}" found afterward. This
// does not attempt balanced-brace matching: the first "}" closes the
// interpolant even if it is nested inside, e.g., a map literal.
func interpolant(src []byte, pos int) int {
	if pos+2 > len(src) || src[pos] != '#' || src[pos+1] != '{' {
		return noMatch
	}
	for p := pos + 2; p < len(src); p++ {
		if src[p] == '}' {
			return p + 1
		}
	}
	return noMatch
}

// identifierSchema walks an optional leading '-' followed by a run of
// name bytes and interpolants, exactly like Identifier except that each
// unit may also be an Interpolant. Unlike Identifier, it only reports
// success if at least one of those units actually was an interpolant.
// A run with none at all is left for Identifier to match.
func identifierSchema(src []byte, pos int) int {
	p := pos
	if q := Exactly('-')(src, p); q != noMatch {
		p = q
	}

	sawInterpolant := false
	first := true
	for {
		if q := interpolant(src, p); q != noMatch {
			p = q
			sawInterpolant = true
			first = false
			continue
		}
		var q int
		if first {
			q = ByteClass(isNameStart)(src, p)
		} else {
			q = nameByte(src, p)
		}
		if q == noMatch {
			break
		}
		p = q
		first = false
	}

	if first || !sawInterpolant {
		return noMatch
	}
	return p
}

// atKeyword matches a generic "@identifier" directive keyword, used as
// the catch-all fallback once every specific directive keyword above has
// failed to match.
func atKeyword(src []byte, pos int) int {
	if pos >= len(src) || src[pos] != '@' {
		return noMatch
	}
	return Identifier(src, pos+1)
}
