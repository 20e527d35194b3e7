package parser

import (
	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/lexer"
	"github.com/cchamplin/libsass/token"
)

// parseRuleset parses a ruleset header and its body. la is the look-ahead
// result that decided to call this in the first place; when it saw an
// interpolant, the header is parsed as a selector schema instead of an
// ordinary selector group.
func (d *Document) parseRuleset(la lexer.SelectorLookahead, insideOf insideKind) (ast.NodeID, error) {
	line := d.cur.Line
	var header ast.NodeID
	var err error
	if la.HasInterpolants {
		header, err = d.parseSelectorSchema(la.Found)
	} else {
		header, err = d.parseSelectorGroup()
	}
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()

	ruleset := d.node(ast.KindRuleset, line, 2)
	d.append(ruleset, header)
	body, berr := d.parseBlock(ruleset, insideOf)
	if berr != nil {
		return ast.NilNode, berr
	}
	d.append(ruleset, body)
	return ruleset, nil
}

// parseSelectorSchema parses an interpolated selector header whose
// terminating '{' is already known to be at endOfSelector (found by the
// look-ahead arbiter); it does not consume that '{' itself.
func (d *Document) parseSelectorSchema(endOfSelector int) (ast.NodeID, error) {
	line := d.cur.Line
	start := d.cur.Pos
	node, err := d.buildInterpolatedSchema(ast.KindSelectorSchema, ast.KindIdentifier, start, endOfSelector, line, "unterminated interpolant inside interpolated selector")
	if err != nil {
		return ast.NilNode, err
	}
	d.cur.Pos = endOfSelector
	return node, nil
}

// parseSelectorGroup parses a comma-separated list of selectors,
// collapsing to the bare selector when there is only one.
func (d *Document) parseSelectorGroup() (ast.NodeID, error) {
	line := d.cur.Line
	first, err := d.parseSelector()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	if !d.peek(lexer.Exactly(',')) {
		return first, nil
	}
	group := d.node(ast.KindSelectorGroup, line, 2)
	d.append(group, first)
	for d.cur.Lex(lexer.Exactly(',')) {
		d.skipWhitespace()
		next, err := d.parseSelector()
		if err != nil {
			return ast.NilNode, err
		}
		d.append(group, next)
		d.skipWhitespace()
	}
	return group, nil
}

func (d *Document) atSelectorTerminator() bool {
	return d.cur.End() || d.peek(lexer.Exactly(',')) || d.peek(lexer.Exactly(')')) || d.peek(lexer.Exactly('{'))
}

// parseSelector parses a chain of simple selector sequences separated by
// whitespace (the descendant combinator) or an explicit combinator,
// collapsing to the bare sequence when there is only one.
func (d *Document) parseSelector() (ast.NodeID, error) {
	line := d.cur.Line
	first, err := d.parseSimpleSelectorSequence()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	if d.atSelectorTerminator() {
		return first, nil
	}
	sel := d.node(ast.KindSelector, line, 2)
	d.append(sel, first)
	for !d.atSelectorTerminator() {
		next, err := d.parseSimpleSelectorSequence()
		if err != nil {
			return ast.NilNode, err
		}
		d.append(sel, next)
		d.skipWhitespace()
	}
	return sel, nil
}

func (d *Document) atSimpleSelectorSequenceTerminator() bool {
	if d.cur.End() {
		return true
	}
	switch d.cur.Src[d.cur.Pos] {
	case ' ', '\t', '\n', '\r', '>', '+', '~', ',', ')', '{', ';':
		return true
	}
	return false
}

// parseSimpleSelectorSequence parses a run of simple selectors with no
// whitespace between them (e.g. `div.item#first:hover`), collapsing to a
// single leaf when it is just one. A leading '+', '~' or '>' instead
// produces a lone selector_combinator leaf, modeling a nested selector's
// explicit leading combinator.
func (d *Document) parseSimpleSelectorSequence() (ast.NodeID, error) {
	line := d.cur.Line
	first, err := d.parseLeadingSimpleSelector()
	if err != nil {
		return ast.NilNode, err
	}
	if d.nodeKind(first) == ast.KindSelectorCombinator {
		return first, nil
	}
	if d.atSimpleSelectorSequenceTerminator() {
		return first, nil
	}
	seq := d.node(ast.KindSimpleSelectorSequence, line, 2)
	d.append(seq, first)
	for !d.atSimpleSelectorSequenceTerminator() {
		next, err := d.parseSimpleSelector()
		if err != nil {
			return ast.NilNode, err
		}
		d.append(seq, next)
	}
	return seq, nil
}

func (d *Document) parseLeadingSimpleSelector() (ast.NodeID, error) {
	if !d.cur.End() {
		switch d.cur.Src[d.cur.Pos] {
		case '+', '~', '>':
			line := d.cur.Line
			start := d.cur.Pos
			d.cur.Pos++
			return d.leaf(ast.KindSelectorCombinator, line, token.Make(start, d.cur.Pos)), nil
		case '&':
			line := d.cur.Line
			d.cur.Lex(lexer.Exactly('&'))
			return d.leaf(ast.KindBackref, line, d.cur.Lexed), nil
		case '*':
			line := d.cur.Line
			d.cur.Lex(lexer.Universal)
			return d.leaf(ast.KindSimpleSelector, line, d.cur.Lexed), nil
		}
	}
	if _, ok := d.cur.Peek(lexer.TypeSelector); ok {
		line := d.cur.Line
		d.cur.Lex(lexer.TypeSelector)
		return d.leaf(ast.KindSimpleSelector, line, d.cur.Lexed), nil
	}
	return d.parseSimpleSelector()
}

// parseSimpleSelector parses one selector atom that is not a leading
// combinator, backref or type/universal selector: an id/class name, a
// pseudo-class, or an attribute selector.
func (d *Document) parseSimpleSelector() (ast.NodeID, error) {
	line := d.cur.Line
	if d.cur.Lex(lexer.IDName) || d.cur.Lex(lexer.ClassName) {
		return d.leaf(ast.KindSimpleSelector, line, d.cur.Lexed), nil
	}
	if d.peek(lexer.PseudoPrefix) {
		return d.parsePseudo()
	}
	if d.peek(lexer.Exactly('[')) {
		return d.parseAttributeSelector()
	}
	return ast.NilNode, d.syntaxErrorf("invalid selector after preceding selector atom")
}

// parsePseudo parses `:not(...)`, a functional pseudo-class like
// `:nth-child(2n+1)`, or a plain pseudo-class like `:hover`.
func (d *Document) parsePseudo() (ast.NodeID, error) {
	line := d.cur.Line

	if d.peek(lexer.PseudoNot) {
		d.cur.Lex(lexer.PseudoNot)
		nameLeaf := d.leaf(ast.KindValue, line, d.cur.Lexed)
		group, err := d.parseSelectorGroup()
		if err != nil {
			return ast.NilNode, err
		}
		d.skipWhitespace()
		if !d.cur.Lex(lexer.Exactly(')')) {
			return ast.NilNode, d.syntaxErrorf("expected ')' to close :not(...)")
		}
		neg := d.node(ast.KindPseudoNegation, line, 2)
		d.append(neg, nameLeaf)
		d.append(neg, group)
		return neg, nil
	}

	if d.peek(lexer.Seq(lexer.PseudoPrefix, lexer.Identifier, lexer.Exactly('('))) {
		return d.parseFunctionalPseudo(line)
	}

	if !d.cur.Lex(lexer.PseudoPrefix) {
		return ast.NilNode, d.syntaxErrorf("expected ':' to begin pseudo-class")
	}
	start := d.cur.Lexed.Begin
	if !d.cur.Lex(lexer.Identifier) {
		return ast.NilNode, d.syntaxErrorf("expected pseudo-class name")
	}
	return d.leaf(ast.KindPseudo, line, token.Make(start, d.cur.Lexed.End)), nil
}

// parseFunctionalPseudo parses the inside of a functional pseudo-class:
// `even`, `odd`, a binomial expression (`2n+1`), a bare `n`-expression, a
// bare integer, or a plain identifier argument.
func (d *Document) parseFunctionalPseudo(line int) (ast.NodeID, error) {
	d.cur.Lex(lexer.PseudoPrefix)
	start := d.cur.Lexed.Begin
	if !d.cur.Lex(lexer.Identifier) {
		return ast.NilNode, d.syntaxErrorf("expected pseudo-class name")
	}
	if !d.cur.Lex(lexer.Exactly('(')) {
		return ast.NilNode, d.syntaxErrorf("expected '(' after functional pseudo-class name")
	}
	name := d.leaf(ast.KindValue, line, token.Make(start, d.cur.Lexed.End))
	d.skipWhitespace()

	fp := d.node(ast.KindFunctionalPseudo, line, 2)
	d.append(fp, name)

	nExpr := lexer.Seq(lexer.Optional(lexer.Sign), lexer.Optional(lexer.Digits), lexer.Exactly('n'))
	plainInt := lexer.Seq(lexer.Optional(lexer.Sign), lexer.Digits)

	argLine := d.cur.Line
	switch {
	case d.cur.Lex(lexer.Even):
		d.append(fp, d.leaf(ast.KindValue, argLine, d.cur.Lexed))
	case d.cur.Lex(lexer.Odd):
		d.append(fp, d.leaf(ast.KindValue, argLine, d.cur.Lexed))
	case d.peek(lexer.Binomial):
		d.parseBinomialInto(fp)
	case d.cur.Lex(nExpr):
		d.append(fp, d.leaf(ast.KindValue, argLine, d.cur.Lexed))
	case d.cur.Lex(plainInt):
		d.append(fp, d.leaf(ast.KindValue, argLine, d.cur.Lexed))
	case d.cur.Lex(lexer.Identifier):
		// a bare-identifier argument alone is a genuine identifier leaf,
		// distinct from the coefficient/sign/digit leaves above.
		d.append(fp, d.leaf(ast.KindIdentifier, argLine, d.cur.Lexed))
	default:
		return ast.NilNode, d.syntaxErrorf("invalid argument to functional pseudo-class")
	}

	d.skipWhitespace()
	if !d.cur.Lex(lexer.Exactly(')')) {
		return ast.NilNode, d.syntaxErrorf("expected ')' to close functional pseudo-class")
	}
	return fp, nil
}

// parseBinomialInto splits a matched "An+B" binomial span into four leaves
// (coefficient, 'n', sign, digits) appended to fp.
func (d *Document) parseBinomialInto(fp ast.NodeID) {
	line := d.cur.Line
	start := d.cur.Pos

	coeffEnd := lexer.Seq(lexer.Optional(lexer.Sign), lexer.Optional(lexer.Digits))(d.cur.Src, start)
	d.append(fp, d.leaf(ast.KindValue, line, token.Make(start, coeffEnd)))

	nEnd := coeffEnd + 1 // the literal 'n' byte
	d.append(fp, d.leaf(ast.KindValue, line, token.Make(coeffEnd, nEnd)))

	spEnd := skipSpaces(d.cur.Src, nEnd)
	signEnd := lexer.Sign(d.cur.Src, spEnd)
	d.append(fp, d.leaf(ast.KindValue, line, token.Make(spEnd, signEnd)))

	sp2End := skipSpaces(d.cur.Src, signEnd)
	digitsEnd := lexer.Digits(d.cur.Src, sp2End)
	d.append(fp, d.leaf(ast.KindValue, line, token.Make(sp2End, digitsEnd)))

	d.cur.Pos = digitsEnd
}

// parseAttributeSelector parses `[name]`, `[name=value]` and the other
// attribute-match operators.
func (d *Document) parseAttributeSelector() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.Exactly('[')) {
		return ast.NilNode, d.syntaxErrorf("expected '['")
	}
	d.skipWhitespace()
	if !d.cur.Lex(lexer.TypeSelector) {
		return ast.NilNode, d.syntaxErrorf("expected attribute name")
	}
	attr := d.node(ast.KindAttributeSelector, line, 3)
	d.append(attr, d.leaf(ast.KindValue, line, d.cur.Lexed))

	d.skipWhitespace()
	if d.cur.Lex(lexer.Exactly(']')) {
		return attr, nil
	}

	opLine := d.cur.Line
	opCombinator, ok := d.peekAttributeOperator()
	if !ok {
		return ast.NilNode, d.syntaxErrorf("expected an attribute operator")
	}
	d.cur.Lex(opCombinator)
	d.append(attr, d.leaf(ast.KindValue, opLine, d.cur.Lexed))
	d.skipWhitespace()

	valLine := d.cur.Line
	if _, ok := d.cur.Peek(lexer.StringConstant); ok {
		d.cur.Lex(lexer.StringConstant)
	} else if !d.cur.Lex(lexer.Identifier) {
		return ast.NilNode, d.syntaxErrorf("expected attribute value")
	}
	d.append(attr, d.leaf(ast.KindValue, valLine, d.cur.Lexed))

	d.skipWhitespace()
	if !d.cur.Lex(lexer.Exactly(']')) {
		return ast.NilNode, d.syntaxErrorf("expected ']' to close attribute selector")
	}
	return attr, nil
}

func (d *Document) peekAttributeOperator() (lexer.Combinator, bool) {
	switch {
	case d.peek(lexer.ClassMatch):
		return lexer.ClassMatch, true
	case d.peek(lexer.DashMatch):
		return lexer.DashMatch, true
	case d.peek(lexer.PrefixMatch):
		return lexer.PrefixMatch, true
	case d.peek(lexer.SuffixMatch):
		return lexer.SuffixMatch, true
	case d.peek(lexer.SubstringMatch):
		return lexer.SubstringMatch, true
	case d.peek(lexer.ExactMatch):
		return lexer.ExactMatch, true
	default:
		return nil, false
	}
}
