package parser

import (
	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/lexer"
	"github.com/cchamplin/libsass/token"
)

// parseIfDirective parses `@if cond { ... }`, any number of
// `@else if cond { ... }` clauses, and an optional trailing
// `@else { ... }`. The if_directive node's children alternate
// condition/body pairs for each if/else-if clause, with a lone trailing
// body if an @else is present.
func (d *Document) parseIfDirective(surroundingRuleset ast.NodeID, insideOf insideKind) (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.IfKw) {
		return ast.NilNode, d.syntaxErrorf("expected @if")
	}
	cond, body, err := d.parseConditionAndBody(surroundingRuleset, insideOf)
	if err != nil {
		return ast.NilNode, err
	}
	ifDir := d.node(ast.KindIfDirective, line, 2)
	d.append(ifDir, cond)
	d.append(ifDir, body)

	for {
		d.skipWhitespace()
		switch {
		case d.peek(lexer.ElseIfKw):
			d.cur.Lex(lexer.ElseIfKw)
			c, b, eerr := d.parseConditionAndBody(surroundingRuleset, insideOf)
			if eerr != nil {
				return ast.NilNode, eerr
			}
			d.append(ifDir, c)
			d.append(ifDir, b)
		case d.peek(lexer.ElseKw):
			d.cur.Lex(lexer.ElseKw)
			d.skipWhitespace()
			b, berr := d.parseBlock(surroundingRuleset, insideOf)
			if berr != nil {
				return ast.NilNode, berr
			}
			d.append(ifDir, b)
			return ifDir, nil
		default:
			return ifDir, nil
		}
	}
}

func (d *Document) parseConditionAndBody(surroundingRuleset ast.NodeID, insideOf insideKind) (ast.NodeID, ast.NodeID, error) {
	d.skipWhitespace()
	cond, err := d.parseList()
	if err != nil {
		return ast.NilNode, ast.NilNode, err
	}
	d.skipWhitespace()
	body, err := d.parseBlock(surroundingRuleset, insideOf)
	if err != nil {
		return ast.NilNode, ast.NilNode, err
	}
	return cond, body, nil
}

// parseForDirective parses `@for $var from <expr> to/through <expr> { ... }`.
// The directive's own kind records whether the bound was exclusive ("to")
// or inclusive ("through"), since that distinction only matters at
// evaluation time.
func (d *Document) parseForDirective(surroundingRuleset ast.NodeID, insideOf insideKind) (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.ForKw) {
		return ast.NilNode, d.syntaxErrorf("expected @for")
	}
	d.skipWhitespace()
	if !d.cur.Lex(lexer.Variable) {
		return ast.NilNode, d.syntaxErrorf("expected variable after @for")
	}
	variable := d.leaf(ast.KindVariable, d.cur.Line, d.cur.Lexed)
	d.skipWhitespace()
	if !d.cur.Lex(lexer.FromKw) {
		return ast.NilNode, d.syntaxErrorf("expected 'from' in @for directive")
	}
	d.skipWhitespace()
	from, err := d.parseExpression()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()

	kind := ast.KindForToDirective
	switch {
	case d.cur.Lex(lexer.ThroughKw):
		kind = ast.KindForThroughDirective
	case d.cur.Lex(lexer.ToKw):
	default:
		return ast.NilNode, d.syntaxErrorf("expected 'to' or 'through' in @for directive")
	}
	d.skipWhitespace()
	to, err := d.parseExpression()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()

	body, err := d.parseBlock(surroundingRuleset, insideOf)
	if err != nil {
		return ast.NilNode, err
	}

	forDir := d.node(kind, line, 4)
	d.append(forDir, variable)
	d.append(forDir, from)
	d.append(forDir, to)
	d.append(forDir, body)
	return forDir, nil
}

// parseEachDirective parses `@each $var in <list> { ... }`, which binds
// exactly one variable per iteration (the three children are variable,
// list, body).
func (d *Document) parseEachDirective(surroundingRuleset ast.NodeID, insideOf insideKind) (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.EachKw) {
		return ast.NilNode, d.syntaxErrorf("expected @each")
	}
	d.skipWhitespace()
	if !d.cur.Lex(lexer.Variable) {
		return ast.NilNode, d.syntaxErrorf("expected variable in @each directive")
	}
	variable := d.leaf(ast.KindVariable, d.cur.Line, d.cur.Lexed)
	d.skipWhitespace()
	if !d.cur.Lex(lexer.InKw) {
		return ast.NilNode, d.syntaxErrorf("expected 'in' in @each directive")
	}
	d.skipWhitespace()
	list, err := d.parseList()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()

	body, err := d.parseBlock(surroundingRuleset, insideOf)
	if err != nil {
		return ast.NilNode, err
	}

	each := d.node(ast.KindEachDirective, line, 3)
	d.append(each, variable)
	d.append(each, list)
	d.append(each, body)
	return each, nil
}

// parseWhileDirective parses `@while cond { ... }`.
func (d *Document) parseWhileDirective(surroundingRuleset ast.NodeID, insideOf insideKind) (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.WhileKw) {
		return ast.NilNode, d.syntaxErrorf("expected @while")
	}
	d.skipWhitespace()
	cond, err := d.parseList()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	body, err := d.parseBlock(surroundingRuleset, insideOf)
	if err != nil {
		return ast.NilNode, err
	}
	while := d.node(ast.KindWhileDirective, line, 2)
	d.append(while, cond)
	d.append(while, body)
	return while, nil
}

// parseWarning parses `@warn <value>`.
func (d *Document) parseWarning() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.WarnKw) {
		return ast.NilNode, d.syntaxErrorf("expected @warn")
	}
	d.skipWhitespace()
	val, err := d.parseList()
	if err != nil {
		return ast.NilNode, err
	}
	d.setShouldEval(val)
	warn := d.node(ast.KindWarning, line, 1)
	d.append(warn, val)
	return warn, nil
}

// parseMediaQuery parses `@media <query>[, <query>...] { ... }`: a single
// media_expression disjunct collapses directly into the media_query node,
// while two or more (comma-separated) are wrapped in a
// media_expression_group.
func (d *Document) parseMediaQuery(insideOf insideKind) (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.MediaKw) {
		return ast.NilNode, d.syntaxErrorf("expected @media")
	}
	d.skipWhitespace()
	first, err := d.parseMediaExpression()
	if err != nil {
		return ast.NilNode, err
	}

	mq := d.node(ast.KindMediaQuery, line, 2)
	switch {
	case d.peek(lexer.Exactly('{')):
		d.append(mq, first)
	case d.peek(lexer.Exactly(',')):
		group := d.node(ast.KindMediaExpressionGroup, line, 2)
		d.append(group, first)
		for d.cur.Lex(lexer.Exactly(',')) {
			d.skipWhitespace()
			next, merr := d.parseMediaExpression()
			if merr != nil {
				return ast.NilNode, merr
			}
			d.append(group, next)
		}
		d.append(mq, group)
	default:
		return ast.NilNode, d.syntaxErrorf("expected '{' in media query")
	}

	body, err := d.parseBlock(ast.NilNode, insideOf)
	if err != nil {
		return ast.NilNode, err
	}
	d.append(mq, body)
	return mq, nil
}

// parseMediaExpression parses one comma-disjunct of a media query:
// optionally a leading `not`/`only` keyword plus a required media type, or
// a bare media type, or (if neither is present) a required parenthesized
// feature; then any number of `and (feature: value)` clauses. Each
// parenthesized feature is itself parsed with parseRule, the same
// production an ordinary declaration uses, so a feature without a
// `: value` part is rejected.
func (d *Document) parseMediaExpression() (ast.NodeID, error) {
	line := d.cur.Line
	expr := d.node(ast.KindMediaExpression, line, 0)

	switch {
	case d.peekKeywordNotIdentifier(lexer.NotKwd):
		d.cur.Lex(lexer.NotKwd)
		d.append(expr, d.leaf(ast.KindIdentifier, d.cur.Line, d.cur.Lexed))
		d.skipWhitespace()
		if !d.cur.Lex(lexer.Identifier) {
			return ast.NilNode, d.syntaxErrorf("media type expected in media query")
		}
		d.append(expr, d.leaf(ast.KindIdentifier, d.cur.Line, d.cur.Lexed))
	case d.peekKeywordNotIdentifier(lexer.OnlyKwd):
		d.cur.Lex(lexer.OnlyKwd)
		d.append(expr, d.leaf(ast.KindIdentifier, d.cur.Line, d.cur.Lexed))
		d.skipWhitespace()
		if !d.cur.Lex(lexer.Identifier) {
			return ast.NilNode, d.syntaxErrorf("media type expected in media query")
		}
		d.append(expr, d.leaf(ast.KindIdentifier, d.cur.Line, d.cur.Lexed))
	case d.cur.Lex(lexer.Identifier):
		d.append(expr, d.leaf(ast.KindIdentifier, d.cur.Line, d.cur.Lexed))
	}
	d.skipWhitespace()

	if len(d.arena.Node(expr).Children) == 0 {
		if perr := d.parseParenthesizedFeature(expr); perr != nil {
			return ast.NilNode, perr
		}
	}

	for !d.peek(lexer.Exactly(',')) && !d.peek(lexer.Exactly('{')) {
		if !d.peekKeywordNotIdentifier(lexer.AndKwd) {
			return ast.NilNode, d.syntaxErrorf("invalid media query")
		}
		d.cur.Lex(lexer.AndKwd)
		d.append(expr, d.leaf(ast.KindIdentifier, d.cur.Line, d.cur.Lexed))
		d.skipWhitespace()
		if perr := d.parseParenthesizedFeature(expr); perr != nil {
			return ast.NilNode, perr
		}
	}
	return expr, nil
}

func (d *Document) parseParenthesizedFeature(expr ast.NodeID) error {
	if !d.cur.Lex(lexer.Exactly('(')) {
		return d.syntaxErrorf("invalid media query")
	}
	d.skipWhitespace()
	rule, err := d.parseRule()
	if err != nil {
		return err
	}
	d.append(expr, rule)
	d.skipWhitespace()
	if !d.cur.Lex(lexer.Exactly(')')) {
		return d.syntaxErrorf("unclosed parenthesis")
	}
	d.skipWhitespace()
	return nil
}

// parseDirective is the catch-all for any `@identifier` not recognized by
// a more specific production (`@supports`, `@font-face`, `@keyframes`,
// `@charset`, `@debug`, vendor directives, ...). It reads a generic
// prelude up to either '{' (a block directive) or ';' (a blockless one).
func (d *Document) parseDirective(surroundingRuleset ast.NodeID, insideOf insideKind) (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.DirectiveKw) {
		return ast.NilNode, d.syntaxErrorf("expected an at-directive")
	}
	nameTok := d.cur.Lexed
	name := d.leaf(ast.KindIdentifier, line, token.Make(nameTok.Begin+1, nameTok.End))
	d.skipWhitespace()

	prelude, err := d.parseDirectivePrelude()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()

	if d.peek(lexer.Exactly('{')) {
		body, berr := d.parseBlock(surroundingRuleset, insideOf)
		if berr != nil {
			return ast.NilNode, berr
		}
		dir := d.node(ast.KindBlockDirective, line, 3)
		d.append(dir, name)
		d.append(dir, prelude)
		d.append(dir, body)
		return dir, nil
	}

	dir := d.node(ast.KindBlocklessDirective, line, 2)
	d.append(dir, name)
	d.append(dir, prelude)
	return dir, nil
}

func (d *Document) parseDirectivePrelude() (ast.NodeID, error) {
	line := d.cur.Line
	if d.cur.End() || d.peek(lexer.Exactly(';')) || d.peek(lexer.Exactly('{')) {
		return d.leaf(ast.KindNil, line, token.Zero), nil
	}
	return d.parseList()
}
