package parser

import (
	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/lexer"
	"github.com/cchamplin/libsass/token"
)

// parseList is the entry point for any value position (a rule's value, a
// variable's initializer, a mixin call's argument).
func (d *Document) parseList() (ast.NodeID, error) {
	return d.parseCommaList()
}

func (d *Document) atCommaListTerminator() bool {
	return d.cur.End() ||
		d.peek(lexer.Exactly(';')) || d.peek(lexer.Exactly('}')) ||
		d.peek(lexer.Exactly('{')) || d.peek(lexer.Exactly(')'))
}

// parseCommaList parses a comma-separated list of space lists. An empty
// value position (the next byte already terminates the value) yields a
// KindNil leaf rather than an error. A single operand collapses to that
// operand directly rather than a one-element comma_list.
func (d *Document) parseCommaList() (ast.NodeID, error) {
	line := d.cur.Line
	if d.atCommaListTerminator() {
		return d.leaf(ast.KindNil, line, token.Zero), nil
	}
	first, err := d.parseSpaceList()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	if !d.peek(lexer.Exactly(',')) {
		return first, nil
	}
	list := d.node(ast.KindCommaList, line, 2)
	d.append(list, first)
	for d.cur.Lex(lexer.Exactly(',')) {
		d.skipWhitespace()
		next, err := d.parseSpaceList()
		if err != nil {
			return ast.NilNode, err
		}
		d.append(list, next)
		d.skipWhitespace()
	}
	return list, nil
}

func (d *Document) atSpaceListTerminator() bool {
	return d.atCommaListTerminator() || d.peek(lexer.Exactly(',')) || d.peek(lexer.DefaultFlag)
}

// parseSpaceList parses a whitespace-separated list of disjunctions,
// collapsing to the single operand when there is only one.
func (d *Document) parseSpaceList() (ast.NodeID, error) {
	line := d.cur.Line
	first, err := d.parseDisjunction()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	if d.atSpaceListTerminator() {
		return first, nil
	}
	list := d.node(ast.KindSpaceList, line, 2)
	d.append(list, first)
	for !d.atSpaceListTerminator() {
		next, err := d.parseDisjunction()
		if err != nil {
			return ast.NilNode, err
		}
		d.append(list, next)
		d.skipWhitespace()
	}
	return list, nil
}

// peekKeywordNotIdentifier reports whether kw matches at the current
// position and is not itself just a prefix of a longer identifier (so
// that, e.g., "or" does not match the start of "orange").
func (d *Document) peekKeywordNotIdentifier(kw lexer.Combinator) bool {
	end, ok := d.cur.Peek(kw)
	if !ok {
		return false
	}
	return !isIdentifierContinuation(d.cur.Src, end)
}

// parseDisjunction parses `a or b or c`, forcing should_eval=true the
// moment any `or` is found, since disjunction is always a runtime
// computation.
func (d *Document) parseDisjunction() (ast.NodeID, error) {
	line := d.cur.Line
	first, err := d.parseConjunction()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	if !d.peekKeywordNotIdentifier(lexer.OrKwd) {
		return first, nil
	}
	node := d.node(ast.KindDisjunction, line, 2)
	d.append(node, first)
	for d.peekKeywordNotIdentifier(lexer.OrKwd) {
		d.cur.Lex(lexer.OrKwd)
		d.skipWhitespace()
		next, err := d.parseConjunction()
		if err != nil {
			return ast.NilNode, err
		}
		d.append(node, next)
		d.skipWhitespace()
	}
	d.setShouldEval(node)
	return node, nil
}

// parseConjunction parses `a and b and c`, mirroring parseDisjunction.
func (d *Document) parseConjunction() (ast.NodeID, error) {
	line := d.cur.Line
	first, err := d.parseRelation()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	if !d.peekKeywordNotIdentifier(lexer.AndKwd) {
		return first, nil
	}
	node := d.node(ast.KindConjunction, line, 2)
	d.append(node, first)
	for d.peekKeywordNotIdentifier(lexer.AndKwd) {
		d.cur.Lex(lexer.AndKwd)
		d.skipWhitespace()
		next, err := d.parseRelation()
		if err != nil {
			return ast.NilNode, err
		}
		d.append(node, next)
		d.skipWhitespace()
	}
	d.setShouldEval(node)
	return node, nil
}

// peekRelationalOperator tries each comparison operator in order:
// == != >= <= > <. Trying >= before > (and <= before <) matters, since
// > alone would otherwise shadow >=.
func (d *Document) peekRelationalOperator() (ast.Kind, bool) {
	switch {
	case d.peek(lexer.EqOp):
		return ast.KindEq, true
	case d.peek(lexer.NeqOp):
		return ast.KindNeq, true
	case d.peek(lexer.GteOp):
		return ast.KindGte, true
	case d.peek(lexer.LteOp):
		return ast.KindLte, true
	case d.peek(lexer.GtOp):
		return ast.KindGt, true
	case d.peek(lexer.LtOp):
		return ast.KindLt, true
	default:
		return ast.KindInvalid, false
	}
}

func (d *Document) consumeRelationalOperator(k ast.Kind) {
	switch k {
	case ast.KindEq:
		d.cur.Lex(lexer.EqOp)
	case ast.KindNeq:
		d.cur.Lex(lexer.NeqOp)
	case ast.KindGte:
		d.cur.Lex(lexer.GteOp)
	case ast.KindLte:
		d.cur.Lex(lexer.LteOp)
	case ast.KindGt:
		d.cur.Lex(lexer.GtOp)
	case ast.KindLt:
		d.cur.Lex(lexer.LtOp)
	}
}

// parseRelation parses a single `left OP right` comparison; unlike the
// rest of the algebra, a relation never chains (it has exactly one left
// and one right operand).
func (d *Document) parseRelation() (ast.NodeID, error) {
	line := d.cur.Line
	left, err := d.parseExpression()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	opKind, ok := d.peekRelationalOperator()
	if !ok {
		return left, nil
	}
	opLine := d.cur.Line
	d.consumeRelationalOperator(opKind)
	opLeaf := d.leaf(opKind, opLine, d.cur.Lexed)
	d.skipWhitespace()
	right, err := d.parseExpression()
	if err != nil {
		return ast.NilNode, err
	}

	rel := d.node(ast.KindRelation, line, 3)
	d.append(rel, left)
	d.append(rel, opLeaf)
	d.append(rel, right)
	d.setShouldEval(left)
	d.setShouldEval(right)
	d.setShouldEval(rel)
	return rel, nil
}

// exprDashOperator matches a '-' that is NOT itself the start of a signed
// number literal, i.e. genuinely a subtraction operator rather than a
// negative number's own sign, which parseValue's Number lex already
// handles directly.
var exprDashOperator = lexer.Seq(lexer.Negate(lexer.Number), lexer.Exactly('-'))

func (d *Document) atExpressionOperator() bool {
	return d.peek(lexer.Exactly('+')) || d.peek(exprDashOperator)
}

// parseExpression parses `a + b - c`. Every term in a chain with at
// least one operator is forced to should_eval=true, as is the
// expression node itself.
func (d *Document) parseExpression() (ast.NodeID, error) {
	line := d.cur.Line
	first, err := d.parseTerm()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	if !d.atExpressionOperator() {
		return first, nil
	}
	expr := d.node(ast.KindExpression, line, 2)
	d.append(expr, first)
	d.setShouldEval(first)

	for d.atExpressionOperator() {
		opByte := d.cur.Src[d.cur.Pos]
		opLine := d.cur.Line
		opStart := d.cur.Pos
		d.cur.Pos++
		opKind := ast.KindAdd
		if opByte == '-' {
			opKind = ast.KindSub
		}
		opLeaf := d.leaf(opKind, opLine, token.Make(opStart, d.cur.Pos))
		d.append(expr, opLeaf)
		d.skipWhitespace()

		term, terr := d.parseTerm()
		if terr != nil {
			return ast.NilNode, terr
		}
		d.setShouldEval(term)
		d.append(expr, term)
		d.skipWhitespace()
	}
	d.setShouldEval(expr)
	return expr, nil
}

// parseTerm parses `a * b / c`. Only '*' forces should_eval=true on the
// term; a bare '/' chain (e.g. the CSS shorthand `10px/2`) is left
// unevaluated unless one of its own operands already requires evaluation.
func (d *Document) parseTerm() (ast.NodeID, error) {
	line := d.cur.Line
	first, err := d.parseFactor()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	if !d.peek(lexer.Exactly('*')) && !d.peek(lexer.Exactly('/')) {
		return first, nil
	}
	term := d.node(ast.KindTerm, line, 2)
	d.append(term, first)

	for d.peek(lexer.Exactly('*')) || d.peek(lexer.Exactly('/')) {
		isMul := d.peek(lexer.Exactly('*'))
		opLine := d.cur.Line
		if isMul {
			d.cur.Lex(lexer.Exactly('*'))
		} else {
			d.cur.Lex(lexer.Exactly('/'))
		}
		opKind := ast.KindDiv
		if isMul {
			opKind = ast.KindMul
		}
		d.append(term, d.leaf(opKind, opLine, d.cur.Lexed))
		d.skipWhitespace()

		factor, ferr := d.parseFactor()
		if ferr != nil {
			return ast.NilNode, ferr
		}
		d.append(term, factor)
		if isMul {
			d.setShouldEval(term)
		}
		d.skipWhitespace()
	}
	return term, nil
}

// unaryPlusOperator and unaryMinusOperator match a leading sign that is
// NOT itself the start of a number literal (parseValue's Number lex
// already consumes a literal's own sign).
var (
	unaryPlusOperator  = lexer.Seq(lexer.Exactly('+'), lexer.Negate(lexer.Number))
	unaryMinusOperator = lexer.Seq(lexer.Exactly('-'), lexer.Negate(lexer.Number))
)

// parseFactor parses a parenthesized comma list, a unary +/- applied to
// another factor, or falls through to a terminal value.
func (d *Document) parseFactor() (ast.NodeID, error) {
	line := d.cur.Line

	if d.peek(lexer.Exactly('(')) {
		d.cur.Lex(lexer.Exactly('('))
		d.skipWhitespace()
		val, err := d.parseCommaList()
		if err != nil {
			return ast.NilNode, err
		}
		d.setShouldEval(val)
		if k := d.nodeKind(val); k == ast.KindCommaList || k == ast.KindSpaceList {
			if children := d.arena.Node(val).Children; len(children) > 0 {
				d.setShouldEval(children[0])
			}
		}
		d.skipWhitespace()
		if !d.cur.Lex(lexer.Exactly(')')) {
			return ast.NilNode, d.syntaxErrorf("expected ')' to close parenthesized expression")
		}
		return val, nil
	}

	if d.peek(unaryPlusOperator) {
		d.cur.Lex(lexer.Exactly('+'))
		inner, err := d.parseFactor()
		if err != nil {
			return ast.NilNode, err
		}
		n := d.node(ast.KindUnaryPlus, line, 1)
		d.append(n, inner)
		d.setShouldEval(n)
		return n, nil
	}
	if d.peek(unaryMinusOperator) {
		d.cur.Lex(lexer.Exactly('-'))
		inner, err := d.parseFactor()
		if err != nil {
			return ast.NilNode, err
		}
		n := d.node(ast.KindUnaryMinus, line, 1)
		d.append(n, inner)
		d.setShouldEval(n)
		return n, nil
	}

	return d.parseValue()
}
