package parser

import (
	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/lexer"
	"github.com/cchamplin/libsass/token"
)

// parseMixinDefinition parses `@mixin name(params) { body }` or its
// shorthand `=name(params) { body }`.
func (d *Document) parseMixinDefinition() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.MixinKw) && !d.cur.Lex(lexer.Exactly('=')) {
		return ast.NilNode, d.syntaxErrorf("expected @mixin")
	}
	d.skipWhitespace()
	if !d.cur.Lex(lexer.Identifier) {
		return ast.NilNode, d.syntaxErrorf("expected mixin name")
	}
	name := d.leaf(ast.KindIdentifier, line, d.cur.Lexed)
	d.skipWhitespace()

	params, err := d.parseParameters()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	body, err := d.parseBlock(ast.NilNode, insideMixin)
	if err != nil {
		return ast.NilNode, err
	}

	mixin := d.node(ast.KindMixin, line, 3)
	d.append(mixin, name)
	d.append(mixin, params)
	d.append(mixin, body)
	return mixin, nil
}

// parseFunctionDefinition parses `@function name(params) { body }`. The
// function node's line is the @function keyword's line, captured before
// the body is parsed.
func (d *Document) parseFunctionDefinition() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.FunctionKw) {
		return ast.NilNode, d.syntaxErrorf("expected @function")
	}
	d.skipWhitespace()
	if !d.cur.Lex(lexer.Identifier) {
		return ast.NilNode, d.syntaxErrorf("expected function name")
	}
	name := d.leaf(ast.KindIdentifier, d.cur.Line, d.cur.Lexed)
	d.skipWhitespace()

	params, err := d.parseParameters()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	body, err := d.parseBlock(ast.NilNode, insideFunction)
	if err != nil {
		return ast.NilNode, err
	}

	fn := d.node(ast.KindFunction, line, 3)
	d.append(fn, name)
	d.append(fn, params)
	d.append(fn, body)
	return fn, nil
}

// parseParameters parses a mixin or function's "(...)" parameter list.
func (d *Document) parseParameters() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.Exactly('(')) {
		return ast.NilNode, d.syntaxErrorf("expected '(' to begin parameter list")
	}
	params := d.node(ast.KindParameters, line, 0)
	d.skipWhitespace()
	if d.cur.Lex(lexer.Exactly(')')) {
		return params, nil
	}
	for {
		p, err := d.parseParameter()
		if err != nil {
			return ast.NilNode, err
		}
		d.append(params, p)
		d.skipWhitespace()
		if d.cur.Lex(lexer.Exactly(',')) {
			d.skipWhitespace()
			continue
		}
		if d.cur.Lex(lexer.Exactly(')')) {
			return params, nil
		}
		return ast.NilNode, d.syntaxErrorf("expected ',' or ')' in parameter list")
	}
}

// parseParameter parses one `$name` or `$name: default` entry in a
// parameter list.
func (d *Document) parseParameter() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.Variable) {
		return ast.NilNode, d.syntaxErrorf("expected variable in parameter list")
	}
	variable := d.leaf(ast.KindVariable, line, d.cur.Lexed)
	d.skipWhitespace()
	if !d.cur.Lex(lexer.Exactly(':')) {
		return variable, nil
	}
	d.skipWhitespace()
	def, err := d.parseSpaceList()
	if err != nil {
		return ast.NilNode, err
	}
	assignment := d.node(ast.KindAssignment, line, 2)
	d.append(assignment, variable)
	d.append(assignment, def)
	return assignment, nil
}

// parseMixinCall parses `@include name(args)` or its shorthand
// `+name(args)`.
func (d *Document) parseMixinCall() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.IncludeKw) && !d.cur.Lex(lexer.Exactly('+')) {
		return ast.NilNode, d.syntaxErrorf("expected @include")
	}
	d.skipWhitespace()
	if !d.cur.Lex(lexer.Identifier) {
		return ast.NilNode, d.syntaxErrorf("expected mixin name")
	}
	name := d.leaf(ast.KindIdentifier, d.cur.Line, d.cur.Lexed)
	d.skipWhitespace()

	args, err := d.parseArguments()
	if err != nil {
		return ast.NilNode, err
	}
	expansion := d.node(ast.KindExpansion, line, 2)
	d.append(expansion, name)
	d.append(expansion, args)
	return expansion, nil
}

// parseArguments parses a mixin/function call's "(...)" argument list.
func (d *Document) parseArguments() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.Exactly('(')) {
		return ast.NilNode, d.syntaxErrorf("expected '(' to begin argument list")
	}
	args := d.node(ast.KindArguments, line, 0)
	d.skipWhitespace()
	if d.cur.Lex(lexer.Exactly(')')) {
		return args, nil
	}
	for {
		a, err := d.parseArgument()
		if err != nil {
			return ast.NilNode, err
		}
		d.append(args, a)
		d.skipWhitespace()
		if d.cur.Lex(lexer.Exactly(',')) {
			d.skipWhitespace()
			continue
		}
		if d.cur.Lex(lexer.Exactly(')')) {
			return args, nil
		}
		return ast.NilNode, d.syntaxErrorf("expected ',' or ')' in argument list")
	}
}

// parseArgument parses one call-site argument, which is always forced to
// should_eval=true since it must be evaluatable at the call site: either a
// named argument (`$name: value`, as an assignment node) or a positional
// one (a bare space list).
func (d *Document) parseArgument() (ast.NodeID, error) {
	if d.isNamedArgument() {
		line := d.cur.Line
		d.cur.Lex(lexer.Variable)
		variable := d.leaf(ast.KindVariable, line, d.cur.Lexed)
		d.skipWhitespace()
		d.cur.Lex(lexer.Exactly(':'))
		d.skipWhitespace()
		val, err := d.parseSpaceList()
		if err != nil {
			return ast.NilNode, err
		}
		assignment := d.node(ast.KindAssignment, line, 2)
		d.append(assignment, variable)
		d.append(assignment, val)
		d.setShouldEval(assignment)
		return assignment, nil
	}
	val, err := d.parseSpaceList()
	if err != nil {
		return ast.NilNode, err
	}
	d.setShouldEval(val)
	return val, nil
}

func (d *Document) isNamedArgument() bool {
	end, ok := d.cur.Peek(lexer.Variable)
	if !ok {
		return false
	}
	end = skipSpaces(d.cur.Src, end)
	_, ok = peekAt(lexer.Exactly(':'), d.cur.Src, end)
	return ok
}

// parseAssignment parses `$name: value [!default]`.
func (d *Document) parseAssignment() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.Variable) {
		return ast.NilNode, d.syntaxErrorf("expected variable")
	}
	variable := d.leaf(ast.KindVariable, line, d.cur.Lexed)
	d.skipWhitespace()
	if !d.cur.Lex(lexer.Exactly(':')) {
		return ast.NilNode, d.syntaxErrorf("expected ':' after variable name")
	}
	d.skipWhitespace()
	val, err := d.parseList()
	if err != nil {
		return ast.NilNode, err
	}

	assignment := d.node(ast.KindAssignment, line, 3)
	d.append(assignment, variable)
	d.append(assignment, val)

	d.skipWhitespace()
	if d.cur.Lex(lexer.DefaultFlag) {
		none := d.leaf(ast.KindNone, d.cur.Line, token.Zero)
		d.append(assignment, none)
	}
	return assignment, nil
}

// parseReturnDirective parses `@return value`.
func (d *Document) parseReturnDirective() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.ReturnKw) {
		return ast.NilNode, d.syntaxErrorf("expected @return")
	}
	d.skipWhitespace()
	val, err := d.parseList()
	if err != nil {
		return ast.NilNode, err
	}
	ret := d.node(ast.KindReturnDirective, line, 1)
	d.append(ret, val)
	return ret, nil
}

// parsePropset parses a namespaced property: `name: { nested declarations
// and/or propsets }`.
func (d *Document) parsePropset() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.Identifier) {
		return ast.NilNode, d.syntaxErrorf("expected property namespace name")
	}
	segment := d.leaf(ast.KindIdentifier, line, d.cur.Lexed)
	d.skipWhitespace()
	if !d.cur.Lex(lexer.Exactly(':')) {
		return ast.NilNode, d.syntaxErrorf("expected ':' after namespaced property name")
	}
	d.skipWhitespace()

	body, err := d.parsePropsetBody()
	if err != nil {
		return ast.NilNode, err
	}
	propset := d.node(ast.KindPropset, line, 2)
	d.append(propset, segment)
	d.append(propset, body)
	return propset, nil
}

// parsePropsetBody parses the body of a namespaced property: a block
// restricted to nested propsets and plain declarations, erroring if it
// ends up empty.
func (d *Document) parsePropsetBody() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.Exactly('{')) {
		return ast.NilNode, d.syntaxErrorf("expected '{' to begin namespaced property block")
	}
	block := d.node(ast.KindBlock, line, 0)
	d.skipWhitespace()
	for {
		if d.cur.Lex(lexer.Exactly('}')) {
			break
		}
		if d.peekBlockComment() {
			n, _ := d.lexLeaf(ast.KindComment, lexer.BlockComment)
			d.append(block, n)
			d.skipWhitespace()
			continue
		}
		if d.peekPropsetHeader() {
			nested, err := d.parsePropset()
			if err != nil {
				return ast.NilNode, err
			}
			d.append(block, nested)
			d.skipWhitespace()
			continue
		}
		rule, err := d.parseRule()
		if err != nil {
			return ast.NilNode, err
		}
		d.append(block, rule)
		d.drainBlockComments(block)
		if !d.cur.Lex(lexer.Exactly(';')) && !d.peek(lexer.Exactly('}')) {
			return ast.NilNode, d.syntaxErrorf("non-terminal statement or declaration must end with ';'")
		}
		d.skipWhitespace()
	}
	if len(d.arena.Node(block).Children) == 0 {
		return ast.NilNode, d.syntaxErrorf("namespaced property cannot be empty")
	}
	return block, nil
}

// parseRule parses a plain property declaration `name: value`.
func (d *Document) parseRule() (ast.NodeID, error) {
	line := d.cur.Line
	prop, err := d.parsePropertyName()
	if err != nil {
		return ast.NilNode, err
	}
	d.skipWhitespace()
	if !d.cur.Lex(lexer.Exactly(':')) {
		return ast.NilNode, d.syntaxErrorf("expected ':' after property name")
	}
	d.skipWhitespace()
	val, err := d.parseList()
	if err != nil {
		return ast.NilNode, err
	}
	rule := d.node(ast.KindRule, line, 2)
	d.append(rule, prop)
	d.append(rule, val)
	return rule, nil
}

// parsePropertyName parses the left-hand side of a declaration: an
// optional leading '*' (an old IE hack, consumed and discarded), then
// either a plain identifier (a property leaf) or an interpolated
// identifier schema.
func (d *Document) parsePropertyName() (ast.NodeID, error) {
	d.cur.Lex(lexer.Exactly('*'))
	if node, ok, err := d.tryParseIdentifierSchema(); ok || err != nil {
		return node, err
	}
	line := d.cur.Line
	if !d.cur.Lex(lexer.Identifier) {
		return ast.NilNode, d.syntaxErrorf("invalid property name")
	}
	return d.leaf(ast.KindProperty, line, d.cur.Lexed), nil
}
