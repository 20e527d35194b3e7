package parser

import (
	"bytes"

	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/lexer"
	"github.com/cchamplin/libsass/token"
)

// parseValue parses a single terminal value. It is the bottom of the
// expression grammar: parseFactor falls through to this once it has
// ruled out parens and unary +/-.
func (d *Document) parseValue() (ast.NodeID, error) {
	line := d.cur.Line

	// `url(...)` is only a URI literal when a variable reference does NOT
	// follow `url(` directly (`url($path)`); when one does, every branch
	// below is tried instead (see DESIGN.md's Open Question on this
	// fallthrough). Any other content, including an interpolant such as
	// `url(#{$path})`, is taken as a URI literal.
	if d.peek(lexer.UriPrefix) && !d.peekURLWithVariable() {
		if node, ok, err := d.tryParseBareURL(line); ok || err != nil {
			return node, err
		}
	}

	if node, ok, err := d.tryParseFunctionCall(); ok || err != nil {
		return node, err
	}
	if node, ok, err := d.tryParseValueSchema(line); ok || err != nil {
		return node, err
	}
	if end, ok := d.cur.Peek(lexer.TrueKwd); ok && !isIdentifierContinuation(d.cur.Src, end) {
		d.cur.Pos = end
		return d.leaf(ast.KindBoolean, line, token.Make(d.cur.Pos-4, d.cur.Pos)), nil
	}
	if end, ok := d.cur.Peek(lexer.FalseKwd); ok && !isIdentifierContinuation(d.cur.Src, end) {
		d.cur.Pos = end
		return d.leaf(ast.KindBoolean, line, token.Make(d.cur.Pos-5, d.cur.Pos)), nil
	}
	if d.cur.Lex(lexer.Important) {
		return d.leaf(ast.KindImportant, line, d.cur.Lexed), nil
	}
	if node, ok, err := d.tryParseIdentifierSchema(); ok || err != nil {
		return node, err
	}
	if d.cur.Lex(lexer.Identifier) {
		return d.leaf(ast.KindStringConstant, line, d.cur.Lexed), nil
	}
	if d.cur.Lex(lexer.Percentage) {
		return d.leaf(ast.KindTextualPercentage, line, d.cur.Lexed), nil
	}
	if d.cur.Lex(lexer.Dimension) {
		return d.leaf(ast.KindTextualDimension, line, d.cur.Lexed), nil
	}
	if d.cur.Lex(lexer.Number) {
		return d.leaf(ast.KindTextualNumber, line, d.cur.Lexed), nil
	}
	if d.cur.Lex(lexer.Hex) {
		return d.leaf(ast.KindTextualHex, line, d.cur.Lexed), nil
	}
	if _, ok := d.cur.Peek(lexer.StringConstant); ok {
		return d.parseString()
	}
	if d.cur.Lex(lexer.Variable) {
		n := d.leaf(ast.KindVariable, line, d.cur.Lexed)
		d.setShouldEval(n)
		return n, nil
	}
	return ast.NilNode, d.syntaxErrorf("error reading values")
}

func isIdentifierContinuation(src []byte, pos int) bool {
	return pos < len(src) && isNameByteExported(src[pos])
}

// isNameByteExported mirrors lexer's unexported isName predicate; kept
// local since the parser has no need for the rest of lexer's byte-class
// table.
func isNameByteExported(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b >= 0x80
}

func (d *Document) peekURLWithVariable() bool {
	end, ok := d.cur.Peek(lexer.UriPrefix)
	if !ok {
		return false
	}
	_, ok = peekAt(lexer.Variable, d.cur.Src, end)
	return ok
}

// tryParseBareURL consumes a `url(...)` literal up to its first ')',
// without attempting to lex a nested string or interpolant.
func (d *Document) tryParseBareURL(line int) (ast.NodeID, bool, error) {
	start := d.cur.Pos
	end, _ := d.cur.Peek(lexer.UriPrefix)
	closeAt := d.cur.FindFirst(lexer.Exactly(')'), end)
	if closeAt < 0 {
		return ast.NilNode, true, d.syntaxErrorf("unterminated url()")
	}
	uri := d.leaf(ast.KindURI, line, token.Make(start, closeAt))
	d.cur.Pos = closeAt
	d.cur.Lex(lexer.Exactly(')'))
	return uri, true, nil
}

// tryParseFunctionCall recognizes `name(`, parsing it as a function_call
// node if so. The name itself may be an interpolated identifier schema.
func (d *Document) tryParseFunctionCall() (ast.NodeID, bool, error) {
	if !d.peek(lexer.Functional) && !d.peek(lexer.FunctionalSchema) {
		return ast.NilNode, false, nil
	}
	line := d.cur.Line
	var name ast.NodeID
	if n, ok, err := d.tryParseIdentifierSchema(); ok || err != nil {
		if err != nil {
			return ast.NilNode, true, err
		}
		name = n
	} else {
		if !d.cur.Lex(lexer.Identifier) {
			return ast.NilNode, false, nil
		}
		name = d.leaf(ast.KindIdentifier, line, d.cur.Lexed)
	}
	args, err := d.parseArguments()
	if err != nil {
		return ast.NilNode, true, err
	}
	call := d.node(ast.KindFunctionCall, line, 2)
	d.append(call, name)
	d.append(call, args)
	d.setShouldEval(call)
	return call, true, nil
}

// parseString parses a quoted string literal. If it contains no
// unescaped #{...} interpolant it is returned as a plain string_constant
// leaf; otherwise it is expanded into a string_schema.
func (d *Document) parseString() (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.StringConstant) {
		return ast.NilNode, d.syntaxErrorf("expected a string")
	}
	tok := d.cur.Lexed
	body := d.cur.Src[tok.Begin:tok.End]
	if idx := firstUnescapedInterpolant(body); idx < 0 {
		return d.leaf(ast.KindStringConstant, line, tok), nil
	}
	return d.buildInterpolatedSchema(ast.KindStringSchema, ast.KindStringConstant, tok.Begin, tok.End, line, "unterminated interpolant inside interpolated string")
}

// firstUnescapedInterpolant returns the offset (relative to body) of the
// first "#{" in body that is not immediately preceded by a backslash, or
// -1 if there is none.
func firstUnescapedInterpolant(body []byte) int {
	for i := 0; i+1 < len(body); i++ {
		if body[i] == '#' && body[i+1] == '{' {
			if i == 0 || body[i-1] != '\\' {
				return i
			}
		}
	}
	return -1
}

// tryParseValueSchema recognizes a bare run of text that mixes literal
// value tokens with #{...} interpolants outside of any quotes, e.g.
// `#{$side}-color` used directly as a value. It re-tokenizes the matched
// span as an alternating sequence of interpolants, identifiers,
// percentages, dimensions, numbers, hex colors, strings and variables.
func (d *Document) tryParseValueSchema(line int) (ast.NodeID, bool, error) {
	if !d.peek(lexer.Interpolant) && !d.peek(lexer.IdentifierSchema) {
		return ast.NilNode, false, nil
	}
	schema := d.node(ast.KindValueSchema, line, 0)
	for {
		switch {
		case d.cur.Lex(lexer.Interpolant):
			tok := d.cur.Lexed
			sub := newDocument(d.arena, d.loader, d.path, d.cur.Src)
			sub.cur.Pos = tok.Begin + 2
			sub.cur.Line = d.cur.Line
			val, err := sub.parseList()
			if err != nil {
				return ast.NilNode, true, err
			}
			d.setShouldEval(val)
			d.append(schema, val)
		case d.cur.Lex(lexer.Percentage):
			d.append(schema, d.leaf(ast.KindTextualPercentage, d.cur.Line, d.cur.Lexed))
		case d.cur.Lex(lexer.Dimension):
			d.append(schema, d.leaf(ast.KindTextualDimension, d.cur.Line, d.cur.Lexed))
		case d.cur.Lex(lexer.Number):
			d.append(schema, d.leaf(ast.KindTextualNumber, d.cur.Line, d.cur.Lexed))
		case d.cur.Lex(lexer.Hex):
			d.append(schema, d.leaf(ast.KindTextualHex, d.cur.Line, d.cur.Lexed))
		case d.cur.Lex(lexer.Identifier):
			d.append(schema, d.leaf(ast.KindIdentifier, d.cur.Line, d.cur.Lexed))
		case func() bool { _, ok := d.cur.Peek(lexer.StringConstant); return ok }():
			s, err := d.parseString()
			if err != nil {
				return ast.NilNode, true, err
			}
			d.append(schema, s)
		case d.cur.Lex(lexer.Variable):
			v := d.leaf(ast.KindVariable, d.cur.Line, d.cur.Lexed)
			d.setShouldEval(v)
			d.append(schema, v)
		default:
			d.setShouldEval(schema)
			return schema, true, nil
		}
		if !d.peek(lexer.Interpolant) && !isValueSchemaContinuation(d.cur.Src, d.cur.Pos) {
			d.setShouldEval(schema)
			return schema, true, nil
		}
	}
}

func isValueSchemaContinuation(src []byte, pos int) bool {
	if pos >= len(src) {
		return false
	}
	b := src[pos]
	return isNameByteExported(b) || b == '.' || b == '#' || b == '"' || b == '\'' || b == '$'
}

// tryParseIdentifierSchema recognizes an identifier containing one or more
// #{...} interpolants in place of literal name bytes, returning an
// identifier_schema node. lexer.IdentifierSchema only matches when at
// least one interpolant is present, so a bare name is left untouched for
// the caller's own plain-Identifier branch to handle.
func (d *Document) tryParseIdentifierSchema() (ast.NodeID, bool, error) {
	end, ok := d.cur.Peek(lexer.IdentifierSchema)
	if !ok {
		return ast.NilNode, false, nil
	}
	line := d.cur.Line
	start := d.cur.Pos
	node, err := d.buildInterpolatedSchema(ast.KindIdentifierSchema, ast.KindIdentifier, start, end, line, "unterminated interpolant inside interpolated identifier")
	if err != nil {
		return ast.NilNode, true, err
	}
	d.cur.Pos = end
	return node, true, nil
}

// buildInterpolatedSchema scans [start, end) for #{...} interpolants,
// alternating fragmentKind leaves for the literal spans between them with
// parsed subtrees for each interpolant's interior (reparsed as a full
// comma list on a nested Document sharing this one's arena). Every
// interpolant found must be closed by the *first* '}' that follows; an
// interpolant with no closing '}' at all before the buffer's end is a
// syntax error.
func (d *Document) buildInterpolatedSchema(kind, fragmentKind ast.Kind, start, end, line int, unterminatedMsg string) (ast.NodeID, error) {
	node := d.node(kind, line, 0)
	pos := start
	for pos < end {
		rel := bytes.Index(d.cur.Src[pos:end], []byte("#{"))
		if rel < 0 {
			d.append(node, d.leaf(fragmentKind, line, token.Make(pos, end)))
			break
		}
		litEnd := pos + rel
		if litEnd > pos {
			d.append(node, d.leaf(fragmentKind, line, token.Make(pos, litEnd)))
		}
		interiorStart := litEnd + 2
		closeRel := bytes.IndexByte(d.cur.Src[interiorStart:], '}')
		if closeRel < 0 {
			return ast.NilNode, d.syntaxErrorf(unterminatedMsg)
		}
		interiorEnd := interiorStart + closeRel

		sub := newDocument(d.arena, d.loader, d.path, d.cur.Src)
		sub.cur.Pos = interiorStart
		sub.cur.Line = d.cur.Line
		val, err := sub.parseList()
		if err != nil {
			return ast.NilNode, err
		}
		d.setShouldEval(val)
		d.append(node, val)
		pos = interiorEnd + 1
	}
	d.setShouldEval(node)
	return node, nil
}
