package parser

import (
	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/lexer"
	"github.com/cchamplin/libsass/token"
)

// parseImport parses an @import directive. It returns either a single
// css_import node (the url(...) forms, which are passed through verbatim
// for a later CSS emitter to print) or, for a quoted logical path, the
// resolved file's root-level children to splice directly into the
// caller's block.
func (d *Document) parseImport() (ast.NodeID, []ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.ImportKw) {
		return ast.NilNode, nil, d.syntaxErrorf("expected @import")
	}
	d.skipWhitespace()

	if d.peek(lexer.UriPrefix) {
		return d.parseURIImport(line)
	}

	if !d.cur.Lex(lexer.StringConstant) {
		return ast.NilNode, nil, d.syntaxErrorf("expected a quoted path or url() after @import")
	}
	logicalPath := d.cur.Lexed.Unquote(d.cur.Src)
	if d.loader == nil {
		return ast.NilNode, nil, d.syntaxErrorf("cannot resolve @import %q: no loader configured", logicalPath)
	}
	buf, canonicalPath, err := d.loader.Load(logicalPath)
	if err != nil {
		return ast.NilNode, nil, &ReadError{LogicalPath: logicalPath, Err: err}
	}

	importee := newDocument(d.arena, d.loader, canonicalPath, buf)
	importedRoot, perr := importee.parseRoot()
	if perr != nil {
		return ast.NilNode, nil, perr
	}
	return ast.NilNode, d.arena.Node(importedRoot).Children, nil
}

// parseURIImport handles the two url(...) forms of @import, neither of
// which triggers a recursive parse: `@import url("path")` and the bareword
// form `@import url(path)`, both of which are left for a downstream CSS
// emitter to print as a plain CSS @import rule.
func (d *Document) parseURIImport(line int) (ast.NodeID, []ast.NodeID, error) {
	if !d.cur.Lex(lexer.UriPrefix) {
		return ast.NilNode, nil, d.syntaxErrorf("expected 'url('")
	}
	d.skipWhitespace()

	if _, ok := d.cur.Peek(lexer.StringConstant); ok {
		strLine := d.cur.Line
		d.cur.Lex(lexer.StringConstant)
		str := d.leaf(ast.KindStringConstant, strLine, d.cur.Lexed)
		d.skipWhitespace()
		if !d.cur.Lex(lexer.Exactly(')')) {
			return ast.NilNode, nil, d.syntaxErrorf("expected ')' to close url()")
		}
		imp := d.node(ast.KindCSSImport, line, 1)
		d.append(imp, str)
		return imp, nil, nil
	}

	closeAt := d.cur.FindFirst(lexer.Exactly(')'), d.cur.Pos)
	if closeAt < 0 {
		return ast.NilNode, nil, d.syntaxErrorf("unterminated url() in @import")
	}
	identLine := d.cur.Line
	ident := d.leaf(ast.KindIdentifier, identLine, token.Make(d.cur.Pos, closeAt))
	d.cur.Pos = closeAt
	if !d.cur.Lex(lexer.Exactly(')')) {
		return ast.NilNode, nil, d.syntaxErrorf("expected ')' to close url()")
	}
	imp := d.node(ast.KindCSSImport, line, 1)
	d.append(imp, ident)
	return imp, nil, nil
}
