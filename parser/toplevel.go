package parser

import (
	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/lexer"
)

// parseRoot parses an entire document at the top level. Unlike a block,
// the top level has no '{'/'}' delimiters and does not accept bare
// declarations.
func (d *Document) parseRoot() (ast.NodeID, error) {
	d.skipWhitespace()
	root := d.node(ast.KindRoot, d.cur.Line, 0)

	for !d.cur.End() {
		child, spliced, needsTerminator, err := d.parseTopLevelStatement()
		if err != nil {
			return ast.NilNode, err
		}
		if child == ast.NilNode && spliced == nil {
			break // nothing left but trailing spaces/comments
		}
		for _, s := range spliced {
			d.append(root, s)
		}
		if child != ast.NilNode {
			d.append(root, child)
		}
		if needsTerminator {
			d.drainBlockComments(root)
			if !d.cur.Lex(lexer.Exactly(';')) {
				return ast.NilNode, d.syntaxErrorf("top-level statement must be terminated by ';'")
			}
		}
		d.skipWhitespace()
	}
	return root, nil
}

// skipWhitespace advances past a run of plain whitespace only, leaving any
// block comment in place so that the statement dispatcher can capture it
// as its own comment node rather than have it silently discarded the way
// Cursor.SkipSpaces would.
func (d *Document) skipWhitespace() {
	end := lexer.Spaces(d.cur.Src, d.cur.Pos)
	if end < 0 {
		return
	}
	d.cur.Line += countNewlines(d.cur.Src[d.cur.Pos:end])
	d.cur.Pos = end
}

func countNewlines(b []byte) int {
	n := 0
	for _, c := range b {
		if c == '\n' {
			n++
		}
	}
	return n
}

// parseTopLevelStatement parses exactly one top-level statement. It
// returns either a single node to append (child), or a list of nodes to
// splice in directly (spliced, used only by @import of another SCSS
// file), never both. needsTerminator reports whether the caller must
// still consume a trailing ';'.
func (d *Document) parseTopLevelStatement() (child ast.NodeID, spliced []ast.NodeID, needsTerminator bool, err error) {
	switch {
	case d.peekBlockComment():
		n, _ := d.lexLeaf(ast.KindComment, lexer.BlockComment)
		return n, nil, false, nil

	case d.peek(lexer.ImportKw):
		imp, kids, ierr := d.parseImport()
		return imp, kids, ierr == nil, ierr

	case d.peek(lexer.MixinKw), d.peek(lexer.Exactly('=')):
		n, merr := d.parseMixinDefinition()
		return n, nil, false, merr

	case d.peek(lexer.FunctionKw):
		n, ferr := d.parseFunctionDefinition()
		return n, nil, false, ferr

	case d.peek(lexer.Variable):
		n, aerr := d.parseAssignment()
		return n, nil, true, aerr

	case d.peekPropsetHeader():
		n, perr := d.parsePropset()
		return n, nil, false, perr

	case d.lookahead().Found >= 0:
		la := d.lookahead()
		n, rerr := d.parseRuleset(la, insideNone)
		return n, nil, false, rerr

	case d.peek(lexer.IncludeKw), d.peek(lexer.Exactly('+')):
		n, cerr := d.parseMixinCall()
		return n, nil, true, cerr

	case d.peek(lexer.IfKw):
		n, ierr := d.parseIfDirective(ast.NilNode, insideNone)
		return n, nil, false, ierr

	case d.peek(lexer.ForKw):
		n, ferr := d.parseForDirective(ast.NilNode, insideNone)
		return n, nil, false, ferr

	case d.peek(lexer.EachKw):
		n, eerr := d.parseEachDirective(ast.NilNode, insideNone)
		return n, nil, false, eerr

	case d.peek(lexer.WhileKw):
		n, werr := d.parseWhileDirective(ast.NilNode, insideNone)
		return n, nil, false, werr

	case d.peek(lexer.MediaKw):
		n, merr := d.parseMediaQuery(insideNone)
		return n, nil, false, merr

	case d.peek(lexer.WarnKw):
		n, werr := d.parseWarning()
		return n, nil, true, werr

	case d.peek(lexer.ExtendKw):
		return ast.NilNode, nil, false, d.syntaxErrorf("@extend directive may only be used within rules")

	case d.peek(lexer.DirectiveKw):
		n, derr := d.parseDirective(ast.NilNode, insideNone)
		if derr != nil {
			return ast.NilNode, nil, false, derr
		}
		return n, nil, d.nodeKind(n) == ast.KindBlocklessDirective, nil

	default:
		d.skipWhitespace()
		if d.cur.End() {
			return ast.NilNode, nil, false, nil
		}
		return ast.NilNode, nil, false, d.syntaxErrorf("invalid top-level expression")
	}
}

// peek reports whether c matches at the current position without
// consuming anything.
func (d *Document) peek(c lexer.Combinator) bool {
	_, ok := d.cur.Peek(c)
	return ok
}

func (d *Document) peekBlockComment() bool {
	return d.peek(lexer.BlockComment)
}

// peekPropsetHeader reports whether the upcoming tokens are
// "identifier : {" (a namespaced property).
func (d *Document) peekPropsetHeader() bool {
	end, ok := d.cur.Peek(lexer.Identifier)
	if !ok {
		return false
	}
	end = skipSpaces(d.cur.Src, end)
	end, ok = peekAt(lexer.Exactly(':'), d.cur.Src, end)
	if !ok {
		return false
	}
	end = skipSpaces(d.cur.Src, end)
	_, ok = peekAt(lexer.Exactly('{'), d.cur.Src, end)
	return ok
}

func (d *Document) lookahead() lexer.SelectorLookahead {
	return lexer.LookaheadForSelector(d.cur.Src, d.cur.Pos)
}

func skipSpaces(src []byte, pos int) int {
	end := lexer.OptionalSpaces(src, pos)
	if end < 0 {
		return pos
	}
	return end
}

func peekAt(c lexer.Combinator, src []byte, pos int) (int, bool) {
	end := c(src, pos)
	if end < 0 {
		return pos, false
	}
	return end, true
}
