// Package parser implements the SCSS recursive-descent grammar: one
// method per grammar production, producing an *ast.Arena-backed AST. It
// depends on lexer for tokenization/look-ahead and on a caller-supplied
// Loader for @import resolution; it performs no file I/O, evaluation, or
// emission itself.
package parser

import (
	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/lexer"
	"github.com/cchamplin/libsass/token"
)

// insideKind tracks which kind of body a block is nested in, for the
// contextual restrictions a function or mixin body imposes (only
// assignments, control directives, @return and @warn inside a function
// body; no @import inside a mixin or function body).
type insideKind int

const (
	insideNone insideKind = iota
	insideMixin
	insideFunction
)

// Document is the parse context for a single source file. A document's
// Arena and Loader are shared with any nested @import documents; its
// Cursor and Path are not.
type Document struct {
	arena  *ast.Arena
	loader Loader
	cur    *lexer.Cursor
	path   string
}

// ParseSCSS parses src (the contents of the file at path) into a
// completed root ast.Node, using loader to resolve any @import with a
// quoted path. It returns the root node id, the arena that owns every
// node reachable from it (including nodes spliced in from imports), and
// the first syntax or read error encountered, if any.
func ParseSCSS(path string, src []byte, loader Loader) (ast.NodeID, *ast.Arena, error) {
	arena := ast.NewArena()
	d := newDocument(arena, loader, path, src)
	root, err := d.parseRoot()
	return root, arena, err
}

func newDocument(arena *ast.Arena, loader Loader, path string, src []byte) *Document {
	return &Document{arena: arena, loader: loader, cur: lexer.New(path, src), path: path}
}

// Arena returns the arena backing this document's nodes.
func (d *Document) Arena() *ast.Arena {
	return d.arena
}

// --- node construction helpers -------------------------------------------

// leaf allocates a leaf node carrying tok, using line as its source line
// (callers capture line *before* lexing tok, so a node's line points at
// the first byte of its first lexeme).
func (d *Document) leaf(kind ast.Kind, line int, tok token.Token) ast.NodeID {
	return d.arena.NewLeaf(kind, d.path, line, tok)
}

// node allocates an internal node with room for capacity children.
func (d *Document) node(kind ast.Kind, line int, capacity int) ast.NodeID {
	return d.arena.New(kind, d.path, line, capacity)
}

// append adds child to parent's children and propagates should_eval.
func (d *Document) append(parent, child ast.NodeID) {
	d.arena.Append(parent, child)
}

// nodeKind is a small convenience accessor used throughout the grammar.
func (d *Document) nodeKind(id ast.NodeID) ast.Kind {
	return d.arena.Node(id).Kind
}

// setShouldEval forces id's should_eval flag, for productions (e.g. a
// parenthesized expression, a variable reference) that introduce
// computation themselves rather than merely inheriting it from a child.
func (d *Document) setShouldEval(id ast.NodeID) {
	d.arena.Node(id).ShouldEval = true
}

// shouldEval reports id's current should_eval flag.
func (d *Document) shouldEval(id ast.NodeID) bool {
	return d.arena.Node(id).ShouldEval
}

// lexLeaf lexes c and, on success, constructs a leaf node of kind from
// the matched span. It captures the line before lexing.
func (d *Document) lexLeaf(kind ast.Kind, c lexer.Combinator) (ast.NodeID, bool) {
	line := d.cur.Line
	if !d.cur.Lex(c) {
		return ast.NilNode, false
	}
	return d.leaf(kind, line, d.cur.Lexed), true
}

// text returns the source text of tok.
func (d *Document) text(tok token.Token) string {
	return tok.Text(d.cur.Src)
}
