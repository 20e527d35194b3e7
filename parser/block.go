package parser

import (
	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/lexer"
	"github.com/cchamplin/libsass/token"
)

// parseBlock parses a brace-delimited statement list.
// surroundingRuleset is the enclosing ruleset's node id, or ast.NilNode if
// this block is not nested inside any ruleset (a top-level @media/@if/...
// body, or a mixin/function body); it is what @extend checks and records
// against. insideOf restricts what may appear directly inside a mixin or
// function body.
func (d *Document) parseBlock(surroundingRuleset ast.NodeID, insideOf insideKind) (ast.NodeID, error) {
	line := d.cur.Line
	if !d.cur.Lex(lexer.Exactly('{')) {
		return ast.NilNode, d.syntaxErrorf("expected '{'")
	}
	block := d.node(ast.KindBlock, line, 0)

	pendingSemicolon := false
	d.skipWhitespace()
	for {
		if d.cur.Lex(lexer.Exactly('}')) {
			return block, nil
		}
		if pendingSemicolon {
			d.drainBlockComments(block)
			if !d.cur.Lex(lexer.Exactly(';')) {
				return ast.NilNode, d.syntaxErrorf("non-terminal statement or declaration must end with ';'")
			}
			pendingSemicolon = false
			d.skipWhitespace()
			continue
		}

		child, spliced, needsTerminator, err := d.parseBlockStatement(block, surroundingRuleset, insideOf)
		if err != nil {
			return ast.NilNode, err
		}
		for _, s := range spliced {
			d.append(block, s)
		}
		if child != ast.NilNode {
			d.append(block, child)
		}
		pendingSemicolon = needsTerminator
		d.skipWhitespace()
	}
}

// drainBlockComments consumes any run of block comments (and the plain
// whitespace around them) sitting ahead of the cursor, appending each as
// a comment node to parent. Used wherever a terminator is required right
// after a statement, so a comment between the statement and its ';' is
// captured rather than rejected.
func (d *Document) drainBlockComments(parent ast.NodeID) {
	for {
		d.skipWhitespace()
		if !d.peekBlockComment() {
			return
		}
		n, _ := d.lexLeaf(ast.KindComment, lexer.BlockComment)
		d.append(parent, n)
	}
}

// parseBlockStatement parses exactly one statement inside a block.
func (d *Document) parseBlockStatement(block, surroundingRuleset ast.NodeID, insideOf insideKind) (child ast.NodeID, spliced []ast.NodeID, needsTerminator bool, err error) {
	switch {
	case d.peekBlockComment():
		n, _ := d.lexLeaf(ast.KindComment, lexer.BlockComment)
		return n, nil, false, nil

	case d.peek(lexer.Exactly(';')):
		d.cur.Lex(lexer.Exactly(';'))
		return ast.NilNode, nil, false, nil

	case d.peek(lexer.ImportKw):
		if insideOf == insideMixin || insideOf == insideFunction {
			return ast.NilNode, nil, false, d.syntaxErrorf("@import directive not allowed inside definition of mixin or function")
		}
		imp, kids, ierr := d.parseImport()
		return imp, kids, ierr == nil, ierr

	case d.peek(lexer.Variable):
		n, aerr := d.parseAssignment()
		return n, nil, true, aerr

	case d.peek(lexer.IfKw):
		n, ierr := d.parseIfDirective(surroundingRuleset, insideOf)
		return n, nil, false, ierr

	case d.peek(lexer.ForKw):
		n, ferr := d.parseForDirective(surroundingRuleset, insideOf)
		return n, nil, false, ferr

	case d.peek(lexer.EachKw):
		n, eerr := d.parseEachDirective(surroundingRuleset, insideOf)
		return n, nil, false, eerr

	case d.peek(lexer.WhileKw):
		n, werr := d.parseWhileDirective(surroundingRuleset, insideOf)
		return n, nil, false, werr

	case d.peek(lexer.ReturnKw):
		n, rerr := d.parseReturnDirective()
		return n, nil, true, rerr

	case d.peek(lexer.WarnKw):
		n, werr := d.parseWarning()
		return n, nil, true, werr

	// Only variable declarations, control directives, @return and @warn
	// may appear inside a function body; everything else falls through to
	// here and is rejected.
	case insideOf == insideFunction:
		return ast.NilNode, nil, false, d.syntaxErrorf("only variable declarations and control directives are allowed inside functions")

	case d.peekPropsetHeader():
		n, perr := d.parsePropset()
		return n, nil, false, perr

	case d.lookahead().Found >= 0:
		la := d.lookahead()
		n, rerr := d.parseRuleset(la, insideOf)
		return n, nil, false, rerr

	case d.peek(lexer.IncludeKw), d.peek(lexer.Exactly('+')):
		n, cerr := d.parseMixinCall()
		return n, nil, true, cerr

	case d.peek(lexer.ExtendKw):
		if surroundingRuleset == ast.NilNode {
			return ast.NilNode, nil, false, d.syntaxErrorf("@extend directive may only be used within rules")
		}
		if !d.cur.Lex(lexer.ExtendKw) {
			return ast.NilNode, nil, false, d.syntaxErrorf("expected @extend")
		}
		d.skipWhitespace()
		extendee, eerr := d.parseSimpleSelectorSequence()
		if eerr != nil {
			return ast.NilNode, nil, false, eerr
		}
		d.arena.Extensions.Insert(extendee, surroundingRuleset)
		return ast.NilNode, nil, true, nil

	case d.peek(lexer.MediaKw):
		n, merr := d.parseMediaQuery(insideOf)
		return n, nil, false, merr

	case d.peek(lexer.DirectiveKw):
		n, derr := d.parseDirective(surroundingRuleset, insideOf)
		if derr != nil {
			return ast.NilNode, nil, false, derr
		}
		return n, nil, d.nodeKind(n) == ast.KindBlocklessDirective, nil

	default:
		return d.parseDeclarationOrPropset()
	}
}

// parseDeclarationOrPropset parses a rule, then checks whether a '{'
// follows immediately: if so, the rule was actually a namespaced property
// with its own inline value (e.g. `border: 1px { color: red }`), which is
// promoted into a propset whose first declaration is the rule itself
// (with its property name blanked out) followed by the nested block's
// other declarations.
func (d *Document) parseDeclarationOrPropset() (ast.NodeID, []ast.NodeID, bool, error) {
	rule, err := d.parseRule()
	if err != nil {
		return ast.NilNode, nil, false, err
	}
	d.skipWhitespace()
	if !d.peek(lexer.Exactly('{')) {
		return rule, nil, true, nil
	}

	ruleNode := d.arena.Node(rule)
	ruleLine := ruleNode.Line
	propertyChild := ruleNode.Children[0]
	ruleShouldEval := ruleNode.ShouldEval

	propset := d.node(ast.KindPropset, ruleLine, 2)
	d.append(propset, propertyChild)

	emptyProp := d.leaf(ast.KindProperty, ruleLine, token.Zero)
	d.arena.Node(rule).Children[0] = emptyProp

	inner, ierr := d.parseBlock(ast.NilNode, insideNone)
	if ierr != nil {
		return ast.NilNode, nil, false, ierr
	}
	innerNode := d.arena.Node(inner)
	innerNode.Children = append([]ast.NodeID{rule}, innerNode.Children...)
	if ruleShouldEval {
		innerNode.ShouldEval = true
	}
	d.append(propset, inner)
	return propset, nil, false, nil
}
