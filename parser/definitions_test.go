package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cchamplin/libsass/ast"
)

func TestParseMixinDefinition_ParametersAndBody(t *testing.T) {
	root, arena := mustParse(t, `@mixin foo($a, $b: 1) { color: $a; }`)
	mixin := child(t, arena, root, 0)
	require.Equal(t, ast.KindMixin, kind(arena, mixin))

	name := child(t, arena, mixin, 0)
	require.Equal(t, ast.KindIdentifier, kind(arena, name))
	require.Equal(t, "foo", text(arena, `@mixin foo($a, $b: 1) { color: $a; }`, name))

	params := child(t, arena, mixin, 1)
	require.Equal(t, ast.KindParameters, kind(arena, params))
	require.Len(t, arena.Node(params).Children, 2)
	require.Equal(t, ast.KindVariable, kind(arena, child(t, arena, params, 0)))
	require.Equal(t, ast.KindAssignment, kind(arena, child(t, arena, params, 1)))

	body := child(t, arena, mixin, 2)
	require.Equal(t, ast.KindBlock, kind(arena, body))
}

func TestParseFunctionDefinition_RestrictsBodyStatements(t *testing.T) {
	err := parseErr(t, `@function f() { color: red; }`)
	require.Contains(t, err.Error(), "only variable declarations and control directives are allowed inside functions")
}

func TestParseFunctionDefinition_AllowsReturnAndAssignment(t *testing.T) {
	root, arena := mustParse(t, `@function f($a) { $b: $a; @return $b; }`)
	fn := child(t, arena, root, 0)
	body := child(t, arena, fn, 2)
	require.Len(t, arena.Node(body).Children, 2)
	require.Equal(t, ast.KindAssignment, kind(arena, child(t, arena, body, 0)))
	require.Equal(t, ast.KindReturnDirective, kind(arena, child(t, arena, body, 1)))
}

func TestParseMixinCall_NamedAndPositionalArguments(t *testing.T) {
	root, arena := mustParse(t, `.a { @include foo(1, $b: 2); }`)
	block := child(t, arena, child(t, arena, root, 0), 1)
	expansion := child(t, arena, block, 0)
	require.Equal(t, ast.KindExpansion, kind(arena, expansion))

	args := child(t, arena, expansion, 1)
	require.Equal(t, ast.KindArguments, kind(arena, args))
	require.Len(t, arena.Node(args).Children, 2)
	require.True(t, arena.Node(child(t, arena, args, 0)).ShouldEval)
	named := child(t, arena, args, 1)
	require.Equal(t, ast.KindAssignment, kind(arena, named))
	require.True(t, arena.Node(named).ShouldEval)
}

func TestParseMixinCall_ShorthandPlusSyntax(t *testing.T) {
	root, arena := mustParse(t, `.a { +foo(1); }`)
	block := child(t, arena, child(t, arena, root, 0), 1)
	require.Equal(t, ast.KindExpansion, kind(arena, child(t, arena, block, 0)))
}

func TestParseAssignment_DefaultFlag(t *testing.T) {
	root, arena := mustParse(t, `$x: 1 !default;`)
	assignment := child(t, arena, root, 0)
	require.Len(t, arena.Node(assignment).Children, 3)
	require.Equal(t, ast.KindNone, kind(arena, child(t, arena, assignment, 2)))
}

func TestParseAssignment_WithoutDefaultFlag(t *testing.T) {
	root, arena := mustParse(t, `$x: 1;`)
	assignment := child(t, arena, root, 0)
	require.Len(t, arena.Node(assignment).Children, 2)
}

func TestParsePropset_NamespacedProperty(t *testing.T) {
	root, arena := mustParse(t, `.a { font: { size: 10px; weight: bold; } }`)
	block := child(t, arena, child(t, arena, root, 0), 1)
	propset := child(t, arena, block, 0)
	require.Equal(t, ast.KindPropset, kind(arena, propset))

	body := child(t, arena, propset, 1)
	require.Len(t, arena.Node(body).Children, 2)
}

func TestParsePropset_EmptyBodyIsAnError(t *testing.T) {
	err := parseErr(t, `.a { font: {} }`)
	require.Contains(t, err.Error(), "namespaced property cannot be empty")
}

func TestParsePropertyName_LeadingStarIsDiscarded(t *testing.T) {
	src := `.a { *zoom: 1; }`
	root, arena := mustParse(t, src)
	block := child(t, arena, child(t, arena, root, 0), 1)
	rule := child(t, arena, block, 0)
	prop := child(t, arena, rule, 0)
	require.Equal(t, ast.KindProperty, kind(arena, prop))
	require.Equal(t, "zoom", text(arena, src, prop))
}
