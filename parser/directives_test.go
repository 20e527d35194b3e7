package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cchamplin/libsass/ast"
)

func TestParseIfDirective_ElseIfAndElseChain(t *testing.T) {
	root, arena := mustParse(t, `
$x: 1;
.a {
  @if $x == 1 { color: red; }
  @else if $x == 2 { color: green; }
  @else { color: blue; }
}`)
	ifDir := child(t, arena, child(t, arena, child(t, arena, root, 1), 1), 0)
	require.Equal(t, ast.KindIfDirective, kind(arena, ifDir))
	// two condition/body pairs (if, else-if) plus a lone trailing else body.
	require.Len(t, arena.Node(ifDir).Children, 5)
	require.Equal(t, ast.KindRelation, kind(arena, child(t, arena, ifDir, 0)))
	require.Equal(t, ast.KindBlock, kind(arena, child(t, arena, ifDir, 4)))
}

func TestParseIfDirective_NoElse(t *testing.T) {
	root, arena := mustParse(t, `.a { @if true { color: red; } }`)
	body := child(t, arena, child(t, arena, root, 0), 1)
	ifDir := child(t, arena, body, 0)
	require.Len(t, arena.Node(ifDir).Children, 2)
}

func TestParseForDirective_ToVsThrough(t *testing.T) {
	root, arena := mustParse(t, `.a { @for $i from 1 to 3 { color: red; } }`)
	body := child(t, arena, child(t, arena, root, 0), 1)
	require.Equal(t, ast.KindForToDirective, kind(arena, child(t, arena, body, 0)))

	root2, arena2 := mustParse(t, `.a { @for $i from 1 through 3 { color: red; } }`)
	body2 := child(t, arena2, child(t, arena2, root2, 0), 1)
	require.Equal(t, ast.KindForThroughDirective, kind(arena2, child(t, arena2, body2, 0)))
}

func TestParseEachDirective_Shape(t *testing.T) {
	root, arena := mustParse(t, `.a { @each $item in 1, 2, 3 { color: red; } }`)
	body := child(t, arena, child(t, arena, root, 0), 1)
	each := child(t, arena, body, 0)
	require.Equal(t, ast.KindEachDirective, kind(arena, each))
	require.Len(t, arena.Node(each).Children, 3)
	require.Equal(t, ast.KindVariable, kind(arena, child(t, arena, each, 0)))
	require.Equal(t, ast.KindCommaList, kind(arena, child(t, arena, each, 1)))
}

func TestParseWhileDirective_Shape(t *testing.T) {
	root, arena := mustParse(t, `.a { @while $i > 0 { color: red; } }`)
	body := child(t, arena, child(t, arena, root, 0), 1)
	while := child(t, arena, body, 0)
	require.Equal(t, ast.KindWhileDirective, kind(arena, while))
	require.Len(t, arena.Node(while).Children, 2)
}

func TestParseWarning_ForcesShouldEvalOnValue(t *testing.T) {
	root, arena := mustParse(t, `@warn "oops " + $x;`)
	warn := child(t, arena, root, 0)
	require.Equal(t, ast.KindWarning, kind(arena, warn))
	require.True(t, arena.Node(child(t, arena, warn, 0)).ShouldEval)
}

func TestParseMediaQuery_SingleExpressionCollapses(t *testing.T) {
	root, arena := mustParse(t, `@media screen { .a { color: red; } }`)
	mq := child(t, arena, root, 0)
	require.Equal(t, ast.KindMediaQuery, kind(arena, mq))
	require.Equal(t, ast.KindMediaExpression, kind(arena, child(t, arena, mq, 0)))
}

func TestParseMediaQuery_CommaSeparatedBuildsGroup(t *testing.T) {
	root, arena := mustParse(t, `@media screen, print { .a { color: red; } }`)
	mq := child(t, arena, root, 0)
	group := child(t, arena, mq, 0)
	require.Equal(t, ast.KindMediaExpressionGroup, kind(arena, group))
	require.Len(t, arena.Node(group).Children, 2)
}

func TestParseMediaQuery_ParenthesizedFeature(t *testing.T) {
	root, arena := mustParse(t, `@media (min-width: 768px) { .a { color: red; } }`)
	mq := child(t, arena, root, 0)
	expr := child(t, arena, mq, 0)
	require.Equal(t, ast.KindRule, kind(arena, child(t, arena, expr, 0)))
}

func TestParseDirective_BlocklessVsBlock(t *testing.T) {
	root, arena := mustParse(t, `@charset "UTF-8";`)
	require.Equal(t, ast.KindBlocklessDirective, kind(arena, child(t, arena, root, 0)))

	root2, arena2 := mustParse(t, `@font-face { font-family: "Foo"; }`)
	require.Equal(t, ast.KindBlockDirective, kind(arena2, child(t, arena2, root2, 0)))
}

func TestParseDirective_UnknownAtRuleNameStripsAt(t *testing.T) {
	root, arena := mustParse(t, `@my-custom-thing foo;`)
	dir := child(t, arena, root, 0)
	name := child(t, arena, dir, 0)
	require.Equal(t, "my-custom-thing", text(arena, `@my-custom-thing foo;`, name))
}
