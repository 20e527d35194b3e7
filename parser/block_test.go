package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cchamplin/libsass/ast"
)

func TestParseBlock_Empty(t *testing.T) {
	root, arena := mustParse(t, ".foo {}")
	ruleset := child(t, arena, root, 0)
	body := child(t, arena, ruleset, 1)
	require.Equal(t, ast.KindBlock, kind(arena, body))
	require.Empty(t, arena.Node(body).Children)
}

func TestParseBlock_LastDeclarationTerminatorOptional(t *testing.T) {
	root, arena := mustParse(t, ".foo { color: red; width: 1px }")
	body := child(t, arena, child(t, arena, root, 0), 1)
	require.Len(t, arena.Node(body).Children, 2)
}

func TestParseBlock_MissingSemicolonBetweenDeclarations(t *testing.T) {
	// The value list takes `red width` as a space list and then fails on
	// the second ':', before any terminator check is reached.
	err := parseErr(t, ".foo { color: red width: 1px }")
	require.Contains(t, err.Error(), "error reading values")
}

func TestParseBlock_ExtendRecordsAgainstSurroundingRuleset(t *testing.T) {
	root, arena := mustParse(t, ".a { @extend .b; }")
	ruleset := child(t, arena, root, 0)
	require.Len(t, arena.Extensions, 1)
	for _, rulesets := range arena.Extensions {
		require.Equal(t, []ast.NodeID{ruleset}, rulesets)
	}
}

func TestParseBlock_ExtendOutsideRulesetIsAnError(t *testing.T) {
	err := parseErr(t, "@media screen { @extend .b; }")
	require.Contains(t, err.Error(), "@extend directive may only be used within rules")
}

func TestParseBlock_ImportInsideMixinIsAnError(t *testing.T) {
	err := parseErr(t, `@mixin foo() { @import "bar"; }`)
	require.Contains(t, err.Error(), "@import directive not allowed inside definition of mixin or function")
}

func TestParseBlock_NamespacedPropertyPromotion(t *testing.T) {
	root, arena := mustParse(t, ".a { border: 1px { color: red; } }")
	body := child(t, arena, child(t, arena, root, 0), 1)
	propset := child(t, arena, body, 0)
	require.Equal(t, ast.KindPropset, kind(arena, propset))

	inner := child(t, arena, propset, 1)
	require.Equal(t, ast.KindBlock, kind(arena, inner))
	// the promoted rule (border: 1px) comes first, followed by the nested
	// block's own declaration (color: red).
	require.Len(t, arena.Node(inner).Children, 2)
	require.Equal(t, ast.KindRule, kind(arena, child(t, arena, inner, 0)))
	require.Equal(t, ast.KindRule, kind(arena, child(t, arena, inner, 1)))
}

func TestParseBlock_TrailingSemicolonAloneIsSkipped(t *testing.T) {
	root, arena := mustParse(t, ".a { ; color: red; }")
	body := child(t, arena, child(t, arena, root, 0), 1)
	require.Len(t, arena.Node(body).Children, 1)
}
