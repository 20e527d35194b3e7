package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cchamplin/libsass/ast"
)

// ruleValue parses `.a { color: <src>; }` and returns the rule's value node.
func ruleValue(t *testing.T, src string) (ast.NodeID, *ast.Arena, string) {
	t.Helper()
	full := ".a { color: " + src + "; }"
	root, arena := mustParse(t, full)
	block := child(t, arena, child(t, arena, root, 0), 1)
	rule := child(t, arena, block, 0)
	return child(t, arena, rule, 1), arena, full
}

func TestParseValue_Number(t *testing.T) {
	val, arena, _ := ruleValue(t, "1")
	require.Equal(t, ast.KindTextualNumber, kind(arena, val))
}

func TestParseValue_Percentage(t *testing.T) {
	val, arena, _ := ruleValue(t, "50%")
	require.Equal(t, ast.KindTextualPercentage, kind(arena, val))
}

func TestParseValue_Hex(t *testing.T) {
	val, arena, _ := ruleValue(t, "#fff")
	require.Equal(t, ast.KindTextualHex, kind(arena, val))
}

func TestParseValue_QuotedString(t *testing.T) {
	val, arena, _ := ruleValue(t, `"hello"`)
	require.Equal(t, ast.KindStringConstant, kind(arena, val))
}

func TestParseValue_InterpolatedStringBecomesSchema(t *testing.T) {
	val, arena, src := ruleValue(t, `"a#{1 + 1}c"`)
	require.Equal(t, ast.KindStringSchema, kind(arena, val))
	require.True(t, arena.Node(val).ShouldEval)
	require.Equal(t, `"a`, text(arena, src, child(t, arena, val, 0))[:2])
}

func TestParseValue_Important(t *testing.T) {
	val, arena, _ := ruleValue(t, "red !important")
	require.Equal(t, ast.KindSpaceList, kind(arena, val))
	require.Equal(t, ast.KindImportant, kind(arena, child(t, arena, val, 1)))
}

func TestParseValue_VariableForcesShouldEval(t *testing.T) {
	val, arena, _ := ruleValue(t, "$x")
	require.Equal(t, ast.KindVariable, kind(arena, val))
	require.True(t, arena.Node(val).ShouldEval)
}

func TestParseValue_BareURL(t *testing.T) {
	val, arena, _ := ruleValue(t, "url(foo.png)")
	require.Equal(t, ast.KindURI, kind(arena, val))
}

func TestParseValue_BooleanKeyword(t *testing.T) {
	root, arena := mustParse(t, "$x: true;")
	val := child(t, arena, child(t, arena, root, 0), 1)
	require.Equal(t, ast.KindBoolean, kind(arena, val))
}

func TestParseValue_BooleanKeywordPrefixIsNotConfused(t *testing.T) {
	root, arena := mustParse(t, "$x: truest;")
	val := child(t, arena, child(t, arena, root, 0), 1)
	require.NotEqual(t, ast.KindBoolean, kind(arena, val))
}

func TestParseValue_PlainIdentifierBecomesStringConstant(t *testing.T) {
	val, arena, _ := ruleValue(t, "solid")
	require.Equal(t, ast.KindStringConstant, kind(arena, val))
}
