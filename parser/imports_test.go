package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cchamplin/libsass/ast"
)

func TestParseImport_QuotedPathSplicesChildren(t *testing.T) {
	loader := mapLoader{files: map[string]string{
		"colors": "$blue: #00f;\n.a { color: $blue; }",
	}}
	root, arena := mustParseWith(t, `@import "colors";`, loader)
	require.Len(t, arena.Node(root).Children, 2)
	require.Equal(t, ast.KindAssignment, kind(arena, child(t, arena, root, 0)))
	require.Equal(t, ast.KindRuleset, kind(arena, child(t, arena, root, 1)))
}

func TestParseImport_QuotedPathRequiresTerminator(t *testing.T) {
	loader := mapLoader{files: map[string]string{"colors": "$blue: #00f;"}}
	_, _, err := parseWithErr(t, `@import "colors"`, loader)
	require.Error(t, err)
}

func TestParseImport_URLFormProducesCSSImportNode(t *testing.T) {
	root, arena := mustParse(t, `@import url("theme.css");`)
	imp := child(t, arena, root, 0)
	require.Equal(t, ast.KindCSSImport, kind(arena, imp))
	require.Equal(t, ast.KindStringConstant, kind(arena, child(t, arena, imp, 0)))
}

func TestParseImport_BarewordURLForm(t *testing.T) {
	root, arena := mustParse(t, `@import url(theme.css);`)
	imp := child(t, arena, root, 0)
	require.Equal(t, ast.KindCSSImport, kind(arena, imp))
	require.Equal(t, ast.KindIdentifier, kind(arena, child(t, arena, imp, 0)))
}

func TestParseImport_URLFormAlsoRequiresTerminator(t *testing.T) {
	err := parseErr(t, `@import url(theme.css)`)
	require.Error(t, err)
}

func TestParseImport_NoLoaderConfigured(t *testing.T) {
	err := parseErr(t, `@import "colors";`)
	require.Contains(t, err.Error(), "no loader configured")
}

func TestParseImport_LoaderErrorBecomesReadError(t *testing.T) {
	loader := mapLoader{files: map[string]string{}}
	_, _, err := parseWithErr(t, `@import "missing";`, loader)
	require.Error(t, err)
	require.Contains(t, err.Error(), `error reading file "missing"`)
}
