package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/token"
)

func TestArenaAppendPropagatesShouldEval(t *testing.T) {
	a := ast.NewArena()
	parent := a.New(ast.KindExpression, "x.scss", 1, 2)
	child := a.NewLeaf(ast.KindTextualNumber, "x.scss", 1, token.Make(0, 1))
	a.Node(child).ShouldEval = true

	a.Append(parent, child)

	require.True(t, a.Node(parent).ShouldEval)
	require.Equal(t, []ast.NodeID{child}, a.Node(parent).Children)
}

func TestArenaAppendDoesNotPropagateFalse(t *testing.T) {
	a := ast.NewArena()
	parent := a.New(ast.KindSelector, "x.scss", 1, 1)
	child := a.NewLeaf(ast.KindIdentifier, "x.scss", 1, token.Make(0, 1))

	a.Append(parent, child)

	require.False(t, a.Node(parent).ShouldEval)
}

func TestExtensionRegistryInsertOrder(t *testing.T) {
	reg := ast.ExtensionRegistry{}
	reg.Insert(5, 1)
	reg.Insert(5, 2)
	require.Equal(t, []ast.NodeID{1, 2}, reg[5])
}

func TestKindString(t *testing.T) {
	require.Equal(t, "selector_schema", ast.KindSelectorSchema.String())
	require.Equal(t, "unknown", ast.Kind(9999).String())
}

func TestIsRelationalOperator(t *testing.T) {
	require.True(t, ast.IsRelationalOperator(ast.KindEq))
	require.False(t, ast.IsRelationalOperator(ast.KindAdd))
}
