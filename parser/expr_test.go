package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cchamplin/libsass/ast"
)

// assignedValue parses `$x: <src>;` and returns the assignment's value node.
func assignedValue(t *testing.T, src string) (ast.NodeID, *ast.Arena) {
	t.Helper()
	root, arena := mustParse(t, "$x: "+src+";")
	return child(t, arena, child(t, arena, root, 0), 1), arena
}

func TestParseExpression_Addition(t *testing.T) {
	val, arena := assignedValue(t, "1 + 2")
	require.Equal(t, ast.KindExpression, kind(arena, val))
	require.True(t, arena.Node(val).ShouldEval)
	require.Len(t, arena.Node(val).Children, 3)
	require.Equal(t, ast.KindAdd, kind(arena, child(t, arena, val, 1)))
}

func TestParseExpression_SubtractionVsNegativeLiteral(t *testing.T) {
	val, arena := assignedValue(t, "1 - -2")
	require.Equal(t, ast.KindExpression, kind(arena, val))
	require.Len(t, arena.Node(val).Children, 3)
	require.Equal(t, ast.KindSub, kind(arena, child(t, arena, val, 1)))
	// the right-hand "-2" is a single signed number literal, not a
	// unary-minus node wrapping a positive one.
	require.Equal(t, ast.KindTextualNumber, kind(arena, child(t, arena, val, 2)))
}

func TestParseExpression_UnaryMinusOnParenthesized(t *testing.T) {
	val, arena := assignedValue(t, "-(1 + 2)")
	require.Equal(t, ast.KindUnaryMinus, kind(arena, val))
	require.True(t, arena.Node(val).ShouldEval)
}

func TestParseFactor_ParenthesizedCommaListForcesShouldEval(t *testing.T) {
	val, arena := assignedValue(t, "(1, 2)")
	require.Equal(t, ast.KindCommaList, kind(arena, val))
	require.True(t, arena.Node(val).ShouldEval)
	require.True(t, arena.Node(child(t, arena, val, 0)).ShouldEval)
}

func TestParseRelation_Equality(t *testing.T) {
	val, arena := assignedValue(t, "1 == 2")
	require.Equal(t, ast.KindRelation, kind(arena, val))
	require.True(t, arena.Node(val).ShouldEval)
	require.Equal(t, ast.KindEq, kind(arena, child(t, arena, val, 1)))
}

func TestParseRelation_OperatorPrecedenceOverGreaterThan(t *testing.T) {
	val, arena := assignedValue(t, "1 >= 2")
	require.Equal(t, ast.KindGte, kind(arena, child(t, arena, val, 1)))
}

func TestParseDisjunctionAndConjunction_Nesting(t *testing.T) {
	val, arena := assignedValue(t, "true and false or true")
	require.Equal(t, ast.KindDisjunction, kind(arena, val))
	require.True(t, arena.Node(val).ShouldEval)
	require.Equal(t, ast.KindConjunction, kind(arena, child(t, arena, val, 0)))
}

func TestParseTerm_MultiplicationForcesShouldEval(t *testing.T) {
	val, arena := assignedValue(t, "10px*2")
	require.Equal(t, ast.KindTerm, kind(arena, val))
	require.True(t, arena.Node(val).ShouldEval)
}

func TestParseTerm_BareDivisionDoesNotForceShouldEval(t *testing.T) {
	val, arena := assignedValue(t, "10px/2")
	require.Equal(t, ast.KindTerm, kind(arena, val))
	require.False(t, arena.Node(val).ShouldEval)
}
