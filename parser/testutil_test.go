package parser_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/parser"
)

// mapLoader resolves @import paths from an in-memory map, for tests that
// need a working Loader without touching a filesystem.
type mapLoader struct {
	files map[string]string
}

func (l mapLoader) Load(logicalPath string) ([]byte, string, error) {
	src, ok := l.files[logicalPath]
	if !ok {
		return nil, "", fmt.Errorf("no such file: %s", logicalPath)
	}
	return []byte(src), logicalPath, nil
}

// mustParse parses src and fails the test immediately on error.
func mustParse(t *testing.T, src string) (ast.NodeID, *ast.Arena) {
	t.Helper()
	root, arena, err := parser.ParseSCSS("t.scss", []byte(src), nil)
	require.NoError(t, err)
	return root, arena
}

// mustParseWith is mustParse with an explicit Loader.
func mustParseWith(t *testing.T, src string, loader parser.Loader) (ast.NodeID, *ast.Arena) {
	t.Helper()
	root, arena, err := parser.ParseSCSS("t.scss", []byte(src), loader)
	require.NoError(t, err)
	return root, arena
}

// parseErr parses src and returns the error, requiring that parsing did
// in fact fail.
func parseErr(t *testing.T, src string) error {
	t.Helper()
	_, _, err := parser.ParseSCSS("t.scss", []byte(src), nil)
	require.Error(t, err)
	return err
}

// parseWithErr is parseErr with an explicit Loader, returning the raw
// (possibly nil) node/arena alongside the error for callers that want to
// assert on the error alone.
func parseWithErr(t *testing.T, src string, loader parser.Loader) (ast.NodeID, *ast.Arena, error) {
	t.Helper()
	return parser.ParseSCSS("t.scss", []byte(src), loader)
}

// child returns arena's idx'th child of id, failing the test if id has
// fewer than idx+1 children.
func child(t *testing.T, arena *ast.Arena, id ast.NodeID, idx int) ast.NodeID {
	t.Helper()
	kids := arena.Node(id).Children
	require.Greaterf(t, len(kids), idx, "node %s has only %d children", arena.Node(id).Kind, len(kids))
	return kids[idx]
}

// kind is a short alias for arena.Node(id).Kind, for terser assertions.
func kind(arena *ast.Arena, id ast.NodeID) ast.Kind {
	return arena.Node(id).Kind
}

// text returns the source text a leaf's token spans.
func text(arena *ast.Arena, src string, id ast.NodeID) string {
	tok := arena.Node(id).Tok
	return tok.Text([]byte(src))
}
