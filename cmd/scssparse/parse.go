package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/loader"
	"github.com/cchamplin/libsass/parser"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a single SCSS file and print its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), args[0])
		},
	}
}

func runParse(out io.Writer, file string) error {
	root, arena, err := parseFile(file)
	if err != nil {
		reportParseError(out, err)
		return err
	}
	printTree(out, arena, root, 0)
	printExtensions(out, arena)
	return nil
}

// parseFile reads file and parses it, resolving any @import against
// file's own directory.
func parseFile(file string) (ast.NodeID, *ast.Arena, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return ast.NilNode, nil, err
	}
	fs := loader.New(filepath.Dir(file))
	return parser.ParseSCSS(file, src, fs)
}
