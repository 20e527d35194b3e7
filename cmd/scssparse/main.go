// Command scssparse drives the parser end to end: it resolves @import
// through a loader.FileSystem, runs parser.ParseSCSS, and prints a summary
// of the resulting tree and extension registry. It exists to exercise the
// core's two external contracts (Loader, the extension registry); it is
// not part of the grammar itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "scssparse",
		Short: "Parse SCSS files into an AST and report their structure",
	}
	root.AddCommand(newParseCmd())
	root.AddCommand(newWatchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
