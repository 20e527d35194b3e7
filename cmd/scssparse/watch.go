package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/loader"
	"github.com/cchamplin/libsass/parser"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-parse a SCSS file (and its imports) on every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.OutOrStdout(), args[0])
		},
	}
}

func runWatch(out io.Writer, file string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()

	fs := loader.New(filepath.Dir(file))
	if err := fs.Watch(); err != nil {
		return err
	}
	defer fs.Close()

	parseAndReport := func() {
		start := time.Now()
		src, err := os.ReadFile(file)
		if err != nil {
			log.Error().Str("path", file).Err(err).Msg("read failed")
			return
		}
		root, arena, perr := parser.ParseSCSS(file, src, fs)
		event := log.Info()
		if perr != nil {
			event = log.Error().Err(perr)
		}
		event.Str("path", file).Dur("duration", time.Since(start)).Msg("parsed")
		if perr != nil {
			reportParseError(out, perr)
			return
		}
		logWarnings(log, arena, root)
	}

	parseAndReport()
	for range fs.Changes() {
		parseAndReport()
	}
	return nil
}

// logWarnings walks id's subtree and emits one structured log line per
// warning node encountered: the downstream emission of a @warn that the
// parser itself only records.
func logWarnings(log zerolog.Logger, arena *ast.Arena, id ast.NodeID) {
	if id == ast.NilNode {
		return
	}
	n := arena.Node(id)
	if n.Kind == ast.KindWarning {
		log.Warn().Int("line", n.Line).Msg("@warn encountered")
	}
	for _, child := range n.Children {
		logWarnings(log, arena, child)
	}
}
