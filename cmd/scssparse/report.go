package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/cchamplin/libsass/ast"
	"github.com/cchamplin/libsass/parser"
)

// knownDirectiveKeywords are the at-rule names the grammar special-cases
// (every lexer.*Kw directive combinator, stripped of its leading '@'),
// plus the common CSS at-rules that fall through to the generic
// block_directive/blockless_directive path. reportParseError fuzzy-matches
// the quoted word of a syntax error message against this list for a "did
// you mean" suggestion.
var knownDirectiveKeywords = []string{
	"import", "mixin", "function", "include", "if", "else", "for", "each",
	"while", "media", "warn", "extend", "return",
	"charset", "debug", "supports", "font-face", "keyframes", "page",
	"namespace", "document", "viewport",
}

// printTree writes a summary of the tree rooted at id to w: one line per
// node, indented by depth, showing its kind, source line and child count.
func printTree(w io.Writer, arena *ast.Arena, id ast.NodeID, depth int) {
	if id == ast.NilNode {
		return
	}
	n := arena.Node(id)
	fmt.Fprintf(w, "%s%s (line %d, %d children)\n", strings.Repeat("  ", depth), n.Kind, n.Line, len(n.Children))
	for _, child := range n.Children {
		printTree(w, arena, child, depth+1)
	}
}

// printExtensions writes a summary of the arena's extension registry: for
// each extendee, how many rulesets extend it.
func printExtensions(w io.Writer, arena *ast.Arena) {
	if len(arena.Extensions) == 0 {
		fmt.Fprintln(w, "no @extend directives recorded")
		return
	}
	for extendee, rulesets := range arena.Extensions {
		fmt.Fprintf(w, "node #%d extended by %d ruleset(s)\n", extendee, len(rulesets))
	}
}

// reportParseError prints err. For a syntax error whose message contains a
// double-quoted word, it also prints a "did you mean" suggestion when one
// of the known directive keywords is a close match for that word. The
// parser accepts unknown at-rules without error, so no syntax error names
// an unrecognized directive.
func reportParseError(w io.Writer, err error) {
	var syn *parser.SyntaxError
	if se, ok := err.(*parser.SyntaxError); ok {
		syn = se
	}
	fmt.Fprintln(w, "error:", err)
	if syn == nil {
		return
	}
	word := directiveNameInMessage(syn.Message)
	if word == "" {
		return
	}
	matches := fuzzy.RankFindFold(word, knownDirectiveKeywords)
	if len(matches) == 0 {
		return
	}
	fmt.Fprintf(w, "  did you mean @%s?\n", matches[0].Target)
}

// directiveNameInMessage returns the text between the first pair of double
// quotes in a syntax error message, or "" if there is no such pair. Parser
// error messages that mention an at-directive do not quote its name; the
// only quoted text the parser puts in a message is an @import path.
func directiveNameInMessage(message string) string {
	start := strings.IndexByte(message, '"')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(message[start+1:], '"')
	if end < 0 {
		return ""
	}
	return message[start+1 : start+1+end]
}
