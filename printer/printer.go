// Package printer renders a DOM tree as a human-readable, indented
// listing.
//
// Spec references:
// - saba_core::utils::convert_dom_to_string (original Rust reference implementation)
package printer

import (
	"fmt"
	"strings"

	"github.com/nkcmr/browsercore/dom"
)

// Print renders root depth-first, pre-order: a node is printed before
// its first child, and a node's next sibling is printed at the SAME
// depth immediately after that child subtree — mirroring the two
// recursive calls of the original walk (first_child at depth+1, then
// next_sibling at depth) rather than an explicit children slice. The
// output begins with a leading blank line and indents two spaces per
// depth.
func Print(root *dom.Node) string {
	var b strings.Builder
	b.WriteByte('\n')
	printNode(&b, root, 0)
	return b.String()
}

func printNode(b *strings.Builder, node *dom.Node, depth int) {
	if node == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(describe(node))
	b.WriteByte('\n')
	printNode(b, node.FirstChild, depth+1)
	printNode(b, node.NextSibling, depth)
}

// describe renders a single node's kind in a format modeled on Rust's
// derived Debug: the node's variant name, with associated data in
// parentheses. It is not byte-identical to the Rust Debug output.
func describe(node *dom.Node) string {
	switch node.Type {
	case dom.DocumentNode:
		return "Document"
	case dom.TextNode:
		return fmt.Sprintf("Text(%q)", node.Text)
	case dom.ElementNode:
		return fmt.Sprintf("Element(%s)", node.TagName)
	default:
		return "Unknown"
	}
}
