// Package dom provides the Document Object Model tree structure produced
// by HTML parsing.
//
// Spec references:
// - DOM Level 2 Core: https://www.w3.org/TR/DOM-Level-2-Core/
// - saba_core::renderer::dom::node (original Rust reference implementation)
package dom

// NodeType represents the kind of a DOM node.
type NodeType int

const (
	// DocumentNode represents the root document node.
	DocumentNode NodeType = iota
	// ElementNode represents an HTML element (e.g. <div>, <p>).
	ElementNode
	// TextNode represents text content within an element.
	TextNode
)

// ElementKind is the finite set of tag identities the tree builder
// recognizes structurally. Unrecognized tags are still parseable at the
// token level (KindOf maps their names to Unknown) but are mostly
// ignored by the builder's element-kind checks.
type ElementKind int

const (
	Unknown ElementKind = iota
	Html
	Head
	Style
	Script
	Body
	P
	H1
	H2
	H3
	A
)

// elementKinds maps recognized tag names to their ElementKind.
var elementKinds = map[string]ElementKind{
	"html":   Html,
	"head":   Head,
	"style":  Style,
	"script": Script,
	"body":   Body,
	"p":      P,
	"h1":     H1,
	"h2":     H2,
	"h3":     H3,
	"a":      A,
}

// KindOf returns the ElementKind for a tag name, or Unknown if the tag is
// not among the builder's recognized set.
func KindOf(tagName string) ElementKind {
	if k, ok := elementKinds[tagName]; ok {
		return k
	}
	return Unknown
}

// Attribute is a single (name, value) pair, built up character by
// character during tokenization.
type Attribute struct {
	Name  string
	Value string
}

// Node is a node in the DOM tree. The conceptual parent/child relation
// is cyclic; this implementation relies on Go's garbage collector rather
// than reference counting to break the cycle. The field comments below
// still record which links form the tree's strong ownership path
// (FirstChild, NextSibling) and which are convenience back-references
// (Parent, LastChild, PreviousSibling) — the distinction matters for
// reasoning about the tree even though the GC does not require it.
type Node struct {
	Type NodeType

	// TagName, Attributes, and Kind are meaningful only when Type ==
	// ElementNode.
	TagName    string
	Attributes []Attribute
	Kind       ElementKind

	// Text is meaningful only when Type == TextNode.
	Text string

	Parent          *Node // back-reference; non-owning
	FirstChild      *Node // owning: start of the sibling chain
	LastChild       *Node // back-reference into the chain; non-owning
	NextSibling     *Node // owning
	PreviousSibling *Node // back-reference; non-owning
}

// NewDocument creates a new, childless document root node.
func NewDocument() *Node {
	return &Node{Type: DocumentNode}
}

// NewElement creates a new, unattached element node.
func NewElement(tagName string, attrs []Attribute) *Node {
	return &Node{
		Type:       ElementNode,
		TagName:    tagName,
		Attributes: attrs,
		Kind:       KindOf(tagName),
	}
}

// NewText creates a new, unattached text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// GetAttribute returns the value of an attribute, or empty string if the
// node is not an element or the attribute is absent.
func (n *Node) GetAttribute(name string) string {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Window is the root object owning exactly one Document node.
type Window struct {
	document *Node
}

// NewWindow creates a Window with a fresh, empty Document.
func NewWindow() *Window {
	return &Window{document: NewDocument()}
}

// Document returns the window's root Document node.
func (w *Window) Document() *Node {
	return w.document
}
