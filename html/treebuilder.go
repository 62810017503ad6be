package html

import (
	"github.com/nkcmr/browsercore/dom"
	"github.com/nkcmr/browsercore/log"
)

// insertionMode is the tree builder's current position in the
// construction automaton.
//
// Spec references:
// - HTML5 §12.2.6 Tree construction: https://html.spec.whatwg.org/multipage/parsing.html#tree-construction
// - saba_core::renderer::html::parser::InsertionMode (original Rust reference implementation)
type insertionMode int

const (
	modeInitial insertionMode = iota
	modeBeforeHTML
	modeBeforeHead
	modeInHead
	modeAfterHead
	modeInBody
	modeText
	modeAfterBody
	modeAfterAfterBody
)

// TreeBuilder drives the insertion-mode automaton that turns a token
// stream into a DOM tree rooted at a Window's Document.
type TreeBuilder struct {
	window                *dom.Window
	mode                  insertionMode
	originalInsertionMode insertionMode
	openElements          []*dom.Node
	tokenizer             *Tokenizer
}

// NewTreeBuilder creates a builder over a fresh Window, consuming tokens
// from tokenizer.
func NewTreeBuilder(tokenizer *Tokenizer) *TreeBuilder {
	return &TreeBuilder{
		window:    dom.NewWindow(),
		mode:      modeInitial,
		tokenizer: tokenizer,
	}
}

// ConstructTree drives the automaton to completion and returns the
// resulting Window.
func (b *TreeBuilder) ConstructTree() *dom.Window {
	token, ok := b.tokenizer.Next()

	for ok {
		switch b.mode {
		case modeInitial:
			if token.Type == CharToken {
				token, ok = b.tokenizer.Next()
				continue
			}
			b.mode = modeBeforeHTML
			continue

		case modeBeforeHTML:
			switch {
			case token.Type == StartTagToken && token.TagName == "html":
				b.insertElement(token.TagName, token.Attributes)
				b.mode = modeBeforeHead
				token, ok = b.tokenizer.Next()
				continue
			case token.Type == CharToken && (token.Char == ' ' || token.Char == '\n'):
				token, ok = b.tokenizer.Next()
				continue
			case token.Type == EOFToken:
				return b.window
			}
			b.insertElement("html", nil)
			b.mode = modeBeforeHead
			continue

		case modeBeforeHead:
			switch {
			case token.Type == StartTagToken && token.TagName == "head":
				b.insertElement(token.TagName, token.Attributes)
				b.mode = modeInHead
				token, ok = b.tokenizer.Next()
				continue
			case token.Type == CharToken && (token.Char == ' ' || token.Char == '\n'):
				token, ok = b.tokenizer.Next()
				continue
			case token.Type == EOFToken:
				return b.window
			}
			b.insertElement("head", nil)
			b.mode = modeInHead
			continue

		case modeInHead:
			switch token.Type {
			case StartTagToken:
				switch {
				case token.TagName == "style" || token.TagName == "script":
					b.insertElement(token.TagName, token.Attributes)
					b.originalInsertionMode = b.mode
					b.mode = modeText
					b.tokenizer.EnterRawText()
					token, ok = b.tokenizer.Next()
					continue
				case token.TagName == "body":
					b.popUntil(dom.Head)
					b.mode = modeAfterHead
					continue
				case dom.KindOf(token.TagName) != dom.Unknown:
					b.popUntil(dom.Head)
					b.mode = modeAfterHead
					continue
				}
			case EndTagToken:
				if token.TagName == "head" {
					b.popUntil(dom.Head)
					b.mode = modeAfterHead
					token, ok = b.tokenizer.Next()
					continue
				}
			case CharToken:
				if token.Char == ' ' || token.Char == '\n' {
					b.insertChar(token.Char)
				}
			case EOFToken:
				return b.window
			}
			// Unsupported tags in head are silently skipped.
			token, ok = b.tokenizer.Next()
			continue

		case modeAfterHead:
			switch {
			case token.Type == StartTagToken && token.TagName == "body":
				b.insertElement(token.TagName, token.Attributes)
				b.mode = modeInBody
				token, ok = b.tokenizer.Next()
				continue
			case token.Type == CharToken && (token.Char == ' ' || token.Char == '\n'):
				b.insertChar(token.Char)
				token, ok = b.tokenizer.Next()
				continue
			case token.Type == EOFToken:
				return b.window
			}
			b.insertElement("body", nil)
			b.mode = modeInBody
			continue

		case modeInBody:
			switch token.Type {
			case StartTagToken:
				switch token.TagName {
				case "p", "h1", "h2", "h3", "a":
					b.insertElement(token.TagName, token.Attributes)
					token, ok = b.tokenizer.Next()
					continue
				default:
					token, ok = b.tokenizer.Next()
					continue
				}
			case EndTagToken:
				switch token.TagName {
				case "body":
					b.mode = modeAfterBody
					token, ok = b.tokenizer.Next()
					if !b.containInStack(dom.Body) {
						continue
					}
					b.popUntil(dom.Body)
					continue
				case "html":
					if b.popCurrentNode(dom.Body) {
						b.mode = modeAfterBody
						b.popCurrentNode(dom.Html)
					} else {
						token, ok = b.tokenizer.Next()
					}
					continue
				case "p", "h1", "h2", "h3", "a":
					b.popUntil(dom.KindOf(token.TagName))
					token, ok = b.tokenizer.Next()
					continue
				default:
					token, ok = b.tokenizer.Next()
					continue
				}
			case CharToken:
				b.insertChar(token.Char)
				token, ok = b.tokenizer.Next()
				continue
			case EOFToken:
				return b.window
			}

		case modeText:
			switch token.Type {
			case EndTagToken:
				if token.TagName == "style" {
					b.popUntil(dom.Style)
					b.mode = b.originalInsertionMode
					token, ok = b.tokenizer.Next()
					continue
				}
				if token.TagName == "script" {
					b.popUntil(dom.Script)
					b.mode = b.originalInsertionMode
					token, ok = b.tokenizer.Next()
					continue
				}
			case CharToken:
				b.insertChar(token.Char)
				token, ok = b.tokenizer.Next()
				continue
			case EOFToken:
				return b.window
			}
			b.mode = b.originalInsertionMode

		case modeAfterBody:
			switch token.Type {
			case EndTagToken:
				if token.TagName == "html" {
					b.mode = modeAfterAfterBody
					token, ok = b.tokenizer.Next()
					continue
				}
			case CharToken:
				token, ok = b.tokenizer.Next()
				continue
			case EOFToken:
				return b.window
			}
			b.mode = modeInBody

		case modeAfterAfterBody:
			switch token.Type {
			case CharToken:
				token, ok = b.tokenizer.Next()
				continue
			case EOFToken:
				return b.window
			}
			b.mode = modeInBody
		}
	}

	return b.window
}

// currentNode returns the top of the open-elements stack, or the
// document root if the stack is empty.
func (b *TreeBuilder) currentNode() *dom.Node {
	if len(b.openElements) == 0 {
		return b.window.Document()
	}
	return b.openElements[len(b.openElements)-1]
}

// insertElement appends a new element as the last child of the current
// node and pushes it onto the open-elements stack.
func (b *TreeBuilder) insertElement(tagName string, attrs []dom.Attribute) {
	elem := dom.NewElement(tagName, attrs)
	current := b.currentNode()
	appendChild(current, elem)
	b.openElements = append(b.openElements, elem)
}

// insertChar appends ch to the current text node, or starts a new one.
// A run of whitespace that would begin a fresh text node is dropped —
// only whitespace continuing an already-open text node survives. Text
// nodes are themselves pushed onto the open-elements stack, mirroring
// the tree builder's habit of treating the in-progress text run as the
// current insertion point until a tag token displaces it.
func (b *TreeBuilder) insertChar(ch rune) {
	if len(b.openElements) == 0 {
		return
	}
	current := b.openElements[len(b.openElements)-1]
	if current.Type == dom.TextNode {
		current.Text += string(ch)
		return
	}

	if ch == '\n' || ch == ' ' {
		return
	}

	text := dom.NewText(string(ch))
	appendChild(current, text)
	b.openElements = append(b.openElements, text)
}

// appendChild links child as the last child of parent, maintaining the
// sibling chain's strong (FirstChild/NextSibling) and back-reference
// (LastChild/PreviousSibling/Parent) links.
func appendChild(parent, child *dom.Node) {
	if parent.LastChild != nil {
		parent.LastChild.NextSibling = child
		child.PreviousSibling = parent.LastChild
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
	child.Parent = parent
}

// popCurrentNode pops the top of the open-elements stack if and only if
// it has the given kind, reporting whether it did so.
func (b *TreeBuilder) popCurrentNode(kind dom.ElementKind) bool {
	if len(b.openElements) == 0 {
		return false
	}
	top := b.openElements[len(b.openElements)-1]
	if top.Kind != kind {
		return false
	}
	b.openElements = b.openElements[:len(b.openElements)-1]
	return true
}

// popUntil pops the open-elements stack up to and including the
// nearest element of the given kind. If the stack does not contain
// such an element, it logs and leaves the stack untouched — the
// original reference treats this as a fatal invariant violation, but
// this core never panics, so it is recorded and skipped instead.
func (b *TreeBuilder) popUntil(kind dom.ElementKind) {
	if !b.containInStack(kind) {
		log.Warnf("popUntil: stack does not contain element kind %v", kind)
		return
	}
	for len(b.openElements) > 0 {
		top := b.openElements[len(b.openElements)-1]
		b.openElements = b.openElements[:len(b.openElements)-1]
		if top.Kind == kind {
			return
		}
	}
}

// containInStack reports whether any element on the open-elements
// stack has the given kind.
func (b *TreeBuilder) containInStack(kind dom.ElementKind) bool {
	for _, elem := range b.openElements {
		if elem.Kind == kind {
			return true
		}
	}
	return false
}

// Parse tokenizes and tree-builds an HTML document, returning its
// Window.
func Parse(input string) *dom.Window {
	return NewTreeBuilder(NewTokenizer(input)).ConstructTree()
}
