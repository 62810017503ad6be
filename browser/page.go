// Package browser provides the top-level Browser/Page shell that turns
// an HTTP response body into a printed DOM tree.
//
// Spec references:
// - saba_core::browser::Browser (original Rust reference implementation)
// - saba_core::renderer::page::Page (original Rust reference implementation)
package browser

import (
	"github.com/nkcmr/browsercore/dom"
	"github.com/nkcmr/browsercore/html"
	"github.com/nkcmr/browsercore/printer"
)

// Page owns the parsed document produced by its most recent response.
type Page struct {
	browser *Browser
	frame   *dom.Window
}

// newPage creates a Page belonging to b, with no frame yet loaded.
func newPage(b *Browser) *Page {
	return &Page{browser: b}
}

// ReceiveResponse tokenizes and tree-builds body into this page's
// frame, then returns the resulting DOM tree rendered as an indented
// listing.
func (p *Page) ReceiveResponse(body string) string {
	p.createFrame(body)
	if p.frame == nil {
		return ""
	}
	return printer.Print(p.frame.Document())
}

func (p *Page) createFrame(body string) {
	p.frame = html.Parse(body)
}

// Frame returns the page's most recently parsed document, or nil if no
// response has been received yet.
func (p *Page) Frame() *dom.Window {
	return p.frame
}
