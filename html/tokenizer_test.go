package html

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nkcmr/browsercore/dom"
)

func collectTokens(input string) []Token {
	tz := NewTokenizer(input)
	var tokens []Token
	for {
		tok, ok := tz.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
		if tok.Type == EOFToken {
			break
		}
	}
	return tokens
}

func TestTokenizerText(t *testing.T) {
	toks := collectTokens("abc")
	want := []rune{'a', 'b', 'c'}
	if len(toks) != len(want)+1 {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want)+1)
	}
	for i, ch := range want {
		if toks[i].Type != CharToken || toks[i].Char != ch {
			t.Errorf("token %d: got %+v, want Char(%q)", i, toks[i], ch)
		}
	}
	if toks[len(toks)-1].Type != EOFToken {
		t.Error("expected final token to be EOF")
	}
}

func TestTokenizerSimpleTag(t *testing.T) {
	toks := collectTokens("<div>")
	if toks[0].Type != StartTagToken || toks[0].TagName != "div" {
		t.Errorf("got %+v", toks[0])
	}
}

func TestTokenizerEndTag(t *testing.T) {
	toks := collectTokens("</div>")
	if toks[0].Type != EndTagToken || toks[0].TagName != "div" {
		t.Errorf("got %+v", toks[0])
	}
}

func TestTokenizerSelfClosingTag(t *testing.T) {
	toks := collectTokens("<br/>")
	if toks[0].Type != StartTagToken || toks[0].TagName != "br" || !toks[0].SelfClosing {
		t.Errorf("got %+v", toks[0])
	}
}

func TestTokenizerUppercaseTagFolded(t *testing.T) {
	toks := collectTokens("<DIV>")
	if toks[0].TagName != "div" {
		t.Errorf("TagName = %q, want lowercased", toks[0].TagName)
	}
}

func TestTokenizerAttributesDoubleQuoted(t *testing.T) {
	toks := collectTokens(`<div id="main" class="container">`)
	want := []dom.Attribute{
		{Name: "id", Value: "main"},
		{Name: "class", Value: "container"},
	}
	if diff := cmp.Diff(want, toks[0].Attributes); diff != "" {
		t.Errorf("Attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerAttributesSingleQuoted(t *testing.T) {
	toks := collectTokens(`<div id='main'>`)
	attrs := toks[0].Attributes
	if len(attrs) != 1 || attrs[0].Name != "id" || attrs[0].Value != "main" {
		t.Errorf("got %+v", attrs)
	}
}

func TestTokenizerAttributesUnquoted(t *testing.T) {
	toks := collectTokens(`<div id=main>`)
	attrs := toks[0].Attributes
	if len(attrs) != 1 || attrs[0].Name != "id" || attrs[0].Value != "main" {
		t.Errorf("got %+v", attrs)
	}
}

func TestTokenizerAttributeNameFolded(t *testing.T) {
	toks := collectTokens(`<div ID="main">`)
	if toks[0].Attributes[0].Name != "id" {
		t.Errorf("Name = %q, want lowercased", toks[0].Attributes[0].Name)
	}
}

func TestTokenizerMultipleTokens(t *testing.T) {
	toks := collectTokens("<html><body>Hi</body></html>")

	type want struct {
		typ TokenType
		tag string
		ch  rune
	}
	expected := []want{
		{StartTagToken, "html", 0},
		{StartTagToken, "body", 0},
		{CharToken, "", 'H'},
		{CharToken, "", 'i'},
		{EndTagToken, "body", 0},
		{EndTagToken, "html", 0},
		{typ: EOFToken},
	}

	type shape struct {
		Type TokenType
		Tag  string
		Char rune
	}
	got := make([]shape, len(toks))
	for i, tok := range toks {
		got[i] = shape{Type: tok.Type, Tag: tok.TagName, Char: tok.Char}
	}
	wantShapes := make([]shape, len(expected))
	for i, e := range expected {
		wantShapes[i] = shape{Type: e.typ, Tag: e.tag, Char: e.ch}
	}
	if diff := cmp.Diff(wantShapes, got); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

// TestTokenizerEOFOnce covers the termination property: for any finite
// input, Eof is produced at most once and subsequent calls yield
// nothing.
func TestTokenizerEOFOnce(t *testing.T) {
	tz := NewTokenizer("<p>")
	var sawEOF bool
	for {
		tok, ok := tz.Next()
		if !ok {
			break
		}
		if tok.Type == EOFToken {
			if sawEOF {
				t.Fatal("saw a second Eof token")
			}
			sawEOF = true
		}
	}
	if !sawEOF {
		t.Fatal("expected an Eof token before exhaustion")
	}
	if _, ok := tz.Next(); ok {
		t.Fatal("expected no further tokens after Eof")
	}
}

func TestTokenizerTruncatedTagDoesNotPanic(t *testing.T) {
	toks := collectTokens("<div")
	if toks[len(toks)-1].Type != EOFToken {
		t.Errorf("got %+v, want trailing Eof", toks)
	}
}

// TestTokenizerScriptBodyWithAngleBracket exercises the raw-text
// protocol engaged by EnterRawText: a script body containing a literal
// '<' must not be mistaken for a new tag, and the matching end tag must
// still be recognized.
func TestTokenizerScriptBodyWithAngleBracket(t *testing.T) {
	tz := NewTokenizer("if (a<b) {}</script>")
	tz.EnterRawText()

	var chars []rune
	for {
		tok, ok := tz.Next()
		if !ok || tok.Type == EOFToken {
			break
		}
		if tok.Type == EndTagToken {
			if tok.TagName != "script" {
				t.Fatalf("got end tag %q, want script", tok.TagName)
			}
			return
		}
		chars = append(chars, tok.Char)
	}
	t.Fatalf("expected an end tag, got chars %q", string(chars))
}

// TestTokenizerScriptEndTagMismatchReemits covers the temporary-buffer
// protocol: a "</" sequence not followed by a matching tag name is
// re-emitted character by character rather than dropped.
func TestTokenizerScriptEndTagMismatchReemits(t *testing.T) {
	tz := NewTokenizer("a</s1>b</script>")
	tz.EnterRawText()

	var out []rune
	for {
		tok, ok := tz.Next()
		if !ok || tok.Type == EOFToken {
			break
		}
		if tok.Type == EndTagToken {
			break
		}
		out = append(out, tok.Char)
	}
	if string(out) != "a</s1>b" {
		t.Errorf("got %q, want %q", string(out), "a</s1>b")
	}
}
