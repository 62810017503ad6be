// Package httpmsg parses a raw HTTP/1.x response string into a structured
// Response.
//
// Spec references:
// - saba_core::http::HttpResponse (original Rust reference implementation)
package httpmsg

import (
	"strconv"
	"strings"

	"github.com/nkcmr/browsercore/browsererr"
)

// Header is a single (name, value) header line, preserving the casing it
// was read with.
type Header struct {
	Name  string
	Value string
}

// Response is a parsed HTTP/1.x response.
type Response struct {
	Version    string
	StatusCode int
	Reason     string
	Headers    []Header
	Body       string
}

// ParseResponse parses a raw HTTP/1.x response string.
//
// Preprocessing replaces every "\n\r" with "\n" — not the more natural
// "\r\n" — matching the original's observed behavior
// (raw_response.trim_start().replace("\n\r", "\n")); this is preserved
// deliberately rather than "fixed".
func ParseResponse(raw string) (*Response, error) {
	preprocessed := strings.TrimLeft(raw, " \t\r\n")
	preprocessed = strings.ReplaceAll(preprocessed, "\n\r", "\n")

	statusLine, rest, ok := strings.Cut(preprocessed, "\n")
	if !ok {
		return nil, browsererr.New(browsererr.Network, "invalid http response: %s", preprocessed)
	}

	tokens := strings.Split(statusLine, " ")
	if len(tokens) < 3 {
		return nil, browsererr.New(browsererr.Network, "invalid http response status line: %s", statusLine)
	}

	resp := &Response{
		Version: tokens[0],
		Reason:  tokens[2],
	}
	if code, err := strconv.Atoi(tokens[1]); err == nil {
		resp.StatusCode = code
	} else {
		resp.StatusCode = 404
	}

	headersBlock, body, hasHeaders := strings.Cut(rest, "\n\n")
	if !hasHeaders {
		resp.Body = rest
		return resp, nil
	}
	resp.Body = body

	if headersBlock == "" {
		return resp, nil
	}

	for _, line := range strings.Split(headersBlock, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, browsererr.New(browsererr.Network, "invalid http response: %s", preprocessed)
		}
		resp.Headers = append(resp.Headers, Header{Name: name, Value: value})
	}

	return resp, nil
}

// HeaderValue returns the value of the first header whose name matches
// exactly (byte-wise), or a lookup failure if none does. This is not a
// network failure — the response was parsed fine, the header is simply
// absent.
func (r *Response) HeaderValue(name string) (string, error) {
	for _, h := range r.Headers {
		if h.Name == name {
			return h.Value, nil
		}
	}
	return "", browsererr.New(browsererr.Other, "failed to find %s in headers", name)
}
