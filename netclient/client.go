// Package netclient implements the raw TCP HTTP/1.x client that feeds the
// browser core with response bodies to parse.
//
// Spec references:
// - net_wasabi::http::HttpClient (original Rust reference implementation)
// - External Interfaces: HTTP request wire format
package netclient

import (
	"fmt"
	"io"
	"net"

	"github.com/nkcmr/browsercore/browsererr"
	"github.com/nkcmr/browsercore/httpmsg"
	"github.com/nkcmr/browsercore/log"
)

// Client performs GET requests over a bare TCP connection, assembling and
// parsing the wire format by hand rather than delegating to net/http —
// this core models the request/response exchange itself, matching the
// original's no_std TcpStream-based client.
type Client struct{}

// New creates a new Client.
func New() *Client {
	return &Client{}
}

// Get dials host:port, sends a GET request for path, and parses the
// response. Every failure (lookup, dial, write, read, decode, or HTTP
// parse) is returned as a Network error.
func (c *Client) Get(host, port, path string) (*httpmsg.Response, error) {
	addr := net.JoinHostPort(host, port)

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, browsererr.New(browsererr.Network, "failed to connect to %s: %v", addr, err)
	}
	defer conn.Close()

	request := requestMessage(host, path)
	if _, err := conn.Write([]byte(request)); err != nil {
		return nil, browsererr.New(browsererr.Network, "failed to send request to %s: %v", addr, err)
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return nil, browsererr.New(browsererr.Network, "failed to read response from %s: %v", addr, err)
	}

	resp, err := httpmsg.ParseResponse(string(raw))
	if err != nil {
		log.Warnf("invalid response from %s: %v", addr, err)
		return nil, err
	}
	return resp, nil
}

// requestMessage assembles the GET request wire format. Terminators are
// bare "\n", matching the observed (non-conformant) wire format; servers
// on the receiving end must tolerate this.
func requestMessage(host, path string) string {
	return fmt.Sprintf("GET /%s HTTP/1.1\nHost: %s\nAccept: text/html\nConnection: close\n\n", path, host)
}
