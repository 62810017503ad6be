// Command browser fetches a single URL over a raw TCP connection and
// prints the DOM tree produced by parsing its HTML response body.
//
// Spec references:
// - External Interfaces: process invocation
package main

import (
	"fmt"
	"os"

	"github.com/nkcmr/browsercore/browser"
	"github.com/nkcmr/browsercore/log"
	"github.com/nkcmr/browsercore/netclient"
	"github.com/nkcmr/browsercore/weburl"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: browser <url>")
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		log.Errorf("%+v", err)
		os.Exit(1)
	}
}

func run(raw string) error {
	u, err := weburl.Decompose(raw)
	if err != nil {
		return err
	}

	resp, err := netclient.New().Get(u.Host, u.Port, u.Path)
	if err != nil {
		return err
	}

	page := browser.New().CurrentPage()
	fmt.Println(page.ReceiveResponse(resp.Body))
	return nil
}
