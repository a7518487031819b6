// toonify compresses noisy browser/test-runner console errors into compact
// structured records an LLM can digest.
//
// Usage:
//
//	pbpaste | toonify --toon
//	toonify            # reads the clipboard, copies the result back
//
// Each pasted error (or several, back to back) becomes one record with its
// category, originating source location, message, and the non-framework
// stack frames.
package main

import (
	"os"

	"github.com/adrozdenko/toonify/internal/cli"
)

// version is set via ldflags: -X main.version=v1.0.0
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
