//go:build !js

// Command draglook-demo is a WebAssembly page showing the drag-look camera
// controls over a point cloud. Build it with GOOS=js GOARCH=wasm.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "draglook-demo runs in the browser, build it with GOOS=js GOARCH=wasm")
	os.Exit(1)
}
