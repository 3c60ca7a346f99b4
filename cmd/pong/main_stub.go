//go:build !ebiten && !sdl

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "pong needs a graphics backend: build with the ebiten or sdl tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/pong` or `go run -tags sdl ./cmd/pong`.")
	os.Exit(2)
}
