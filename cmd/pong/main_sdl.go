//go:build sdl

package main

import (
	"flag"
	"log"
	"os"

	"pong/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := app.RunSDL(cfg, os.Stdout); err != nil {
		log.Fatalf("pong could not initialize: %v", err)
	}
}
