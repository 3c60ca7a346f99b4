//go:build ebiten && !sdl

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"pong/internal/app"
	"pong/internal/assets"
	"pong/internal/pong"
	"pong/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	data, err := assets.LoadFont(cfg.Font)
	if err != nil {
		log.Fatalf("failed to load media: %v", err)
	}
	face, err := assets.ParseFace(data, render.FontSize)
	if err != nil {
		log.Fatalf("failed to load media: %v", err)
	}
	defer face.Close()

	session := app.NewSession(os.Stdout)
	defer session.Close()
	game := app.New(session, face)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(pong.Arena.W, pong.Arena.H)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
