//go:build sdl

package app

import (
	"fmt"
	"io"
	"log"
	"runtime"

	"pong/internal/assets"
	"pong/internal/pong"
	"pong/internal/render"

	"github.com/veandco/go-sdl2/sdl"
)

// RunSDL opens an SDL window and plays one match until a player wins or the
// window is closed. Only initialization failures are returned.
func RunSDL(cfg *Config, out io.Writer) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	fontData, err := assets.LoadFont(cfg.Font)
	if err != nil {
		return fmt.Errorf("failed to load media: %w", err)
	}

	ctx, err := render.NewContext(cfg.Title, pong.Arena, fontData)
	if err != nil {
		return err
	}
	defer ctx.Close()

	session := NewSession(out)
	defer session.Close()

	for !session.Done() {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if _, ok := ev.(*sdl.QuitEvent); ok {
				session.Stop()
			}
		}

		keys := sdl.GetKeyboardState()
		if keys[sdl.SCANCODE_ESCAPE] != 0 {
			session.Stop()
		}

		// A quit still draws this frame; a win is drawn by the frame that scored it.
		session.Advance(keyboardInput(keys))

		if err := ctx.SetScore(session.ScoreText()); err != nil {
			log.Printf("unable to render score texture: %v", err)
		}
		ctx.DrawFrame(session.Match())
	}
	return nil
}

func keyboardInput(keys []uint8) pong.Input {
	return pong.Input{
		LeftUp:    keys[sdl.SCANCODE_Q] != 0,
		LeftDown:  keys[sdl.SCANCODE_A] != 0,
		RightUp:   keys[sdl.SCANCODE_UP] != 0,
		RightDown: keys[sdl.SCANCODE_DOWN] != 0,
	}
}
