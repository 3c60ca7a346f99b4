//go:build ebiten

package app

import (
	"log"

	"pong/internal/pong"
	"pong/internal/render"
	"pong/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// Game adapts a pong session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.Painter
	board   *ui.Scoreboard
	size    pong.Size
}

// New constructs a Game drawing the score with face.
func New(session *Session, face font.Face) *Game {
	size := session.Match().Bounds()
	return &Game{
		session: session,
		painter: render.NewPainter(),
		board:   ui.NewScoreboard(face, size.W),
		size:    size,
	}
}

// Update samples the keyboard and advances the match by one frame. The frame
// after a win returns ebiten.Termination so the winning frame is drawn first.
// Closing the window needs ebiten.SetWindowClosingHandled(true) to be routed
// through here.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		g.session.Stop()
	}
	if g.session.Done() {
		g.release()
		return ebiten.Termination
	}

	g.session.Advance(readInput())

	if err := g.board.Update(g.session.ScoreText()); err != nil {
		log.Printf("unable to render score texture: %v", err)
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Clear(screen)
	g.painter.DrawMatch(screen, g.session.Match())
	g.board.Draw(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.W, g.size.H
}

func (g *Game) release() {
	g.board.Close()
	g.painter.Dispose()
}

func readInput() pong.Input {
	return pong.Input{
		LeftUp:    ebiten.IsKeyPressed(ebiten.KeyQ),
		LeftDown:  ebiten.IsKeyPressed(ebiten.KeyA),
		RightUp:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		RightDown: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
}
