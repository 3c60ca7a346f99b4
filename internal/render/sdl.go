//go:build sdl

package render

import (
	"fmt"
	"image/color"
	"log"

	"pong/internal/pong"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Context owns the SDL window, renderer, font and the score texture. It is
// created once by the main loop and passed to every drawing call.
type Context struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font
	size     pong.Size

	// fontData backs the RWops the font reads glyphs from; SDL_ttf keeps
	// reading it until the font is closed.
	fontData []byte

	score      *sdl.Texture
	scoreW     int32
	scoreH     int32
	ttfStarted bool
	sdlStarted bool
}

// NewContext initializes SDL and SDL_ttf, opens a window of the given size
// and loads the font from data. Any failure tears down what was created.
func NewContext(title string, size pong.Size, fontData []byte) (*Context, error) {
	ctx := &Context{size: size}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("SDL could not be initialized: %w", err)
	}
	ctx.sdlStarted = true

	var err error
	ctx.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(size.W), int32(size.H), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("window could not be created: %w", err)
	}

	ctx.renderer, err = sdl.CreateRenderer(ctx.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("renderer could not be created: %w", err)
	}

	if err := ttf.Init(); err != nil {
		ctx.Close()
		return nil, fmt.Errorf("SDL_ttf could not initialize: %w", err)
	}
	ctx.ttfStarted = true

	ctx.fontData = fontData
	rw, err := sdl.RWFromMem(ctx.fontData)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	ctx.font, err = ttf.OpenFontRW(rw, 1, FontSize)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	return ctx, nil
}

// SetScore replaces the score texture with a rendering of text. On failure
// the old texture is already gone and the score is not drawn this frame.
func (c *Context) SetScore(text string) error {
	c.freeScore()

	surface, err := c.font.RenderUTF8Solid(text, sdlColor(TextColor))
	if err != nil {
		return fmt.Errorf("unable to render text surface: %w", err)
	}
	defer surface.Free()

	tex, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return fmt.Errorf("unable to create texture from rendered text: %w", err)
	}
	c.score = tex
	c.scoreW = surface.W
	c.scoreH = surface.H
	return nil
}

// DrawFrame clears the screen, fills every entity, draws the score and
// presents. Failed draw calls are logged and the frame carries on.
func (c *Context) DrawFrame(m *pong.Match) {
	c.setColor(Background)
	logErr(c.renderer.Clear())

	c.fill(m.Puck().Rect, PuckColor)
	c.fill(m.Left().Rect, LeftColor)
	c.fill(m.Right().Rect, RightColor)

	// The text surface spans the font's full line box, matching MeasureScore.
	if c.score != nil {
		dst := &sdl.Rect{
			X: int32(CenterX(c.size.W, int(c.scoreW))),
			Y: ScoreY,
			W: c.scoreW,
			H: c.scoreH,
		}
		logErr(c.renderer.Copy(c.score, nil, dst))
	}

	c.renderer.Present()
}

// Close releases every resource in reverse order of creation. It is safe to
// call on a partially built context.
func (c *Context) Close() {
	c.freeScore()
	if c.font != nil {
		c.font.Close()
		c.font = nil
	}
	c.fontData = nil
	if c.ttfStarted {
		ttf.Quit()
		c.ttfStarted = false
	}
	if c.renderer != nil {
		logErr(c.renderer.Destroy())
		c.renderer = nil
	}
	if c.window != nil {
		logErr(c.window.Destroy())
		c.window = nil
	}
	if c.sdlStarted {
		sdl.Quit()
		c.sdlStarted = false
	}
}

func (c *Context) freeScore() {
	if c.score == nil {
		return
	}
	logErr(c.score.Destroy())
	c.score = nil
	c.scoreW, c.scoreH = 0, 0
}

func (c *Context) setColor(clr color.Color) {
	r, g, b, a := rgba8(clr)
	logErr(c.renderer.SetDrawColor(r, g, b, a))
}

func (c *Context) fill(r pong.Rect, clr color.Color) {
	c.setColor(clr)
	logErr(c.renderer.FillRect(&sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}))
}

func sdlColor(clr color.Color) sdl.Color {
	r, g, b, a := rgba8(clr)
	return sdl.Color{R: r, G: g, B: b, A: a}
}

func logErr(err error) {
	if err != nil {
		log.Print(err)
	}
}
