// Command plasma displays an animated plasma effect in a window.
//
// Controls:
//
//	Right/Left  next/previous shape
//	P           next palette
//	+/-         increase/decrease pattern density
//	H           toggle the HUD
//	F12         save the current frame as PNG
//	Escape      quit
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/ivan-guerra/effects"
)

type game struct {
	plasma    *effects.Plasma
	buf       []uint32
	pix       []byte
	offscreen *ebiten.Image
	start     time.Time
	hud       bool
}

func newGame(p *effects.Plasma) *game {
	w, h := p.Width(), p.Height()
	return &game{
		plasma:    p,
		buf:       make([]uint32, w*h),
		pix:       make([]byte, w*h*4),
		offscreen: ebiten.NewImage(w, h),
		start:     time.Now(),
		hud:       true,
	}
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.plasma.NextShape()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.plasma.PrevShape()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.plasma.NextPalette()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.plasma.IncreaseScale()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.plasma.DecreaseScale()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.hud = !g.hud
	case inpututil.IsKeyJustPressed(ebiten.KeyF12):
		g.screenshot()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	t := time.Since(g.start).Seconds()
	if err := g.plasma.Draw(g.buf, t); err != nil {
		// Unreachable: buf is sized to the renderer at construction.
		effects.Logger().Error("draw failed", "error", err)
		return
	}

	for i, p := range g.buf {
		r, gr, b, a := effects.UnpackARGB(p)
		g.pix[4*i+0] = r
		g.pix[4*i+1] = gr
		g.pix[4*i+2] = b
		g.pix[4*i+3] = a
	}
	g.offscreen.WritePixels(g.pix)
	screen.DrawImage(g.offscreen, nil)

	if g.hud {
		msg := fmt.Sprintf("%s / %s  scale %.1f  %.0f fps",
			g.plasma.Shape(), g.plasma.Palette(), g.plasma.Scale(), ebiten.ActualFPS())
		text.Draw(screen, msg, basicfont.Face7x13, 8, 16, color.White)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.plasma.Width(), g.plasma.Height()
}

// screenshot saves the most recently rendered frame next to the binary.
func (g *game) screenshot() {
	name := fmt.Sprintf("plasma-%d.png", time.Now().Unix())
	if err := effects.SavePNG(name, g.buf, g.plasma.Width(), g.plasma.Height()); err != nil {
		effects.Logger().Error("screenshot failed", "error", err)
		return
	}
	effects.Logger().Info("screenshot saved", "file", name)
}

func main() {
	var (
		width   = flag.Int("width", 1366, "screen width in pixels")
		height  = flag.Int("height", 768, "screen height in pixels")
		shape   = flag.String("shape", effects.ShapeRipple.String(), "plasma shape (ripple, spiral, circle, square, checkerboard)")
		palette = flag.String("palette", effects.PaletteRainbow.String(), "plasma color palette (rainbow, blue-cyan, hot, purple-pink, black-white)")
		scale   = flag.Float64("scale", effects.DefaultScale, "pattern density")
		workers = flag.Int("workers", 1, "render goroutines (0 = all cores)")
		verbose = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		effects.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := effects.ParseShape(*shape)
	if err != nil {
		log.Fatal(err)
	}
	pal, err := effects.ParsePalette(*palette)
	if err != nil {
		log.Fatal(err)
	}

	p, err := effects.NewPlasma(*width, *height, s, pal,
		effects.WithScale(*scale), effects.WithWorkers(*workers))
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Demo Effect")

	if err := ebiten.RunGame(newGame(p)); err != nil {
		log.Fatalf("error: %v", err)
	}
}
