// Package game drives the visualizer from ebiten's frame loop: an idle
// start screen until the user starts capture, then one engine frame per
// display refresh.
package game

import (
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/neon-visualizer/internal/audio"
	"github.com/iburimskiy/neon-visualizer/internal/config"
	"github.com/iburimskiy/neon-visualizer/internal/render/ebitenrender"
	"github.com/iburimskiy/neon-visualizer/internal/viz"
)

// Opener produces the audio source when the user starts the visualizer.
// A nil source with a nil error means the user backed out and the game
// stays idle.
type Opener func() (audio.Source, error)

type Game struct {
	opts config.Options
	open Opener

	// running state, set once by start
	source  audio.Source
	surface *ebitenrender.Surface
	engine  *viz.Engine

	// start screen
	buttonHovered bool
	buttonPressed bool
	time          float64

	fatal error
}

func New(opts config.Options, open Opener) *Game {
	return &Game{opts: opts, open: open}
}

// Running reports whether capture started and frames are being rendered.
func (g *Game) Running() bool { return g.engine != nil }

func (g *Game) Update() error {
	if g.fatal != nil {
		return g.fatal
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.time += 1.0 / config.TargetFPS

	if g.Running() {
		return nil
	}

	bx, by := g.buttonRect()
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = float64(mouseX) >= bx && float64(mouseX) <= bx+config.ButtonWidth &&
		float64(mouseY) >= by && float64(mouseY) <= by+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	clicked := false
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked = g.buttonPressed && g.buttonHovered
		g.buttonPressed = false
	}
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := g.start(); err != nil {
			g.fatal = err
			return err
		}
	}
	return nil
}

// start opens and starts the source, then builds the engine. The engine is
// never created if the source fails.
func (g *Game) start() error {
	src, err := g.open()
	if err != nil {
		return err
	}
	if src == nil {
		return nil
	}
	if err := src.Start(); err != nil {
		return err
	}

	seed := g.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.source = src
	g.surface = ebitenrender.New(g.opts.Width, g.opts.Height)
	g.engine = viz.NewEngine(g.surface, viz.WithRand(rand.New(rand.NewSource(seed))))
	log.Printf("visualizer started on a %dx%d surface", g.opts.Width, g.opts.Height)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.Running() {
		g.drawStartScreen(screen)
		return
	}

	frame := g.source.FrequencyData()
	g.engine.RenderFrame(frame)
	if g.opts.Debug && g.engine.Frames()%config.StatsInterval == 0 {
		logFrameStats(g.engine.Frames(), frame)
	}
	screen.DrawImage(g.surface.Image(), nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Close releases the audio source, if one was started.
func (g *Game) Close() error {
	if g.source == nil {
		return nil
	}
	return g.source.Close()
}

func (g *Game) buttonRect() (float64, float64) {
	return (float64(g.opts.Width) - config.ButtonWidth) / 2, (float64(g.opts.Height) - config.ButtonHeight) / 2
}

func (g *Game) drawStartScreen(screen *ebiten.Image) {
	screen.Fill(color.Black)

	bx, by := g.buttonRect()
	var bg color.Color = color.RGBA{R: 20, G: 20, B: 40, A: 255}
	if g.buttonPressed {
		bg = color.RGBA{R: 60, G: 0, B: 60, A: 255}
	} else if g.buttonHovered {
		bg = color.RGBA{R: 40, G: 0, B: 60, A: 255}
	}
	vector.DrawFilledRect(screen, float32(bx), float32(by), config.ButtonWidth, config.ButtonHeight, bg, false)

	// Border cycles hue slowly, like the neon palette.
	border := colorful.Hsv(math.Mod(g.time*60, 360), 1, 1)
	vector.StrokeRect(screen, float32(bx), float32(by), config.ButtonWidth, config.ButtonHeight, 2, border, false)

	label := "START"
	ebitenutil.DebugPrintAt(screen, label, int(bx)+(config.ButtonWidth-len(label)*6)/2, int(by)+(config.ButtonHeight-16)/2)

	hint := "Click START or press Enter. Esc/Q quits."
	switch g.opts.Source {
	case config.SourceMic:
		hint = "Microphone input. " + hint
	case config.SourceFile:
		hint = "File playback. " + hint
	case config.SourceDemo:
		hint = "Demo signal. " + hint
	}
	ebitenutil.DebugPrintAt(screen, hint, 12, 12)
}

// logFrameStats prints a one-line summary of the spectrum for checking
// that capture is delivering data.
func logFrameStats(frame uint64, data []uint8) {
	st := audio.Stats(data)
	head := data[:min(10, len(data))]
	log.Printf("frame %d: sum=%d max=%d avg=%.2f len=%d first=%v", frame, st.Sum, st.Max, st.Mean, st.Len, head)
}
