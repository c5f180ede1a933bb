// Package viz is the audio-reactive rendering engine. It turns one
// frequency frame per display refresh into layered neon imagery on a
// render.Surface, cycling through a fixed set of drawing modes.
package viz

import (
	"math/rand"
	"time"

	"github.com/iburimskiy/neon-visualizer/internal/config"
	"github.com/iburimskiy/neon-visualizer/internal/render"
)

var (
	trailFill = render.RGBA(0, 0, 0, 0.1)
	scanLine  = render.Style{Color: render.RGBA(255, 255, 255, 0.02), Width: 1}
	gridLine  = render.Style{Color: render.RGBA(0, 255, 255, 0.1), Width: 1}
	labelFont = render.Font{Size: 20, Bold: true}
)

// Engine owns all state that carries over between frames. It is not safe
// for concurrent use; the animation loop calls RenderFrame from one
// goroutine, one frame at a time.
type Engine struct {
	surface       render.Surface
	width, height float64
	centerX       float64
	centerY       float64
	scheduler     *Scheduler
	particles     *ParticleField
	now           func() time.Time
	frames        uint64
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithClock replaces the wall clock used by the geometry mode.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand seeds the particle field from rng instead of the time of day.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.particles = NewParticleField(config.ParticleCount, e.width, e.height, rng)
	}
}

// WithModePeriod overrides how many frames each mode stays on screen.
func WithModePeriod(frames int) Option {
	return func(e *Engine) { e.scheduler = NewScheduler(frames) }
}

// NewEngine builds an engine for the surface, sized once from it.
func NewEngine(s render.Surface, opts ...Option) *Engine {
	w, h := s.Size()
	e := &Engine{
		surface:   s,
		width:     w,
		height:    h,
		centerX:   w / 2,
		centerY:   h / 2,
		scheduler: NewScheduler(config.ModePeriod),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.particles == nil {
		e.particles = NewParticleField(config.ParticleCount, w, h, rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return e
}

// RenderFrame draws one frame from the frequency bins. The frame is only
// read during the call.
func (e *Engine) RenderFrame(frame []uint8) {
	e.frames++
	e.drawBackground()

	mode := e.scheduler.Advance()
	e.draw(mode, frame)

	e.drawGrid()
	e.drawModeText(mode)
}

// Mode returns the mode drawn by the most recent frame.
func (e *Engine) Mode() Mode { return e.scheduler.Mode() }

// Frames returns the number of frames rendered so far.
func (e *Engine) Frames() uint64 { return e.frames }

// Particles exposes the particle pool for inspection.
func (e *Engine) Particles() *ParticleField { return e.particles }

func (e *Engine) draw(mode Mode, frame []uint8) {
	switch mode {
	case RadialBars:
		e.drawRadialBars(frame)
	case Oscilloscope:
		e.drawOscilloscope(frame)
	case Particles:
		avg := mean(frame)
		e.particles.Step(avg)
		e.particles.Draw(e.surface, avg)
	case Geometry:
		e.drawGeometry(frame, e.now())
	case Tunnel:
		e.drawTunnel(frame)
	}
}

// drawBackground fades the previous frame instead of clearing it, leaving
// motion trails, and lays faint scan lines over it.
func (e *Engine) drawBackground() {
	e.surface.FillRect(0, 0, e.width, e.height, trailFill)

	var lines render.Path
	for y := 0.0; y < e.height; y += config.ScanLineStep {
		lines.MoveTo(0, y)
		lines.LineTo(e.width, y)
	}
	e.surface.StrokePath(&lines, scanLine)
}

func (e *Engine) drawGrid() {
	var lines render.Path
	for x := 0.0; x < e.width; x += config.GridStep {
		lines.MoveTo(x, 0)
		lines.LineTo(x, e.height)
	}
	for y := 0.0; y < e.height; y += config.GridStep {
		lines.MoveTo(0, y)
		lines.LineTo(e.width, y)
	}
	e.surface.StrokePath(&lines, gridLine)
}

func (e *Engine) drawModeText(mode Mode) {
	e.surface.FillText("MODE: "+mode.String(), 20, 40, labelFont, render.Style{
		Color: render.Cyan,
		Glow:  render.Glow{Color: render.Cyan, Blur: 10},
	})
}
