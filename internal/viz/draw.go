package viz

import (
	"math"
	"time"

	"github.com/iburimskiy/neon-visualizer/internal/render"
)

const (
	radialBars      = 64
	radialStride    = 4
	radialInner     = 100
	radialMaxLength = 200

	shapeCount  = 8
	shapeStride = 32
	shapeOrbit  = 150

	ringCount  = 20
	ringStride = 10
)

var waveColors = [3]render.Style{
	{Color: render.Magenta, Width: 2, Glow: render.Glow{Color: render.Magenta, Blur: 10}},
	{Color: render.Lime, Width: 2, Glow: render.Glow{Color: render.Lime, Blur: 10}},
	{Color: render.Yellow, Width: 2, Glow: render.Glow{Color: render.Yellow, Blur: 10}},
}

// drawRadialBars draws spokes around the center, one per sampled bin.
func (e *Engine) drawRadialBars(frame []uint8) {
	step := 2 * math.Pi / radialBars
	transparent := render.RGBA(255, 255, 255, 0)

	for i := 0; i < radialBars; i++ {
		amplitude := amplitudeAt(frame, i*radialStride)
		angle := float64(i) * step
		length := amplitude * radialMaxLength

		cos, sin := math.Cos(angle), math.Sin(angle)
		from := render.Point{X: e.centerX + cos*radialInner, Y: e.centerY + sin*radialInner}
		to := render.Point{X: e.centerX + cos*(radialInner+length), Y: e.centerY + sin*(radialInner+length)}

		c := render.Neon(i)
		var spoke render.Path
		spoke.MoveTo(from.X, from.Y)
		spoke.LineTo(to.X, to.Y)
		e.surface.StrokePath(&spoke, render.Style{
			Gradient: &render.Gradient{From: from, To: to, Start: c, End: transparent},
			Width:    3,
			Glow:     render.Glow{Color: c, Blur: 20},
		})
	}
}

// drawOscilloscope traces the bins as a waveform across the width, then
// layers three decimated copies with growing gain below it.
func (e *Engine) drawOscilloscope(frame []uint8) {
	n := len(frame)
	if n == 0 {
		return
	}

	var primary render.Path
	for i, v := range frame {
		x := float64(i) / float64(n) * e.width
		y := e.centerY + (float64(v)-128)*2
		primary.LineTo(x, y)
	}
	e.surface.StrokePath(&primary, render.Style{
		Color: render.Cyan,
		Width: 2,
		Glow:  render.Glow{Color: render.Cyan, Blur: 10},
	})

	for wave, style := range waveColors {
		gain := 1 + float64(wave)*0.5
		offset := float64(wave) * 50

		var trace render.Path
		for i := 0; i < n; i += 2 {
			x := float64(i) / float64(n) * e.width
			y := e.centerY + (float64(frame[i])-128)*gain + offset
			trace.LineTo(x, y)
		}
		e.surface.StrokePath(&trace, style)
	}
}

// drawGeometry orbits regular polygons around the center; their size
// follows the bins and their orbit follows the clock.
func (e *Engine) drawGeometry(frame []uint8, now time.Time) {
	secs := float64(now.UnixMilli()) / 1000

	for i := 0; i < shapeCount; i++ {
		amplitude := amplitudeAt(frame, i*shapeStride)
		angle := (secs + float64(i)) * 0.5
		size := 50 + amplitude*100

		c := render.Neon(i)
		e.surface.Save()
		e.surface.Translate(e.centerX+math.Cos(angle)*shapeOrbit, e.centerY+math.Sin(angle)*shapeOrbit)
		e.surface.Rotate(angle)

		sides := 3 + i%6
		var shape render.Path
		for j := 0; j <= sides; j++ {
			a := float64(j) / float64(sides) * 2 * math.Pi
			shape.LineTo(math.Cos(a)*size, math.Sin(a)*size)
		}
		e.surface.StrokePath(&shape, render.Style{
			Color: c,
			Width: 2,
			Glow:  render.Glow{Color: c, Blur: 15},
		})
		e.surface.Restore()
	}
}

// drawTunnel strokes concentric rings whose thickness follows the bins.
func (e *Engine) drawTunnel(frame []uint8) {
	maxRadius := math.Min(e.width, e.height) / 2

	for i := 0; i < ringCount; i++ {
		radius := maxRadius / ringCount * float64(i+1)
		amplitude := amplitudeAt(frame, i*ringStride)

		c := render.Neon(i)
		var ring render.Path
		ring.Circle(e.centerX, e.centerY, radius)
		e.surface.StrokePath(&ring, render.Style{
			Color: c,
			Width: 2 + amplitude*10,
			Glow:  render.Glow{Color: c, Blur: 20},
		})
	}
}
