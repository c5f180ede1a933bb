package viz

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/neon-visualizer/internal/config"
	"github.com/iburimskiy/neon-visualizer/internal/render"
)

// Particle is a point drifting across the surface with a fading life.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity
	Life   float64 // 1 when (re)spawned, counts down to 0
}

// ParticleField is a fixed pool of particles on a toroidal surface.
type ParticleField struct {
	Particles     []Particle
	Width, Height float64
	rng           *rand.Rand
}

// NewParticleField scatters n particles over a width x height surface using
// rng for every random draw, now and on respawn.
func NewParticleField(n int, width, height float64, rng *rand.Rand) *ParticleField {
	f := &ParticleField{
		Particles: make([]Particle, n),
		Width:     width,
		Height:    height,
		rng:       rng,
	}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:    rng.Float64() * width,
			Y:    rng.Float64() * height,
			VX:   (rng.Float64() - 0.5) * 2,
			VY:   (rng.Float64() - 0.5) * 2,
			Life: rng.Float64(),
		}
	}
	return f
}

// Step advances every particle by one frame. avg is the mean bin value on
// the 0-255 scale; louder input makes the particles move faster.
func (f *ParticleField) Step(avg float64) {
	speed := 1 + avg/50
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X = wrap(p.X+p.VX*speed, f.Width)
		p.Y = wrap(p.Y+p.VY*speed, f.Height)
		p.Life -= config.ParticleDecay

		if p.Life <= 0 {
			p.Life = 1
			p.X = f.rng.Float64() * f.Width
			p.Y = f.rng.Float64() * f.Height
		}
	}
}

// Draw paints the particles and, when avg is loud enough, the links between
// neighbours. The link pass compares every pair, which is fine for the fixed
// pool size but would need spatial binning for large pools.
func (f *ParticleField) Draw(s render.Surface, avg float64) {
	size := (avg/255)*10 + 2
	for i, p := range f.Particles {
		c := render.Neon(i)
		var dot render.Path
		dot.Circle(p.X, p.Y, size*p.Life)
		s.FillPath(&dot, render.Style{Color: c, Glow: render.Glow{Color: c, Blur: 20}})
	}

	if avg <= config.ParticleLinkMin {
		return
	}
	const maxDist2 = config.ParticleLinkDist * config.ParticleLinkDist
	for i, p := range f.Particles {
		link := render.Style{Color: render.RGBA(255, 255, 255, 0.2*p.Life), Width: 1}
		for j := i + 1; j < len(f.Particles); j++ {
			o := f.Particles[j]
			dx, dy := p.X-o.X, p.Y-o.Y
			if dx*dx+dy*dy >= maxDist2 {
				continue
			}
			var line render.Path
			line.MoveTo(p.X, p.Y)
			line.LineTo(o.X, o.Y)
			s.StrokePath(&line, link)
		}
	}
}

// wrap folds v into [0, max).
func wrap(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	if v >= max {
		v = 0
	}
	return v
}
