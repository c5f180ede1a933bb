package render

import (
	"math"

	"golang.org/x/image/math/f64"
)

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// TransformStack tracks the current affine transform together with the
// states pushed by Save. Backends embed it to get canvas-style
// save/restore/translate/rotate semantics.
type TransformStack struct {
	cur   f64.Aff3
	saved []f64.Aff3
	set   bool
}

// Current returns the active transform.
func (s *TransformStack) Current() f64.Aff3 {
	if !s.set {
		return identity
	}
	return s.cur
}

func (s *TransformStack) Save() {
	s.saved = append(s.saved, s.Current())
}

// Restore pops the last saved transform. An unbalanced Restore is ignored.
func (s *TransformStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	s.set = true
}

func (s *TransformStack) Translate(dx, dy float64) {
	s.apply(f64.Aff3{1, 0, dx, 0, 1, dy})
}

func (s *TransformStack) Rotate(theta float64) {
	sin, cos := math.Sincos(theta)
	s.apply(f64.Aff3{cos, -sin, 0, sin, cos, 0})
}

// Apply maps p through the current transform.
func (s *TransformStack) Apply(p Point) Point {
	m := s.Current()
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// apply post-multiplies the current transform by m, so m acts first on
// incoming coordinates.
func (s *TransformStack) apply(m f64.Aff3) {
	c := s.Current()
	s.cur = f64.Aff3{
		c[0]*m[0] + c[1]*m[3],
		c[0]*m[1] + c[1]*m[4],
		c[0]*m[2] + c[1]*m[5] + c[2],
		c[3]*m[0] + c[4]*m[3],
		c[3]*m[1] + c[4]*m[4],
		c[3]*m[2] + c[4]*m[5] + c[5],
	}
	s.set = true
}
