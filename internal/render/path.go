package render

import "math"

// Subpath is a connected run of points, optionally closed back to its start.
type Subpath struct {
	Points []Point
	Closed bool
}

// Path is a sequence of subpaths built with MoveTo/LineTo/Arc. Arcs are
// flattened to line segments when added, so every backend only deals with
// polylines.
type Path struct {
	Subpaths []Subpath
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.Subpaths = append(p.Subpaths, Subpath{Points: []Point{{x, y}}})
}

// LineTo extends the current subpath, starting one if there is none.
func (p *Path) LineTo(x, y float64) {
	if len(p.Subpaths) == 0 {
		p.MoveTo(x, y)
		return
	}
	sp := &p.Subpaths[len(p.Subpaths)-1]
	sp.Points = append(sp.Points, Point{x, y})
}

// Close marks the current subpath as closed.
func (p *Path) Close() {
	if len(p.Subpaths) == 0 {
		return
	}
	p.Subpaths[len(p.Subpaths)-1].Closed = true
}

// Arc appends a clockwise arc (in screen space, y down) around (cx, cy)
// from angle a0 to a1, connected to the current point with a straight line.
func (p *Path) Arc(cx, cy, r, a0, a1 float64) {
	n := arcSegments(r, a1-a0)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		x, y := cx+math.Cos(a)*r, cy+math.Sin(a)*r
		if i == 0 && len(p.Subpaths) == 0 {
			p.MoveTo(x, y)
			continue
		}
		p.LineTo(x, y)
	}
}

// Circle adds a full closed circle as its own subpath.
func (p *Path) Circle(cx, cy, r float64) {
	p.MoveTo(cx+r, cy)
	p.Arc(cx, cy, r, 0, 2*math.Pi)
	p.Close()
}

// Empty reports whether the path has no points.
func (p *Path) Empty() bool {
	for _, sp := range p.Subpaths {
		if len(sp.Points) > 0 {
			return false
		}
	}
	return true
}

func arcSegments(r, sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) * math.Max(r, 1) / 4))
	if n < 8 {
		n = 8
	}
	if n > 256 {
		n = 256
	}
	return n
}
