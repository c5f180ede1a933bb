// Package render defines the drawing surface the visualizer paints on,
// independent of any particular graphics backend.
package render

import "image/color"

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Gradient is a two-stop linear gradient between From and To, expressed in
// the same (untransformed) coordinates as the path it styles.
type Gradient struct {
	From, To   Point
	Start, End color.Color
}

// At returns the gradient color at p, projected onto the From-To axis.
func (g *Gradient) At(p Point) color.Color {
	dx, dy := g.To.X-g.From.X, g.To.Y-g.From.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return g.Start
	}
	t := ((p.X-g.From.X)*dx + (p.Y-g.From.Y)*dy) / l2
	return Lerp(g.Start, g.End, t)
}

// Glow is a soft halo drawn behind a shape, like a canvas shadow with no
// offset. A zero Blur disables it.
type Glow struct {
	Color color.Color
	Blur  float64
}

// Style describes how a path or text is painted. Gradient, when set, takes
// precedence over Color.
type Style struct {
	Color    color.Color
	Gradient *Gradient
	Width    float64
	Glow     Glow
}

// Font selects a monospace face by pixel size and weight.
type Font struct {
	Size float64
	Bold bool
}

// Surface is a persistent 2D canvas. Nothing is cleared between frames
// unless the caller paints over it.
//
// Save and Restore push and pop the current transform; Translate and Rotate
// modify it, and every subsequent coordinate is mapped through it.
type Surface interface {
	Size() (w, h float64)

	FillRect(x, y, w, h float64, c color.Color)
	StrokePath(p *Path, s Style)
	FillPath(p *Path, s Style)
	// FillText draws s with its baseline starting at (x, y).
	FillText(s string, x, y float64, f Font, st Style)

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(theta float64)
}
