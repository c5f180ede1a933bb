package render

import "image/color"

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpStroke
	OpFill
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill-rect"
	case OpStroke:
		return "stroke"
	case OpFill:
		return "fill"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Op is one drawing call as seen by a Recorder. Geometry is stored already
// mapped through the transform that was active when the call was made.
type Op struct {
	Kind OpKind

	// OpFillRect
	X, Y, W, H float64
	Color      color.Color

	// OpStroke, OpFill
	Subpaths []Subpath
	Style    Style

	// OpText
	Text string
	At   Point
	Font Font
}

// Recorder is a headless Surface that keeps every operation in order. It
// backs the visualizer's tests and any caller that wants to inspect frame
// geometry without a graphics context.
type Recorder struct {
	TransformStack
	W, H float64
	Ops  []Op
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// Reset drops recorded operations and the transform state.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.TransformStack = TransformStack{}
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	p := r.Apply(Point{x, y})
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: p.X, Y: p.Y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokePath(p *Path, s Style) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Subpaths: r.mapPath(p), Style: s})
}

func (r *Recorder) FillPath(p *Path, s Style) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Subpaths: r.mapPath(p), Style: s})
}

func (r *Recorder) FillText(s string, x, y float64, f Font, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: s, At: r.Apply(Point{x, y}), Font: f, Style: st})
}

// Filter returns the recorded operations of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) mapPath(p *Path) []Subpath {
	out := make([]Subpath, 0, len(p.Subpaths))
	for _, sp := range p.Subpaths {
		pts := make([]Point, len(sp.Points))
		for i, pt := range sp.Points {
			pts[i] = r.Apply(pt)
		}
		out = append(out, Subpath{Points: pts, Closed: sp.Closed})
	}
	return out
}
