// Package ebitenrender implements render.Surface on a persistent ebiten
// offscreen image.
package ebitenrender

import (
	"bytes"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"

	"github.com/iburimskiy/neon-visualizer/internal/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var _ render.Surface = (*Surface)(nil)

// glowPasses are the (width factor, alpha) pairs stacked under a glowing
// shape, widest and faintest first.
var glowPasses = [...]struct{ width, alpha float64 }{
	{1.0, 0.06},
	{0.6, 0.10},
	{0.3, 0.16},
}

// Surface is a render.Surface backed by an ebiten.Image that is never
// cleared, so earlier frames persist under later ones.
type Surface struct {
	render.TransformStack

	img  *ebiten.Image
	w, h float64

	vs []ebiten.Vertex
	is []uint16

	regular, bold *text.GoTextFaceSource
	faces         map[render.Font]text.Face
}

// New creates a black w x h surface.
func New(w, h int) *Surface {
	s := &Surface{
		img:   ebiten.NewImage(w, h),
		w:     float64(w),
		h:     float64(h),
		faces: map[render.Font]text.Face{},
	}
	s.img.Fill(color.Black)

	var err error
	if s.regular, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		log.Printf("render: loading Go Mono: %v", err)
	}
	if s.bold, err = text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF)); err != nil {
		log.Printf("render: loading Go Mono Bold: %v", err)
	}
	return s
}

// Image returns the canvas to be composited onto the screen.
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Size() (float64, float64) { return s.w, s.h }

// FillRect fills an axis-aligned rectangle whose origin goes through the
// current transform; rotation does not apply to it.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	p := s.Apply(render.Point{X: x, Y: y})
	vector.DrawFilledRect(s.img, float32(p.X), float32(p.Y), float32(w), float32(h), c, false)
}

func (s *Surface) StrokePath(p *render.Path, st render.Style) {
	if p.Empty() {
		return
	}
	s.glow(p, st.Width, st.Glow)

	paint := solid(st.Color)
	if st.Gradient != nil {
		g := *st.Gradient
		g.From, g.To = s.Apply(g.From), s.Apply(g.To)
		paint = g.At
	}
	s.stroke(p, st.Width, paint)
}

func (s *Surface) FillPath(p *render.Path, st render.Style) {
	if p.Empty() {
		return
	}
	s.glow(p, 0, st.Glow)

	path := s.vectorPath(p)
	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.paintVertices(solid(st.Color))
	s.img.DrawTriangles(s.vs, s.is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

func (s *Surface) FillText(str string, x, y float64, f render.Font, st render.Style) {
	face := s.face(f)
	p := s.Apply(render.Point{X: x, Y: y})
	top := p.Y - face.Metrics().HAscent

	if st.Glow.Blur > 0 && st.Glow.Color != nil {
		r := st.Glow.Blur / 5
		for _, d := range [][2]float64{{-r, 0}, {r, 0}, {0, -r}, {0, r}} {
			op := &text.DrawOptions{}
			op.GeoM.Translate(p.X+d[0], top+d[1])
			op.ColorScale.ScaleWithColor(st.Glow.Color)
			op.ColorScale.ScaleAlpha(0.25)
			text.Draw(s.img, str, face, op)
		}
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(p.X, top)
	op.ColorScale.ScaleWithColor(st.Color)
	text.Draw(s.img, str, face, op)
}

// glow stacks wide translucent strokes of the glow color under a shape.
func (s *Surface) glow(p *render.Path, width float64, g render.Glow) {
	if g.Blur <= 0 || g.Color == nil {
		return
	}
	for _, pass := range glowPasses {
		c := color.NRGBAModel.Convert(g.Color).(color.NRGBA)
		c.A = uint8(float64(c.A) * pass.alpha)
		s.stroke(p, width+g.Blur*pass.width, solid(c))
	}
}

func (s *Surface) stroke(p *render.Path, width float64, paint func(render.Point) color.Color) {
	if width <= 0 {
		return
	}
	path := s.vectorPath(p)
	join := vector.LineJoinRound
	if countPoints(p) > 256 {
		join = vector.LineJoinBevel
	}
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: join,
	})
	s.paintVertices(paint)
	s.img.DrawTriangles(s.vs, s.is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// vectorPath maps p through the current transform into an ebiten path.
func (s *Surface) vectorPath(p *render.Path) *vector.Path {
	var path vector.Path
	for _, sp := range p.Subpaths {
		for i, pt := range sp.Points {
			q := s.Apply(pt)
			if i == 0 {
				path.MoveTo(float32(q.X), float32(q.Y))
			} else {
				path.LineTo(float32(q.X), float32(q.Y))
			}
		}
		if sp.Closed {
			path.Close()
		}
	}
	return &path
}

func (s *Surface) paintVertices(paint func(render.Point) color.Color) {
	for i := range s.vs {
		v := &s.vs[i]
		c := color.NRGBAModel.Convert(paint(render.Point{X: float64(v.DstX), Y: float64(v.DstY)})).(color.NRGBA)
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(c.R) / 255
		v.ColorG = float32(c.G) / 255
		v.ColorB = float32(c.B) / 255
		v.ColorA = float32(c.A) / 255
	}
}

func (s *Surface) face(f render.Font) text.Face {
	if face, ok := s.faces[f]; ok {
		return face
	}
	src := s.regular
	if f.Bold {
		src = s.bold
	}
	var face text.Face
	if src != nil {
		face = &text.GoTextFace{Source: src, Size: f.Size}
	} else {
		face = text.NewGoXFace(basicfont.Face7x13)
	}
	s.faces[f] = face
	return face
}

func solid(c color.Color) func(render.Point) color.Color {
	if c == nil {
		c = color.Transparent
	}
	return func(render.Point) color.Color { return c }
}

func countPoints(p *render.Path) int {
	n := 0
	for _, sp := range p.Subpaths {
		n += len(sp.Points)
	}
	return n
}
