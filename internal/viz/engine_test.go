package viz

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/iburimskiy/neon-visualizer/internal/render"
)

var epoch = time.Unix(0, 0)

func fixedClock() time.Time { return epoch }

// newTestEngine returns an engine forced into mode, drawing on a recorder.
func newTestEngine(mode Mode, w, h float64) (*Engine, *render.Recorder) {
	rec := render.NewRecorder(w, h)
	e := NewEngine(rec, WithRand(rand.New(rand.NewSource(1))), WithClock(fixedClock))
	e.scheduler.mode = mode
	return e, rec
}

// modeOps strips the background (fill + scan lines) and the overlay
// (grid + label) from a single recorded frame.
func modeOps(t *testing.T, rec *render.Recorder) []render.Op {
	t.Helper()
	if len(rec.Ops) < 4 {
		t.Fatalf("frame recorded only %d ops", len(rec.Ops))
	}
	return rec.Ops[2 : len(rec.Ops)-2]
}

func constFrame(n int, v uint8) []uint8 {
	f := make([]uint8, n)
	for i := range f {
		f[i] = v
	}
	return f
}

func TestRenderFrameLayers(t *testing.T) {
	e, rec := newTestEngine(RadialBars, 400, 200)
	e.RenderFrame(constFrame(1024, 10))

	first := rec.Ops[0]
	if first.Kind != render.OpFillRect || first.W != 400 || first.H != 200 {
		t.Fatalf("first op = %+v, want full-surface fill", first)
	}
	if first.Color != trailFill {
		t.Errorf("background color = %v, want translucent black", first.Color)
	}

	scan := rec.Ops[1]
	if scan.Kind != render.OpStroke || len(scan.Subpaths) != 200/4 {
		t.Errorf("scan lines: kind %v with %d lines, want %d", scan.Kind, len(scan.Subpaths), 200/4)
	}

	grid := rec.Ops[len(rec.Ops)-2]
	if want := 400/50 + 200/50; len(grid.Subpaths) != want {
		t.Errorf("grid has %d lines, want %d", len(grid.Subpaths), want)
	}

	label := rec.Ops[len(rec.Ops)-1]
	if label.Kind != render.OpText || label.Text != "MODE: RADIAL BARS" {
		t.Errorf("label = %+v", label)
	}
	if label.At != (render.Point{X: 20, Y: 40}) {
		t.Errorf("label at %+v, want {20 40}", label.At)
	}
	if e.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", e.Frames())
	}
}

func TestRenderFrameFollowsScheduler(t *testing.T) {
	rec := render.NewRecorder(300, 300)
	e := NewEngine(rec, WithRand(rand.New(rand.NewSource(1))), WithClock(fixedClock), WithModePeriod(2))
	frame := constFrame(1024, 100)

	want := []string{"RADIAL BARS", "OSCILLOSCOPE", "OSCILLOSCOPE", "PARTICLES", "PARTICLES", "GEOMETRY", "GEOMETRY", "TUNNEL", "TUNNEL", "RADIAL BARS"}
	for i, name := range want {
		rec.Reset()
		e.RenderFrame(frame)
		if got := rec.Ops[len(rec.Ops)-1].Text; got != "MODE: "+name {
			t.Fatalf("frame %d label = %q, want %q", i+1, got, "MODE: "+name)
		}
	}
}

func TestRadialBarsBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		value  uint8
		length float64
	}{
		{"silent", 0, 0},
		{"full scale", 255, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newTestEngine(RadialBars, 800, 600)
			e.RenderFrame(constFrame(1024, tt.value))

			spokes := modeOps(t, rec)
			if len(spokes) != 64 {
				t.Fatalf("got %d spokes, want 64", len(spokes))
			}
			for i, op := range spokes {
				pts := op.Subpaths[0].Points
				from, to := pts[0], pts[1]
				if r := math.Hypot(from.X-400, from.Y-300); math.Abs(r-100) > 1e-9 {
					t.Errorf("spoke %d starts at radius %v, want 100", i, r)
				}
				if l := math.Hypot(to.X-from.X, to.Y-from.Y); math.Abs(l-tt.length) > 1e-9 {
					t.Errorf("spoke %d length %v, want %v", i, l, tt.length)
				}
				if op.Style.Gradient == nil || op.Style.Gradient.Start != render.Neon(i) {
					t.Errorf("spoke %d gradient does not start at palette color", i)
				}
			}
		})
	}
}

func TestOscilloscopeFlatAtMidScale(t *testing.T) {
	e, rec := newTestEngine(Oscilloscope, 640, 480)
	e.RenderFrame(constFrame(1024, 128))

	traces := modeOps(t, rec)
	if len(traces) != 4 {
		t.Fatalf("got %d traces, want 4", len(traces))
	}
	primary := traces[0].Subpaths[0].Points
	if len(primary) != 1024 {
		t.Fatalf("primary trace has %d points, want 1024", len(primary))
	}
	for i, p := range primary {
		if p.Y != 240 {
			t.Fatalf("point %d at y=%v, want 240", i, p.Y)
		}
	}
	if primary[512].X != 320 {
		t.Errorf("middle sample at x=%v, want 320", primary[512].X)
	}

	// The decimated layers sit 50 px apart below the center.
	for wave, op := range traces[1:] {
		pts := op.Subpaths[0].Points
		if len(pts) != 512 {
			t.Errorf("layer %d has %d points, want 512", wave, len(pts))
		}
		if want := 240 + float64(wave)*50; pts[0].Y != want {
			t.Errorf("layer %d at y=%v, want %v", wave, pts[0].Y, want)
		}
	}
}

func TestGeometryShapes(t *testing.T) {
	e, rec := newTestEngine(Geometry, 800, 600)
	e.RenderFrame(constFrame(1024, 255))

	shapes := modeOps(t, rec)
	if len(shapes) != 8 {
		t.Fatalf("got %d shapes, want 8", len(shapes))
	}
	for i, op := range shapes {
		sides := 3 + i%6
		pts := op.Subpaths[0].Points
		if len(pts) != sides+1 {
			t.Errorf("shape %d has %d points, want %d", i, len(pts), sides+1)
		}
		angle := float64(i) * 0.5
		cx, cy := 400+math.Cos(angle)*150, 300+math.Sin(angle)*150
		for _, p := range pts {
			if r := math.Hypot(p.X-cx, p.Y-cy); math.Abs(r-150) > 1e-6 {
				t.Fatalf("shape %d vertex at distance %v from its orbit point, want 150", i, r)
			}
		}
	}
}

func TestTunnelRings(t *testing.T) {
	e, rec := newTestEngine(Tunnel, 800, 400)
	frame := make([]uint8, 1024)
	frame[10] = 255 // ring 1 only

	e.RenderFrame(frame)

	rings := modeOps(t, rec)
	if len(rings) != 20 {
		t.Fatalf("got %d rings, want 20", len(rings))
	}
	for i, op := range rings {
		p := op.Subpaths[0].Points[0]
		if want := 200.0 / 20 * float64(i+1); math.Abs(math.Hypot(p.X-400, p.Y-200)-want) > 1e-9 {
			t.Errorf("ring %d radius wrong", i)
		}
		want := 2.0
		if i == 1 {
			want = 12
		}
		if op.Style.Width != want {
			t.Errorf("ring %d width = %v, want %v", i, op.Style.Width, want)
		}
		if op.Style.Color != render.Neon(i) {
			t.Errorf("ring %d color = %v, want palette %d", i, op.Style.Color, i%8)
		}
	}
}

func TestShortFramesReadAsSilence(t *testing.T) {
	frames := map[string][]uint8{
		"nil":     nil,
		"one":     {255},
		"eight":   constFrame(8, 255),
		"partial": constFrame(100, 255),
	}
	for m := RadialBars; m < modeCount; m++ {
		for name, frame := range frames {
			t.Run(m.String()+"/"+name, func(t *testing.T) {
				e, _ := newTestEngine(m, 320, 240)
				e.RenderFrame(frame)
			})
		}
	}

	// Geometry reads bins 0, 32, ... 224; with 8 bins only slot 0 is loud.
	e, rec := newTestEngine(Geometry, 800, 600)
	e.RenderFrame(constFrame(8, 255))
	for i, op := range modeOps(t, rec) {
		want := 50.0
		if i == 0 {
			want = 150
		}
		pts := op.Subpaths[0].Points
		angle := float64(i) * 0.5
		cx, cy := 400+math.Cos(angle)*150, 300+math.Sin(angle)*150
		if r := math.Hypot(pts[0].X-cx, pts[0].Y-cy); math.Abs(r-want) > 1e-6 {
			t.Errorf("shape %d size %v, want %v", i, r, want)
		}
	}
}

func TestEmptyFrameDrawsNoWaveform(t *testing.T) {
	e, rec := newTestEngine(Oscilloscope, 320, 240)
	e.RenderFrame(nil)
	if n := len(rec.Ops); n != 4 {
		t.Errorf("got %d ops for an empty oscilloscope frame, want 4", n)
	}
}

func TestSameFrameSameGeometry(t *testing.T) {
	frame := make([]uint8, 1024)
	for i := range frame {
		frame[i] = uint8((i * 7) % 256)
	}

	for _, m := range []Mode{RadialBars, Oscilloscope, Geometry, Tunnel} {
		t.Run(m.String(), func(t *testing.T) {
			e, rec := newTestEngine(m, 640, 480)
			e.RenderFrame(frame)
			first := append([]render.Op(nil), modeOps(t, rec)...)
			rec.Reset()
			e.RenderFrame(frame)
			if !reflect.DeepEqual(first, modeOps(t, rec)) {
				t.Error("repeated frame produced different geometry")
			}
		})
	}

	// Particles evolve between calls, so compare two engines with one seed.
	a, recA := newTestEngine(Particles, 640, 480)
	b, recB := newTestEngine(Particles, 640, 480)
	a.RenderFrame(frame)
	b.RenderFrame(frame)
	if !reflect.DeepEqual(modeOps(t, recA), modeOps(t, recB)) {
		t.Error("particle frames differ for identical seeds")
	}
}

func TestParticleModeStepsField(t *testing.T) {
	e, _ := newTestEngine(Particles, 640, 480)
	before := append([]Particle(nil), e.Particles().Particles...)
	e.RenderFrame(constFrame(1024, 0))
	after := e.Particles().Particles
	for i := range before {
		if before[i].Life > 0.01 && math.Abs(before[i].Life-after[i].Life-0.01) > 1e-9 {
			t.Fatalf("particle %d life %v -> %v, want one decay step", i, before[i].Life, after[i].Life)
		}
	}
}

func TestSampleAccess(t *testing.T) {
	frame := []uint8{10, 20, 30}
	tests := []struct {
		i    int
		want uint8
	}{
		{0, 10}, {2, 30}, {3, 0}, {-1, 0}, {1000, 0},
	}
	for _, tt := range tests {
		if got := sampleAt(frame, tt.i); got != tt.want {
			t.Errorf("sampleAt(%d) = %d, want %d", tt.i, got, tt.want)
		}
	}
	if got := mean(frame); got != 20 {
		t.Errorf("mean = %v, want 20", got)
	}
	if got := mean(nil); got != 0 {
		t.Errorf("mean(nil) = %v, want 0", got)
	}
}
