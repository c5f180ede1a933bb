package audio

import (
	"math"

	"github.com/faiface/beep"

	"github.com/iburimskiy/neon-visualizer/internal/config"
)

// DemoSource synthesizes a pulsing, sweeping chord so the visualizer can
// run without an input device. Audio is generated on demand: every
// FrequencyData call pulls one frame's worth of samples through the
// analyser.
type DemoSource struct {
	analyser *Analyser
	tap      *tap
	chunk    [][2]float64
}

// NewDemoSource generates audio at sampleRate, advancing by one display
// frame at fps per call.
func NewDemoSource(sampleRate beep.SampleRate, fps int) *DemoSource {
	if fps <= 0 {
		fps = config.TargetFPS
	}
	a := NewAnalyser(config.FFTSize)
	return &DemoSource{
		analyser: a,
		tap:      newTap(demoTone(sampleRate), a),
		chunk:    make([][2]float64, int(sampleRate)/fps),
	}
}

func (d *DemoSource) Start() error { return nil }
func (d *DemoSource) Close() error { return nil }

func (d *DemoSource) FrequencyData() []uint8 {
	d.tap.Stream(d.chunk)
	return d.analyser.FrequencyData()
}

// demoTone mixes a swept fundamental, its third harmonic and a steady bass
// line, with the fundamental pulsing twice a second.
func demoTone(sr beep.SampleRate) beep.Streamer {
	var n int
	var phase float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(n) / float64(sr)
			sweep := 220 + 180*math.Sin(2*math.Pi*0.1*t)
			phase += 2 * math.Pi * sweep / float64(sr)
			pulse := 0.5 + 0.5*math.Sin(2*math.Pi*2*t)

			v := 0.5*pulse*math.Sin(phase) +
				0.2*math.Sin(3*phase) +
				0.15*math.Sin(2*math.Pi*55*t)
			samples[i][0], samples[i][1] = v, v
			n++
		}
		return len(samples), true
	})
}
