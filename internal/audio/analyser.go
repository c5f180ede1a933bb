// Package audio turns captured or decoded sound into the byte magnitude
// spectrum the visualizer consumes once per frame.
package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/mjibson/go-dsp/fft"

	"github.com/iburimskiy/neon-visualizer/internal/config"
)

// Analyser keeps a ring of recent mono samples and converts the newest
// fftSize of them into byte frequency data: Blackman window, FFT, temporal
// smoothing, then a linear map of [minDb, maxDb] onto 0-255.
//
// Writes may come from an audio goroutine; FrequencyData is meant to be
// called from the render loop only.
type Analyser struct {
	mu   sync.Mutex
	ring []float64
	pos  int

	fftSize   int
	smoothing float64
	minDb     float64
	maxDb     float64
	window    []float64

	frame    []float64
	smoothed []float64
	bytes    []uint8
}

// NewAnalyser creates an analyser for the given transform size. It yields
// fftSize/2 bins.
func NewAnalyser(fftSize int) *Analyser {
	ringSize := config.VisualRingSize
	if ringSize < fftSize {
		ringSize = fftSize
	}
	a := &Analyser{
		ring:      make([]float64, ringSize),
		fftSize:   fftSize,
		smoothing: config.SmoothingFactor,
		minDb:     config.MinDecibels,
		maxDb:     config.MaxDecibels,
		window:    blackman(fftSize),
		frame:     make([]float64, fftSize),
		smoothed:  make([]float64, fftSize/2),
		bytes:     make([]uint8, fftSize/2),
	}
	return a
}

// BinCount is the length of the slices returned by FrequencyData.
func (a *Analyser) BinCount() int { return a.fftSize / 2 }

// Write appends mono samples in [-1,1].
func (a *Analyser) Write(samples []float64) {
	a.mu.Lock()
	for _, s := range samples {
		a.ring[a.pos] = s
		a.pos = (a.pos + 1) % len(a.ring)
	}
	a.mu.Unlock()
}

// WriteStereo appends stereo samples mixed down to mono.
func (a *Analyser) WriteStereo(samples [][2]float64) {
	a.mu.Lock()
	for _, s := range samples {
		a.ring[a.pos] = (s[0] + s[1]) / 2
		a.pos = (a.pos + 1) % len(a.ring)
	}
	a.mu.Unlock()
}

// FrequencyData analyses the newest window and returns one byte per bin.
// The returned slice is reused; it stays valid until the next call.
func (a *Analyser) FrequencyData() []uint8 {
	a.snapshot()

	for i := range a.frame {
		a.frame[i] *= a.window[i]
	}
	spectrum := fft.FFTReal(a.frame)

	scale := 255 / (a.maxDb - a.minDb)
	for k := range a.smoothed {
		mag := cmplx.Abs(spectrum[k]) / float64(a.fftSize)
		a.smoothed[k] = a.smoothing*a.smoothed[k] + (1-a.smoothing)*mag

		db := math.Inf(-1)
		if a.smoothed[k] > 0 {
			db = 20 * math.Log10(a.smoothed[k])
		}
		a.bytes[k] = toByte((db - a.minDb) * scale)
	}
	return a.bytes
}

// snapshot copies the newest fftSize samples, oldest first, into a.frame.
func (a *Analyser) snapshot() {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := len(a.ring)
	start := (a.pos - a.fftSize + n) % n
	for i := range a.frame {
		a.frame[i] = a.ring[(start+i)%n]
	}
}

func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// blackman returns the periodic Blackman window of length n.
func blackman(n int) []float64 {
	const a0, a1, a2 = 0.42, 0.5, 0.08
	w := make([]float64, n)
	for i := range w {
		x := 2 * math.Pi * float64(i) / float64(n)
		w[i] = a0 - a1*math.Cos(x) + a2*math.Cos(2*x)
	}
	return w
}
