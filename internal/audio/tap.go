package audio

import "github.com/faiface/beep"

// tap wraps a beep.Streamer and feeds everything that flows through it into
// an Analyser, so the renderer sees recently played audio.
type tap struct {
	Source beep.Streamer
	sink   *Analyser
}

func newTap(src beep.Streamer, sink *Analyser) *tap {
	return &tap{Source: src, sink: sink}
}

func (t *tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.sink.WriteStereo(samples[:n])
	}
	return n, ok
}

func (t *tap) Err() error { return t.Source.Err() }
