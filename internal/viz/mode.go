package viz

import "github.com/iburimskiy/neon-visualizer/internal/config"

// Mode selects the drawing algorithm for a frame.
type Mode int

const (
	RadialBars Mode = iota
	Oscilloscope
	Particles
	Geometry
	Tunnel

	modeCount
)

var modeLabels = [modeCount]string{
	RadialBars:   "RADIAL BARS",
	Oscilloscope: "OSCILLOSCOPE",
	Particles:    "PARTICLES",
	Geometry:     "GEOMETRY",
	Tunnel:       "TUNNEL",
}

func (m Mode) String() string {
	if m < 0 || m >= modeCount {
		return "UNKNOWN"
	}
	return modeLabels[m]
}

// Scheduler rotates through the modes on a frame-count timer.
type Scheduler struct {
	mode   Mode
	timer  int
	period int
}

// NewScheduler starts at RadialBars and switches every period frames.
func NewScheduler(period int) *Scheduler {
	if period <= 0 {
		period = config.ModePeriod
	}
	return &Scheduler{period: period}
}

// Advance counts one frame and returns the mode to draw it with.
func (s *Scheduler) Advance() Mode {
	s.timer++
	if s.timer >= s.period {
		s.mode = (s.mode + 1) % modeCount
		s.timer = 0
	}
	return s.mode
}

func (s *Scheduler) Mode() Mode { return s.mode }
func (s *Scheduler) Timer() int { return s.timer }
