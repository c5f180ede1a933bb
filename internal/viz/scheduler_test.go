package viz

import "testing"

func TestSchedulerCyclesEveryPeriod(t *testing.T) {
	s := NewScheduler(300)
	for f := 1; f <= 300*12; f++ {
		got := s.Advance()
		want := Mode((f / 300) % 5)
		if got != want {
			t.Fatalf("frame %d: mode = %v, want %v", f, got, want)
		}
	}
}

func TestSchedulerResetsTimer(t *testing.T) {
	s := NewScheduler(3)
	s.Advance()
	s.Advance()
	if s.Timer() != 2 || s.Mode() != RadialBars {
		t.Fatalf("after 2 frames: timer=%d mode=%v", s.Timer(), s.Mode())
	}
	if got := s.Advance(); got != Oscilloscope {
		t.Errorf("third frame mode = %v, want %v", got, Oscilloscope)
	}
	if s.Timer() != 0 {
		t.Errorf("timer = %d after switch, want 0", s.Timer())
	}
}

func TestSchedulerDefaultPeriod(t *testing.T) {
	s := NewScheduler(0)
	if s.period != 300 {
		t.Errorf("period = %d, want 300", s.period)
	}
}

func TestModeString(t *testing.T) {
	tests := map[Mode]string{
		RadialBars:   "RADIAL BARS",
		Oscilloscope: "OSCILLOSCOPE",
		Particles:    "PARTICLES",
		Geometry:     "GEOMETRY",
		Tunnel:       "TUNNEL",
		Mode(42):     "UNKNOWN",
		Mode(-1):     "UNKNOWN",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}
