package config

import (
	"errors"
	"fmt"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	TargetFPS    = 60

	// Analyser parameters, matching the browser analyser node defaults
	FFTSize         = 2048
	VisualRingSize  = 8192
	SmoothingFactor = 0.8
	MinDecibels     = -100.0
	MaxDecibels     = -30.0
	SampleRate      = 44100

	// Start button
	ButtonWidth  = 160
	ButtonHeight = 48

	// Visualization parameters
	ModePeriod       = 300 // frames per mode, ~5s at 60 fps
	ParticleCount    = 50
	ParticleDecay    = 0.01
	ParticleLinkDist = 100
	ParticleLinkMin  = 50 // mean energy (0-255) above which particles link up
	ScanLineStep     = 4
	GridStep         = 50

	// Debug statistics interval, in frames
	StatsInterval = 60
)

// Source kinds accepted by --source.
const (
	SourceMic  = "mic"
	SourceFile = "file"
	SourceDemo = "demo"
)

// Options holds the runtime settings gathered from the command line.
type Options struct {
	Source     string
	File       string
	Width      int
	Height     int
	Fullscreen bool
	Seed       int64
	Debug      bool
	LogFile    string
}

// Default returns the options used when no flags are given.
func Default() Options {
	return Options{
		Source: SourceMic,
		Width:  WindowWidth,
		Height: WindowHeight,
	}
}

// Validate checks the options for values the visualizer cannot run with.
func (o Options) Validate() error {
	switch o.Source {
	case SourceMic, SourceFile, SourceDemo:
	default:
		return fmt.Errorf("unknown source %q (want %s, %s or %s)", o.Source, SourceMic, SourceFile, SourceDemo)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", o.Width, o.Height)
	}
	if o.File != "" && o.Source != SourceFile {
		return errors.New("--file requires --source file")
	}
	return nil
}
