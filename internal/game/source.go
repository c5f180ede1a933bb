package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/neon-visualizer/internal/audio"
	"github.com/iburimskiy/neon-visualizer/internal/config"
)

// micFramesPerBuffer is the PortAudio read size, about 23ms at 44.1kHz.
const micFramesPerBuffer = 1024

// OpenSource returns the Opener for the source selected in opts. For file
// playback without a path it asks for one with a file dialog.
func OpenSource(opts config.Options) Opener {
	return func() (audio.Source, error) {
		switch opts.Source {
		case config.SourceMic:
			return audio.NewMicSource(micFramesPerBuffer), nil
		case config.SourceDemo:
			return audio.NewDemoSource(config.SampleRate, config.TargetFPS), nil
		case config.SourceFile:
			path := opts.File
			if path == "" {
				var err error
				if path, err = selectFile(); err != nil || path == "" {
					return nil, err
				}
			}
			return audio.NewFileSource(path), nil
		}
		return nil, fmt.Errorf("unknown source %q", opts.Source)
	}
}

func selectFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	log.Printf("selected %s", filename)
	return filename, nil
}

// ReportStartupError shows a startup failure in a dialog, falling back to
// the log when no dialog can be shown.
func ReportStartupError(err error) {
	msg := err.Error()
	if errors.Is(err, audio.ErrSourceUnavailable) {
		msg = "Could not start audio capture:\n" + msg
	}
	if derr := zenity.Error(msg, zenity.Title("Neon Visualizer"), zenity.ErrorIcon); derr != nil {
		log.Printf("error dialog: %v", derr)
	}
}
