package audio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/neon-visualizer/internal/config"
)

// FileSource plays an audio file through the speaker on a loop and
// analyses what is being played.
type FileSource struct {
	path     string
	analyser *Analyser

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
}

// NewFileSource prepares playback of path. Nothing is opened until Start.
func NewFileSource(path string) *FileSource {
	return &FileSource{
		path:     path,
		analyser: NewAnalyser(config.FFTSize),
	}
}

func (s *FileSource) Start() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	streamer, format, err := decode(f, s.path)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return fmt.Errorf("%w: speaker: %w", ErrSourceUnavailable, err)
	}

	s.file = f
	s.streamer = streamer
	s.format = format

	log.Printf("audio: playing %s (%d Hz, %d channels)", filepath.Base(s.path), format.SampleRate, format.NumChannels)
	speaker.Play(newTap(beep.Loop(-1, streamer), s.analyser))
	return nil
}

func (s *FileSource) FrequencyData() []uint8 { return s.analyser.FrequencyData() }

func (s *FileSource) Close() error {
	speaker.Clear()
	var err error
	if s.streamer != nil {
		err = s.streamer.Close()
		s.streamer = nil
	}
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
		s.file = nil
	}
	return err
}

// decode picks a decoder from the file extension.
func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
