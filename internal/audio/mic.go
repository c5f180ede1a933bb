package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/iburimskiy/neon-visualizer/internal/config"
)

// MicSource captures the default input device through PortAudio.
type MicSource struct {
	analyser *Analyser
	stream   *portaudio.Stream
	buf      []float32
	mono     []float64

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewMicSource prepares capture with reads of framesPerBuffer samples.
func NewMicSource(framesPerBuffer int) *MicSource {
	return &MicSource{
		analyser: NewAnalyser(config.FFTSize),
		buf:      make([]float32, framesPerBuffer),
		mono:     make([]float64, framesPerBuffer),
	}
}

// Start opens the default input stream and begins reading from it. Any
// failure, including denied microphone access, is fatal for the caller.
func (m *MicSource) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("%w: portaudio: %w", ErrSourceUnavailable, err)
	}
	stream, err := portaudio.OpenDefaultStream(1, 0, config.SampleRate, len(m.buf), m.buf)
	if err != nil {
		_ = portaudio.Terminate()
		return fmt.Errorf("%w: open input: %w", ErrSourceUnavailable, err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return fmt.Errorf("%w: start input: %w", ErrSourceUnavailable, err)
	}

	m.stream = stream
	m.stop = make(chan struct{})
	m.wg.Add(1)
	go m.readLoop()

	log.Printf("audio: microphone capture started, %d bins", m.analyser.BinCount())
	return nil
}

func (m *MicSource) readLoop() {
	defer m.wg.Done()
	for {
		select {
		case <-m.stop:
			return
		default:
		}
		if err := m.stream.Read(); err != nil {
			select {
			case <-m.stop:
			default:
				log.Printf("audio: microphone read: %v", err)
			}
			return
		}
		for i, v := range m.buf {
			m.mono[i] = float64(v)
		}
		m.analyser.Write(m.mono)
	}
}

func (m *MicSource) FrequencyData() []uint8 { return m.analyser.FrequencyData() }

func (m *MicSource) Close() error {
	if m.stream == nil {
		return nil
	}
	close(m.stop)
	err := m.stream.Stop()
	m.wg.Wait()
	if cerr := m.stream.Close(); err == nil {
		err = cerr
	}
	m.stream = nil
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	return err
}
