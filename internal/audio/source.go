package audio

import "errors"

var (
	// ErrSourceUnavailable means the audio input could not be opened:
	// no device, permission denied, or an unreadable file.
	ErrSourceUnavailable = errors.New("audio source unavailable")

	// ErrUnsupportedFormat is returned for audio files with an unknown
	// extension.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// FrequencySource yields the newest magnitude spectrum, one byte per bin.
// The slice is owned by the source and is only valid until the next call.
type FrequencySource interface {
	FrequencyData() []uint8
}

// Source is a FrequencySource with a capture lifecycle. Start either begins
// delivering audio or fails with an error wrapping ErrSourceUnavailable.
type Source interface {
	FrequencySource
	Start() error
	Close() error
}

// FrameStats summarizes a frequency frame for debug logging.
type FrameStats struct {
	Len  int
	Sum  int
	Max  uint8
	Mean float64
}

// Stats computes FrameStats for frame.
func Stats(frame []uint8) FrameStats {
	st := FrameStats{Len: len(frame)}
	for _, v := range frame {
		st.Sum += int(v)
		if v > st.Max {
			st.Max = v
		}
	}
	if st.Len > 0 {
		st.Mean = float64(st.Sum) / float64(st.Len)
	}
	return st
}
