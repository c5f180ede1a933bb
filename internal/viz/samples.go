package viz

// sampleAt reads bin i of the frame, treating anything outside it as
// silence. Frames can be shorter than the strides the modes use.
func sampleAt(frame []uint8, i int) uint8 {
	if i < 0 || i >= len(frame) {
		return 0
	}
	return frame[i]
}

// amplitudeAt is sampleAt normalized to [0,1].
func amplitudeAt(frame []uint8, i int) float64 {
	return float64(sampleAt(frame, i)) / 255
}

// mean returns the average bin value on the 0-255 scale, 0 for an empty frame.
func mean(frame []uint8) float64 {
	if len(frame) == 0 {
		return 0
	}
	var sum int
	for _, v := range frame {
		sum += int(v)
	}
	return float64(sum) / float64(len(frame))
}
