package audio

import "fmt"

// FrameLength converts a window duration in milliseconds to a length in
// samples at the given sample rate.
func FrameLength(durationMs float64, sampleRate int) int {
	return int(durationMs * float64(sampleRate) / 1000.0)
}

// Frames splits samples into frames of frameLen samples spaced hop samples
// apart. Each frame is an independent copy so downstream transforms never
// alias the source buffer. Returns nil when the signal is shorter than one
// frame.
func Frames(samples []float64, frameLen, hop int) [][]float64 {
	if frameLen <= 0 || hop <= 0 || len(samples) < frameLen {
		return nil
	}

	numFrames := 1 + (len(samples)-frameLen)/hop
	frames := make([][]float64, numFrames)
	for i := 0; i < numFrames; i++ {
		start := i * hop
		frame := make([]float64, frameLen)
		copy(frame, samples[start:start+frameLen])
		frames[i] = frame
	}
	return frames
}

// FrameAt copies the frame of frameLen samples starting at the given sample
// offset. Used when analyzing a hand-picked window of a recording, e.g. one
// vowel segment.
func FrameAt(samples []float64, offset, frameLen int) ([]float64, error) {
	if offset < 0 || frameLen <= 0 || offset+frameLen > len(samples) {
		return nil, fmt.Errorf("frame [%d, %d) out of range for %d samples", offset, offset+frameLen, len(samples))
	}

	frame := make([]float64, frameLen)
	copy(frame, samples[offset:offset+frameLen])
	return frame, nil
}
