package analysis

// DefaultPreEmphasis is the conventional pre-emphasis coefficient for speech.
const DefaultPreEmphasis = 0.97

// PreEmphasize applies the first-order high-pass filter
//
//	y[0] = x[0]
//	y[i] = x[i] - alpha*x[i-1]
//
// to a frame, flattening the natural -6dB/octave spectral tilt of voiced
// speech so the spectral and LPC stages see a whiter spectrum. The input
// frame is not mutated; an empty frame yields an empty result.
func PreEmphasize(frame []float64, alpha float64) []float64 {
	out := make([]float64, len(frame))
	if len(frame) == 0 {
		return out
	}

	out[0] = frame[0]
	for i := 1; i < len(frame); i++ {
		out[i] = frame[i] - alpha*frame[i-1]
	}
	return out
}
