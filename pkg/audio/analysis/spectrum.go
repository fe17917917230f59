package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DefaultFFTSize is the default transform length, chosen independently of the
// frame length to control frequency-bin resolution (bin width = sampleRate/NFFT).
const DefaultFFTSize = 512

// Spectrum holds the magnitude spectrum of a real-valued sequence up to the
// Nyquist bin. The transform of a real sequence is conjugate-symmetric, so
// only bins 0..NFFT/2 carry information.
type Spectrum struct {
	Magnitude   []float64 `json:"magnitude"`   // NFFT/2+1 magnitude values
	Frequencies []float64 `json:"frequencies"` // frequency of each bin in Hz
	SampleRate  int       `json:"sample_rate"`
	FFTSize     int       `json:"fft_size"`
}

// SpectralTransform computes magnitude spectra of real-valued sequences at a
// fixed transform length.
type SpectralTransform struct {
	sampleRate int
	fftSize    int
}

// NewSpectralTransform creates a transform for the given sample rate and FFT
// size. A non-positive fftSize falls back to DefaultFFTSize.
func NewSpectralTransform(sampleRate, fftSize int) (*SpectralTransform, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidInput, sampleRate)
	}
	if fftSize <= 0 {
		fftSize = DefaultFFTSize
	}

	return &SpectralTransform{
		sampleRate: sampleRate,
		fftSize:    fftSize,
	}, nil
}

// FFTSize reports the configured transform length.
func (st *SpectralTransform) FFTSize() int {
	return st.fftSize
}

// Compute zero-pads the sequence to the transform length and returns the
// magnitude of bins 0..NFFT/2. The sequence must not be longer than NFFT.
func (st *SpectralTransform) Compute(signal []float64) (*Spectrum, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("%w: empty signal", ErrInvalidInput)
	}
	if len(signal) > st.fftSize {
		return nil, fmt.Errorf("%w: signal length %d exceeds FFT size %d", ErrInvalidInput, len(signal), st.fftSize)
	}

	padded := make([]float64, st.fftSize)
	copy(padded, signal)

	fftResult := fft.FFTReal(padded)

	freqBins := st.fftSize/2 + 1
	magnitude := make([]float64, freqBins)
	frequencies := make([]float64, freqBins)
	for i := 0; i < freqBins; i++ {
		magnitude[i] = cmplx.Abs(fftResult[i])
		frequencies[i] = float64(i) * float64(st.sampleRate) / float64(st.fftSize)
	}

	return &Spectrum{
		Magnitude:   magnitude,
		Frequencies: frequencies,
		SampleRate:  st.sampleRate,
		FFTSize:     st.fftSize,
	}, nil
}

// BinFrequency returns the center frequency of bin i.
func (st *SpectralTransform) BinFrequency(i int) float64 {
	return float64(i) * float64(st.sampleRate) / float64(st.fftSize)
}

// MagnitudeDB converts a magnitude sequence to decibels with an additive
// offset. The offsets used by reporting collaborators (-45 for spectra, -90
// for envelopes) are empirical alignment values, not invariants.
func MagnitudeDB(magnitude []float64, offsetDB float64) []float64 {
	out := make([]float64, len(magnitude))
	for i, m := range magnitude {
		if m < 1e-12 {
			m = 1e-12
		}
		out[i] = 20*math.Log10(m) + offsetDB
	}
	return out
}
