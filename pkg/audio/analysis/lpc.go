package analysis

import (
	"fmt"
	"math"
)

// DefaultLPCOrder returns the conventional LPC order for a sample rate:
// samples-per-millisecond plus a small constant. This is an empirical speech
// heuristic sized to capture the expected number of formants; it is a
// configurable default, not an invariant.
func DefaultLPCOrder(sampleRate int) int {
	return sampleRate/1000 + 2
}

// DefaultMagnitudeFloor guards the envelope reciprocal against near-zero
// spectral magnitudes.
const DefaultMagnitudeFloor = 1e-10

// LPCResult contains linear prediction analysis results for one frame.
type LPCResult struct {
	Coefficients    []float64 `json:"coefficients"`     // a[0..p], a[0] = 1 by convention
	ReflectionCoeff []float64 `json:"reflection_coeff"` // k[1..p]
	Gain            float64   `json:"gain"`             // sqrt of final residual energy
	ResidualEnergy  float64   `json:"residual_energy"`  // final prediction error energy
	Order           int       `json:"order"`
}

// Envelope is the all-pole spectral envelope derived from LPC coefficients:
// the reciprocal of |A(f)| at each frequency bin. Values are strictly
// positive; near-zero magnitudes are floored before inversion.
type Envelope struct {
	Values      []float64 `json:"values"`
	Frequencies []float64 `json:"frequencies"`
	SampleRate  int       `json:"sample_rate"`
	FFTSize     int       `json:"fft_size"`
}

// LPCAnalyzer estimates linear prediction coefficients via the
// Levinson-Durbin recursion and derives the all-pole spectral envelope. The
// LPC model treats speech as the output of an all-pole filter 1/A(z) excited
// by a flat source, so inverting |A| recovers an envelope that traces the
// formant peaks while suppressing the harmonic structure from F0.
type LPCAnalyzer struct {
	order          int
	transform      *SpectralTransform
	magnitudeFloor float64
}

// NewLPCAnalyzer creates an LPC analyzer of the given order that derives
// envelopes at the transform's FFT size. A non-positive order falls back to
// DefaultLPCOrder for the transform's sample rate.
func NewLPCAnalyzer(order int, transform *SpectralTransform) (*LPCAnalyzer, error) {
	if transform == nil {
		return nil, fmt.Errorf("%w: nil spectral transform", ErrInvalidInput)
	}
	if order <= 0 {
		order = DefaultLPCOrder(transform.sampleRate)
	}
	if order+1 > transform.fftSize {
		return nil, fmt.Errorf("%w: LPC order %d does not fit FFT size %d", ErrInvalidInput, order, transform.fftSize)
	}

	return &LPCAnalyzer{
		order:          order,
		transform:      transform,
		magnitudeFloor: DefaultMagnitudeFloor,
	}, nil
}

// Order reports the configured LPC order.
func (la *LPCAnalyzer) Order() int {
	return la.order
}

// SetMagnitudeFloor overrides the guard applied to spectral magnitudes before
// the envelope reciprocal. A non-positive floor disables the guard, in which
// case a zero magnitude bin yields ErrEnvelopeSingularity.
func (la *LPCAnalyzer) SetMagnitudeFloor(floor float64) {
	la.magnitudeFloor = floor
}

// Analyze computes predictor coefficients for the frame from its first
// order+1 autocorrelation values.
func (la *LPCAnalyzer) Analyze(frame []float64) (*LPCResult, error) {
	if len(frame) <= la.order {
		return nil, fmt.Errorf("%w: frame length %d too short for LPC order %d", ErrInvalidInput, len(frame), la.order)
	}

	acf, err := Autocorrelation(frame)
	if err != nil {
		return nil, err
	}

	r := acf.Correlations[:la.order+1]
	return la.levinsonDurbin(r)
}

// levinsonDurbin solves the normal equations incrementally by order.
// Convention: a[0] = 1, remaining coefficients are the negated predictor
// weights, so A(z) = 1 + a[1]z^-1 + ... + a[p]z^-p is the inverse filter.
func (la *LPCAnalyzer) levinsonDurbin(r []float64) (*LPCResult, error) {
	p := la.order

	e := r[0]
	if e <= 0 {
		return nil, fmt.Errorf("%w: frame has no energy", ErrDegenerateLPC)
	}

	a := make([]float64, p+1)
	k := make([]float64, p)
	a[0] = 1.0

	prev := make([]float64, p+1)
	for m := 1; m <= p; m++ {
		acc := r[m]
		for j := 1; j < m; j++ {
			acc += a[j] * r[m-j]
		}
		kappa := -acc / e
		k[m-1] = kappa

		copy(prev, a[:m])
		for j := 1; j < m; j++ {
			a[j] = prev[j] + kappa*prev[m-j]
		}
		a[m] = kappa

		e *= 1 - kappa*kappa
		if e <= 0 {
			return nil, fmt.Errorf("%w: residual energy non-positive at step %d of %d", ErrDegenerateLPC, m, p)
		}
	}

	return &LPCResult{
		Coefficients:    a,
		ReflectionCoeff: k,
		Gain:            math.Sqrt(e),
		ResidualEnergy:  e,
		Order:           p,
	}, nil
}

// SpectralEnvelope feeds the coefficient vector through the spectral
// transform (zero-padded to the same FFT size as the signal spectrum) and
// inverts each magnitude bin.
func (la *LPCAnalyzer) SpectralEnvelope(result *LPCResult) (*Envelope, error) {
	if result == nil || len(result.Coefficients) == 0 {
		return nil, fmt.Errorf("%w: missing LPC coefficients", ErrInvalidInput)
	}

	spectrum, err := la.transform.Compute(result.Coefficients)
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(spectrum.Magnitude))
	for i, m := range spectrum.Magnitude {
		if m < la.magnitudeFloor {
			m = la.magnitudeFloor
		}
		if m <= 0 {
			return nil, fmt.Errorf("%w: zero magnitude at bin %d", ErrEnvelopeSingularity, i)
		}
		values[i] = 1.0 / m
	}

	return &Envelope{
		Values:      values,
		Frequencies: spectrum.Frequencies,
		SampleRate:  spectrum.SampleRate,
		FFTSize:     spectrum.FFTSize,
	}, nil
}
