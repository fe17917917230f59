package analysis

import (
	"fmt"
)

// AutocorrelationResult holds the non-negative-lag autocorrelation of a frame.
// The full two-sided sequence is symmetric in lag, so only lags 0..N-1 are
// computed; TwoSided mirrors them for display collaborators.
type AutocorrelationResult struct {
	Correlations []float64 `json:"correlations"` // values for lags 0..N-1
	Lags         []int     `json:"lags"`         // lag of each value, in samples
}

// Autocorrelation computes the autocorrelation sequence of a frame over lags
// 0..N-1:
//
//	r[k] = sum_{m=0}^{N-1-k} s[m] * s[m+k]
//
// r[0] is the frame's energy (sum of squares) and is the global maximum of
// the sequence by construction.
func Autocorrelation(frame []float64) (*AutocorrelationResult, error) {
	n := len(frame)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty frame", ErrInvalidInput)
	}

	correlations := make([]float64, n)
	lags := make([]int, n)
	for k := 0; k < n; k++ {
		sum := 0.0
		for m := 0; m+k < n; m++ {
			sum += frame[m] * frame[m+k]
		}
		correlations[k] = sum
		lags[k] = k
	}

	return &AutocorrelationResult{Correlations: correlations, Lags: lags}, nil
}

// TwoSided returns the mirrored sequence for lags -(N-1)..N-1. The value at
// index N-1+k is r[|k|].
func (r *AutocorrelationResult) TwoSided() []float64 {
	n := len(r.Correlations)
	if n == 0 {
		return nil
	}

	mirrored := make([]float64, 2*n-1)
	for k := 0; k < n; k++ {
		mirrored[n-1+k] = r.Correlations[k]
		mirrored[n-1-k] = r.Correlations[k]
	}
	return mirrored
}

// PitchEstimate holds a fundamental frequency estimate for one frame.
type PitchEstimate struct {
	F0         float64 `json:"f0"`         // fundamental frequency in Hz
	Period     float64 `json:"period"`     // fundamental period in seconds
	Lag        int     `json:"lag"`        // pitch period in samples
	Confidence float64 `json:"confidence"` // peak correlation normalized by r[0]
}

// PitchEstimator locates the fundamental period of a frame from the strongest
// secondary peak of its autocorrelation sequence.
type PitchEstimator struct {
	sampleRate int
	minFreq    float64
	maxFreq    float64
}

// NewPitchEstimator creates a pitch estimator that searches the lag range
// corresponding to [minFreq, maxFreq]. Non-positive bounds fall back to the
// conventional speech range of 50-500 Hz.
func NewPitchEstimator(sampleRate int, minFreq, maxFreq float64) (*PitchEstimator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidInput, sampleRate)
	}
	if minFreq <= 0 {
		minFreq = 50.0
	}
	if maxFreq <= 0 {
		maxFreq = 500.0
	}
	if minFreq >= maxFreq {
		return nil, fmt.Errorf("%w: pitch search band [%.1f, %.1f] Hz", ErrInvalidInput, minFreq, maxFreq)
	}

	return &PitchEstimator{
		sampleRate: sampleRate,
		minFreq:    minFreq,
		maxFreq:    maxFreq,
	}, nil
}

// EstimatePitch computes the frame's autocorrelation and picks the lag of the
// highest local maximum beyond the minimum lag. The minimum lag guards
// against selecting the zero-lag peak, which is always the global maximum.
// Returns ErrNoPeriodicityFound when the restricted range holds no local
// maximum (very short or non-periodic frame).
func (pe *PitchEstimator) EstimatePitch(frame []float64) (*PitchEstimate, error) {
	acf, err := Autocorrelation(frame)
	if err != nil {
		return nil, err
	}

	correlations := acf.Correlations
	n := len(correlations)

	minLag := int(float64(pe.sampleRate)/pe.maxFreq + 0.5)
	if minLag < 1 {
		minLag = 1
	}
	maxLag := int(float64(pe.sampleRate)/pe.minFreq + 0.5)
	if maxLag > n-2 {
		maxLag = n - 2
	}

	bestLag := -1
	bestValue := 0.0
	for k := minLag; k <= maxLag; k++ {
		c := correlations[k]
		// Strict on the rising side so flat sequences (silence, impulses)
		// report no periodicity instead of a zero-valued plateau.
		if c > correlations[k-1] && c >= correlations[k+1] {
			if bestLag < 0 || c > bestValue {
				bestLag = k
				bestValue = c
			}
		}
	}

	if bestLag < 0 {
		return nil, fmt.Errorf("%w: no local maximum in lag range [%d, %d]", ErrNoPeriodicityFound, minLag, maxLag)
	}

	confidence := 0.0
	if correlations[0] > 0 {
		confidence = bestValue / correlations[0]
	}

	return &PitchEstimate{
		F0:         float64(pe.sampleRate) / float64(bestLag),
		Period:     float64(bestLag) / float64(pe.sampleRate),
		Lag:        bestLag,
		Confidence: confidence,
	}, nil
}
