package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// periodicFrame synthesizes n samples exactly periodic at the given lag:
// a fundamental plus a few weaker harmonics.
func periodicFrame(n, period int) []float64 {
	frame := make([]float64, n)
	f0 := 1.0 / float64(period)
	for i := range frame {
		t := float64(i)
		frame[i] = math.Sin(2*math.Pi*f0*t) +
			0.5*math.Sin(2*math.Pi*2*f0*t) +
			0.25*math.Sin(2*math.Pi*3*f0*t)
	}
	return frame
}

func TestAutocorrelationZeroLagIsEnergy(t *testing.T) {
	frame := []float64{1.0, -2.0, 3.0, -4.0}

	acf, err := Autocorrelation(frame)
	require.NoError(t, err)

	energy := 0.0
	for _, s := range frame {
		energy += s * s
	}
	assert.InDelta(t, energy, acf.Correlations[0], 1e-12)

	// Zero lag is the global maximum of the sequence
	for k, c := range acf.Correlations {
		assert.LessOrEqual(t, c, acf.Correlations[0], "lag %d exceeds zero-lag value", k)
	}
}

func TestAutocorrelationEmptyFrame(t *testing.T) {
	_, err := Autocorrelation(nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAutocorrelationTwoSidedSymmetry(t *testing.T) {
	frame := periodicFrame(200, 40)

	acf, err := Autocorrelation(frame)
	require.NoError(t, err)

	mirrored := acf.TwoSided()
	n := len(acf.Correlations)
	require.Len(t, mirrored, 2*n-1)

	for k := 0; k < n; k++ {
		assert.Equal(t, mirrored[n-1+k], mirrored[n-1-k], "asymmetric at lag %d", k)
	}
	assert.Equal(t, acf.Correlations[0], mirrored[n-1])
}

func TestEstimatePitchKnownPeriod(t *testing.T) {
	// 480-sample frame at 16 kHz with true period 143 samples (~112 Hz)
	const (
		sampleRate = 16000
		period     = 143
	)
	frame := periodicFrame(480, period)

	pe, err := NewPitchEstimator(sampleRate, 0, 0)
	require.NoError(t, err)

	estimate, err := pe.EstimatePitch(frame)
	require.NoError(t, err)

	assert.InDelta(t, period, estimate.Lag, 2)
	assert.InDelta(t, 112.0, estimate.F0, 2.0)
	assert.InDelta(t, float64(estimate.Lag)/sampleRate, estimate.Period, 1e-12)
	assert.Greater(t, estimate.Confidence, 0.0)
}

func TestEstimatePitchNoPeriodicity(t *testing.T) {
	pe, err := NewPitchEstimator(16000, 0, 0)
	require.NoError(t, err)

	// A decaying exponential has a strictly decreasing autocorrelation:
	// no local maximum anywhere in the search range.
	frame := make([]float64, 480)
	for i := range frame {
		frame[i] = math.Exp(-float64(i) / 20.0)
	}

	_, err = pe.EstimatePitch(frame)
	require.ErrorIs(t, err, ErrNoPeriodicityFound)
}

func TestEstimatePitchSilentFrame(t *testing.T) {
	pe, err := NewPitchEstimator(16000, 0, 0)
	require.NoError(t, err)

	_, err = pe.EstimatePitch(make([]float64, 480))
	require.ErrorIs(t, err, ErrNoPeriodicityFound)
}

func TestNewPitchEstimatorValidation(t *testing.T) {
	_, err := NewPitchEstimator(0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewPitchEstimator(16000, 400, 100)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
