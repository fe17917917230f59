package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLPC(t *testing.T, order int) *LPCAnalyzer {
	t.Helper()

	st, err := NewSpectralTransform(16000, 512)
	require.NoError(t, err)

	lpc, err := NewLPCAnalyzer(order, st)
	require.NoError(t, err)
	return lpc
}

func TestLPCLeadingCoefficientIsOne(t *testing.T) {
	lpc := newTestLPC(t, 12)

	frame := periodicFrame(480, 100)
	result, err := lpc.Analyze(frame)
	require.NoError(t, err)

	require.Len(t, result.Coefficients, 13)
	assert.Equal(t, 1.0, result.Coefficients[0])
	assert.Equal(t, 12, result.Order)
}

func TestLPCReflectionCoefficientsStable(t *testing.T) {
	lpc := newTestLPC(t, 10)

	// Pure sinusoid frame: every reflection coefficient of a successful
	// recursion stays inside (-1, 1)
	frame := make([]float64, 480)
	for i := range frame {
		frame[i] = math.Sin(2 * math.Pi * 220.0 * float64(i) / 16000.0)
	}

	result, err := lpc.Analyze(frame)
	require.NoError(t, err)

	require.Len(t, result.ReflectionCoeff, 10)
	for i, k := range result.ReflectionCoeff {
		assert.Less(t, math.Abs(k), 1.0, "reflection coefficient %d out of range", i)
	}
	assert.Greater(t, result.ResidualEnergy, 0.0)
	assert.InDelta(t, math.Sqrt(result.ResidualEnergy), result.Gain, 1e-12)
}

func TestLPCPredictsAR1Process(t *testing.T) {
	lpc := newTestLPC(t, 1)

	// y[n] = 0.9*y[n-1] + impulse: a first-order all-pole signal, so the
	// order-1 predictor must recover a[1] close to -0.9.
	frame := make([]float64, 480)
	frame[0] = 1.0
	for i := 1; i < len(frame); i++ {
		frame[i] = 0.9 * frame[i-1]
	}

	result, err := lpc.Analyze(frame)
	require.NoError(t, err)
	assert.InDelta(t, -0.9, result.Coefficients[1], 0.01)
}

func TestLPCDegenerateZeroEnergy(t *testing.T) {
	lpc := newTestLPC(t, 8)

	_, err := lpc.Analyze(make([]float64, 480))
	require.ErrorIs(t, err, ErrDegenerateLPC)
}

func TestLPCFrameTooShort(t *testing.T) {
	lpc := newTestLPC(t, 12)

	_, err := lpc.Analyze(make([]float64, 12))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLPCDefaultOrder(t *testing.T) {
	assert.Equal(t, 18, DefaultLPCOrder(16000))
	assert.Equal(t, 46, DefaultLPCOrder(44100))

	st, err := NewSpectralTransform(16000, 512)
	require.NoError(t, err)

	lpc, err := NewLPCAnalyzer(0, st)
	require.NoError(t, err)
	assert.Equal(t, 18, lpc.Order())
}

func TestSpectralEnvelopeStrictlyPositive(t *testing.T) {
	lpc := newTestLPC(t, 12)

	frame := periodicFrame(480, 120)
	result, err := lpc.Analyze(frame)
	require.NoError(t, err)

	env, err := lpc.SpectralEnvelope(result)
	require.NoError(t, err)

	require.Len(t, env.Values, 512/2+1)
	for i, v := range env.Values {
		assert.Greater(t, v, 0.0, "envelope bin %d not positive", i)
	}
	assert.Equal(t, 512, env.FFTSize)
	assert.Equal(t, 16000, env.SampleRate)
}

func TestSpectralEnvelopeMissingCoefficients(t *testing.T) {
	lpc := newTestLPC(t, 12)

	_, err := lpc.SpectralEnvelope(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = lpc.SpectralEnvelope(&LPCResult{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
