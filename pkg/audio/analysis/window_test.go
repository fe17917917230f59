package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHammingWindowShape(t *testing.T) {
	g := NewWindowGenerator()

	for _, n := range []int{2, 4, 63, 480} {
		w, err := g.Hamming(n)
		require.NoError(t, err)
		require.Len(t, w, n)

		// Symmetric and bounded in [0, 1]
		for i := range w {
			assert.InDelta(t, w[n-1-i], w[i], 1e-12, "window length %d asymmetric at %d", n, i)
			assert.GreaterOrEqual(t, w[i], 0.0)
			assert.LessOrEqual(t, w[i], 1.0)
		}

		// Hamming endpoints
		assert.InDelta(t, 0.08, w[0], 1e-12)
		assert.InDelta(t, 0.08, w[n-1], 1e-12)
	}
}

func TestHammingWindowTooShort(t *testing.T) {
	g := NewWindowGenerator()

	for _, n := range []int{-1, 0, 1} {
		_, err := g.Hamming(n)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestApplyWindowToOnes(t *testing.T) {
	g := NewWindowGenerator()

	n := 64
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1.0
	}

	windowed, err := g.Apply(ones)
	require.NoError(t, err)

	w, err := g.Hamming(n)
	require.NoError(t, err)

	// Windowing an all-ones frame reproduces the coefficients exactly
	assert.Equal(t, w, windowed)

	// Input frame untouched
	for _, s := range ones {
		assert.Equal(t, 1.0, s)
	}
}

func TestWindowCacheReuse(t *testing.T) {
	g := NewWindowGenerator()

	w1, err := g.Hamming(128)
	require.NoError(t, err)
	w2, err := g.Hamming(128)
	require.NoError(t, err)

	assert.Equal(t, 1, g.CacheSize())
	// Same backing slice comes back for equal lengths
	assert.Same(t, &w1[0], &w2[0])

	_, err = g.Hamming(256)
	require.NoError(t, err)
	assert.Equal(t, 2, g.CacheSize())
}
