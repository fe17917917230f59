package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreEmphasizeZeroAlpha(t *testing.T) {
	frame := []float64{0.5, -0.25, 1.0, 0.0, -1.0}

	out := PreEmphasize(frame, 0.0)

	assert.Equal(t, frame, out)
}

func TestPreEmphasizeFirstSamplePassesThrough(t *testing.T) {
	frame := []float64{0.8, 0.6, 0.4, 0.2}

	for _, alpha := range []float64{0.5, 0.95, DefaultPreEmphasis, 1.0} {
		out := PreEmphasize(frame, alpha)

		assert.Equal(t, frame[0], out[0])
		for i := 1; i < len(frame); i++ {
			assert.InDelta(t, frame[i]-alpha*frame[i-1], out[i], 1e-12)
		}
	}
}

func TestPreEmphasizeEmptyFrame(t *testing.T) {
	out := PreEmphasize(nil, DefaultPreEmphasis)

	assert.Empty(t, out)
}

func TestPreEmphasizeDoesNotMutateInput(t *testing.T) {
	frame := []float64{1.0, 1.0, 1.0}

	PreEmphasize(frame, 0.97)

	assert.Equal(t, []float64{1.0, 1.0, 1.0}, frame)
}
