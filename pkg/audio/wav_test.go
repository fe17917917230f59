package audio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWAV assembles a minimal RIFF/WAVE byte stream around raw 16-bit PCM
// samples.
func buildWAV(t *testing.T, sampleRate int, channels int, samples []int16) *bytes.Reader {
	t.Helper()

	var data bytes.Buffer
	write := func(v any) {
		require.NoError(t, binary.Write(&data, binary.LittleEndian, v))
	}

	dataSize := uint32(len(samples) * 2)
	byteRate := uint32(sampleRate * channels * 2)
	blockAlign := uint16(channels * 2)

	data.WriteString("RIFF")
	write(uint32(36 + dataSize))
	data.WriteString("WAVE")

	data.WriteString("fmt ")
	write(uint32(16))
	write(uint16(1)) // PCM
	write(uint16(channels))
	write(uint32(sampleRate))
	write(byteRate)
	write(blockAlign)
	write(uint16(16)) // bits per sample

	data.WriteString("data")
	write(dataSize)
	write(samples)

	return bytes.NewReader(data.Bytes())
}

func TestReadWAVMono(t *testing.T) {
	samples := []int16{0, 16384, -16384, 32767, -32768}
	r := buildWAV(t, 16000, 1, samples)

	audio, err := ReadWAV(r)
	require.NoError(t, err)

	assert.Equal(t, 16000, audio.SampleRate)
	assert.Equal(t, 1, audio.Channels)
	require.Len(t, audio.Samples, len(samples))

	for i, raw := range samples {
		assert.InDelta(t, float64(raw)/32768.0, audio.Samples[i], 1e-12, "sample %d", i)
	}

	// All samples normalized into [-1, 1]
	for _, s := range audio.Samples {
		assert.GreaterOrEqual(t, s, -1.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestReadWAVStereoTakesFirstChannel(t *testing.T) {
	// Interleaved L/R pairs; analysis is mono so only the left channel loads
	samples := []int16{100, -100, 200, -200, 300, -300}
	r := buildWAV(t, 44100, 2, samples)

	audio, err := ReadWAV(r)
	require.NoError(t, err)

	assert.Equal(t, 2, audio.Channels)
	require.Len(t, audio.Samples, 3)
	assert.InDelta(t, 100.0/32768.0, audio.Samples[0], 1e-12)
	assert.InDelta(t, 200.0/32768.0, audio.Samples[1], 1e-12)
	assert.InDelta(t, 300.0/32768.0, audio.Samples[2], 1e-12)
}

func TestReadWAVRejectsGarbage(t *testing.T) {
	_, err := ReadWAV(bytes.NewReader([]byte("definitely not a wav file")))
	require.Error(t, err)
}

func TestReadWAVRejectsEmptyData(t *testing.T) {
	r := buildWAV(t, 16000, 1, nil)

	_, err := ReadWAV(r)
	require.Error(t, err)
}

func TestReadWAVDuration(t *testing.T) {
	samples := make([]int16, 16000) // one second at 16 kHz
	r := buildWAV(t, 16000, 1, samples)

	audio, err := ReadWAV(r)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, audio.Duration.Seconds(), 1e-9)
}
