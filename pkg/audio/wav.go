package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// AudioData holds decoded mono samples ready for analysis.
type AudioData struct {
	Samples    []float64     `json:"-"`
	SampleRate int           `json:"sample_rate"`
	Channels   int           `json:"channels"` // channel count of the source file
	Duration   time.Duration `json:"duration"`
}

// WAVHeader holds the parsed RIFF/WAV format fields.
type WAVHeader struct {
	SampleRate    uint32
	BitsPerSample uint16
	NumChannels   uint16
	NumSamples    int
}

// LoadWAV reads a WAV file from disk. See ReadWAV for format constraints.
func LoadWAV(path string) (*AudioData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wav file: %w", err)
	}
	defer f.Close()

	return ReadWAV(f)
}

// ReadWAV decodes 16-bit PCM WAV data into normalized float64 samples in
// [-1.0, 1.0]. Multi-channel files are reduced to the first channel; the
// analysis pipeline is mono. The decoded sequence must be non-empty and the
// sample rate positive, otherwise the whole analysis is invalid.
func ReadWAV(r io.ReadSeeker) (*AudioData, error) {
	var header WAVHeader

	var riffID [4]byte
	if err := binary.Read(r, binary.LittleEndian, &riffID); err != nil {
		return nil, fmt.Errorf("read RIFF ID: %w", err)
	}
	if string(riffID[:]) != "RIFF" {
		return nil, errors.New("not a RIFF file")
	}

	var fileSize uint32
	if err := binary.Read(r, binary.LittleEndian, &fileSize); err != nil {
		return nil, fmt.Errorf("read file size: %w", err)
	}

	var waveID [4]byte
	if err := binary.Read(r, binary.LittleEndian, &waveID); err != nil {
		return nil, fmt.Errorf("read WAVE ID: %w", err)
	}
	if string(waveID[:]) != "WAVE" {
		return nil, errors.New("not a WAVE file")
	}

	var fmtFound bool
	var samples []float64

	for {
		var chunkID [4]byte
		if err := binary.Read(r, binary.LittleEndian, &chunkID); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("read chunk ID: %w", err)
		}

		var chunkSize uint32
		if err := binary.Read(r, binary.LittleEndian, &chunkSize); err != nil {
			return nil, fmt.Errorf("read chunk size: %w", err)
		}

		switch string(chunkID[:]) {
		case "fmt ":
			if err := readFmtChunk(r, chunkSize, &header); err != nil {
				return nil, err
			}
			fmtFound = true

		case "data":
			if !fmtFound {
				return nil, errors.New("data chunk before fmt chunk")
			}
			var err error
			samples, err = readDataChunk(r, chunkSize, &header)
			if err != nil {
				return nil, err
			}

		default:
			// Skip unknown chunks; align to even boundary
			skip := int64(chunkSize)
			if chunkSize%2 != 0 {
				skip++
			}
			if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
				return nil, fmt.Errorf("skip chunk %q: %w", chunkID[:], err)
			}
		}
	}

	if header.SampleRate == 0 {
		return nil, errors.New("wav header has zero sample rate")
	}
	if len(samples) == 0 {
		return nil, errors.New("wav file contains no samples")
	}

	return &AudioData{
		Samples:    samples,
		SampleRate: int(header.SampleRate),
		Channels:   int(header.NumChannels),
		Duration:   time.Duration(float64(len(samples)) / float64(header.SampleRate) * float64(time.Second)),
	}, nil
}

func readFmtChunk(r io.ReadSeeker, size uint32, header *WAVHeader) error {
	if size < 16 {
		return fmt.Errorf("fmt chunk too small: %d bytes", size)
	}

	var audioFormat uint16
	if err := binary.Read(r, binary.LittleEndian, &audioFormat); err != nil {
		return fmt.Errorf("read audio format: %w", err)
	}
	if audioFormat != 1 {
		return fmt.Errorf("unsupported audio format %d, want PCM (1)", audioFormat)
	}

	if err := binary.Read(r, binary.LittleEndian, &header.NumChannels); err != nil {
		return fmt.Errorf("read channel count: %w", err)
	}
	if header.NumChannels == 0 {
		return errors.New("wav header declares zero channels")
	}

	if err := binary.Read(r, binary.LittleEndian, &header.SampleRate); err != nil {
		return fmt.Errorf("read sample rate: %w", err)
	}

	// byte rate and block align are redundant with the other fields
	if _, err := r.Seek(6, io.SeekCurrent); err != nil {
		return fmt.Errorf("skip byte rate: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &header.BitsPerSample); err != nil {
		return fmt.Errorf("read bits per sample: %w", err)
	}
	if header.BitsPerSample != 16 {
		return fmt.Errorf("unsupported bit depth %d, want 16", header.BitsPerSample)
	}

	// Skip any fmt extension bytes
	if size > 16 {
		if _, err := r.Seek(int64(size-16), io.SeekCurrent); err != nil {
			return fmt.Errorf("skip fmt extension: %w", err)
		}
	}

	return nil
}

func readDataChunk(r io.Reader, size uint32, header *WAVHeader) ([]float64, error) {
	frameCount := int(size) / 2 / int(header.NumChannels)
	header.NumSamples = frameCount

	raw := make([]int16, int(size)/2)
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return nil, fmt.Errorf("read sample data: %w", err)
	}

	samples := make([]float64, frameCount)
	step := int(header.NumChannels)
	for i := 0; i < frameCount; i++ {
		samples[i] = float64(raw[i*step]) / 32768.0
	}

	return samples, nil
}
