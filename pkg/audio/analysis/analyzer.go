package analysis

import (
	"fmt"

	"github.com/RyanBlaney/speech-analyzer/pkg/logging"
)

// Config contains caller-supplied analysis parameters. Construction-time
// misconfiguration is fatal: it cannot succeed for any frame, unlike the
// per-frame error conditions.
type Config struct {
	SampleRate   int     `json:"sample_rate"`
	FrameLength  int     `json:"frame_length"`  // frame length in samples
	PreEmphasis  float64 `json:"pre_emphasis"`  // alpha, default 0.97
	FFTSize      int     `json:"fft_size"`      // default 512
	LPCOrder     int     `json:"lpc_order"`     // default sampleRate/1000 + 2
	MinPitchFreq float64 `json:"min_pitch_freq"`
	MaxPitchFreq float64 `json:"max_pitch_freq"`

	PeakOptions PeakExtractorOptions `json:"peak_options"`

	Logger logging.Logger `json:"-"`
}

// FrameResult is the uniform per-frame analysis record. The pitch path and
// the LPC path fail independently: a nil Pitch with a non-nil PitchError
// still carries a usable envelope, and vice versa.
type FrameResult struct {
	Windowed   []float64              `json:"-"`
	Emphasized []float64              `json:"-"`
	Autocorr   *AutocorrelationResult `json:"autocorr,omitempty"`
	Pitch      *PitchEstimate         `json:"pitch,omitempty"`
	PitchError error                  `json:"-"`
	Spectrum   *Spectrum              `json:"spectrum,omitempty"`
	LPC        *LPCResult             `json:"lpc,omitempty"`
	Envelope   *Envelope              `json:"envelope,omitempty"`
	Peaks      []Peak                 `json:"peaks,omitempty"`
	LPCError   error                  `json:"-"`
}

// Failed reports whether both analysis paths failed for this frame.
func (r *FrameResult) Failed() bool {
	return r.PitchError != nil && r.LPCError != nil
}

// FrameAnalyzer runs the full analysis pass over single frames: windowing,
// pre-emphasis, then the pitch path and the LPC/envelope path over the same
// prepared frame. All stages are pure transforms over in-memory buffers; one
// analyzer may be shared across goroutines (the window cache is the only
// shared state and is lock protected).
type FrameAnalyzer struct {
	config    Config
	windows   *WindowGenerator
	pitch     *PitchEstimator
	transform *SpectralTransform
	lpc       *LPCAnalyzer
	peaks     *PeakExtractor
	logger    logging.Logger
}

// NewFrameAnalyzer validates the configuration and builds the pipeline.
func NewFrameAnalyzer(config Config) (*FrameAnalyzer, error) {
	if config.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidInput, config.SampleRate)
	}
	if config.FrameLength < 2 {
		return nil, fmt.Errorf("%w: frame length %d", ErrInvalidInput, config.FrameLength)
	}
	if config.PreEmphasis == 0 {
		config.PreEmphasis = DefaultPreEmphasis
	}
	if config.FFTSize <= 0 {
		config.FFTSize = DefaultFFTSize
	}
	if config.FFTSize < config.FrameLength {
		return nil, fmt.Errorf("%w: FFT size %d smaller than frame length %d", ErrInvalidInput, config.FFTSize, config.FrameLength)
	}
	if config.LPCOrder <= 0 {
		config.LPCOrder = DefaultLPCOrder(config.SampleRate)
	}
	if config.LPCOrder >= config.FrameLength {
		return nil, fmt.Errorf("%w: LPC order %d not below frame length %d", ErrInvalidInput, config.LPCOrder, config.FrameLength)
	}

	logger := config.Logger
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	logger = logger.WithFields(logging.Fields{
		"component":   "frame_analyzer",
		"sample_rate": config.SampleRate,
	})

	pitch, err := NewPitchEstimator(config.SampleRate, config.MinPitchFreq, config.MaxPitchFreq)
	if err != nil {
		return nil, err
	}

	transform, err := NewSpectralTransform(config.SampleRate, config.FFTSize)
	if err != nil {
		return nil, err
	}

	lpc, err := NewLPCAnalyzer(config.LPCOrder, transform)
	if err != nil {
		return nil, err
	}

	return &FrameAnalyzer{
		config:    config,
		windows:   NewWindowGenerator(),
		pitch:     pitch,
		transform: transform,
		lpc:       lpc,
		peaks:     NewPeakExtractorWithOptions(config.PeakOptions),
		logger:    logger,
	}, nil
}

// Config returns the effective configuration after defaults were applied.
func (fa *FrameAnalyzer) Config() Config {
	return fa.config
}

// AnalyzeFrame runs one full analysis pass over a frame. The returned error
// is non-nil only for input violations (wrong frame length, empty frame);
// pitch and LPC failures are reported per path inside the result so callers
// analyzing many frames can skip or flag a frame and continue.
func (fa *FrameAnalyzer) AnalyzeFrame(frame []float64) (*FrameResult, error) {
	if len(frame) != fa.config.FrameLength {
		return nil, fmt.Errorf("%w: frame length %d, analyzer configured for %d", ErrInvalidInput, len(frame), fa.config.FrameLength)
	}

	windowed, err := fa.windows.Apply(frame)
	if err != nil {
		return nil, err
	}
	emphasized := PreEmphasize(windowed, fa.config.PreEmphasis)

	result := &FrameResult{
		Windowed:   windowed,
		Emphasized: emphasized,
	}

	// Pitch path: autocorrelation over the windowed frame.
	if acf, err := Autocorrelation(windowed); err != nil {
		result.PitchError = err
	} else {
		result.Autocorr = acf
		if estimate, err := fa.pitch.EstimatePitch(windowed); err != nil {
			result.PitchError = err
			fa.logger.Debug("pitch estimation failed", logging.Fields{
				"error": err.Error(),
			})
		} else {
			result.Pitch = estimate
		}
	}

	// LPC path: spectrum, predictor coefficients, envelope, peaks.
	if spectrum, err := fa.transform.Compute(emphasized); err != nil {
		result.LPCError = err
	} else {
		result.Spectrum = spectrum
		result.LPCError = fa.analyzeLPC(emphasized, result)
	}

	return result, nil
}

func (fa *FrameAnalyzer) analyzeLPC(frame []float64, result *FrameResult) error {
	lpcResult, err := fa.lpc.Analyze(frame)
	if err != nil {
		fa.logger.Debug("LPC estimation failed", logging.Fields{
			"order": fa.config.LPCOrder,
			"error": err.Error(),
		})
		return err
	}
	result.LPC = lpcResult

	envelope, err := fa.lpc.SpectralEnvelope(lpcResult)
	if err != nil {
		return err
	}
	result.Envelope = envelope
	result.Peaks = fa.peaks.FindPeaks(envelope)
	return nil
}
