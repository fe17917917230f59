package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	// Audio input configuration
	Audio AudioConfig `mapstructure:"audio"`

	// Analysis configuration
	Analysis AnalysisConfig `mapstructure:"analysis"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`
}

// AudioConfig contains audio framing settings
type AudioConfig struct {
	SampleRate     int     `mapstructure:"sample_rate"`
	Channels       int     `mapstructure:"channels"`
	WindowDuration float64 `mapstructure:"window_duration"` // frame duration in ms
	HopDuration    float64 `mapstructure:"hop_duration"`    // frame hop in ms
	WindowFunction string  `mapstructure:"window_function"`
}

// AnalysisConfig contains pitch and LPC analysis settings
type AnalysisConfig struct {
	PreEmphasis  float64 `mapstructure:"pre_emphasis"`
	FFTSize      int     `mapstructure:"fft_size"`
	LPCOrder     int     `mapstructure:"lpc_order"` // 0 selects sample_rate/1000 + 2
	MinPitchFreq float64 `mapstructure:"min_pitch_freq"`
	MaxPitchFreq float64 `mapstructure:"max_pitch_freq"`

	// Optional peak refinements; zero values keep the raw local-maximum scan
	PeakMinProminence float64 `mapstructure:"peak_min_prominence"`
	PeakMinSeparation int     `mapstructure:"peak_min_separation"`

	// Decibel alignment offsets used by reporting collaborators. Empirical
	// values carried over from the reference plots.
	SpectrumOffsetDB float64 `mapstructure:"spectrum_offset_db"`
	EnvelopeOffsetDB float64 `mapstructure:"envelope_offset_db"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Precision       int  `mapstructure:"precision"`
	IncludeMetadata bool `mapstructure:"include_metadata"`
	Timestamps      bool `mapstructure:"timestamps"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive")
	}

	if config.Audio.WindowDuration <= 0 {
		return fmt.Errorf("window duration must be positive")
	}

	if config.Audio.HopDuration <= 0 {
		return fmt.Errorf("hop duration must be positive")
	}

	if config.Analysis.PreEmphasis < 0 || config.Analysis.PreEmphasis > 1 {
		return fmt.Errorf("pre-emphasis coefficient must be between 0 and 1")
	}

	if config.Analysis.FFTSize <= 0 {
		return fmt.Errorf("FFT size must be positive")
	}

	if config.Analysis.LPCOrder < 0 {
		return fmt.Errorf("LPC order cannot be negative")
	}

	if config.Analysis.MinPitchFreq >= config.Analysis.MaxPitchFreq {
		return fmt.Errorf("pitch search band must satisfy min < max")
	}

	return nil
}
