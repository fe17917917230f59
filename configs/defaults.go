package configs

import (
	"github.com/spf13/viper"
)

// SetDefaults sets default configuration values for all components
func SetDefaults(v *viper.Viper) {
	// Application defaults
	if !v.IsSet("verbose") {
		v.SetDefault("verbose", false)
	}
	if !v.IsSet("log_level") {
		v.SetDefault("log_level", "info")
	}
	if !v.IsSet("output_format") {
		v.SetDefault("output_format", "table")
	}

	// Audio framing defaults: 30 ms frames at 16 kHz with 10 ms hop
	if !v.IsSet("audio.sample_rate") {
		v.SetDefault("audio.sample_rate", 16000)
	}
	if !v.IsSet("audio.channels") {
		v.SetDefault("audio.channels", 1)
	}
	if !v.IsSet("audio.window_duration") {
		v.SetDefault("audio.window_duration", 30.0)
	}
	if !v.IsSet("audio.hop_duration") {
		v.SetDefault("audio.hop_duration", 10.0)
	}
	if !v.IsSet("audio.window_function") {
		v.SetDefault("audio.window_function", "hamming")
	}

	// Analysis defaults
	if !v.IsSet("analysis.pre_emphasis") {
		v.SetDefault("analysis.pre_emphasis", 0.97)
	}
	if !v.IsSet("analysis.fft_size") {
		v.SetDefault("analysis.fft_size", 512)
	}
	if !v.IsSet("analysis.lpc_order") {
		// 0 defers to the sample-rate heuristic at analyzer construction
		v.SetDefault("analysis.lpc_order", 0)
	}
	if !v.IsSet("analysis.min_pitch_freq") {
		v.SetDefault("analysis.min_pitch_freq", 50.0)
	}
	if !v.IsSet("analysis.max_pitch_freq") {
		v.SetDefault("analysis.max_pitch_freq", 500.0)
	}
	if !v.IsSet("analysis.peak_min_prominence") {
		v.SetDefault("analysis.peak_min_prominence", 0.0)
	}
	if !v.IsSet("analysis.peak_min_separation") {
		v.SetDefault("analysis.peak_min_separation", 0)
	}
	if !v.IsSet("analysis.spectrum_offset_db") {
		v.SetDefault("analysis.spectrum_offset_db", -45.0)
	}
	if !v.IsSet("analysis.envelope_offset_db") {
		v.SetDefault("analysis.envelope_offset_db", -90.0)
	}

	// Output defaults
	if !v.IsSet("output.precision") {
		v.SetDefault("output.precision", 2)
	}
	if !v.IsSet("output.include_metadata") {
		v.SetDefault("output.include_metadata", true)
	}
	if !v.IsSet("output.timestamps") {
		v.SetDefault("output.timestamps", true)
	}
}

// GetDefaultConfig returns a Config struct with all default values set
func GetDefaultConfig() *Config {
	return &Config{
		Verbose:      false,
		LogLevel:     "info",
		OutputFormat: "table",
		Audio:        GetDefaultAudioConfig(),
		Analysis:     GetDefaultAnalysisConfig(),
		Output:       GetDefaultOutputConfig(),
	}
}

// GetDefaultAudioConfig returns default audio framing settings
func GetDefaultAudioConfig() AudioConfig {
	return AudioConfig{
		SampleRate:     16000,
		Channels:       1,
		WindowDuration: 30.0,
		HopDuration:    10.0,
		WindowFunction: "hamming",
	}
}

// GetDefaultAnalysisConfig returns default analysis settings
func GetDefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		PreEmphasis:      0.97,
		FFTSize:          512,
		LPCOrder:         0,
		MinPitchFreq:     50.0,
		MaxPitchFreq:     500.0,
		SpectrumOffsetDB: -45.0,
		EnvelopeOffsetDB: -90.0,
	}
}

// GetDefaultOutputConfig returns default output formatting settings
func GetDefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Precision:       2,
		IncludeMetadata: true,
		Timestamps:      true,
	}
}

// GetDefaultOutputConfigForFormat returns output config optimized for specific format
func GetDefaultOutputConfigForFormat(format string) OutputConfig {
	base := GetDefaultOutputConfig()

	switch format {
	case "json":
		base.Precision = 6
	case "csv":
		base.IncludeMetadata = false
		base.Timestamps = false
	case "table":
		base.Precision = 2
	default:
		// Keep defaults
	}

	return base
}
