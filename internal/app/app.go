package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/RyanBlaney/speech-analyzer/configs"
	"github.com/RyanBlaney/speech-analyzer/internal/report"
	"github.com/RyanBlaney/speech-analyzer/pkg/audio"
	"github.com/RyanBlaney/speech-analyzer/pkg/audio/analysis"
	"github.com/RyanBlaney/speech-analyzer/pkg/logging"
	"github.com/RyanBlaney/speech-analyzer/pkg/output"
)

// Context holds the application context and CLI arguments
type Context struct {
	// CLI arguments
	InputFile    string
	OutputFile   string
	OutputFormat string
	Verbose      bool
	Quiet        bool

	// Runtime context
	Logger logging.Logger
	Config *configs.Config
}

// AnalyzerApp handles the analysis application lifecycle
type AnalyzerApp struct {
	ctx    *Context
	config *configs.Config
	logger logging.Logger
}

// NewAnalyzerApp creates a new analyzer application
func NewAnalyzerApp(ctx *Context) (*AnalyzerApp, error) {
	logger := setupLogging(ctx)
	ctx.Logger = logger

	config, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := configs.ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	ctx.Config = config

	if ctx.OutputFormat == "" {
		ctx.OutputFormat = config.OutputFormat
	}

	logger.Info("Analyzer application initialized", logging.Fields{
		"input_file":    ctx.InputFile,
		"output_format": ctx.OutputFormat,
		"sample_rate":   config.Audio.SampleRate,
	})

	return &AnalyzerApp{
		ctx:    ctx,
		config: config,
		logger: logger,
	}, nil
}

// Run loads the recording, analyzes every frame, and outputs the results.
func (app *AnalyzerApp) Run() error {
	data, err := audio.LoadWAV(app.ctx.InputFile)
	if err != nil {
		return fmt.Errorf("failed to load audio: %w", err)
	}

	app.logger.Info("Audio loaded", logging.Fields{
		"samples":     len(data.Samples),
		"sample_rate": data.SampleRate,
		"channels":    data.Channels,
		"duration_s":  data.Duration.Seconds(),
	})

	frameLen := audio.FrameLength(app.config.Audio.WindowDuration, data.SampleRate)
	hop := audio.FrameLength(app.config.Audio.HopDuration, data.SampleRate)

	analyzer, err := analysis.NewFrameAnalyzer(analysis.Config{
		SampleRate:   data.SampleRate,
		FrameLength:  frameLen,
		PreEmphasis:  app.config.Analysis.PreEmphasis,
		FFTSize:      app.config.Analysis.FFTSize,
		LPCOrder:     app.config.Analysis.LPCOrder,
		MinPitchFreq: app.config.Analysis.MinPitchFreq,
		MaxPitchFreq: app.config.Analysis.MaxPitchFreq,
		PeakOptions: analysis.PeakExtractorOptions{
			MinProminence: app.config.Analysis.PeakMinProminence,
			MinSeparation: app.config.Analysis.PeakMinSeparation,
		},
		Logger: app.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create frame analyzer: %w", err)
	}

	frames := audio.Frames(data.Samples, frameLen, hop)
	if len(frames) == 0 {
		return fmt.Errorf("recording shorter than one %d-sample frame", frameLen)
	}

	results := make([]*analysis.FrameResult, 0, len(frames))
	for i, frame := range frames {
		result, err := analyzer.AnalyzeFrame(frame)
		if err != nil {
			// Input violations are fatal for the whole analysis; per-frame
			// pitch/LPC failures already live inside the result.
			return fmt.Errorf("frame %d: %w", i, err)
		}
		results = append(results, result)
	}

	calculator := report.NewSummaryCalculator(data.SampleRate, app.logger)
	summary := calculator.Summarize(results)

	if err := app.outputResults(data, results, summary, calculator); err != nil {
		return fmt.Errorf("failed to output results: %w", err)
	}

	if !app.ctx.Quiet {
		app.printSummary(data, summary)
	}

	return nil
}

// setupLogging configures logging based on context
func setupLogging(ctx *Context) logging.Logger {
	level := "info"
	if ctx.Verbose {
		level = "debug"
	} else if ctx.Quiet {
		level = "error"
	}

	return logging.NewLogger(level)
}

// outputResults handles all result output
func (app *AnalyzerApp) outputResults(data *audio.AudioData, results []*analysis.FrameResult, summary *report.AnalysisSummary, calculator *report.SummaryCalculator) error {
	formatter := output.NewFormatter(app.ctx.OutputFormat)

	var payload any
	switch app.ctx.OutputFormat {
	case "csv", "table":
		payload = report.NewFrameTable(results, calculator, app.config.Output.Precision)
	default:
		outputData := map[string]any{
			"summary": summary,
			"frames":  results,
		}
		if app.config.Output.IncludeMetadata {
			outputData["audio"] = data
		}
		if app.config.Output.Timestamps {
			outputData["timestamp"] = time.Now()
		}
		payload = outputData
	}

	formatted, err := formatter.Format(payload, true)
	if err != nil {
		return fmt.Errorf("failed to format output data: %w", err)
	}

	if app.ctx.OutputFile != "" {
		return app.writeToFile(formatted)
	}

	_, err = os.Stdout.Write(formatted)
	return err
}

// writeToFile writes data to the specified output file
func (app *AnalyzerApp) writeToFile(data []byte) error {
	dir := filepath.Dir(app.ctx.OutputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(app.ctx.OutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	app.logger.Info("Results written to file", logging.Fields{
		"output_file": app.ctx.OutputFile,
		"size_bytes":  len(data),
	})

	return nil
}

// printSummary prints a human-readable summary to stdout
func (app *AnalyzerApp) printSummary(data *audio.AudioData, summary *report.AnalysisSummary) {
	fmt.Printf("\nSPEECH ANALYSIS SUMMARY\n")
	fmt.Printf("=======================\n")
	fmt.Printf("Duration:        %.2fs (%d samples at %d Hz)\n",
		data.Duration.Seconds(), len(data.Samples), data.SampleRate)
	fmt.Printf("Frames analyzed: %d\n", summary.TotalFrames)
	fmt.Printf("Voiced frames:   %d (%.1f%%)\n", summary.VoicedFrames, summary.VoicedRate*100)

	if summary.Pitch != nil {
		fmt.Printf("\nPITCH (F0)\n")
		fmt.Printf("==========\n")
		fmt.Printf("Mean:   %.1f Hz\n", summary.Pitch.Mean)
		fmt.Printf("Median: %.1f Hz\n", summary.Pitch.Median)
		fmt.Printf("Range:  %.1f - %.1f Hz\n", summary.Pitch.Min, summary.Pitch.Max)
	}

	if summary.FirstFormant != nil {
		fmt.Printf("\nFIRST FORMANT (F1)\n")
		fmt.Printf("==================\n")
		fmt.Printf("Mean:   %.1f Hz\n", summary.FirstFormant.Mean)
		fmt.Printf("Median: %.1f Hz\n", summary.FirstFormant.Median)
	}

	if len(summary.ErrorCounts) > 0 {
		fmt.Printf("\nSKIPPED FRAMES\n")
		fmt.Printf("==============\n")
		for kind, count := range summary.ErrorCounts {
			fmt.Printf("%-20s %d\n", kind, count)
		}
	}

	fmt.Printf("\n")
}
