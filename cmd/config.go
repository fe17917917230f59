package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/speech-analyzer/configs"
	"github.com/RyanBlaney/speech-analyzer/pkg/audio/analysis"
)

// configCmd displays the effective configuration after defaults, config file
// and flags are merged.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	Long: `Load the configuration and display all values in a structured format
to verify that your YAML configuration is being parsed correctly.

Examples:
  # Show effective defaults
  speech-analyzer config

  # Show a specific config file
  speech-analyzer --config /path/to/config.yaml config`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	fmt.Println("SPEECH ANALYZER CONFIGURATION")
	fmt.Println(strings.Repeat("=", 80))

	config, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := configs.ValidateConfig(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	printSection("APPLICATION SETTINGS")
	printKeyValue("Verbose", fmt.Sprintf("%t", config.Verbose))
	printKeyValue("Log Level", config.LogLevel)
	printKeyValue("Output Format", config.OutputFormat)

	printSection("AUDIO CONFIGURATION")
	printKeyValue("Sample Rate", fmt.Sprintf("%d Hz", config.Audio.SampleRate))
	printKeyValue("Channels", fmt.Sprintf("%d", config.Audio.Channels))
	printKeyValue("Window Duration", fmt.Sprintf("%.1f ms", config.Audio.WindowDuration))
	printKeyValue("Hop Duration", fmt.Sprintf("%.1f ms", config.Audio.HopDuration))
	printKeyValue("Window Function", config.Audio.WindowFunction)

	printSection("ANALYSIS CONFIGURATION")
	printKeyValue("Pre-emphasis", fmt.Sprintf("%.2f", config.Analysis.PreEmphasis))
	printKeyValue("FFT Size", fmt.Sprintf("%d", config.Analysis.FFTSize))
	lpcOrder := config.Analysis.LPCOrder
	if lpcOrder == 0 {
		lpcOrder = analysis.DefaultLPCOrder(config.Audio.SampleRate)
		printKeyValue("LPC Order", fmt.Sprintf("%d (from sample rate)", lpcOrder))
	} else {
		printKeyValue("LPC Order", fmt.Sprintf("%d", lpcOrder))
	}
	printKeyValue("Pitch Search Band", fmt.Sprintf("%.0f - %.0f Hz",
		config.Analysis.MinPitchFreq, config.Analysis.MaxPitchFreq))
	printKeyValue("Peak Min Prominence", fmt.Sprintf("%.2f", config.Analysis.PeakMinProminence))
	printKeyValue("Peak Min Separation", fmt.Sprintf("%d bins", config.Analysis.PeakMinSeparation))
	printKeyValue("Spectrum Offset", fmt.Sprintf("%.0f dB", config.Analysis.SpectrumOffsetDB))
	printKeyValue("Envelope Offset", fmt.Sprintf("%.0f dB", config.Analysis.EnvelopeOffsetDB))

	printSection("OUTPUT CONFIGURATION")
	printKeyValue("Precision", fmt.Sprintf("%d", config.Output.Precision))
	printKeyValue("Include Metadata", fmt.Sprintf("%t", config.Output.IncludeMetadata))
	printKeyValue("Timestamps", fmt.Sprintf("%t", config.Output.Timestamps))

	fmt.Println()
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Printf("Config file: %s\n", used)
	} else {
		fmt.Println("Config file: (defaults only)")
	}
	fmt.Println(strings.Repeat("=", 80))

	return nil
}

func printSection(title string) {
	fmt.Printf("\n%s\n", title)
	fmt.Println(strings.Repeat("-", len(title)))
}

func printKeyValue(key, value string) {
	if value == "" {
		fmt.Printf("%-35s\n", key)
	} else {
		fmt.Printf("%-35s %s\n", key+":", value)
	}
}
