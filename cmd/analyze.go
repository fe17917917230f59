package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/speech-analyzer/internal/app"
)

var (
	analyzeOutputFile string
	analyzeQuiet      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [wav-file]",
	Short: "Analyze pitch and formants of a recorded WAV file",
	Long: `Split a 16-bit PCM WAV recording into fixed-length frames and run the
full analysis pass over each one: Hamming windowing, pre-emphasis,
autocorrelation pitch estimation, and LPC spectral envelope extraction with
formant peak picking. Frames where no pitch or stable LPC model exists are
flagged and skipped, not fatal.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "output-file", "f", "",
		"write results to file instead of stdout")
	analyzeCmd.Flags().BoolVarP(&analyzeQuiet, "quiet", "q", false,
		"suppress the console summary")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := &app.Context{
		InputFile:    args[0],
		OutputFile:   analyzeOutputFile,
		OutputFormat: viper.GetString("output_format"),
		Verbose:      viper.GetBool("verbose"),
		Quiet:        analyzeQuiet,
	}

	analyzerApp, err := app.NewAnalyzerApp(ctx)
	if err != nil {
		return err
	}

	return analyzerApp.Run()
}
