package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pep299/text-summarizer/internal/analyzer"
)

var (
	analysisOutput string
	topWords       int
)

var analyzeCmd = &cobra.Command{
	Use:   "textanalysis [input]",
	Short: "Analyze text structure for summarization",
	Long: `Textanalysis reports the structure of a text document: key topics,
the most important sentences, a section breakdown and vocabulary metrics,
together with recommendations for an effective summary.

Input is read from a file or, when no path is given, from standard input.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		return runAnalyze(path, analysisOutput, topWords)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analysisOutput, "output", "o", "", "output file path (default: standard output)")
	analyzeCmd.Flags().IntVarP(&topWords, "top-words", "w", 10, "number of top words to show")
}

// ExecuteAnalyze runs the textanalysis command.
func ExecuteAnalyze() error {
	return analyzeCmd.Execute()
}

func runAnalyze(path, output string, topWords int) error {
	text, err := readInput(path)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return ErrNoInputText
	}

	report := analyzer.New(text).Report(topWords)
	return writeOutput(output, report, "Analysis")
}
