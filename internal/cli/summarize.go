// Package cli defines the command-line surface of the summarize and
// textanalysis tools: flags, input/output streams and the error taxonomy.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pep299/text-summarizer/internal/model"
	"github.com/pep299/text-summarizer/internal/summarizer"
	"github.com/pep299/text-summarizer/internal/textproc"
)

// methodExtractive is the only supported summarization strategy.
const methodExtractive = "extractive"

var (
	summaryOutput string
	summaryLength int
	summaryMethod string
	analyzeStats  bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [input]",
	Short: "Create summaries of text content",
	Long: `Summarize produces a concise extractive summary of a text document.

Input is read from a file or, when no path is given, from standard input.
The most important sentences are selected by word-frequency scoring and
returned in their original order.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		return runSummarize(path, summaryOutput, summaryLength, summaryMethod, analyzeStats)
	},
}

func init() {
	summarizeCmd.Flags().StringVarP(&summaryOutput, "output", "o", "", "output file path (default: standard output)")
	summarizeCmd.Flags().IntVarP(&summaryLength, "length", "l", 3, "number of sentences in summary")
	summarizeCmd.Flags().StringVarP(&summaryMethod, "method", "m", methodExtractive, "summarization method")
	summarizeCmd.Flags().BoolVar(&analyzeStats, "analyze", false, "analyze text structure instead of creating summary")
}

// ExecuteSummarize runs the summarize command.
func ExecuteSummarize() error {
	return summarizeCmd.Execute()
}

func runSummarize(path, output string, length int, method string, analyze bool) error {
	if method != methodExtractive {
		return fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	text, err := readInput(path)
	if err != nil {
		return err
	}

	cleaned := textproc.Normalize(text)
	sentences := textproc.SplitSentences(cleaned, summarizer.MinSentenceLength)
	if len(sentences) == 0 {
		return ErrEmptyInput
	}

	if analyze {
		fmt.Print(renderStats(summarizer.Stats(cleaned, sentences)))
		return nil
	}

	summary := summarizer.Summarize(sentences, length)
	return writeOutput(output, summary, "Summary")
}

// renderStats formats the analyze-mode statistics block.
func renderStats(stats model.TextStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Text Analysis:\n")
	fmt.Fprintf(&b, "  Sentence count: %d\n", stats.SentenceCount)
	fmt.Fprintf(&b, "  Word count: %d\n", stats.WordCount)
	fmt.Fprintf(&b, "  Average sentence length: %.1f words\n", stats.AverageSentenceLength)
	fmt.Fprintf(&b, "  Unique words: %d\n", stats.UniqueWords)
	fmt.Fprintf(&b, "  Complexity score: %.1f\n", stats.ComplexityScore)
	return b.String()
}
