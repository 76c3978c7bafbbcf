// Package summarizer implements extractive summarization: it scores every
// sentence of a document by the average document-wide frequency of its
// words and keeps the highest scoring ones, in original order.
package summarizer

import (
	"sort"
	"strings"

	"github.com/pep299/text-summarizer/internal/model"
	"github.com/pep299/text-summarizer/internal/textproc"
)

// MinSentenceLength is the minimum trimmed sentence length, in runes, for
// a sentence to be eligible for summarization.
const MinSentenceLength = 10

// ScoreSentences scores each sentence as the sum of the document frequency
// of every word occurrence divided by the sentence's word count. A sentence
// with no recognized words scores 0. The returned slice follows the input
// order, with each sentence carrying its original index.
func ScoreSentences(sentences []string, freq *textproc.FrequencyTable) []model.ScoredSentence {
	scored := make([]model.ScoredSentence, 0, len(sentences))
	for i, sentence := range sentences {
		words := textproc.Tokenize(sentence)

		var score float64
		if len(words) > 0 {
			sum := 0
			for _, w := range words {
				sum += freq.Count(w)
			}
			score = float64(sum) / float64(len(words))
		}

		scored = append(scored, model.ScoredSentence{Index: i, Text: sentence, Score: score})
	}
	return scored
}

// Summarize selects up to n sentences. When the document has n or fewer
// sentences the whole sequence is returned unchanged. Otherwise the n
// highest scoring sentences are picked (stable on ties, so the first-seen
// sentence wins) and joined in original document order with single spaces.
func Summarize(sentences []string, n int) string {
	if len(sentences) <= n {
		return strings.Join(sentences, " ")
	}

	freq := textproc.BuildFrequencyTable(sentences)
	scored := ScoreSentences(sentences, freq)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	top := scored[:n]

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Index < top[j].Index
	})

	parts := make([]string, 0, len(top))
	for _, s := range top {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

// Stats computes the analyze-mode statistics block for a cleaned document
// and its sentences. ComplexityScore equals the average sentence length.
func Stats(cleaned string, sentences []string) model.TextStats {
	words := textproc.Tokenize(cleaned)

	var avg float64
	if len(sentences) > 0 {
		avg = float64(len(words)) / float64(len(sentences))
	}

	return model.TextStats{
		SentenceCount:         len(sentences),
		WordCount:             len(words),
		AverageSentenceLength: avg,
		UniqueWords:           textproc.TableOf(words).Distinct(),
		ComplexityScore:       avg,
	}
}
