package analyzer

import (
	"fmt"
	"strings"
)

// sentencePreviewLength is how many runes of a sentence the report shows.
const sentencePreviewLength = 100

// Report renders the fixed-format analysis report. The section order and
// labels are the output contract; topWords controls the size of the key
// topics listing.
func (a *Analyzer) Report(topWords int) string {
	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add("=== TEXT ANALYSIS REPORT ===")
	add("Total sentences: %d", len(a.sentences))
	add("Total paragraphs: %d", len(a.paragraphs))
	add("Total words: %d", len(a.words))
	add("Unique words: %d", a.freq.Distinct())

	add("\n=== KEY TOPICS ===")
	for _, topic := range a.KeyTopics(topWords) {
		add("%s: %d", topic.Word, topic.Count)
	}

	add("\n=== MOST IMPORTANT SENTENCES ===")
	for i, s := range a.TopSentences(5) {
		add("%d. %s... (score: %.2f)", i+1, preview(s.Text), s.Score)
	}

	add("\n=== SECTION ANALYSIS ===")
	for _, section := range a.Sections() {
		add("%s:", section.Name)
		add("  Score: %.2f", section.Score)
		add("  Sentences: %d", section.SentenceCount)

		words := make([]string, 0, len(section.KeyWords))
		for _, kw := range section.KeyWords {
			words = append(words, kw.Word)
		}
		add("  Key words: %s", strings.Join(words, ", "))
	}

	vocab := a.Vocabulary()
	add("\n=== VOCABULARY ANALYSIS ===")
	add("Vocabulary richness: %.2f", vocab.Richness)
	add("Long words (6+ chars): %.1f%%", vocab.LongWordsPercentage)
	add("Complex words (8+ chars): %.1f%%", vocab.ComplexWordsPercentage)

	rec := a.Recommendations()
	add("\n=== SUMMARY RECOMMENDATIONS ===")
	add("Recommended summary length: %d sentences", rec.SummaryLength)
	add("\nKey topics to include:")
	for _, topic := range rec.KeyTopics {
		add("  - %s", topic)
	}

	return strings.Join(lines, "\n")
}

func preview(sentence string) string {
	runes := []rune(sentence)
	if len(runes) > sentencePreviewLength {
		runes = runes[:sentencePreviewLength]
	}
	return string(runes)
}
