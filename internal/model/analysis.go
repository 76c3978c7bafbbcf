package model

import "github.com/pep299/text-summarizer/internal/textproc"

// TextStats is the short statistics block reported by the summarizer's
// analyze mode.
type TextStats struct {
	SentenceCount         int     `json:"sentence_count"`
	WordCount             int     `json:"word_count"`
	AverageSentenceLength float64 `json:"average_sentence_length"`
	UniqueWords           int     `json:"unique_words"`
	ComplexityScore       float64 `json:"complexity_score"`
}

// Section describes one contiguous third of a document's sentences with
// its local frequency metrics.
type Section struct {
	Name          string           `json:"name"`
	Score         float64          `json:"score"`
	KeyWords      []textproc.Entry `json:"key_words"`
	SentenceCount int              `json:"sentence_count"`
}

// Vocabulary holds word-length and richness metrics for a document.
type Vocabulary struct {
	TotalWords             int     `json:"total_words"`
	UniqueWords            int     `json:"unique_words"`
	Richness               float64 `json:"vocabulary_richness"`
	LongWordsCount         int     `json:"long_words_count"`
	ComplexWordsCount      int     `json:"complex_words_count"`
	LongWordsPercentage    float64 `json:"long_words_percentage"`
	ComplexWordsPercentage float64 `json:"complex_words_percentage"`
}

// Recommendations suggests how to summarize the analyzed document.
type Recommendations struct {
	KeyTopics     []string `json:"key_topics"`
	SummaryLength int      `json:"summary_length"`
}
