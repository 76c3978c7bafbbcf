package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSectionOrder(t *testing.T) {
	report := New(nineSentenceDoc()).Report(10)

	headers := []string{
		"=== TEXT ANALYSIS REPORT ===",
		"=== KEY TOPICS ===",
		"=== MOST IMPORTANT SENTENCES ===",
		"=== SECTION ANALYSIS ===",
		"=== VOCABULARY ANALYSIS ===",
		"=== SUMMARY RECOMMENDATIONS ===",
	}

	last := -1
	for _, h := range headers {
		idx := strings.Index(report, h)
		require.GreaterOrEqual(t, idx, 0, "missing header %q", h)
		assert.Greater(t, idx, last, "header %q out of order", h)
		last = idx
	}
}

func TestReportLabels(t *testing.T) {
	report := New(nineSentenceDoc()).Report(10)

	for _, label := range []string{
		"Total sentences: 9",
		"Total paragraphs: 1",
		"Total words:",
		"Unique words:",
		"Introduction:",
		"Body:",
		"Conclusion:",
		"  Score:",
		"  Sentences: 3",
		"  Key words:",
		"Vocabulary richness:",
		"Long words (6+ chars):",
		"Complex words (8+ chars):",
		"Recommended summary length: 3 sentences",
		"Key topics to include:",
	} {
		assert.Contains(t, report, label)
	}
}

func TestReportTopWordsLimit(t *testing.T) {
	report := New(nineSentenceDoc()).Report(2)

	start := strings.Index(report, "=== KEY TOPICS ===")
	end := strings.Index(report, "=== MOST IMPORTANT SENTENCES ===")
	require.Greater(t, end, start)

	block := strings.TrimSpace(report[start+len("=== KEY TOPICS ===") : end])
	assert.Len(t, strings.Split(block, "\n"), 2)
}

func TestReportSentencePreviewTruncated(t *testing.T) {
	long := "This opening sentence rambles on and on about absolutely nothing in particular for well over one hundred characters in total length. Short tail here."
	report := New(long).Report(5)

	assert.Contains(t, report, long[:100]+"...")
	assert.NotContains(t, report, long[:120]+" (score:")
}

func TestReportEmptyDocument(t *testing.T) {
	report := New("").Report(10)

	assert.Contains(t, report, "Total sentences: 0")
	assert.Contains(t, report, "Vocabulary richness: 0.00")
	assert.Contains(t, report, "Recommended summary length: 3 sentences")
}
