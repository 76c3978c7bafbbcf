package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// boundary matches a sentence-terminal mark followed by whitespace. The
// mark belongs to the preceding sentence; the whitespace is the delimiter.
var boundary = regexp.MustCompile(`[.!?]\s+`)

// SplitSentences segments text into sentences at terminal punctuation
// (".", "!" or "?") immediately followed by whitespace. Sentences whose
// trimmed length is minLen runes or fewer are dropped entirely. Text with
// no terminal punctuation yields at most one sentence. Order of the
// returned sentences follows the document.
func SplitSentences(text string, minLen int) []string {
	var sentences []string
	keep := func(raw string) {
		s := strings.TrimSpace(raw)
		if utf8.RuneCountInString(s) > minLen {
			sentences = append(sentences, s)
		}
	}

	start := 0
	for _, loc := range boundary.FindAllStringIndex(text, -1) {
		keep(text[start : loc[0]+1])
		start = loc[1]
	}
	if start < len(text) {
		keep(text[start:])
	}
	return sentences
}

// SplitParagraphs splits text on blank lines, trimming each paragraph and
// dropping empty ones.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range paragraphBreak.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)
