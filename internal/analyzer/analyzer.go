// Package analyzer computes structural statistics for a single document:
// composite sentence scores, key topics, section breakdown and vocabulary
// metrics, plus recommendations for summarizing it.
package analyzer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pep299/text-summarizer/internal/model"
	"github.com/pep299/text-summarizer/internal/textproc"
)

// minSentenceLength is the minimum trimmed sentence length, in runes, for
// structural analysis. Shorter fragments are discarded.
const minSentenceLength = 5

const uniqueWordBonus = 0.1

// Analyzer holds the derived views of one document. Everything is computed
// once in New and read-only afterward.
type Analyzer struct {
	text       string
	sentences  []string
	paragraphs []string
	words      []string
	freq       *textproc.FrequencyTable
	scored     []model.ScoredSentence
}

// New analyzes text. The raw text is kept (paragraph boundaries need the
// original newlines); sentence and word extraction happen here.
func New(text string) *Analyzer {
	a := &Analyzer{text: strings.TrimSpace(text)}
	a.sentences = textproc.SplitSentences(a.text, minSentenceLength)
	a.paragraphs = textproc.SplitParagraphs(a.text)
	a.words = textproc.Tokenize(a.text)
	a.freq = textproc.TableOf(a.words)
	a.scored = a.scoreSentences()
	return a
}

// Sentences returns the document's sentences in original order.
func (a *Analyzer) Sentences() []string { return a.sentences }

// Paragraphs returns the document's paragraphs in original order.
func (a *Analyzer) Paragraphs() []string { return a.paragraphs }

// Words returns every lowercase word token of the document in order.
func (a *Analyzer) Words() []string { return a.words }

// scoreSentences ranks every sentence by average document-wide word
// frequency plus a bonus per distinct word, rewarding lexical diversity.
// The result is sorted descending by score; ties keep document order.
func (a *Analyzer) scoreSentences() []model.ScoredSentence {
	scored := make([]model.ScoredSentence, 0, len(a.sentences))
	for i, sentence := range a.sentences {
		words := textproc.Tokenize(sentence)

		var importance float64
		if len(words) > 0 {
			sum := 0
			for _, w := range words {
				sum += a.freq.Count(w)
			}
			importance = float64(sum) / float64(len(words))
		}
		importance += uniqueWordBonus * float64(distinct(words))

		scored = append(scored, model.ScoredSentence{Index: i, Text: sentence, Score: importance})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// TopSentences returns up to n sentences sorted descending by composite
// score.
func (a *Analyzer) TopSentences(n int) []model.ScoredSentence {
	if n > len(a.scored) {
		n = len(a.scored)
	}
	return a.scored[:n]
}

// KeyTopics returns the n most frequent words after stop-word filtering,
// ignoring words of 3 runes or fewer. Equal counts rank in order of first
// occurrence.
func (a *Analyzer) KeyTopics(n int) []textproc.Entry {
	var filtered []textproc.Entry
	for _, e := range a.freq.Entries() {
		if isStopWord(e.Word) || utf8.RuneCountInString(e.Word) <= 3 {
			continue
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Count > filtered[j].Count
	})
	if n > len(filtered) {
		n = len(filtered)
	}
	return filtered[:n]
}

// Sections partitions the sentence sequence into thirds by integer
// division: introduction, body, conclusion. The conclusion absorbs any
// remainder. Each section is scored against a frequency table built from
// its own words only. Empty sections report zero values and never fail.
func (a *Analyzer) Sections() []model.Section {
	n := len(a.sentences)
	return []model.Section{
		a.analyzeSection("Introduction", a.sentences[:n/3]),
		a.analyzeSection("Body", a.sentences[n/3:2*n/3]),
		a.analyzeSection("Conclusion", a.sentences[2*n/3:]),
	}
}

func (a *Analyzer) analyzeSection(name string, sentences []string) model.Section {
	section := model.Section{Name: name, SentenceCount: len(sentences)}
	if len(sentences) == 0 {
		return section
	}

	var words []string
	for _, s := range sentences {
		words = append(words, textproc.Tokenize(s)...)
	}
	if len(words) == 0 {
		return section
	}

	freq := textproc.TableOf(words)
	sum := 0
	for _, w := range words {
		sum += freq.Count(w)
	}
	section.Score = float64(sum) / float64(len(words))

	var keyWords []textproc.Entry
	for _, e := range freq.Entries() {
		if utf8.RuneCountInString(e.Word) > 3 {
			keyWords = append(keyWords, e)
		}
	}
	sort.SliceStable(keyWords, func(i, j int) bool {
		return keyWords[i].Count > keyWords[j].Count
	})
	if len(keyWords) > 5 {
		keyWords = keyWords[:5]
	}
	section.KeyWords = keyWords

	return section
}

// Vocabulary reports word-length and richness metrics over the whole
// document. Long words have 6 or more runes, complex words 8 or more.
func (a *Analyzer) Vocabulary() model.Vocabulary {
	total := len(a.words)

	var long, cmplx int
	for _, w := range a.words {
		n := utf8.RuneCountInString(w)
		if n >= 6 {
			long++
		}
		if n >= 8 {
			cmplx++
		}
	}

	vocab := model.Vocabulary{
		TotalWords:        total,
		UniqueWords:       a.freq.Distinct(),
		LongWordsCount:    long,
		ComplexWordsCount: cmplx,
	}
	if total > 0 {
		vocab.Richness = float64(vocab.UniqueWords) / float64(total)
		vocab.LongWordsPercentage = float64(long) / float64(total) * 100
		vocab.ComplexWordsPercentage = float64(cmplx) / float64(total) * 100
	}
	return vocab
}

// Recommendations suggests topics to carry into a summary and a target
// length of clamp(sentences/4, 3, 7).
func (a *Analyzer) Recommendations() model.Recommendations {
	rec := model.Recommendations{
		SummaryLength: clamp(len(a.sentences)/4, 3, 7),
	}
	for _, topic := range a.KeyTopics(5) {
		rec.KeyTopics = append(rec.KeyTopics, topic.Word)
	}
	return rec
}

func distinct(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return len(seen)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
