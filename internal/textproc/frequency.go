package textproc

import (
	"regexp"
	"strings"
)

// wordPattern matches maximal runs of word characters.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize returns the lowercase word tokens of text in order of
// appearance. It is the single tokenizer shared by scoring, topic
// extraction and vocabulary metrics.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Entry pairs a word with its occurrence count.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FrequencyTable counts word occurrences across one document or section.
// It remembers the order in which distinct words first appeared, so every
// frequency-ranked listing downstream breaks ties deterministically. The
// table is read-only once built.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// BuildFrequencyTable tallies the tokens of every sentence into one table.
func BuildFrequencyTable(sentences []string) *FrequencyTable {
	t := NewFrequencyTable()
	for _, s := range sentences {
		t.AddAll(Tokenize(s))
	}
	return t
}

// TableOf tallies an already-tokenized word sequence.
func TableOf(words []string) *FrequencyTable {
	t := NewFrequencyTable()
	t.AddAll(words)
	return t
}

// Add records one occurrence of word.
func (t *FrequencyTable) Add(word string) {
	if _, seen := t.counts[word]; !seen {
		t.order = append(t.order, word)
	}
	t.counts[word]++
}

// AddAll records one occurrence of every word in words.
func (t *FrequencyTable) AddAll(words []string) {
	for _, w := range words {
		t.Add(w)
	}
}

// Count returns the occurrence count of word, 0 if absent.
func (t *FrequencyTable) Count(word string) int {
	return t.counts[word]
}

// Distinct returns the number of distinct words in the table.
func (t *FrequencyTable) Distinct() int {
	return len(t.order)
}

// Entries returns (word, count) pairs in first-occurrence order.
func (t *FrequencyTable) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, w := range t.order {
		entries = append(entries, Entry{Word: w, Count: t.counts[w]})
	}
	return entries
}
