package textproc

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lowercases and splits on non-word characters",
			input: "Cats chase cats, and CATS nap.",
			want:  []string{"cats", "chase", "cats", "and", "cats", "nap"},
		},
		{
			name:  "digits and underscores are word characters",
			input: "item_42 costs 7",
			want:  []string{"item_42", "costs", "7"},
		},
		{
			name:  "punctuation only",
			input: "... !?! ;;;",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokenize(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFrequencyTableCounts(t *testing.T) {
	table := BuildFrequencyTable([]string{"Dogs bark.", "Dogs and DOGS run."})

	if got := table.Count("dogs"); got != 3 {
		t.Errorf("Count(dogs) = %d, want 3 (case-insensitive)", got)
	}
	if got := table.Count("bark"); got != 1 {
		t.Errorf("Count(bark) = %d, want 1", got)
	}
	if got := table.Count("missing"); got != 0 {
		t.Errorf("Count(missing) = %d, want 0", got)
	}
	if got := table.Distinct(); got != 4 {
		t.Errorf("Distinct() = %d, want 4", got)
	}
}

func TestFrequencyTableEntriesOrder(t *testing.T) {
	table := TableOf([]string{"zebra", "quokka", "zebra", "apple", "quokka"})

	want := []Entry{
		{Word: "zebra", Count: 2},
		{Word: "quokka", Count: 2},
		{Word: "apple", Count: 1},
	}
	if got := table.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want first-occurrence order %v", got, want)
	}
}

// Summing per-sentence counts must reproduce the whole-document table.
func TestFrequencyTableSentenceSumConsistency(t *testing.T) {
	sentences := []string{
		"The quick brown fox jumps over the lazy dog.",
		"The dog sleeps while the fox runs.",
		"Foxes and dogs rarely agree.",
	}

	doc := BuildFrequencyTable(sentences)

	summed := make(map[string]int)
	for _, s := range sentences {
		for _, e := range BuildFrequencyTable([]string{s}).Entries() {
			summed[e.Word] += e.Count
		}
	}

	for _, e := range doc.Entries() {
		if summed[e.Word] != e.Count {
			t.Errorf("word %q: document count %d, per-sentence sum %d", e.Word, e.Count, summed[e.Word])
		}
	}
	if len(summed) != doc.Distinct() {
		t.Errorf("distinct words: document %d, per-sentence sum %d", doc.Distinct(), len(summed))
	}
}
