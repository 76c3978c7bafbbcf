package analyzer

// stopWords is the closed-class English word set excluded from topic
// extraction: articles, conjunctions, prepositions, pronouns and common
// auxiliary verbs.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"should": {}, "could": {}, "can": {}, "may": {}, "might": {},
	"must": {}, "shall": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "i": {}, "you": {}, "he": {}, "she": {}, "it": {},
	"we": {}, "they": {}, "me": {}, "him": {}, "her": {}, "us": {},
	"them": {}, "my": {}, "your": {}, "his": {}, "its": {}, "our": {},
	"their": {},
}

func isStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
