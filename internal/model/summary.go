package model

// ScoredSentence pairs a sentence with its importance score and its
// 0-based position in the original document. The position survives score
// sorting so selected sentences can be restored to document order.
type ScoredSentence struct {
	Index int     `json:"index"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}
