package textproc

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// disallowed matches every rune that is not a word character,
	// whitespace, or sentence punctuation.
	disallowed    = regexp.MustCompile(`[^\p{L}\p{N}_\s.!?,;:]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Normalize cleans raw text for sentence processing. It applies Unicode NFC,
// removes every character except word characters, whitespace, and the
// punctuation set ".!?,;:", then collapses whitespace runs to single spaces
// and trims the result. Normalizing already-normalized text is a no-op.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = disallowed.ReplaceAllString(text, "")
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
}
