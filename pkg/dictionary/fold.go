package dictionary

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldWord maps "Café" to "cafe": decompose, drop combining marks, recompose, lower-case.
// The result is not guaranteed to be a-z; validation still happens in the trie.
func foldWord(word string) (string, error) {
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(transformer, word)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(folded)), nil
}
