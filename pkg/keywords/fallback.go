package keywords

import (
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/seo-copywriter/pkg/analytics"
)

// FallbackWords returns up to max distinct lowercase words longer than three
// characters that are not stopwords, in order of first appearance.
func FallbackWords(text string, max int) []string {
	if max <= 0 {
		max = DefaultMaxPhrases
	}

	seen := make(map[string]struct{})
	words := make([]string, 0, max)
	for _, word := range analytics.Words(text) {
		if utf8.RuneCountInString(word) <= 3 {
			continue
		}
		word = strings.ToLower(word)
		if analytics.IsStopword(word) {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
		if len(words) == max {
			break
		}
	}
	return words
}
