// Package meta builds search-engine meta descriptions from product copy.
package meta

import "strings"

// DefaultDescription is returned when there is no text to summarize.
const DefaultDescription = "Professional product description with key features and benefits."

// DefaultMaxLength is the usual snippet length shown by search engines.
const DefaultMaxLength = 160

const ellipsis = "..."

// minSentenceCut is the fraction of maxLength a sentence cut must reach.
const minSentenceCut = 0.7

// Build returns a meta description of at most DefaultMaxLength characters.
func Build(text string) string {
	return BuildWith(text, DefaultMaxLength)
}

// BuildWith collapses whitespace in text and shortens it to maxLength
// characters, preferring to cut after a late sentence end and otherwise
// cutting hard and appending an ellipsis. Lengths count runes.
func BuildWith(text string, maxLength int) string {
	if text == "" {
		return DefaultDescription
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	clean := []rune(strings.Join(strings.Fields(text), " "))
	if len(clean) <= maxLength {
		return string(clean)
	}

	if cut := lastSentenceEnd(clean, maxLength); cut >= 0 && float64(cut) >= minSentenceCut*float64(maxLength) {
		return string(clean[:cut+1])
	}

	if maxLength <= len(ellipsis) {
		return string(clean[:maxLength])
	}
	return string(clean[:maxLength-len(ellipsis)]) + ellipsis
}

// lastSentenceEnd returns the index of the rightmost '.', '!' or '?' before
// limit, or -1.
func lastSentenceEnd(text []rune, limit int) int {
	for i := limit - 1; i >= 0; i-- {
		switch text[i] {
		case '.', '!', '?':
			return i
		}
	}
	return -1
}
