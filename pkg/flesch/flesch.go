// Package flesch estimates Flesch Reading Ease for short English copy.
//
// Syllables are approximated by counting vowel groups, so scores are close to
// but not identical with dictionary-based tools.
package flesch

import (
	"math"
	"regexp"
	"strings"

	"github.com/dtnitsch/seo-copywriter/pkg/analytics"
)

// DefaultScore is reported for text that cannot be scored.
const DefaultScore = 85.0

var sentenceDelimiters = regexp.MustCompile(`[.!?]`)

// TextStats holds the counts the formula is computed from.
type TextStats struct {
	Sentences int `json:"sentences" yaml:"sentences"`
	Words     int `json:"words" yaml:"words"`
	Syllables int `json:"syllables" yaml:"syllables"`
}

// Stats counts sentences, words and estimated syllables in text.
func Stats(text string) TextStats {
	var stats TextStats
	for _, sentence := range sentenceDelimiters.Split(text, -1) {
		if strings.TrimSpace(sentence) != "" {
			stats.Sentences++
		}
	}
	for _, word := range analytics.Words(text) {
		stats.Words++
		stats.Syllables += CountSyllables(word)
	}
	return stats
}

// Score returns the Flesch Reading Ease of text clamped to [0, 100].
// Blank text and text without sentences or words score DefaultScore.
func Score(text string) float64 {
	if text == "" {
		return DefaultScore
	}
	return ScoreStats(Stats(text))
}

// ScoreStats applies the reading-ease formula to precomputed counts.
func ScoreStats(stats TextStats) float64 {
	if stats.Sentences == 0 || stats.Words == 0 {
		return DefaultScore
	}

	words := float64(stats.Words)
	score := 206.835 -
		1.015*(words/float64(stats.Sentences)) -
		84.6*(float64(stats.Syllables)/words)

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return DefaultScore
	}
	return math.Max(0, math.Min(100, score))
}

// CountSyllables approximates the syllables in word as its number of vowel
// groups, after dropping an "es" or "ed" ending. A trailing silent "e" is not
// counted and every non-empty word has at least one syllable.
func CountSyllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}

	if strings.HasSuffix(word, "es") || strings.HasSuffix(word, "ed") {
		word = word[:len(word)-2]
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

// Level names the reading-ease band a score falls in.
func Level(score float64) string {
	switch {
	case score >= 90:
		return "very easy"
	case score >= 80:
		return "easy"
	case score >= 70:
		return "fairly easy"
	case score >= 60:
		return "standard"
	case score >= 50:
		return "fairly difficult"
	case score >= 30:
		return "difficult"
	default:
		return "very difficult"
	}
}
