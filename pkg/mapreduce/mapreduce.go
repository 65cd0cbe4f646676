package mapreduce

import (
	"strings"

	"github.com/dtnitsch/seo-copywriter/pkg/analytics"
	"github.com/dtnitsch/seo-copywriter/pkg/keywords"
)

// Map generates a word frequency map for a single description.
func Map(content string, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(content)
}

// MapPhrases counts each ranked keyword phrase of one description once.
// The blank-input placeholder is not a phrase and is skipped.
func MapPhrases(phrases []string) map[string]int {
	counts := make(map[string]int, len(phrases))
	for _, phrase := range phrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" || phrase == keywords.NoKeywordsFound {
			continue
		}
		counts[phrase] = 1
	}
	return counts
}

// Reduce aggregates a slice of frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
