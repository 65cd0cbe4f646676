// Package keywords ranks the candidate phrases of a product description by
// estimated SEO importance.
//
// The primary ranking is RAKE (rapid automatic keyword extraction): text is
// split into candidate phrases at stopwords and punctuation, a word
// co-occurrence graph is built inside each phrase, and every phrase is scored
// by the degree/frequency ratio of its words. When ranking yields nothing, a
// frequency-filtered word list is returned instead.
package keywords

import "strings"

// NoKeywordsFound is the single entry returned for blank input. Callers show
// it to the user as-is.
const NoKeywordsFound = "No keywords found"

const (
	DefaultMaxPhrases = 8
	DefaultMinWords   = 1
	DefaultMaxWords   = 3
)

// Options bounds the extraction. Zero values select the defaults.
type Options struct {
	MaxPhrases int `json:"max_phrases" yaml:"max_phrases"`
	MinWords   int `json:"min_words" yaml:"min_words"`
	MaxWords   int `json:"max_words" yaml:"max_words"`
}

func (o Options) withDefaults() Options {
	if o.MaxPhrases <= 0 {
		o.MaxPhrases = DefaultMaxPhrases
	}
	if o.MinWords <= 0 {
		o.MinWords = DefaultMinWords
	}
	if o.MaxWords <= 0 {
		o.MaxWords = DefaultMaxWords
	}
	return o
}

// Extract returns up to eight ranked phrases of one to three words.
func Extract(text string) []string {
	return ExtractWith(text, Options{})
}

// ExtractWith returns the ranked phrases of text, most salient first.
func ExtractWith(text string, opts Options) []string {
	if strings.TrimSpace(text) == "" {
		return []string{NoKeywordsFound}
	}
	opts = opts.withDefaults()

	ranking := Rank(text, opts.MinWords, opts.MaxWords)
	if ranking.Status != RankOK {
		return FallbackWords(text, opts.MaxPhrases)
	}

	phrases := ranking.Phrases
	if len(phrases) > opts.MaxPhrases {
		phrases = phrases[:opts.MaxPhrases]
	}

	result := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		if strings.TrimSpace(phrase) != "" {
			result = append(result, phrase)
		}
	}
	return result
}
