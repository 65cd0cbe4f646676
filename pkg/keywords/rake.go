package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dtnitsch/seo-copywriter/pkg/analytics"
)

// tokenPattern splits text into word runs, punctuation runs and line breaks.
// Anything that is not a word token ends the current phrase.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s]+|\n`)

var wordToken = regexp.MustCompile(`^[\p{L}\p{N}_]+$`)

// RankStatus reports whether Rank produced a usable ranking.
type RankStatus int

const (
	RankOK RankStatus = iota
	// RankNoCandidates means every token was a stopword or punctuation, or
	// no run fit the phrase length bounds. Plain RAKE returns nothing here;
	// ExtractWith falls back to FallbackWords instead.
	RankNoCandidates
)

func (s RankStatus) String() string {
	switch s {
	case RankOK:
		return "ok"
	case RankNoCandidates:
		return "no_candidates"
	default:
		return "unknown"
	}
}

// Ranking is the outcome of the primary ranking step.
type Ranking struct {
	Phrases []string
	Status  RankStatus
}

type scoredPhrase struct {
	text  string
	score float64
}

// Rank scores every distinct candidate phrase of minWords..maxWords words and
// returns them best first. Equal scores order by phrase text, descending.
func Rank(text string, minWords, maxWords int) Ranking {
	candidates := candidatePhrases(text, minWords, maxWords)
	if len(candidates) == 0 {
		return Ranking{Status: RankNoCandidates}
	}

	// A phrase of n words adds n to the co-occurrence degree of each of its
	// words, which is the row sum of the graph built over the phrase.
	frequency := make(map[string]int)
	degree := make(map[string]int)
	for _, phrase := range candidates {
		for _, word := range phrase {
			frequency[word]++
			degree[word] += len(phrase)
		}
	}

	scored := make([]scoredPhrase, len(candidates))
	for i, phrase := range candidates {
		var score float64
		for _, word := range phrase {
			score += float64(degree[word]) / float64(frequency[word])
		}
		scored[i] = scoredPhrase{text: strings.Join(phrase, " "), score: score}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].text > scored[j].text
	})

	phrases := make([]string, len(scored))
	for i, sp := range scored {
		phrases[i] = sp.text
	}
	return Ranking{Phrases: phrases, Status: RankOK}
}

// candidatePhrases returns the lowercased stopword-free runs of text that fit
// the length bounds, keeping only the first occurrence of each phrase.
func candidatePhrases(text string, minWords, maxWords int) [][]string {
	var (
		phrases [][]string
		current []string
		seen    = make(map[string]struct{})
	)

	flush := func() {
		if len(current) >= minWords && len(current) <= maxWords {
			key := strings.Join(current, " ")
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				phrases = append(phrases, current)
			}
		}
		current = nil
	}

	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if !wordToken.MatchString(token) || analytics.IsStopword(token) {
			flush()
			continue
		}
		current = append(current, token)
	}
	flush()

	return phrases
}
