package analytics

import (
	"regexp"
	"strings"
)

type Analytics struct{}

// wordPattern matches runs of letters, digits and underscores in any script.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// commonWords is the English stopword set shared by keyword ranking,
// the keyword fallback and batch word counts. It is read-only after init.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"ain": {}, "all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {},
	"aren": {}, "aren't": {}, "as": {}, "at": {},

	"be": {}, "because": {}, "been": {}, "before": {}, "being": {}, "below": {},
	"between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "couldn": {}, "couldn't": {},

	"d": {}, "did": {}, "didn": {}, "didn't": {}, "do": {}, "does": {},
	"doesn": {}, "doesn't": {}, "doing": {}, "don": {}, "don't": {}, "down": {},
	"during": {},

	"each": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "hadn": {}, "hadn't": {}, "has": {}, "hasn": {}, "hasn't": {},
	"have": {}, "haven": {}, "haven't": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {},
	"how": {},

	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "isn": {}, "isn't": {},
	"it": {}, "it's": {}, "its": {}, "itself": {},

	"just": {},

	"ll": {},

	"m": {}, "ma": {}, "me": {}, "mightn": {}, "mightn't": {}, "more": {},
	"most": {}, "mustn": {}, "mustn't": {}, "my": {}, "myself": {},

	"needn": {}, "needn't": {}, "no": {}, "nor": {}, "not": {}, "now": {},

	"o": {}, "of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {}, "over": {},
	"own": {},

	"re": {},

	"s": {}, "same": {}, "shan": {}, "shan't": {}, "she": {}, "she's": {},
	"should": {}, "should've": {}, "shouldn": {}, "shouldn't": {}, "so": {},
	"some": {}, "such": {},

	"t": {}, "than": {}, "that": {}, "that'll": {}, "the": {}, "their": {},
	"theirs": {}, "them": {}, "themselves": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {}, "to": {},
	"too": {},

	"under": {}, "until": {}, "up": {},

	"ve": {}, "very": {},

	"was": {}, "wasn": {}, "wasn't": {}, "we": {}, "were": {}, "weren": {},
	"weren't": {}, "what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"who": {}, "whom": {}, "why": {}, "will": {}, "with": {}, "won": {},
	"won't": {}, "wouldn": {}, "wouldn't": {},

	"y": {}, "you": {}, "you'd": {}, "you'll": {}, "you're": {}, "you've": {},
	"your": {}, "yours": {}, "yourself": {}, "yourselves": {},
}

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

// Words returns the word tokens of text in order of appearance, case preserved.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

func (a *Analytics) WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)

	for _, word := range Words(strings.ToLower(text)) {
		// Skip if it's a common word or a bare number
		if _, exists := commonWords[word]; exists || isNumeric(word) {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

func isNumeric(word string) bool {
	return strings.Trim(word, "0123456789") == ""
}
