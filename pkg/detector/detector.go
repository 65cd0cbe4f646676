package detector

import (
	"strings"
	"sync"

	"github.com/dtnitsch/seo-copywriter/pkg/analytics"
	"github.com/pemistahl/lingua-go"
)

// minWords is the shortest text worth running detection on.
const minWords = 3

// supported are the storefront languages we expect copy in. Restricting the
// set keeps the detector small and its answers sharper.
var supported = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

// LanguageDetector guesses the language of description text. It is safe for
// concurrent use; the underlying models are built on first use.
type LanguageDetector struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

func NewLanguageDetector() *LanguageDetector {
	return &LanguageDetector{}
}

func (d *LanguageDetector) build() {
	d.once.Do(func() {
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(supported...).
			Build()
	})
}

// Detect returns the lowercase ISO-639-1 code of the most likely language
// and its confidence in [0, 1]. The code is empty when text is too short or
// no language is reliable.
func (d *LanguageDetector) Detect(text string) (string, float64) {
	if len(analytics.Words(text)) < minWords {
		return "", 0
	}

	d.build()
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", 0
	}

	confidence := d.detector.ComputeLanguageConfidence(text, language)
	return strings.ToLower(language.IsoCode639_1().String()), confidence
}
