package models

import "time"

// Source records where an analyzed description came from.
type Source string

const (
	SourceText      Source = "text"
	SourceFile      Source = "file"
	SourceStdin     Source = "stdin"
	SourceHTML      Source = "html"
	SourceURL       Source = "url"
	SourceGenerated Source = "generated"
)

// Report is the result of one analysis pass over a description.
type Report struct {
	ID          int64  `json:"id,omitempty" yaml:"id,omitempty"`
	ContentHash string `json:"content_hash" yaml:"content_hash"`
	ProductName string `json:"product_name,omitempty" yaml:"product_name,omitempty"`
	Source      Source `json:"source" yaml:"source"`
	Description string `json:"description" yaml:"description"`

	// Keywords are ranked most important first.
	Keywords        []string `json:"keywords" yaml:"keywords"`
	MetaDescription string   `json:"meta_description" yaml:"meta_description"`

	Readability      float64 `json:"readability" yaml:"readability"` // 0-100, higher is easier
	ReadabilityLevel string  `json:"readability_level" yaml:"readability_level"`

	Language           string  `json:"language,omitempty" yaml:"language,omitempty"` // ISO-639-1
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`

	WordCount     int `json:"word_count" yaml:"word_count"`
	CharCount     int `json:"char_count" yaml:"char_count"`
	SentenceCount int `json:"sentence_count" yaml:"sentence_count"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// TopKeywords returns at most n keywords, keeping their rank order.
func (r *Report) TopKeywords(n int) []string {
	if n < 0 || n >= len(r.Keywords) {
		return r.Keywords
	}
	return r.Keywords[:n]
}
