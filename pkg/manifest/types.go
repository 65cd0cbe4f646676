package manifest

// BatchManifest is the summary of one batch run. It lists every input file,
// its status, and the keywords shared across the batch.
type BatchManifest struct {
	GeneratedAt       string        `json:"generated_at" yaml:"generated_at"`
	TotalFiles        int           `json:"total_files" yaml:"total_files"`
	Successful        int           `json:"successful" yaml:"successful"`
	Failed            int           `json:"failed" yaml:"failed"`
	AggregateKeywords []string      `json:"aggregate_keywords" yaml:"aggregate_keywords"`
	AggregatePhrases  []string      `json:"aggregate_phrases" yaml:"aggregate_phrases"`
	Results           []FileSummary `json:"results" yaml:"results"`
}

// FileSummary represents summary information for a single input file.
type FileSummary struct {
	Path             string   `json:"path" yaml:"path"`
	Status           string   `json:"status" yaml:"status"` // "success" or "error"
	ErrorMessage     string   `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	SizeBytes        int64    `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	WordCount        int      `json:"word_count,omitempty" yaml:"word_count,omitempty"`
	Readability      float64  `json:"readability,omitempty" yaml:"readability,omitempty"`
	ReadabilityLevel string   `json:"readability_level,omitempty" yaml:"readability_level,omitempty"`
	MetaDescription  string   `json:"meta_description,omitempty" yaml:"meta_description,omitempty"`
	Keywords         []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}
