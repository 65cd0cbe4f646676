// Package seo runs the keyword, meta description and readability analyzers
// over a description and assembles the report.
package seo

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/dtnitsch/seo-copywriter/pkg/caching"
	"github.com/dtnitsch/seo-copywriter/pkg/flesch"
	"github.com/dtnitsch/seo-copywriter/pkg/keywords"
	"github.com/dtnitsch/seo-copywriter/pkg/logging"
	"github.com/dtnitsch/seo-copywriter/pkg/meta"
)

// LanguageDetector guesses the ISO-639-1 language of text.
type LanguageDetector interface {
	Detect(text string) (string, float64)
}

type Option func(*Analyzer)

func WithLanguageDetector(d LanguageDetector) Option {
	return func(a *Analyzer) { a.detector = d }
}

func WithCache(c *caching.Cache) Option {
	return func(a *Analyzer) { a.cache = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// Analyzer is safe for concurrent use.
type Analyzer struct {
	cfg      models.Config
	detector LanguageDetector
	cache    *caching.Cache
	logger   *slog.Logger
	now      func() time.Time
}

func NewAnalyzer(cfg models.Config, opts ...Option) *Analyzer {
	a := &Analyzer{
		cfg:    cfg,
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores text. The three analyzers run concurrently; none of them
// fails, so the only error is a context that is already done.
func (a *Analyzer) Analyze(ctx context.Context, text string, source models.Source) (*models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	limits := a.cfg.Analysis
	key := caching.Key(text, fmt.Sprintf("%+v", limits), fmt.Sprint(a.cfg.DetectLanguage))
	if a.cache != nil {
		if report, ok := a.cache.Get(key); ok {
			a.logger.Debug("analysis cache hit", "hash", report.ContentHash)
			report.Source = source
			return report, nil
		}
	}

	report := &models.Report{
		ContentHash: caching.Key(text),
		Source:      source,
		Description: text,
		CharCount:   utf8.RuneCountInString(text),
		CreatedAt:   a.now().UTC(),
	}

	var (
		wg    sync.WaitGroup
		stats flesch.TextStats
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		report.Keywords = keywords.ExtractWith(text, keywords.Options{
			MaxPhrases: limits.MaxPhrases,
			MinWords:   limits.MinWords,
			MaxWords:   limits.MaxWords,
		})
	}()
	go func() {
		defer wg.Done()
		report.MetaDescription = meta.BuildWith(text, limits.MaxLength)
	}()
	go func() {
		defer wg.Done()
		if text == "" {
			report.Readability = flesch.DefaultScore
			return
		}
		stats = flesch.Stats(text)
		report.Readability = flesch.ScoreStats(stats)
	}()
	wg.Wait()

	report.ReadabilityLevel = flesch.Level(report.Readability)
	report.WordCount = stats.Words
	report.SentenceCount = stats.Sentences

	if a.cfg.DetectLanguage && a.detector != nil {
		report.Language, report.LanguageConfidence = a.detector.Detect(text)
		if report.Language != "" && report.Language != "en" {
			a.logger.Warn("readability constants assume English text",
				"language", report.Language, "confidence", report.LanguageConfidence)
		}
	}

	if a.cache != nil {
		a.cache.Set(key, report)
	}

	a.logger.Debug("analyzed description",
		"hash", report.ContentHash,
		"keywords", len(report.Keywords),
		"readability", report.Readability,
	)
	return report, nil
}
