package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/dtnitsch/seo-copywriter/pkg/mapreduce"
	"github.com/dtnitsch/seo-copywriter/pkg/storage"
	"gopkg.in/yaml.v3"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	aggregateLimit = 25
)

// FileResult is the outcome of analyzing one batch input.
type FileResult struct {
	Path          string
	Report        *models.Report
	Error         error
	WordCounts    map[string]int
	FileSizeBytes int64 // cached so the summary does not stat the file again
}

// GenerateSummary builds a manifest from all results. Word counts and keyword
// phrases are aggregated across the successful files.
func GenerateSummary(results []FileResult, s *storage.Storage) BatchManifest {
	manifest := BatchManifest{
		GeneratedAt: time.Now().Format(time.RFC3339),
		TotalFiles:  len(results),
		Results:     make([]FileSummary, 0, len(results)),
	}

	var wordCounts, phraseCounts []map[string]int

	for _, result := range results {
		summary := FileSummary{Path: result.Path}

		if result.Error != nil || result.Report == nil {
			manifest.Failed++
			summary.Status = StatusError
			if result.Error != nil {
				summary.ErrorMessage = result.Error.Error()
			}
			manifest.Results = append(manifest.Results, summary)
			continue
		}

		manifest.Successful++
		summary.Status = StatusSuccess
		summary.WordCount = result.Report.WordCount
		summary.Readability = result.Report.Readability
		summary.ReadabilityLevel = result.Report.ReadabilityLevel
		summary.MetaDescription = result.Report.MetaDescription
		summary.Keywords = result.Report.Keywords

		summary.SizeBytes = result.FileSizeBytes
		if summary.SizeBytes == 0 && s != nil {
			if stats, err := s.GetFileStats(result.Path); err == nil {
				summary.SizeBytes = stats.SizeBytes
			}
		}

		if result.WordCounts != nil {
			wordCounts = append(wordCounts, result.WordCounts)
		}
		phraseCounts = append(phraseCounts, mapreduce.MapPhrases(result.Report.Keywords))

		manifest.Results = append(manifest.Results, summary)
	}

	manifest.AggregateKeywords = mapreduce.TopKeywords(mapreduce.Reduce(wordCounts), aggregateLimit)
	manifest.AggregatePhrases = mapreduce.TopKeywords(mapreduce.Reduce(phraseCounts), aggregateLimit)

	return manifest
}

// Marshal encodes the manifest as "json" or "yaml".
func Marshal(m BatchManifest, format string) ([]byte, error) {
	switch format {
	case "", "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error marshalling manifest: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("error marshalling manifest: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
}

// Save writes the encoded manifest to path and returns the path.
func Save(m BatchManifest, path, format string, s *storage.Storage) (string, error) {
	if path == "" {
		path = fmt.Sprintf("results/summary-%s.%s", time.Now().Format("2006-01-02"), extension(format))
	}

	data, err := Marshal(m, format)
	if err != nil {
		return "", err
	}

	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}
	return path, nil
}

func extension(format string) string {
	if format == "yaml" {
		return "yaml"
	}
	return "json"
}
