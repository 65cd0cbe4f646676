package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dtnitsch/seo-copywriter/internal/common"
	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/dtnitsch/seo-copywriter/pkg/analytics"
	"github.com/dtnitsch/seo-copywriter/pkg/manifest"
	"github.com/dtnitsch/seo-copywriter/pkg/mapreduce"
	"github.com/dtnitsch/seo-copywriter/pkg/seo"
	"github.com/dtnitsch/seo-copywriter/pkg/storage"
	"github.com/urfave/cli/v2"
)

const topKeywordsShown = 10

// Job defines a file for a worker to analyze.
type Job struct {
	Index int
	Path  string
}

// Result holds the outcome of a processed job.
type Result struct {
	Index int
	manifest.FileResult
}

func BatchAction(c *cli.Context) error {
	format := c.String("format")
	if format != common.FormatJSON && format != common.FormatYAML {
		return fmt.Errorf("unknown batch format %q (want json or yaml)", format)
	}

	rt, err := common.NewRuntime(c)
	if err != nil {
		return err
	}
	defer rt.Close()
	logger := rt.Logger

	paths, err := expandPatterns(c.StringSlice("from"), logger)
	if err != nil {
		return err
	}

	s := &storage.Storage{}
	results := runBatch(c.Context, logger, rt.Analyzer(), s, paths, rt.Config.Workers)

	summary := manifest.GenerateSummary(results, s)
	logger.Info("Batch complete", "files", summary.TotalFiles, "successful", summary.Successful, "failed", summary.Failed)

	if out := c.String("out"); out != "" {
		path, err := manifest.Save(summary, out, format, s)
		if err != nil {
			return err
		}
		logger.Info("Summary manifest saved", "path", path)

		counts := make([]map[string]int, 0, len(results))
		for _, r := range results {
			if r.WordCounts != nil {
				counts = append(counts, r.WordCounts)
			}
		}
		fmt.Fprintf(c.App.Writer, "Top keywords across %d files:\n", summary.Successful)
		mapreduce.FprintTopKeywords(c.App.Writer, mapreduce.Reduce(counts), topKeywordsShown)
	} else {
		data, err := manifest.Marshal(summary, format)
		if err != nil {
			return err
		}
		if _, err := c.App.Writer.Write(data); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
	}

	if summary.Successful == 0 {
		return fmt.Errorf("all %d files failed", summary.Failed)
	}
	return nil
}

// expandPatterns resolves ** globs and returns each matching file once, sorted.
func expandPatterns(patterns []string, logger *slog.Logger) ([]string, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no input files provided with --from flag")
	}

	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			logger.Warn("error matching glob pattern, skipping", "pattern", pattern, "error", err)
			continue
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no files found matching glob patterns")
	}
	sort.Strings(paths)
	return paths, nil
}

// runBatch analyzes paths on a bounded worker pool. Results keep the order of paths.
func runBatch(ctx context.Context, logger *slog.Logger, analyzer *seo.Analyzer, s *storage.Storage, paths []string, workers int) []manifest.FileResult {
	if workers <= 0 {
		workers = 1
	}
	a := &analytics.Analytics{}

	logger.Info("Starting concurrent analysis phase", "file_count", len(paths), "workers", workers)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(paths))
	results := make(chan Result, len(paths))

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, analyzer, s, a, &wg, jobs, results)
	}

	for i, path := range paths {
		jobs <- Job{Index: i, Path: path}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All analysis workers finished")

	ordered := make([]manifest.FileResult, len(paths))
	for r := range results {
		ordered[r.Index] = r.FileResult
	}
	return ordered
}

// worker analyzes files from the jobs channel and sends results to the
// results channel.
func worker(ctx context.Context, id int, logger *slog.Logger, analyzer *seo.Analyzer, s *storage.Storage, a *analytics.Analytics, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		result := Result{Index: job.Index, FileResult: manifest.FileResult{Path: job.Path}}

		report, in, err := analyzeFile(ctx, analyzer, s, job.Path, logger)
		if err != nil {
			logger.Error("Error analyzing file", "worker_id", id, "path", job.Path, "error", err)
			result.Error = err
			results <- result
			continue
		}

		result.Report = report
		result.WordCounts = mapreduce.Map(in.Text, a)
		if stats, err := s.GetFileStats(job.Path); err == nil {
			result.FileSizeBytes = stats.SizeBytes
		}
		logger.Debug("Analyzed file", "worker_id", id, "path", job.Path, "keywords", len(report.Keywords))
		results <- result
	}
}

// analyzeFile reads one file, extracting the main content first when it is HTML.
func analyzeFile(ctx context.Context, analyzer *seo.Analyzer, s *storage.Storage, path string, logger *slog.Logger) (*models.Report, *Input, error) {
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	in := &Input{Text: string(data), Source: models.SourceFile, Origin: path}
	if isHTML(path) {
		if in, _, err = fromHTML(path, "", data, models.SourceHTML, logger); err != nil {
			return nil, nil, err
		}
	}

	report, err := analyzer.Analyze(ctx, in.Text, in.Source)
	if err != nil {
		return nil, nil, err
	}
	report.ProductName = in.ProductName
	return report, in, nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
