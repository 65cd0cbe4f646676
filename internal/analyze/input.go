package analyze

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/seo-copywriter/internal/common"
	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/dtnitsch/seo-copywriter/pkg/artifact_manager"
	"github.com/dtnitsch/seo-copywriter/pkg/fetcher"
	"github.com/dtnitsch/seo-copywriter/pkg/parser"
	"github.com/dtnitsch/seo-copywriter/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Input is a description ready for analysis.
type Input struct {
	Text        string
	Source      models.Source
	ProductName string
	Origin      string // file path or URL, empty for inline text
}

// readInput picks the first input flag that is set. With none set it reads
// the command's standard input.
func readInput(ctx context.Context, c *cli.Context, logger *slog.Logger) (*Input, error) {
	s := &storage.Storage{}

	switch {
	case c.IsSet("text"):
		return &Input{Text: c.String("text"), Source: models.SourceText}, nil

	case c.IsSet("file"):
		path := c.String("file")
		data, err := s.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return &Input{Text: string(data), Source: models.SourceFile, Origin: path}, nil

	case c.IsSet("html"):
		path := c.String("html")
		data, err := s.ReadFile(path)
		if err != nil {
			return nil, err
		}
		in, _, err := fromHTML(path, "", data, models.SourceHTML, logger)
		return in, err

	case c.IsSet("url"):
		rawURL, err := common.ValidateURL(c.String("url"))
		if err != nil {
			return nil, err
		}
		data, manager, err := fetchPage(ctx, c, rawURL, logger)
		if err != nil {
			return nil, err
		}
		in, page, err := fromHTML(rawURL, rawURL, data, models.SourceURL, logger)
		if err != nil {
			return nil, err
		}
		if manager != nil {
			if path, err := manager.SetParsedPage(rawURL, page); err != nil {
				logger.Warn("Failed to store extracted page", "url", rawURL, "error", err)
			} else {
				logger.Debug("Stored extracted page", "path", path)
			}
		}
		return in, nil

	default:
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return &Input{Text: string(data), Source: models.SourceStdin}, nil
	}
}

func fromHTML(origin, pageURL string, data []byte, source models.Source, logger *slog.Logger) (*Input, *models.ProductPage, error) {
	if pageURL == "" {
		if abs, err := filepath.Abs(origin); err == nil {
			pageURL = (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
		}
	}

	page, err := (&parser.Parser{}).ParseProductPage(pageURL, string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", origin, err)
	}

	logger.Debug("Extracted product page",
		"origin", origin,
		"title", page.Title,
		"blocks", len(page.Content),
		"has_meta", page.ExistingMeta != "")

	return &Input{
		Text:        page.ToPlainText(),
		Source:      source,
		ProductName: strings.TrimSpace(page.Title),
		Origin:      origin,
	}, page, nil
}

// fetchPage downloads rawURL. With --cache-dir set, a fresh stored copy is
// used instead and new downloads are stored.
func fetchPage(ctx context.Context, c *cli.Context, rawURL string, logger *slog.Logger) ([]byte, *artifact_manager.Manager, error) {
	var manager *artifact_manager.Manager
	if dir := c.String("cache-dir"); dir != "" {
		m, err := artifact_manager.NewManager(dir, c.Duration("max-age"))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize artifact manager: %w", err)
		}
		manager = m
	}

	if manager != nil && !c.Bool("force-fetch") {
		data, fresh, err := manager.GetRawHTML(rawURL)
		if err != nil {
			logger.Warn("Failed to read stored page", "url", rawURL, "error", err)
		} else if fresh {
			logger.Info("Using stored page", "url", rawURL, "max_age", manager.MaxAge())
			return data, manager, nil
		}
	}

	logger.Info("Fetching product page", "url", rawURL)
	data, err := fetcher.NewFetcher().GetHTMLBytes(ctx, rawURL)
	if err != nil {
		return nil, nil, err
	}

	if manager != nil {
		if err := manager.SetRawHTML(rawURL, data); err != nil {
			logger.Warn("Failed to store page", "url", rawURL, "error", err)
		}
	}
	return data, manager, nil
}
