package common

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/dtnitsch/seo-copywriter/pkg/caching"
	"github.com/dtnitsch/seo-copywriter/pkg/db"
	"github.com/dtnitsch/seo-copywriter/pkg/detector"
	"github.com/dtnitsch/seo-copywriter/pkg/logging"
	"github.com/dtnitsch/seo-copywriter/pkg/seo"
	"github.com/urfave/cli/v2"
)

// Runtime holds what every command needs: the merged config and a logger.
type Runtime struct {
	Config models.Config
	Logger *slog.Logger

	logCloser io.Closer
}

// NewRuntime loads the config file named by --config and applies global
// flag overrides on top of it.
func NewRuntime(c *cli.Context) (*Runtime, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	ApplyFlags(c, &cfg)

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Quiet:  c.Bool("quiet"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return &Runtime{Config: cfg, Logger: logger, logCloser: closer}, nil
}

// ApplyFlags copies every flag the user set onto cfg. Flags that were not
// set leave the file value in place.
func ApplyFlags(c *cli.Context, cfg *models.Config) {
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("workers") && c.Int("workers") > 0 {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("max-phrases") && c.Int("max-phrases") > 0 {
		cfg.Analysis.MaxPhrases = c.Int("max-phrases")
	}
	if c.IsSet("max-length") && c.Int("max-length") > 0 {
		cfg.Analysis.MaxLength = c.Int("max-length")
	}
	if c.IsSet("no-language") {
		cfg.DetectLanguage = !c.Bool("no-language")
	}
}

// Analyzer builds an analyzer with a result cache and, when enabled, the
// language detector.
func (r *Runtime) Analyzer() *seo.Analyzer {
	opts := []seo.Option{
		seo.WithLogger(r.Logger),
		seo.WithCache(caching.NewCache(r.Config.CacheTTL)),
	}
	if r.Config.DetectLanguage {
		opts = append(opts, seo.WithLanguageDetector(detector.NewLanguageDetector()))
	}
	return seo.NewAnalyzer(r.Config, opts...)
}

// OpenDB opens the history database at the configured path.
func (r *Runtime) OpenDB() (*db.DB, error) {
	database, err := db.Open(r.Config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	r.Logger.Debug("opened history database", "path", database.Path())
	return database, nil
}

func (r *Runtime) Close() error {
	if r.logCloser == nil {
		return nil
	}
	return r.logCloser.Close()
}
