package analyze

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtnitsch/seo-copywriter/internal/common"
	"github.com/dtnitsch/seo-copywriter/pkg/storage"
	"github.com/dtnitsch/seo-copywriter/pkg/watcher"
	"github.com/urfave/cli/v2"
)

func WatchAction(c *cli.Context) error {
	format := c.String("format")
	if err := common.ValidateFormat(format); err != nil {
		return err
	}
	path := c.String("file")
	if path == "" {
		return fmt.Errorf("no file provided with --file flag")
	}

	rt, err := common.NewRuntime(c)
	if err != nil {
		return err
	}
	defer rt.Close()
	logger := rt.Logger

	fw, err := watcher.New(path, c.Duration("debounce"), logger)
	if err != nil {
		return err
	}

	analyzer := rt.Analyzer()
	s := &storage.Storage{}
	topN := rt.Config.Analysis.TopN

	analyzeAndPrint := func(p string) {
		report, _, err := analyzeFile(c.Context, analyzer, s, p, logger)
		if err != nil {
			logger.Error("Re-analysis failed", "path", p, "error", err)
			return
		}
		if err := common.RenderReport(c.App.Writer, report, format, topN, true); err != nil {
			logger.Error("Failed to render report", "error", err)
		}
	}

	analyzeAndPrint(fw.Path())
	logger.Info("Watching for changes", "path", fw.Path())

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return fw.Run(ctx, analyzeAndPrint)
}
