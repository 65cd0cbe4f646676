package analyze

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dtnitsch/seo-copywriter/internal/common"
	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/dtnitsch/seo-copywriter/pkg/db"
	"github.com/dtnitsch/seo-copywriter/pkg/storage"
	"github.com/urfave/cli/v2"
)

func AnalyzeAction(c *cli.Context) error {
	format := c.String("format")
	if err := common.ValidateFormat(format); err != nil {
		return err
	}

	rt, err := common.NewRuntime(c)
	if err != nil {
		return err
	}
	defer rt.Close()
	logger := rt.Logger

	in, err := readInput(c.Context, c, logger)
	if err != nil {
		return err
	}

	report, err := rt.Analyzer().Analyze(c.Context, in.Text, in.Source)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	report.ProductName = in.ProductName
	logger.Info("Analyzed description",
		"source", in.Source,
		"origin", in.Origin,
		"keywords", len(report.Keywords),
		"readability", report.Readability)

	if c.Bool("save") {
		if err := SaveReport(rt, report); err != nil {
			return err
		}
	}

	return WriteReport(c, report, format, rt.Config.Analysis.TopN, logger)
}

// SaveReport stores report in the history database.
func SaveReport(rt *common.Runtime, report *models.Report) error {
	database, err := rt.OpenDB()
	if err != nil {
		return err
	}
	defer database.Close()

	prev, err := database.FindByHash(report.ContentHash)
	switch {
	case err == nil:
		rt.Logger.Info("Identical description analyzed before", "previous_id", prev.ID, "previous_at", prev.CreatedAt)
	case !errors.Is(err, db.ErrNotFound):
		rt.Logger.Warn("Failed to look up earlier analyses", "error", err)
	}

	id, err := database.InsertReport(report)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	rt.Logger.Info("Saved analysis", "id", id, "db", database.Path())
	return nil
}

// WriteReport renders report to --out when set, otherwise to the app writer.
func WriteReport(c *cli.Context, report *models.Report, format string, topN int, logger *slog.Logger) error {
	out := c.String("out")
	if out == "" {
		return common.RenderReport(c.App.Writer, report, format, topN, true)
	}

	var buf bytes.Buffer
	if err := common.RenderReport(&buf, report, format, topN, false); err != nil {
		return err
	}
	if err := (&storage.Storage{}).SaveFile(out, buf.Bytes()); err != nil {
		return err
	}
	logger.Info("Report written", "path", out)
	return nil
}
