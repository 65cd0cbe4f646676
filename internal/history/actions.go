package history

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtnitsch/seo-copywriter/internal/common"
	dbpkg "github.com/dtnitsch/seo-copywriter/pkg/db"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

var now = time.Now

func ListAction(c *cli.Context) error {
	rt, err := common.NewRuntime(c)
	if err != nil {
		return err
	}
	defer rt.Close()

	database, err := rt.OpenDB()
	if err != nil {
		return err
	}
	defer database.Close()

	reports, err := database.ListReports(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	w := c.App.Writer
	if len(reports) == 0 {
		fmt.Fprintln(w, "No analyses found")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-16s %-10s %-12s %-8s %-30s\n",
		"ID", "Analyzed", "Source", "Readability", "Words", "Top Keyword")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, r := range reports {
		top := ""
		if kw := r.TopKeywords(1); len(kw) > 0 {
			top = kw[0]
		}
		fmt.Fprintf(w, "%-6d %-16s %-10s %-12s %-8s %-30s\n",
			r.ID,
			humanize.RelTime(r.CreatedAt, now(), "ago", "from now"),
			r.Source,
			fmt.Sprintf("%.1f", r.Readability),
			humanize.Comma(int64(r.WordCount)),
			top,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d analyses\n", len(reports))
	fmt.Fprintf(w, "\nTip: Use 'seo-copywriter history show <id>' to see details\n")
	return nil
}

func ShowAction(c *cli.Context) error {
	format := c.String("format")
	if err := common.ValidateFormat(format); err != nil {
		return err
	}

	id, err := analysisIDArg(c)
	if err != nil {
		return err
	}

	rt, err := common.NewRuntime(c)
	if err != nil {
		return err
	}
	defer rt.Close()

	database, err := rt.OpenDB()
	if err != nil {
		return err
	}
	defer database.Close()

	report, err := database.GetReport(id)
	if errors.Is(err, dbpkg.ErrNotFound) {
		return fmt.Errorf("analysis %d not found", id)
	}
	if err != nil {
		return err
	}

	return common.RenderReport(c.App.Writer, report, format, rt.Config.Analysis.TopN, true)
}

func DeleteAction(c *cli.Context) error {
	id, err := analysisIDArg(c)
	if err != nil {
		return err
	}

	rt, err := common.NewRuntime(c)
	if err != nil {
		return err
	}
	defer rt.Close()

	database, err := rt.OpenDB()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.DeleteReport(id); err != nil {
		if errors.Is(err, dbpkg.ErrNotFound) {
			return fmt.Errorf("analysis %d not found", id)
		}
		return err
	}

	rt.Logger.Info("Deleted analysis", "id", id)
	fmt.Fprintf(c.App.Writer, "Deleted analysis %d\n", id)
	return nil
}

func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "history",
			Usage: "Browse saved analyses",
			Subcommands: []*cli.Command{
				{
					Name:   "list",
					Usage:  "List saved analyses, newest first",
					Flags:  []cli.Flag{&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 20, Usage: "Maximum rows (0 for all)"}},
					Action: ListAction,
				},
				{
					Name:      "show",
					Usage:     "Show one saved analysis",
					ArgsUsage: "<id>",
					Flags:     []cli.Flag{common.FormatFlag(common.FormatText)},
					Action:    ShowAction,
				},
				{
					Name:      "delete",
					Usage:     "Delete one saved analysis",
					ArgsUsage: "<id>",
					Action:    DeleteAction,
				},
			},
		},
	}
}
