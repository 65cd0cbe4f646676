package analyze

import (
	"time"

	"github.com/dtnitsch/seo-copywriter/internal/common"
	"github.com/dtnitsch/seo-copywriter/pkg/watcher"
	"github.com/urfave/cli/v2"
)

func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "analyze",
			Usage: "Extract keywords, a meta description, and readability from a description",
			Description: `Reads one description from --text, --file, --html, --url, or stdin.
HTML input is reduced to its main content before analysis.`,
			Flags: append([]cli.Flag{
				&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "Description text"},
				&cli.StringFlag{Name: "file", Usage: "Plain text file"},
				&cli.StringFlag{Name: "html", Usage: "Saved product page"},
				&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "Product page URL to fetch"},
				&cli.StringFlag{Name: "cache-dir", Usage: "Keep fetched pages here and reuse them"},
				&cli.DurationFlag{Name: "max-age", Value: 24 * time.Hour, Usage: "How long a kept page stays fresh"},
				&cli.BoolFlag{Name: "force-fetch", Usage: "Ignore kept pages and fetch again"},
				common.FormatFlag(common.FormatJSON),
				&cli.BoolFlag{Name: "save", Usage: "Store the report in the history database"},
				&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Write the report to a file"},
			}, common.AnalysisFlags()...),
			Action: AnalyzeAction,
		},
		{
			Name:  "batch",
			Usage: "Analyze many files and write a summary manifest",
			Flags: append([]cli.Flag{
				&cli.StringSliceFlag{Name: "from", Required: true, Usage: "Glob patterns (** allowed), repeatable"},
				&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Concurrent workers (default from config)"},
				&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Write the manifest to a file"},
				&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: common.FormatJSON, Usage: "Manifest format (json, yaml)"},
			}, common.AnalysisFlags()...),
			Action: BatchAction,
		},
		{
			Name:  "watch",
			Usage: "Re-analyze a file every time it is saved",
			Flags: append([]cli.Flag{
				&cli.StringFlag{Name: "file", Required: true, Usage: "File to watch"},
				common.FormatFlag(common.FormatText),
				&cli.DurationFlag{Name: "debounce", Value: watcher.DefaultDebounce, Usage: "Quiet period before re-analysis"},
			}, common.AnalysisFlags()...),
			Action: WatchAction,
		},
	}
}
