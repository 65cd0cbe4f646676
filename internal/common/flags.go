package common

import "github.com/urfave/cli/v2"

// GlobalFlags are accepted before any command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "config.yaml",
			Usage: "YAML config file; missing means defaults",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only log errors",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format (json, text)",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Write logs to a rotated file instead of stderr",
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "History database path (default: next to the binary)",
		},
	}
}

// FormatFlag is the --format flag shared by commands that print reports.
func FormatFlag(value string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   value,
		Usage:   "Output format (json, yaml, text)",
	}
}

// AnalysisFlags override the analysis limits for one command.
func AnalysisFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "max-phrases",
			Usage: "Maximum keyword phrases to return",
		},
		&cli.IntFlag{
			Name:  "max-length",
			Usage: "Maximum meta description length in characters",
		},
		&cli.BoolFlag{
			Name:  "no-language",
			Usage: "Skip language detection",
		},
	}
}
