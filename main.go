package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/seo-copywriter/internal/analyze"
	"github.com/dtnitsch/seo-copywriter/internal/common"
	"github.com/dtnitsch/seo-copywriter/internal/generate"
	"github.com/dtnitsch/seo-copywriter/internal/history"
	"github.com/dtnitsch/seo-copywriter/pkg/help"
	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var commands []*cli.Command
	commands = append(commands, analyze.Commands()...)
	commands = append(commands, generate.Commands()...)
	commands = append(commands, history.Commands()...)
	commands = append(commands,
		&cli.Command{
			Name:      "schema",
			Usage:     "Print the JSON schema of a report or of the config file",
			ArgsUsage: "[report|config]",
			Action: func(c *cli.Context) error {
				data, err := common.Schema(c.Args().First())
				if err != nil {
					return err
				}
				_, err = c.App.Writer.Write(data)
				return err
			},
		},
		&cli.Command{
			Name:  "quickstart",
			Usage: "Print a quick-start guide",
			Action: func(c *cli.Context) error {
				_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
				return err
			},
		},
	)

	return &cli.App{
		Name:     "seo-copywriter",
		Usage:    "Keyword, meta description, and readability analysis for product copy",
		Version:  version,
		Flags:    common.GlobalFlags(),
		Commands: commands,
	}
}
