package history

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// analysisIDArg parses the first positional argument as an analysis ID.
func analysisIDArg(c *cli.Context) (int64, error) {
	if c.NArg() == 0 {
		return 0, fmt.Errorf("analysis ID required. Run 'seo-copywriter history list' to see IDs")
	}

	var id int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid analysis ID: %s", c.Args().First())
	}
	return id, nil
}
