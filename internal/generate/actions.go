package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtnitsch/seo-copywriter/internal/analyze"
	"github.com/dtnitsch/seo-copywriter/internal/common"
	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/dtnitsch/seo-copywriter/pkg/generator"
	"github.com/dtnitsch/seo-copywriter/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func GenerateAction(c *cli.Context) error {
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

	product, err := productFromFlags(c)
	if err != nil {
		return err
	}
	if err := generator.ValidateProduct(product); err != nil {
		return err
	}

	gen := generator.WithFallback(draftGenerator(c.String("draft")), generator.Template{}, logger)
	text, err := gen.Generate(c.Context, product)
	if err != nil {
		return fmt.Errorf("failed to generate description: %w", err)
	}
	logger.Info("Generated description", "product", product.FullName(), "chars", len(text))

	report, err := rt.Analyzer().Analyze(c.Context, text, models.SourceGenerated)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	report.ProductName = product.FullName()

	if c.Bool("save") {
		if err := analyze.SaveReport(rt, report); err != nil {
			return err
		}
	}

	return analyze.WriteReport(c, report, format, rt.Config.Analysis.TopN, logger)
}

// productFromFlags reads --product when given, then lets the individual
// flags override its fields.
func productFromFlags(c *cli.Context) (models.Product, error) {
	var product models.Product

	if path := c.String("product"); path != "" {
		data, err := (&storage.Storage{}).ReadFile(path)
		if err != nil {
			return product, err
		}
		if err := yaml.Unmarshal(data, &product); err != nil {
			return product, fmt.Errorf("failed to parse product file %s: %w", path, err)
		}
	}

	if c.IsSet("name") {
		product.Name = c.String("name")
	}
	if c.IsSet("brand") {
		product.Brand = c.String("brand")
	}
	if c.IsSet("features") {
		product.Features = c.String("features")
	}
	if c.IsSet("type") {
		product.Type = c.String("type")
	}
	return product, nil
}

// draftGenerator returns a hand-written draft as is. A blank draft defers
// to the template.
func draftGenerator(draft string) generator.Generator {
	return generator.GeneratorFunc(func(ctx context.Context, _ models.Product) (string, error) {
		return strings.TrimSpace(draft), nil
	})
}

func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Write a product description from its features and analyze it",
			Flags: append([]cli.Flag{
				&cli.StringFlag{Name: "product", Usage: "YAML file with name, brand, features, type"},
				&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Product name"},
				&cli.StringFlag{Name: "brand", Aliases: []string{"b"}, Usage: "Brand"},
				&cli.StringFlag{Name: "features", Usage: "Comma separated features"},
				&cli.StringFlag{Name: "type", Usage: "Product type (default: product)"},
				&cli.StringFlag{Name: "draft", Usage: "Use this draft instead of the template when not blank"},
				common.FormatFlag(common.FormatJSON),
				&cli.BoolFlag{Name: "save", Usage: "Store the report in the history database"},
				&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Write the report to a file"},
			}, common.AnalysisFlags()...),
			Action: GenerateAction,
		},
	}
}
