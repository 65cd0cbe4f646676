// Package generator produces product descriptions for analysis.
//
// Remote text-completion backends are left to callers: anything that
// satisfies Generator can be chained in front of the Template fallback with
// WithFallback.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/dtnitsch/seo-copywriter/pkg/logging"
)

var (
	ErrMissingName     = errors.New("product name is required")
	ErrMissingFeatures = errors.New("product features are required")
)

// Generator turns a product into description text.
type Generator interface {
	Generate(ctx context.Context, product models.Product) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, product models.Product) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, product models.Product) (string, error) {
	return f(ctx, product)
}

// ValidateProduct checks the fields every generator needs.
func ValidateProduct(p models.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(p.Features) == "" {
		return ErrMissingFeatures
	}
	return nil
}

type fallbackGenerator struct {
	primary  Generator
	fallback Generator
	logger   *slog.Logger
}

// WithFallback returns a Generator that uses fallback whenever primary fails
// or returns blank text.
func WithFallback(primary, fallback Generator, logger *slog.Logger) Generator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &fallbackGenerator{primary: primary, fallback: fallback, logger: logger}
}

func (g *fallbackGenerator) Generate(ctx context.Context, product models.Product) (string, error) {
	text, err := g.primary.Generate(ctx, product)
	if err == nil && strings.TrimSpace(text) != "" {
		return strings.TrimSpace(text), nil
	}
	if err != nil {
		g.logger.Warn("primary generator failed, using fallback", "product", product.FullName(), "error", err)
	} else {
		g.logger.Warn("primary generator returned no text, using fallback", "product", product.FullName())
	}

	text, err = g.fallback.Generate(ctx, product)
	if err != nil {
		return "", fmt.Errorf("fallback generator failed: %w", err)
	}
	return text, nil
}
