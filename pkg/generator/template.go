package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtnitsch/seo-copywriter/models"
)

const (
	defaultProductType = "product"
	defaultFeatures    = "excellent performance and premium quality"
)

// Template builds a fixed marketing paragraph from the product fields alone.
// It never calls out and only fails on invalid input.
type Template struct{}

func (Template) Generate(ctx context.Context, product models.Product) (string, error) {
	if err := ValidateProduct(product); err != nil {
		return "", err
	}

	name := product.FullName()
	productType := strings.ToLower(strings.TrimSpace(product.Type))
	if productType == "" {
		productType = defaultProductType
	}

	return fmt.Sprintf(
		"Introducing the %s, a premium %s designed for exceptional performance. "+
			"This product features %s. Built with superior craftsmanship, it offers "+
			"excellent value, durability, and innovation. Perfect for everyday use, the %s "+
			"delivers outstanding results. Experience the difference today - upgrade to quality you can trust!",
		name, productType, joinFeatures(product.FeatureList()), name,
	), nil
}

// joinFeatures renders a list as "a, b and c".
func joinFeatures(features []string) string {
	switch len(features) {
	case 0:
		return defaultFeatures
	case 1:
		return features[0]
	default:
		return strings.Join(features[:len(features)-1], ", ") + " and " + features[len(features)-1]
	}
}
