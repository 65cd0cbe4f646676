package models

import "strings"

// Product is the input handed to a description generator.
type Product struct {
	Name     string `json:"name" yaml:"name"`
	Brand    string `json:"brand,omitempty" yaml:"brand,omitempty"`
	Features string `json:"features" yaml:"features"` // comma separated
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
}

// FullName prefixes the brand when one is set.
func (p Product) FullName() string {
	name := strings.TrimSpace(p.Name)
	if brand := strings.TrimSpace(p.Brand); brand != "" {
		return brand + " " + name
	}
	return name
}

// FeatureList splits Features on commas, dropping blank entries.
func (p Product) FeatureList() []string {
	var features []string
	for _, f := range strings.Split(p.Features, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return features
}
