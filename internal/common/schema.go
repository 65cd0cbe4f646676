package common

import (
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of a report ("report") or of the config
// file ("config").
func Schema(kind string) ([]byte, error) {
	var (
		r      = &jsonschema.Reflector{ExpandedStruct: true}
		schema *jsonschema.Schema
	)

	switch kind {
	case "", "report":
		schema = r.Reflect(&models.Report{})
		schema.Title = "SEO Analysis Report"
		schema.Description = "Keywords, meta description, and readability of one product description."
	case "config":
		r.AllowAdditionalProperties = true
		r.FieldNameTag = "yaml"
		schema = r.Reflect(&models.Config{})
		schema.Title = "seo-copywriter Configuration"
		schema.Description = "Configuration file schema for seo-copywriter."
	default:
		return nil, fmt.Errorf("unknown schema %q (want report or config)", kind)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
