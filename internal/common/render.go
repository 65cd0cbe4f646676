package common

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

type palette struct {
	heading, label, keyword, warn *color.Color
}

// newPalette returns the text styles. Colored styles still honour
// color.NoColor, so output that is not a terminal stays plain.
func newPalette(colored bool) palette {
	p := palette{
		heading: color.New(color.Bold),
		label:   color.New(color.FgCyan),
		keyword: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
	}
	if !colored {
		for _, c := range []*color.Color{p.heading, p.label, p.keyword, p.warn} {
			c.DisableColor()
		}
	}
	return p
}

// ValidateFormat rejects unknown output formats before any work is done.
func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatYAML, FormatText:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json, yaml, or text)", format)
	}
}

// Marshal encodes v as JSON or YAML.
func Marshal(v any, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return data, nil
	case FormatJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("format %q cannot be marshalled", format)
	}
}

// RenderReport writes a report in the requested format. The text format
// highlights the first topN keywords, in colour only when colored is set.
func RenderReport(w io.Writer, r *models.Report, format string, topN int, colored bool) error {
	if format != FormatText {
		data, err := Marshal(r, format)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	p := newPalette(colored)
	if r.ProductName != "" {
		p.heading.Fprintf(w, "%s\n", r.ProductName)
	}
	if r.ID != 0 {
		p.label.Fprint(w, "Analysis:     ")
		fmt.Fprintf(w, "#%d\n", r.ID)
	}
	p.label.Fprint(w, "Source:       ")
	fmt.Fprintf(w, "%s\n", r.Source)

	p.label.Fprint(w, "Readability:  ")
	fmt.Fprintf(w, "%.1f/100 (%s)\n", r.Readability, r.ReadabilityLevel)

	p.label.Fprint(w, "Length:       ")
	fmt.Fprintf(w, "%d words, %d sentences, %d characters\n", r.WordCount, r.SentenceCount, r.CharCount)

	if r.Language != "" {
		p.label.Fprint(w, "Language:     ")
		if r.Language != "en" {
			p.warn.Fprintf(w, "%s (%.0f%%)\n", r.Language, r.LanguageConfidence*100)
		} else {
			fmt.Fprintf(w, "%s (%.0f%%)\n", r.Language, r.LanguageConfidence*100)
		}
	}

	p.label.Fprint(w, "Meta:         ")
	fmt.Fprintf(w, "%s\n", r.MetaDescription)

	p.heading.Fprintln(w, "\nKeywords")
	for i, kw := range r.Keywords {
		if i < topN {
			p.keyword.Fprintf(w, "%2d. %s\n", i+1, kw)
			continue
		}
		fmt.Fprintf(w, "%2d. %s\n", i+1, kw)
	}

	if r.ProductName != "" && r.Description != "" {
		p.heading.Fprintln(w, "\nDescription")
		fmt.Fprintln(w, strings.TrimSpace(r.Description))
	}
	return nil
}
