package models

import "strings"

// ProductPage represents the readable content of a product web page.
type ProductPage struct {
	URL   string `json:"url" yaml:"url"`
	Title string `json:"title" yaml:"title"`

	// ExistingMeta is the page's current <meta name="description">, if any.
	ExistingMeta string         `json:"existing_meta,omitempty" yaml:"existing_meta,omitempty"`
	Content      []ContentBlock `json:"content" yaml:"content"`
}

// ContentBlock represents a semantic block of text on a page.
type ContentBlock struct {
	Type string `json:"type" yaml:"type"` // e.g., "h1", "h2", "p", "li"
	Text string `json:"text" yaml:"text"`
}

// ToPlainText joins the blocks into description text. Headings and list
// items without closing punctuation get a period so each block reads as its
// own sentence.
func (p *ProductPage) ToPlainText() string {
	var sb strings.Builder

	for _, block := range p.Content {
		text := strings.TrimSpace(block.Text)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(text)

		switch text[len(text)-1] {
		case '.', '!', '?':
		default:
			sb.WriteString(".")
		}
	}

	return sb.String()
}
