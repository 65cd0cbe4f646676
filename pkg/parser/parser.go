package parser

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/go-shiori/go-readability"
)

// contentSelector lists the tags that carry product copy.
const contentSelector = "h1,h2,h3,h4,p,li"

type Parser struct{}

// ParseProductPage uses go-readability to isolate the main content of a
// product page and goquery to collect its text blocks. The page's own title
// and meta description are read from the raw HTML.
func (p *Parser) ParseProductPage(rawURL, html string) (*models.ProductPage, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	rawDoc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	page := &models.ProductPage{
		URL:          rawURL,
		Title:        normalizeText(rawDoc.Find("head title").First().Text()),
		ExistingMeta: normalizeText(rawDoc.Find(`meta[name="description"]`).AttrOr("content", "")),
	}

	rp := readability.NewParser()
	article, err := rp.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract main content: %w", err)
	}
	if page.Title == "" {
		page.Title = normalizeText(article.Title)
	}

	// Now, use goquery on the *clean* HTML content provided by readability
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse readable content: %w", err)
	}
	page.Content = collectBlocks(doc)

	// Short product pages sometimes lose everything to readability's
	// boilerplate filter; fall back to the raw body.
	if len(page.Content) == 0 {
		page.Content = collectBlocks(rawDoc.Find("body"))
	}

	return page, nil
}

type finder interface {
	Find(selector string) *goquery.Selection
}

func collectBlocks(root finder) []models.ContentBlock {
	var content []models.ContentBlock
	root.Find(contentSelector).Each(func(i int, s *goquery.Selection) {
		// Skip containers whose text is already covered by nested blocks
		if s.Find(contentSelector).Length() > 0 {
			return
		}
		if text := normalizeText(s.Text()); text != "" {
			content = append(content, models.ContentBlock{
				Type: goquery.NodeName(s),
				Text: text,
			})
		}
	})
	return content
}

// normalizeText cleans up a string by collapsing runs of spaces and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), " ")
		if line != "" {
			// Write the line and a single space for separation
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	// Return the result, trimming the final space
	return strings.TrimSpace(b.String())
}
