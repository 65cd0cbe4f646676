package common

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Removes whitespace, trailing punctuation, markdown artifacts, and encodes spaces.
func SanitizeURL(rawURL string) string {
	// Trim all whitespace from edges
	cleaned := strings.TrimSpace(rawURL)

	// Extract URL from markdown link format: [text](url) -> url
	// Example: "[click here](https://example.com)" -> "https://example.com"
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	// Remove common trailing punctuation from copy-paste errors
	// Example: "https://example.com," -> "https://example.com"
	trailingChars := []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	// Remove leading markdown/formatting artifacts
	// Example: "(https://example.com)" -> "https://example.com"
	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	// Trim again after removing punctuation (in case there was whitespace before punctuation)
	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}

var (
	markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)
	urlPattern          = regexp.MustCompile(`^https?://[a-zA-Z0-9][-a-zA-Z0-9.]*[a-zA-Z0-9](:[0-9]+)?(/[^\s]*)?$`)
)

// ValidateURL sanitizes rawURL and checks that it is an absolute http(s) URL.
func ValidateURL(rawURL string) (string, error) {
	cleaned := SanitizeURL(rawURL)
	if cleaned == "" {
		return "", fmt.Errorf("empty URL")
	}

	// Literal spaces must be pre-encoded as %20
	if strings.Contains(cleaned, " ") || !urlPattern.MatchString(cleaned) {
		return "", fmt.Errorf("malformed URL: %s", rawURL)
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("malformed URL %s: %w", rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" || strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
		return "", fmt.Errorf("malformed URL host: %s", rawURL)
	}

	return cleaned, nil
}
