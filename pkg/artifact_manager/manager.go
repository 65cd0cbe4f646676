package artifact_manager

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dtnitsch/seo-copywriter/models"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseDir = "seo-artifacts"
	RawHTMLDir     = "raw"
	PagesDir       = "pages"
)

// Manager keeps fetched product pages on disk so repeated analyses of the
// same URL skip the network.
type Manager struct {
	baseDir string
	maxAge  time.Duration // zero or negative never expires
}

// NewManager creates a new Artifact Manager instance.
// It ensures the base directory and its subdirectories exist.
func NewManager(baseDir string, maxAge time.Duration) (*Manager, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	for _, dir := range []string{RawHTMLDir, PagesDir} {
		if err := os.MkdirAll(filepath.Join(baseDir, dir), 0750); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %w", dir, err)
		}
	}

	return &Manager{baseDir: baseDir, maxAge: maxAge}, nil
}

// normalizeURL creates a canonical representation of a URL for consistent hashing.
func normalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	if u.Scheme == "http" {
		u.Scheme = "https"
	}
	u.Host = strings.ToLower(u.Host)

	// Sort query parameters alphabetically
	if u.RawQuery != "" {
		params := u.Query()
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sortedQuery := url.Values{}
		for _, k := range keys {
			for _, v := range params[k] {
				sortedQuery.Add(k, v)
			}
		}
		u.RawQuery = sortedQuery.Encode()
	}

	u.Fragment = ""
	return u.String(), nil
}

// getShortHash generates a short, stable hash from a normalized URL.
func getShortHash(normalizedURL string) string {
	hash := sha256.Sum256([]byte(normalizedURL))
	return fmt.Sprintf("%x", hash[:6])
}

var invalidFilenameChar = regexp.MustCompile(`[^a-zA-Z0-9\-_]+`)

// sanitizeSlug creates a filesystem-safe slug from a URL's host and path.
func sanitizeSlug(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		safe := invalidFilenameChar.ReplaceAllString(rawURL, "_")
		return strings.Trim(safe, "_")
	}

	hostPart := strings.ReplaceAll(u.Host, ".", "_")
	hostPart = invalidFilenameChar.ReplaceAllString(hostPart, "_")
	pathPart := invalidFilenameChar.ReplaceAllString(strings.TrimPrefix(u.Path, "/"), "_")
	pathPart = strings.Trim(pathPart, "_")

	if pathPart == "" {
		return hostPart
	}
	return fmt.Sprintf("%s_%s", hostPart, pathPart)
}

// GetArtifactPath constructs a full path for an artifact based on its type.
// Example: seo-artifacts/raw/shop_example_com_headphones-1a2b3c4d5e6f.html
func (m *Manager) GetArtifactPath(artifactDir, rawURL, ext string) (string, error) {
	normalizedURL, err := normalizeURL(rawURL)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s-%s%s", sanitizeSlug(rawURL), getShortHash(normalizedURL), ext)
	return filepath.Join(m.baseDir, artifactDir, filename), nil
}

// GetRawHTML returns the stored page for rawURL. The bool is false when the
// page was never stored or is older than the max age.
func (m *Manager) GetRawHTML(rawURL string) ([]byte, bool, error) {
	filePath, err := m.GetArtifactPath(RawHTMLDir, rawURL, ".html")
	if err != nil {
		return nil, false, err
	}
	return m.readFresh(filePath)
}

// SetRawHTML stores raw HTML.
func (m *Manager) SetRawHTML(rawURL string, data []byte) error {
	filePath, err := m.GetArtifactPath(RawHTMLDir, rawURL, ".html")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write raw HTML: %w", err)
	}
	return nil
}

// SetParsedPage stores the extracted page as YAML and returns its path.
func (m *Manager) SetParsedPage(rawURL string, page *models.ProductPage) (string, error) {
	filePath, err := m.GetArtifactPath(PagesDir, rawURL, ".yaml")
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(page)
	if err != nil {
		return "", fmt.Errorf("failed to marshal page: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write parsed page: %w", err)
	}
	return filePath, nil
}

// MaxAge returns the configured max age for artifacts.
func (m *Manager) MaxAge() time.Duration {
	return m.maxAge
}

func (m *Manager) readFresh(filePath string) ([]byte, bool, error) {
	info, err := os.Stat(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error statting artifact: %w", err)
	}

	if m.maxAge > 0 && time.Since(info.ModTime()) > m.maxAge {
		return nil, false, nil
	}

	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return nil, false, fmt.Errorf("error reading artifact: %w", err)
	}
	return data, true, nil
}
