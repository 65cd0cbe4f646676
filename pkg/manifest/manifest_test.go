package manifest

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/dtnitsch/seo-copywriter/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResults() []FileResult {
	return []FileResult{
		{
			Path: "a.txt",
			Report: &models.Report{
				Keywords:         []string{"long battery life", "great sound"},
				WordCount:        5,
				Readability:      72.5,
				ReadabilityLevel: "fairly easy",
			},
			WordCounts:    map[string]int{"battery": 2, "sound": 1},
			FileSizeBytes: 40,
		},
		{
			Path: "b.txt",
			Report: &models.Report{
				Keywords:  []string{"long battery life"},
				WordCount: 3,
			},
			WordCounts:    map[string]int{"battery": 1},
			FileSizeBytes: 20,
		},
		{
			Path:  "c.txt",
			Error: errors.New("permission denied"),
		},
	}
}

func TestGenerateSummary(t *testing.T) {
	m := GenerateSummary(sampleResults(), &storage.Storage{})

	assert.Equal(t, 3, m.TotalFiles)
	assert.Equal(t, 2, m.Successful)
	assert.Equal(t, 1, m.Failed)
	assert.Equal(t, []string{"battery:3", "sound:1"}, m.AggregateKeywords)
	assert.Equal(t, []string{"long battery life:2", "great sound:1"}, m.AggregatePhrases)

	require.Len(t, m.Results, 3)
	assert.Equal(t, StatusSuccess, m.Results[0].Status)
	assert.Equal(t, int64(40), m.Results[0].SizeBytes)
	assert.Equal(t, 72.5, m.Results[0].Readability)
	assert.Equal(t, StatusError, m.Results[2].Status)
	assert.Equal(t, "permission denied", m.Results[2].ErrorMessage)
}

func TestGenerateSummary_Empty(t *testing.T) {
	m := GenerateSummary(nil, nil)

	assert.Zero(t, m.TotalFiles)
	assert.Empty(t, m.AggregateKeywords)
	assert.NotNil(t, m.Results)
}

func TestMarshal(t *testing.T) {
	m := GenerateSummary(sampleResults(), nil)

	data, err := Marshal(m, "json")
	require.NoError(t, err)
	var fromJSON BatchManifest
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, 2, fromJSON.Successful)

	data, err = Marshal(m, "yaml")
	require.NoError(t, err)
	var fromYAML BatchManifest
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, "c.txt", fromYAML.Results[2].Path)

	_, err = Marshal(m, "xml")
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	s := &storage.Storage{}
	path := filepath.Join(t.TempDir(), "out", "manifest.json")

	got, err := Save(GenerateSummary(sampleResults(), s), path, "json", s)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.True(t, s.HasFile(path))
}
