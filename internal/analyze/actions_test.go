package analyze

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dtnitsch/seo-copywriter/internal/common"
	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/dtnitsch/seo-copywriter/pkg/db"
	"github.com/dtnitsch/seo-copywriter/pkg/manifest"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const headphones = "Wireless headphones with noise cancellation. Noise cancellation blocks sound. Long battery life."

const pageHTML = `<html><head><title>Aurora Headphones</title></head><body>
<article>
  <h1>Aurora Headphones</h1>
  <p>Wireless headphones with noise cancellation and deep bass for long flights across the ocean.</p>
  <p>Long battery life keeps the music playing through a full week of commuting to the office.</p>
</article></body></html>`

type testApp struct {
	app *cli.App
	out *bytes.Buffer
	dir string
}

func newTestApp(t *testing.T, stdin string) *testApp {
	t.Helper()
	out := &bytes.Buffer{}
	app := &cli.App{
		Name:           "seo-copywriter",
		Flags:          common.GlobalFlags(),
		Commands:       Commands(),
		Reader:         strings.NewReader(stdin),
		Writer:         out,
		ErrWriter:      &bytes.Buffer{},
		ExitErrHandler: func(*cli.Context, error) {},
	}
	return &testApp{app: app, out: out, dir: t.TempDir()}
}

func (ta *testApp) run(args ...string) error {
	base := []string{"seo-copywriter",
		"--config", filepath.Join(ta.dir, "missing.yaml"),
		"--db", filepath.Join(ta.dir, "history.db"),
		"--quiet",
	}
	return ta.app.Run(append(base, args...))
}

func decodeReport(t *testing.T, data []byte) models.Report {
	t.Helper()
	var r models.Report
	require.NoError(t, json.Unmarshal(data, &r))
	return r
}

func TestAnalyzeAction_Text(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.run("analyze", "--no-language", "--text", headphones))

	r := decodeReport(t, ta.out.Bytes())
	assert.Equal(t, models.SourceText, r.Source)
	assert.Equal(t, []string{"long battery life", "wireless headphones", "noise cancellation"}, r.Keywords)
	assert.Equal(t, headphones, r.MetaDescription)
	assert.Equal(t, 3, r.SentenceCount)
	assert.Empty(t, r.Language)
}

func TestAnalyzeAction_Stdin(t *testing.T) {
	ta := newTestApp(t, "Bass boost. Bass boost. Deep bass.")

	require.NoError(t, ta.run("analyze", "--no-language", "--format", "yaml"))

	var r models.Report
	require.NoError(t, yaml.Unmarshal(ta.out.Bytes(), &r))
	assert.Equal(t, models.SourceStdin, r.Source)
	assert.Equal(t, []string{"deep bass", "bass boost"}, r.Keywords)
}

func TestAnalyzeAction_BlankStdin(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.run("analyze", "--no-language"))

	r := decodeReport(t, ta.out.Bytes())
	assert.Equal(t, []string{"No keywords found"}, r.Keywords)
	assert.Equal(t, 85.0, r.Readability)
}

func TestAnalyzeAction_HTMLFile(t *testing.T) {
	ta := newTestApp(t, "")
	path := filepath.Join(ta.dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte(pageHTML), 0644))

	require.NoError(t, ta.run("analyze", "--no-language", "--html", path))

	r := decodeReport(t, ta.out.Bytes())
	assert.Equal(t, models.SourceHTML, r.Source)
	assert.Equal(t, "Aurora Headphones", r.ProductName)
	assert.Contains(t, r.Description, "Long battery life keeps the music playing")
}

func TestAnalyzeAction_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(pageHTML))
	}))
	defer srv.Close()

	ta := newTestApp(t, "")
	require.NoError(t, ta.run("analyze", "--no-language", "--url", srv.URL+"/aurora"))

	r := decodeReport(t, ta.out.Bytes())
	assert.Equal(t, models.SourceURL, r.Source)
	assert.Equal(t, "Aurora Headphones", r.ProductName)
}

func TestAnalyzeAction_URLReusesStoredPage(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(pageHTML))
	}))
	defer srv.Close()

	cacheDir := filepath.Join(t.TempDir(), "pages")
	for i := 0; i < 2; i++ {
		ta := newTestApp(t, "")
		require.NoError(t, ta.run("analyze", "--no-language", "--url", srv.URL+"/aurora", "--cache-dir", cacheDir))
	}
	assert.Equal(t, int32(1), hits.Load())

	ta := newTestApp(t, "")
	require.NoError(t, ta.run("analyze", "--no-language", "--url", srv.URL+"/aurora", "--cache-dir", cacheDir, "--force-fetch"))
	assert.Equal(t, int32(2), hits.Load())

	parsed, err := filepath.Glob(filepath.Join(cacheDir, "pages", "*.yaml"))
	require.NoError(t, err)
	assert.Len(t, parsed, 1)
}

func TestAnalyzeAction_SaveAndOut(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	ta := newTestApp(t, "")
	out := filepath.Join(ta.dir, "reports", "report.txt")

	require.NoError(t, ta.run("analyze", "--no-language", "--text", headphones, "--save", "--format", "text", "--out", out))
	assert.Empty(t, ta.out.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "long battery life")
	assert.NotContains(t, string(data), "\x1b[")
	assert.False(t, color.NoColor)

	database, err := db.Open(filepath.Join(ta.dir, "history.db"))
	require.NoError(t, err)
	defer database.Close()

	reports, err := database.ListReports(0)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, headphones, reports[0].Description)
}

func TestAnalyzeAction_BadFormat(t *testing.T) {
	ta := newTestApp(t, "")
	assert.Error(t, ta.run("analyze", "--text", headphones, "--format", "csv"))
}

func TestBatchAction(t *testing.T) {
	ta := newTestApp(t, "")
	src := filepath.Join(ta.dir, "descriptions")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "audio"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte(headphones), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "audio", "b.txt"), []byte("Long battery life. Deep bass."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "audio", "page.html"), []byte(pageHTML), 0644))

	require.NoError(t, ta.run("batch", "--no-language", "--workers", "2", "--from", filepath.Join(src, "**", "*")))

	var m manifest.BatchManifest
	require.NoError(t, json.Unmarshal(ta.out.Bytes(), &m))
	assert.Equal(t, 3, m.TotalFiles)
	assert.Equal(t, 3, m.Successful)
	require.Len(t, m.Results, 3)
	assert.Equal(t, filepath.Join(src, "a.txt"), m.Results[0].Path)
	assert.Contains(t, m.AggregateKeywords, "battery:3")
}

func TestBatchAction_OutPrintsTopKeywords(t *testing.T) {
	ta := newTestApp(t, "")
	src := filepath.Join(ta.dir, "descriptions")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("Battery lasts. Battery charges fast."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "b.txt"), []byte("Long battery life."), 0644))
	out := filepath.Join(ta.dir, "summary.json")

	require.NoError(t, ta.run("batch", "--no-language", "--from", filepath.Join(src, "*.txt"), "--out", out))

	assert.FileExists(t, out)
	printed := ta.out.String()
	assert.Contains(t, printed, "Top keywords across 2 files:\n")
	assert.Contains(t, printed, "1. battery: 3\n")
}

func TestBatchAction_NoMatches(t *testing.T) {
	ta := newTestApp(t, "")
	assert.Error(t, ta.run("batch", "--from", filepath.Join(ta.dir, "*.none")))
}
