package history

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/dtnitsch/seo-copywriter/internal/common"
	"github.com/dtnitsch/seo-copywriter/models"
	dbpkg "github.com/dtnitsch/seo-copywriter/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type fixture struct {
	dbPath string
	ids    []int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")

	database, err := dbpkg.Open(dbPath)
	require.NoError(t, err)
	defer database.Close()

	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	f := &fixture{dbPath: dbPath}
	for i, kw := range []string{"long battery life", "deep bass"} {
		id, err := database.InsertReport(&models.Report{
			ContentHash:      "h",
			Source:           models.SourceText,
			Description:      "Deep bass. Long battery life.",
			Keywords:         []string{kw},
			MetaDescription:  "Deep bass. Long battery life.",
			Readability:      80,
			ReadabilityLevel: "easy",
			WordCount:        1200,
			CreatedAt:        created.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
		f.ids = append(f.ids, id)
	}
	return f
}

func (f *fixture) run(args ...string) (string, error) {
	out := &bytes.Buffer{}
	app := &cli.App{
		Name:           "seo-copywriter",
		Flags:          common.GlobalFlags(),
		Commands:       Commands(),
		Writer:         out,
		ErrWriter:      &bytes.Buffer{},
		ExitErrHandler: func(*cli.Context, error) {},
	}
	base := []string{"seo-copywriter", "--config", "", "--db", f.dbPath, "--quiet"}
	err := app.Run(append(base, args...))
	return out.String(), err
}

func TestListAction(t *testing.T) {
	now = func() time.Time { return time.Date(2026, 5, 1, 15, 0, 0, 0, time.UTC) }
	defer func() { now = time.Now }()

	f := newFixture(t)
	out, err := f.run("history", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "3 hours ago")
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "Total: 2 analyses")
	assert.Less(t, bytes.Index([]byte(out), []byte("deep bass")), bytes.Index([]byte(out), []byte("long battery life")))
}

func TestShowAction(t *testing.T) {
	f := newFixture(t)

	out, err := f.run("history", "show", "--format", "json", "1")
	require.NoError(t, err)

	var r models.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, f.ids[0], r.ID)
	assert.Equal(t, []string{"long battery life"}, r.Keywords)

	_, err = f.run("history", "show", "99")
	assert.ErrorContains(t, err, "not found")

	_, err = f.run("history", "show", "abc")
	assert.ErrorContains(t, err, "invalid analysis ID")
}

func TestDeleteAction(t *testing.T) {
	f := newFixture(t)

	out, err := f.run("history", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted analysis 1")

	_, err = f.run("history", "delete", "1")
	assert.ErrorContains(t, err, "not found")

	_, err = f.run("history", "delete")
	assert.ErrorContains(t, err, "analysis ID required")
}
