package mapreduce

import (
	"bytes"
	"testing"

	"github.com/dtnitsch/seo-copywriter/pkg/analytics"
	"github.com/dtnitsch/seo-copywriter/pkg/keywords"
	"github.com/stretchr/testify/assert"
)

func TestMapReduce(t *testing.T) {
	a := &analytics.Analytics{}

	counts := Reduce([]map[string]int{
		Map("Great battery. Great sound.", a),
		Map("Battery lasts all week.", a),
	})

	assert.Equal(t, 2, counts["battery"])
	assert.Equal(t, 2, counts["great"])
	assert.Equal(t, 1, counts["week"])
	assert.NotContains(t, counts, "all")
}

func TestMapPhrases(t *testing.T) {
	got := MapPhrases([]string{"long battery life", "long battery life", " ", keywords.NoKeywordsFound, "great sound"})

	assert.Equal(t, map[string]int{"long battery life": 1, "great sound": 1}, got)
}

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{"sound": 3, "bass": 3, "comfort": 1, "cable": 2}

	assert.Equal(t, []string{"bass:3", "sound:3", "cable:2"}, TopKeywords(counts, 3))
	assert.Len(t, TopKeywords(counts, 10), 4)
	assert.Empty(t, TopKeywords(nil, 5))
}

func TestFprintTopKeywords(t *testing.T) {
	var buf bytes.Buffer
	FprintTopKeywords(&buf, map[string]int{"sound": 2, "bass": 1}, 5)

	assert.Equal(t, "1. sound: 2\n2. bass: 1\n", buf.String())
}
