package meta

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBuild_Empty(t *testing.T) {
	assert.Equal(t, DefaultDescription, Build(""))
}

func TestBuild_ShortTextUnchanged(t *testing.T) {
	text := "This premium headphone delivers exceptional sound quality and comfort."
	assert.Equal(t, text, Build(text))
}

func TestBuild_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "Noise cancelling. 30hr battery.", Build("  Noise\tcancelling.\n\n  30hr   battery.  "))
}

func TestBuild_Idempotent(t *testing.T) {
	inputs := []string{
		"Short and sweet.",
		"  spaced \n out  text ",
		strings.Repeat("x", 120) + "." + strings.Repeat("y", 179),
		strings.Repeat("abc ", 75),
	}
	for _, input := range inputs {
		once := Build(input)
		assert.Equal(t, once, Build(once), "input %q", input)
	}
}

func TestBuild_CutsAtLateSentenceEnd(t *testing.T) {
	text := strings.Repeat("x", 120) + "." + strings.Repeat("y", 179)
	assert.Equal(t, 300, len(text))

	got := Build(text)

	assert.Equal(t, strings.Repeat("x", 120)+".", got)
}

func TestBuild_SentenceCutThreshold(t *testing.T) {
	// 0.7 * 160 = 112
	atThreshold := strings.Repeat("x", 112) + "!" + strings.Repeat("y", 100)
	assert.Equal(t, strings.Repeat("x", 112)+"!", Build(atThreshold))

	tooEarly := strings.Repeat("x", 50) + "?" + strings.Repeat("y", 200)
	got := Build(tooEarly)
	assert.Equal(t, 160, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestBuild_EllipsisWithoutPunctuation(t *testing.T) {
	text := strings.Repeat("abc ", 75)

	got := Build(text)

	assert.Equal(t, 160, len(got))
	assert.Equal(t, strings.TrimSpace(text)[:157]+"...", got)
}

func TestBuild_PunctuationAtLimitIsIgnored(t *testing.T) {
	// index 160 is outside the window
	text := strings.Repeat("x", 160) + "." + strings.Repeat("y", 20)
	got := Build(text)
	assert.Equal(t, strings.Repeat("x", 157)+"...", got)
}

func TestBuildWith_CountsRunes(t *testing.T) {
	text := strings.Repeat("é", 200)

	got := BuildWith(text, 100)

	assert.Equal(t, 100, utf8.RuneCountInString(got))
	assert.Equal(t, strings.Repeat("é", 97)+"...", got)
}

func TestBuildWith_LengthInvariant(t *testing.T) {
	text := "Premium wireless headphones with active noise cancellation! Enjoy 30 hours of playback, " +
		"fast USB-C charging and plush memory-foam ear cushions. Order today?"
	for _, max := range []int{1, 3, 4, 20, 50, 112, 160} {
		got := BuildWith(text, max)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), max, "max %d", max)
	}
}

func TestBuildWith_NonPositiveLengthUsesDefault(t *testing.T) {
	text := strings.Repeat("abc ", 75)
	assert.Equal(t, Build(text), BuildWith(text, 0))
	assert.Equal(t, Build(text), BuildWith(text, -5))
}
