package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"Buy Now - 50% Off!", []string{"buy", "now", "50", "off"}},
		{"  Limited\tTime\nOffer  ", []string{"limited", "time", "offer"}},
		{"Don't miss it...", []string{"dont", "miss", "it"}},
		{"Café CRÈME", []string{"café", "crème"}},
		{"", []string{}},
		{"!!! ??", []string{}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Tokenize(c.text), c.text)
	}
}

func TestRemovePunctuation(t *testing.T) {
	assert.Equal(t, "Hello world", RemovePunctuation("Hello, world!"))
	assert.Equal(t, "50 off", RemovePunctuation("50% off"))
	assert.Equal(t, "", RemovePunctuation("«…»"))
}

func TestToLower(t *testing.T) {
	assert.Equal(t, "check this out", ToLower("Check THIS Out"))
}

func TestExtractNGrams(t *testing.T) {
	tokens := []string{"limited", "time", "offer", "today"}
	assert.Equal(t, tokens, ExtractNGrams(tokens, 1))
	assert.Equal(t, []string{"limited time", "time offer", "offer today"}, ExtractNGrams(tokens, 2))
	assert.Equal(t, []string{"limited time offer today"}, ExtractNGrams(tokens, 4))
	assert.Empty(t, ExtractNGrams(tokens, 5))
	assert.Empty(t, ExtractNGrams(tokens, 0))
	assert.Empty(t, ExtractNGrams(nil, 1))
}

func TestCounts(t *testing.T) {
	assert.Equal(t, 4, WordCount("Buy Now - Today"))
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 12, CharCount("Buy Now - Today"))
	assert.Equal(t, 4, CharCount("é è\tê\në"))
}
