// Package textproc turns marketing copy into the tokens fed to the filters and
// indexes: whitespace splitting, punctuation stripping, lowercasing and n-grams.
package textproc

import (
	"strings"
	"unicode"
)

// Tokenize splits _text_ on whitespace, strips punctuation from every token,
// lowercases it and drops tokens left empty.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := ToLower(RemovePunctuation(field))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// ToLower returns _text_ with every letter mapped to lower case
func ToLower(text string) string {
	return strings.ToLower(text)
}

// RemovePunctuation drops every Unicode punctuation rune from _text_
func RemovePunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, text)
}

// ExtractNGrams returns every run of _n_ consecutive tokens joined by a
// single space. It returns an empty slice when n is 0 or exceeds the number of tokens.
func ExtractNGrams(tokens []string, n int) []string {
	if n <= 0 || n > len(tokens) {
		return []string{}
	}
	ngrams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		ngrams = append(ngrams, strings.Join(tokens[i:i+n], " "))
	}
	return ngrams
}

// WordCount returns the number of whitespace separated words in _text_
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharCount returns the number of runes in _text_ that are not whitespace
func CharCount(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
