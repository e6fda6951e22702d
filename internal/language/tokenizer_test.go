package language

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "simple", input: "The cat sat.", expected: []string{"The", "cat", "sat"}},
		{name: "apostrophe inside word", input: "Don't stop", expected: []string{"Don't", "stop"}},
		{name: "decimal number", input: "Pi is 3.14 roughly", expected: []string{"Pi", "is", "3.14", "roughly"}},
		{name: "thousands separator", input: "1,000 people", expected: []string{"1,000", "people"}},
		{name: "trailing apostrophe", input: "dogs' bowls", expected: []string{"dogs", "bowls"}},
		{name: "hyphen splits", input: "well-known fact", expected: []string{"well", "known", "fact"}},
		{name: "accents", input: "Ça déjà vu", expected: []string{"Ça", "déjà", "vu"}},
		{name: "devanagari marks", input: "यह एक वाक्य है।", expected: []string{"यह", "एक", "वाक्य", "है"}},
		{name: "only punctuation", input: "... !!", expected: nil},
		{name: "empty", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Words(tt.input))
		})
	}
}

func TestTokenizer_StopWordsAndLowercase(t *testing.T) {
	tok := Lookup(domain.LanguageEnglish).NewTokenizer(domain.TokenOptions{RemoveStopWords: true})

	assert.Equal(t, []string{"quick", "brown", "fox"}, tok.Tokens("The Quick brown fox."))
}

func TestTokenizer_KeepsStopWordsWhenDisabled(t *testing.T) {
	tok := Lookup(domain.LanguageEnglish).NewTokenizer(domain.TokenOptions{})

	assert.Equal(t, []string{"the", "quick", "brown", "fox"}, tok.Tokens("The Quick brown fox."))
}

func TestTokenizer_Stemming(t *testing.T) {
	tok := Lookup(domain.LanguageEnglish).NewTokenizer(domain.TokenOptions{RemoveStopWords: true, Stem: true})

	assert.Equal(t, []string{"cat", "run"}, tok.Tokens("Cats running"))
}

func TestTokenizer_TypographicApostrophe(t *testing.T) {
	tok := Lookup(domain.LanguageEnglish).NewTokenizer(domain.TokenOptions{RemoveStopWords: true})

	assert.Empty(t, tok.Tokens("Don’t"))
}

func TestTokenizer_DefaultProfile(t *testing.T) {
	tok := Lookup("ja").NewTokenizer(domain.TokenOptions{RemoveStopWords: true, Stem: true})

	assert.Equal(t, []string{"the", "cats"}, tok.Tokens("The Cats"))
}

func TestTokenizer_HindiStopWords(t *testing.T) {
	tok := Lookup(domain.LanguageHindi).NewTokenizer(domain.TokenOptions{RemoveStopWords: true})

	assert.Equal(t, []string{"वाक्य"}, tok.Tokens("यह एक वाक्य है।"))
}

func TestProfile_StemWithoutStemmer(t *testing.T) {
	assert.Equal(t, "häuser", Lookup(domain.LanguageGerman).Stem("häuser"))
}
