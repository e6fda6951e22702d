package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

func TestEmbeddedProfilesLoad(t *testing.T) {
	for _, lang := range domain.SupportedLanguages() {
		t.Run(lang.String(), func(t *testing.T) {
			require.True(t, Has(lang))
			p := Lookup(lang)
			assert.Equal(t, lang, p.Code())
			assert.Equal(t, lang.Name(), p.Name())
			assert.Positive(t, p.StopWordCount())
		})
	}
}

func TestAvailable_Sorted(t *testing.T) {
	assert.Equal(t, []domain.Language{"de", "en", "es", "fr", "hi"}, Available())
}

func TestLookup_UnknownFallsBackToDefault(t *testing.T) {
	p := Lookup("ja")

	assert.False(t, Has("ja"))
	assert.Equal(t, domain.Language(""), p.Code())
	assert.Zero(t, p.StopWordCount())
	assert.False(t, p.HasStemmer())
	assert.False(t, p.IsAbbreviation("dr"))
}

func TestProfile_EnglishData(t *testing.T) {
	p := Lookup(domain.LanguageEnglish)

	assert.True(t, p.HasStemmer())
	assert.True(t, p.IsStopWord("the"))
	assert.True(t, p.IsStopWord("a"))
	assert.False(t, p.IsStopWord("summary"))
	assert.True(t, p.IsAbbreviation("dr"))
	assert.True(t, p.IsAbbreviation("e.g"))
	assert.True(t, p.IsAbbreviation("u.s"))
	assert.False(t, p.IsAbbreviation("a"))
}

func TestProfile_MayEndSentence(t *testing.T) {
	en := Lookup(domain.LanguageEnglish)

	for _, word := range []string{"etc", "a.m", "p.m", "u.s", "u.k", "inc", "ltd", "co", "fig", "jr", "dec"} {
		assert.True(t, en.MayEndSentence(word), word)
		assert.True(t, en.IsAbbreviation(word), word)
	}
	for _, word := range []string{"mr", "dr", "prof", "st", "vs", "e.g", "i.e", "cf", "vol", "pp"} {
		assert.False(t, en.MayEndSentence(word), word)
		assert.True(t, en.IsAbbreviation(word), word)
	}

	assert.True(t, Lookup(domain.LanguageFrench).MayEndSentence("etc"))
	assert.True(t, Lookup(domain.LanguageGerman).MayEndSentence("usw"))
	assert.False(t, Lookup(domain.LanguageGerman).MayEndSentence("z.b"))
	assert.False(t, Lookup("ja").MayEndSentence("etc"))
}

func TestProfile_Stemmers(t *testing.T) {
	assert.True(t, Lookup(domain.LanguageFrench).HasStemmer())
	assert.True(t, Lookup(domain.LanguageSpanish).HasStemmer())
	assert.False(t, Lookup(domain.LanguageGerman).HasStemmer())
	assert.False(t, Lookup(domain.LanguageHindi).HasStemmer())
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Language
	}{
		{"", domain.LanguageEnglish},
		{"en", domain.LanguageEnglish},
		{"EN", domain.LanguageEnglish},
		{"en-GB", domain.LanguageEnglish},
		{"English", domain.LanguageEnglish},
		{"hindi", domain.LanguageHindi},
		{"fr", domain.LanguageFrench},
		{"fr_CA", domain.LanguageFrench},
		{"German", domain.LanguageGerman},
		{"es-MX", domain.LanguageSpanish},
		{"ja", domain.Language("ja")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lang, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lang)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("not a language!")

	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestParseSupported(t *testing.T) {
	lang, err := ParseSupported("es-MX")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageSpanish, lang)

	lang, err = ParseSupported("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLanguage, lang)

	for _, input := range []string{"pt", "ja", "not a language!"} {
		_, err := ParseSupported(input)
		assert.ErrorIs(t, err, domain.ErrInvalidParameter, input)
	}
}
