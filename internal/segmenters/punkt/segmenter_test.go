package punkt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

func texts(sentences []domain.Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out
}

func TestNew(t *testing.T) {
	s := New()
	require.NotNil(t, s)
	assert.Equal(t, domain.SegmenterPunkt, s.Kind())
}

func TestSegment_English(t *testing.T) {
	sentences, err := New().Segment(
		"The quick brown fox jumps over the lazy dog. The dog sleeps all day.",
		domain.LanguageEnglish,
		domain.TokenOptions{RemoveStopWords: true},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"The quick brown fox jumps over the lazy dog.",
		"The dog sleeps all day.",
	}, texts(sentences))
	assert.Equal(t, 0, sentences[0].Position)
	assert.Equal(t, 1, sentences[1].Position)
}

func TestSegment_ParagraphBreak(t *testing.T) {
	sentences, err := New().Segment("Release notes\n\nThe build is green.", domain.LanguageEnglish, domain.TokenOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"Release notes", "The build is green."}, texts(sentences))
}

func TestSegment_OtherLanguageUsesRules(t *testing.T) {
	sentences, err := New().Segment("यह पहला वाक्य है। यह दूसरा है।", domain.LanguageHindi, domain.TokenOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"यह पहला वाक्य है।", "यह दूसरा है।"}, texts(sentences))
}

func TestSegment_EmptyInput(t *testing.T) {
	_, err := New().Segment("  \n ", domain.LanguageEnglish, domain.TokenOptions{})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}
