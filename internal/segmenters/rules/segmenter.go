// Package rules provides the default driven.Segmenter. It splits text on
// sentence-ending punctuation and paragraph breaks, leaving abbreviations
// from the language profile and decimal numbers intact. Abbreviations that
// can close a sentence end one when a capitalised word follows.
package rules

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/precis-cli/internal/language"
	"github.com/custodia-labs/precis-cli/internal/segmenters"
)

// Ensure Segmenter implements the interface.
var _ driven.Segmenter = (*Segmenter)(nil)

// Segmenter is the rule-based sentence segmenter.
type Segmenter struct{}

// New creates a rule-based segmenter.
func New() *Segmenter {
	return &Segmenter{}
}

// Kind returns domain.SegmenterRules.
func (s *Segmenter) Kind() domain.SegmenterKind {
	return domain.SegmenterRules
}

// Segment splits text into sentences and tokenises each of them.
func (s *Segmenter) Segment(text string, lang domain.Language, opts domain.TokenOptions) ([]domain.Sentence, error) {
	return segmenters.Build(Split(text, lang), lang, opts)
}

// Split returns the raw sentence texts of text. A sentence ends at a run of
// terminators followed by whitespace or the end of the text, or at a blank
// line. Closing quotes and brackets after a terminator stay with the sentence.
func Split(text string, lang domain.Language) []string {
	profile := language.Lookup(lang)

	var out []string
	for _, para := range segmenters.Paragraphs(text) {
		out = append(out, splitParagraph([]rune(para), profile)...)
	}
	return out
}

func splitParagraph(runes []rune, profile *language.Profile) []string {
	var out []string
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}

		end := i + 1
		for end < len(runes) && isTerminator(runes[end]) {
			end++
		}
		for end < len(runes) && isCloser(runes[end]) {
			end++
		}

		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			i = end - 1
			continue
		}
		if end-i == 1 && runes[i] == '.' && holdsAfterAbbreviation(runes, start, i, end, profile) {
			i = end - 1
			continue
		}

		out = append(out, string(runes[start:end]))
		start = end
		i = end - 1
	}

	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}

// holdsAfterAbbreviation reports whether the period at runes[dot] belongs to
// an abbreviation and does not end the sentence. Abbreviations that can close
// a sentence ("etc.", "a.m.") end it when the next word is capitalised.
func holdsAfterAbbreviation(runes []rune, start, dot, end int, profile *language.Profile) bool {
	word := wordBefore(runes, start, dot)
	if !profile.IsAbbreviation(word) {
		return false
	}
	if !profile.MayEndSentence(word) {
		return true
	}
	return !unicode.IsUpper(nextLetter(runes, end))
}

// nextLetter returns the first letter or digit after runes[from:], skipping
// spaces and opening punctuation. Returns 0 at the end of the text.
func nextLetter(runes []rune, from int) rune {
	for _, r := range runes[from:] {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
	}
	return 0
}

// wordBefore returns the lowercased word ending just before runes[dot],
// without leading opening punctuation.
func wordBefore(runes []rune, start, dot int) string {
	from := dot
	for from > start && !unicode.IsSpace(runes[from-1]) {
		from--
	}
	word := strings.TrimLeftFunc(string(runes[from:dot]), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return strings.ToLower(word)
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '।', '॥':
		return true
	default:
		return false
	}
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', '”', '’', ')', ']', '»':
		return true
	default:
		return false
	}
}
