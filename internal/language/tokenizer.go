package language

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

// Tokenizer turns sentence text into normalised scoring terms.
// It holds a stateful case mapper and must not be shared between goroutines.
type Tokenizer struct {
	profile *Profile
	opts    domain.TokenOptions
	caser   cases.Caser
}

// NewTokenizer returns a tokenizer for one document.
func (p *Profile) NewTokenizer(opts domain.TokenOptions) *Tokenizer {
	return &Tokenizer{
		profile: p,
		opts:    opts,
		caser:   cases.Lower(p.tag),
	}
}

// Tokens splits text into words on non-letter boundaries, lowercases them
// and applies stop-word removal and stemming as configured.
func (t *Tokenizer) Tokens(text string) []string {
	words := Words(norm.NFC.String(text))
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ReplaceAll(t.caser.String(w), "’", "'")
		if t.opts.RemoveStopWords && t.profile.IsStopWord(w) {
			continue
		}
		if t.opts.Stem {
			w = t.profile.Stem(w)
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Stem returns the Snowball stem of a lowercased word, or the word itself
// when the language has no stemmer.
func (p *Profile) Stem(word string) string {
	if p.stemmer == "" {
		return word
	}
	stemmed, err := snowball.Stem(word, p.stemmer, true)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}

// Words splits text into words. A word is a run of letters, numbers and
// combining marks; an apostrophe between letters and a period or comma
// between digits stay inside the word ("don't", "3.14").
func Words(text string) []string {
	runes := []rune(text)
	var words []string
	start := -1

	for i, r := range runes {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && isJoiner(runes, i) {
			continue
		}
		if start >= 0 {
			words = append(words, string(runes[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}
	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

// isJoiner reports whether runes[i] joins the characters on either side
// into a single word.
func isJoiner(runes []rune, i int) bool {
	if i == 0 || i+1 >= len(runes) {
		return false
	}
	prev, next := runes[i-1], runes[i+1]
	switch runes[i] {
	case '\'', '’':
		return unicode.IsLetter(prev) && unicode.IsLetter(next)
	case '.', ',':
		return unicode.IsDigit(prev) && unicode.IsDigit(next)
	default:
		return false
	}
}
