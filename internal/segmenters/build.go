package segmenters

import (
	"strings"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/language"
)

// Build turns sentence texts into ordered sentences with tokens.
// Texts that are blank after whitespace normalisation are skipped.
// Returns domain.ErrEmptyInput when no sentence carries a token.
func Build(texts []string, lang domain.Language, opts domain.TokenOptions) ([]domain.Sentence, error) {
	tokenizer := language.Lookup(lang).NewTokenizer(opts)

	sentences := make([]domain.Sentence, 0, len(texts))
	usable := 0
	for _, text := range texts {
		text = CollapseSpace(text)
		if text == "" {
			continue
		}
		s := domain.Sentence{
			Position: len(sentences),
			Text:     text,
			Tokens:   tokenizer.Tokens(text),
		}
		if s.HasTokens() {
			usable++
		}
		sentences = append(sentences, s)
	}

	if usable == 0 {
		return nil, domain.ErrEmptyInput
	}
	return sentences, nil
}

// CollapseSpace trims text and replaces every whitespace run with one space.
func CollapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Paragraphs splits text on blank lines. Line endings are normalised first.
// Blank paragraphs are dropped.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paragraphs
}
