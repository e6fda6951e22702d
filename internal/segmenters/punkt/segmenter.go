// Package punkt provides a driven.Segmenter backed by the pre-trained
// English Punkt model from github.com/neurosnap/sentences. Other languages
// are segmented by the rule-based segmenter.
package punkt

import (
	"fmt"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/precis-cli/internal/segmenters"
	"github.com/custodia-labs/precis-cli/internal/segmenters/rules"
)

// Ensure Segmenter implements the interface.
var _ driven.Segmenter = (*Segmenter)(nil)

// loadModel decodes the embedded English training data once per process.
var loadModel = sync.OnceValues(func() (*sentences.DefaultSentenceTokenizer, error) {
	return english.NewSentenceTokenizer(nil)
})

// Segmenter splits English text with the Punkt model.
type Segmenter struct{}

// New creates a Punkt segmenter.
func New() *Segmenter {
	return &Segmenter{}
}

// Kind returns domain.SegmenterPunkt.
func (s *Segmenter) Kind() domain.SegmenterKind {
	return domain.SegmenterPunkt
}

// Segment splits text into sentences and tokenises each of them.
// Paragraph breaks always end a sentence.
func (s *Segmenter) Segment(text string, lang domain.Language, opts domain.TokenOptions) ([]domain.Sentence, error) {
	if lang != domain.LanguageEnglish {
		return segmenters.Build(rules.Split(text, lang), lang, opts)
	}

	tokenizer, err := loadModel()
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}

	var texts []string
	for _, para := range segmenters.Paragraphs(text) {
		for _, sent := range tokenizer.Tokenize(para) {
			texts = append(texts, sent.Text)
		}
	}
	return segmenters.Build(texts, lang, opts)
}
