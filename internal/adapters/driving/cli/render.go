package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

// summaryView is the serialised form of a summary.
type summaryView struct {
	Source     string         `json:"source,omitempty" yaml:"source,omitempty"`
	Title      string         `json:"title,omitempty" yaml:"title,omitempty"`
	Language   string         `json:"language" yaml:"language"`
	Total      int            `json:"total_sentences" yaml:"total_sentences"`
	Iterations int            `json:"iterations" yaml:"iterations"`
	Converged  bool           `json:"converged" yaml:"converged"`
	Sentences  []sentenceView `json:"sentences" yaml:"sentences"`
}

type sentenceView struct {
	Position int     `json:"position" yaml:"position"`
	Text     string  `json:"text" yaml:"text"`
	Score    float64 `json:"score" yaml:"score"`
}

func newSummaryView(result *domain.DocumentSummary) summaryView {
	view := summaryView{Sentences: []sentenceView{}}
	if result == nil {
		return view
	}

	view.Source = result.Document.URI
	view.Title = result.Document.Title
	if s := result.Summary; s != nil {
		view.Language = s.Language.String()
		view.Total = s.Total
		view.Iterations = s.Iterations
		view.Converged = s.Converged
		for _, sentence := range s.Sentences {
			view.Sentences = append(view.Sentences, sentenceView{
				Position: sentence.Position,
				Text:     sentence.Text,
				Score:    sentence.Score,
			})
		}
	}
	return view
}

// renderSummary writes result to w in the given format.
func renderSummary(w io.Writer, result *domain.DocumentSummary, format domain.OutputFormat) error {
	var texts []string
	if result != nil {
		texts = result.Summary.Texts()
	}

	switch format {
	case domain.OutputFormatBullets:
		if _, err := fmt.Fprintln(w, "📌 Summary:"); err != nil {
			return err
		}
		for _, text := range texts {
			if _, err := fmt.Fprintf(w, "• %s\n", text); err != nil {
				return err
			}
		}
		return nil

	case domain.OutputFormatText:
		if len(texts) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, strings.Join(texts, "\n"))
		return err

	case domain.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(newSummaryView(result))

	case domain.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newSummaryView(result)); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("output format %q: %w", format, domain.ErrUnsupportedType)
	}
}
