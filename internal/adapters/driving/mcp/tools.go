package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/language"
)

// emptyInputMessage is returned in place of sentences when the input has none.
const emptyInputMessage = "not enough text to summarise"

// SummarizeInput is the input schema for the summarize tool.
type SummarizeInput struct {
	Text      string `json:"text" jsonschema:"the text to summarise"`
	Sentences *int   `json:"sentences,omitempty" jsonschema:"number of sentences to return (default from settings, usually 6)"`
	Language  string `json:"language,omitempty" jsonschema:"ISO 639-1 language code such as en, fr or hi (default en)"`
}

// SummarizeFileInput is the input schema for the summarize_file tool.
type SummarizeFileInput struct {
	Path      string `json:"path" jsonschema:"absolute path of a local text, markdown, html, docx or pdf file"`
	Sentences *int   `json:"sentences,omitempty" jsonschema:"number of sentences to return (default from settings, usually 6)"`
	Language  string `json:"language,omitempty" jsonschema:"ISO 639-1 language code such as en, fr or hi (default en)"`
}

// SummaryOutput is the output schema of both summary tools.
type SummaryOutput struct {
	Title          string   `json:"title,omitempty"`
	Sentences      []string `json:"sentences"`
	Summary        string   `json:"summary"`
	TotalSentences int      `json:"total_sentences"`
	Language       string   `json:"language"`
	Converged      bool     `json:"converged"`
	Message        string   `json:"message,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summarize",
		Description: "Extract the most representative sentences of a text, in original order",
	}, s.handleSummarize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summarize_file",
		Description: "Summarise a local document (plain text, markdown, html, docx or pdf)",
	}, s.handleSummarizeFile)
}

// handleSummarize handles the summarize tool invocation.
func (s *Server) handleSummarize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummarizeInput,
) (*mcp.CallToolResult, SummaryOutput, error) {
	if err := s.allow(); err != nil {
		return nil, SummaryOutput{}, err
	}

	opts, err := s.options(input.Sentences, input.Language)
	if err != nil {
		return nil, SummaryOutput{}, err
	}

	summary, err := s.ports.Summary.Summarise(ctx, input.Text, opts)
	if err != nil && !errors.Is(err, domain.ErrEmptyInput) {
		return nil, SummaryOutput{}, err
	}
	return nil, newSummaryOutput("", summary, opts.Language, err), nil
}

// handleSummarizeFile handles the summarize_file tool invocation.
func (s *Server) handleSummarizeFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummarizeFileInput,
) (*mcp.CallToolResult, SummaryOutput, error) {
	if err := s.allow(); err != nil {
		return nil, SummaryOutput{}, err
	}
	if s.ports.Document == nil {
		return nil, SummaryOutput{}, ErrMissingDocumentService
	}
	if strings.TrimSpace(input.Path) == "" {
		return nil, SummaryOutput{}, fmt.Errorf("path is required: %w", domain.ErrInvalidParameter)
	}

	opts, err := s.options(input.Sentences, input.Language)
	if err != nil {
		return nil, SummaryOutput{}, err
	}

	result, err := s.ports.Document.SummariseFile(ctx, input.Path, opts)
	if err != nil && !errors.Is(err, domain.ErrEmptyInput) {
		return nil, SummaryOutput{}, err
	}

	var (
		title   string
		summary *domain.Summary
	)
	if result != nil {
		title = result.Document.Title
		summary = result.Summary
	}
	return nil, newSummaryOutput(title, summary, opts.Language, err), nil
}

// options merges tool arguments over the configured defaults.
func (s *Server) options(sentences *int, lang string) (domain.SummaryOptions, error) {
	opts := domain.DefaultSummaryOptions()
	if s.ports.Settings != nil {
		settings, err := s.ports.Settings.Get()
		if err != nil {
			return opts, fmt.Errorf("getting settings: %w", err)
		}
		opts = settings.Summary.Options()
	}

	if sentences != nil {
		if *sentences < 0 {
			return opts, fmt.Errorf("sentences must be >= 0, got %d: %w", *sentences, domain.ErrInvalidParameter)
		}
		opts.SentenceCount = *sentences
	}
	if lang != "" {
		parsed, err := language.ParseSupported(lang)
		if err != nil {
			return opts, err
		}
		opts.Language = parsed
	}
	return opts, nil
}

func newSummaryOutput(title string, summary *domain.Summary, lang domain.Language, err error) SummaryOutput {
	texts := summary.Texts()
	output := SummaryOutput{
		Title:     title,
		Sentences: texts,
		Summary:   strings.Join(texts, " "),
		Language:  lang.String(),
	}
	if summary != nil {
		output.TotalSentences = summary.Total
		output.Converged = summary.Converged
		if summary.Language != "" {
			output.Language = summary.Language.String()
		}
	}
	if errors.Is(err, domain.ErrEmptyInput) {
		output.Message = emptyInputMessage
	}
	return output
}
