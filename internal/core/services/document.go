package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driving"
	"github.com/custodia-labs/precis-cli/internal/logger"
	"github.com/custodia-labs/precis-cli/internal/observability"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DefaultMinChars is the shortest extracted text worth summarising.
const DefaultMinChars = 50

// DocumentService summarises files by reading, normalising and then
// handing their text to the summary service.
type DocumentService struct {
	reader    driven.DocumentReader
	registry  driven.NormaliserRegistry
	summaries driving.SummaryService
	minChars  int
	tracer    trace.Tracer
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	reader driven.DocumentReader,
	registry driven.NormaliserRegistry,
	summaries driving.SummaryService,
) *DocumentService {
	return &DocumentService{
		reader:    reader,
		registry:  registry,
		summaries: summaries,
		minChars:  DefaultMinChars,
		tracer:    otel.Tracer(observability.TracerName),
	}
}

// SetMinChars sets the minimum extracted text length. Zero disables the check.
func (s *DocumentService) SetMinChars(n int) {
	if n < 0 {
		n = 0
	}
	s.minChars = n
}

// SetTracer replaces the tracer used for normalisation spans.
func (s *DocumentService) SetTracer(tracer trace.Tracer) {
	s.tracer = tracer
}

// SummariseFile reads the file at path and summarises it.
func (s *DocumentService) SummariseFile(
	ctx context.Context, path string, opts domain.SummaryOptions,
) (*domain.DocumentSummary, error) {
	if s.reader == nil {
		return nil, errors.New("document reader not configured")
	}

	raw, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s.SummariseRaw(ctx, raw, opts)
}

// SummariseRaw normalises raw and summarises its content. Content shorter
// than the configured minimum returns an error wrapping domain.ErrEmptyInput
// together with the normalised document.
func (s *DocumentService) SummariseRaw(
	ctx context.Context, raw *domain.RawDocument, opts domain.SummaryOptions,
) (*domain.DocumentSummary, error) {
	if s.registry == nil || s.summaries == nil {
		return nil, errors.New("document service not configured")
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}

	logger.Section("Document")
	logger.Debug("URI: %s, MIME type: %s, %d bytes", raw.URI, raw.MIMEType, len(raw.Content))

	normCtx, span := observability.StartSpan(ctx, s.tracer, observability.SpanNormalise,
		attribute.String("precis.mime_type", raw.MIMEType),
	)
	result, err := s.registry.Normalise(normCtx, raw)
	observability.RecordError(span, err)
	span.End()
	if err != nil {
		return nil, err
	}

	out := &domain.DocumentSummary{Document: result.Document}
	content := strings.TrimSpace(result.Document.Content)
	if n := utf8.RuneCountInString(content); n < s.minChars {
		logger.Warn("Extracted text too short: %d < %d characters", n, s.minChars)
		out.Summary = &domain.Summary{Sentences: []domain.Sentence{}, Language: opts.Language, Converged: true}
		return out, fmt.Errorf("not enough readable text in %s: %w", raw.URI, domain.ErrEmptyInput)
	}

	summary, err := s.summaries.Summarise(ctx, content, opts)
	out.Summary = summary
	if err != nil {
		return out, err
	}
	return out, nil
}

// SupportedMIMETypes returns the document formats that can be summarised.
func (s *DocumentService) SupportedMIMETypes() []string {
	if s.registry == nil {
		return []string{}
	}
	return s.registry.SupportedMIMETypes()
}
