package services

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driving"
	"github.com/custodia-labs/precis-cli/internal/logger"
	"github.com/custodia-labs/precis-cli/internal/observability"
)

// Ensure SummaryService implements the interface.
var _ driving.SummaryService = (*SummaryService)(nil)

// SummaryService runs the extractive pipeline: segment, rank, select.
// It holds no per-call state and is safe for concurrent use when its
// segmenters and ranker are.
type SummaryService struct {
	segmenters map[domain.SegmenterKind]driven.Segmenter
	ranker     driven.Ranker
	tracer     trace.Tracer
}

// NewSummaryService creates a summary service. At least one segmenter
// should be provided; the last one registered for a kind wins.
func NewSummaryService(ranker driven.Ranker, segmenters ...driven.Segmenter) *SummaryService {
	byKind := make(map[domain.SegmenterKind]driven.Segmenter, len(segmenters))
	for _, seg := range segmenters {
		byKind[seg.Kind()] = seg
	}
	return &SummaryService{
		segmenters: byKind,
		ranker:     ranker,
		tracer:     otel.Tracer(observability.TracerName),
	}
}

// SetTracer replaces the tracer used for pipeline spans.
func (s *SummaryService) SetTracer(tracer trace.Tracer) {
	s.tracer = tracer
}

// Summarise extracts up to opts.SentenceCount sentences from text.
//
// When the text yields no usable sentence the returned summary is empty and
// the error wraps domain.ErrEmptyInput.
func (s *SummaryService) Summarise(ctx context.Context, text string, opts domain.SummaryOptions) (summary *domain.Summary, err error) {
	if opts.Language == "" {
		opts.Language = domain.DefaultLanguage
	}
	if opts.Segmenter == "" {
		opts.Segmenter = domain.SegmenterRules
	}

	ctx, span := observability.StartSpan(ctx, s.tracer, observability.SpanSummarise,
		attribute.String("precis.language", opts.Language.String()),
		attribute.String("precis.segmenter", opts.Segmenter.String()),
		attribute.Int("precis.sentence_count", opts.SentenceCount),
	)
	defer func() {
		if !errors.Is(err, domain.ErrEmptyInput) {
			observability.RecordError(span, err)
		}
		span.End()
	}()

	logger.Section("Summarise")
	logger.Debug("Language: %s, segmenter: %s, sentences: %d", opts.Language, opts.Segmenter, opts.SentenceCount)

	if opts.SentenceCount < 0 {
		return nil, fmt.Errorf("%w: sentence count %d", domain.ErrInvalidParameter, opts.SentenceCount)
	}
	if err := opts.Rank.Validate(); err != nil {
		return nil, fmt.Errorf("rank options: %w", err)
	}
	segmenter, ok := s.segmenters[opts.Segmenter]
	if !ok {
		return nil, fmt.Errorf("%w: segmenter %q", domain.ErrInvalidParameter, opts.Segmenter)
	}

	sentences, err := s.segment(ctx, segmenter, text, opts)
	if errors.Is(err, domain.ErrEmptyInput) {
		logger.Warn("No usable sentences")
		return &domain.Summary{
			Sentences: []domain.Sentence{},
			Language:  opts.Language,
			Converged: true,
		}, fmt.Errorf("summarise: %w", err)
	}
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.rank(ctx, sentences, opts.Rank)
	if err != nil {
		return nil, err
	}
	for i := range sentences {
		sentences[i].Score = result.Scores[i]
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, selectSpan := observability.StartSpan(ctx, s.tracer, observability.SpanSelect)
	chosen, err := SelectSentences(sentences, opts.SentenceCount)
	selectSpan.End()
	if err != nil {
		return nil, err
	}
	logger.Info("Selected %d of %d sentences", len(chosen), len(sentences))

	return &domain.Summary{
		Sentences:  chosen,
		Total:      len(sentences),
		Language:   opts.Language,
		Iterations: result.Iterations,
		Converged:  result.Converged,
	}, nil
}

func (s *SummaryService) segment(
	ctx context.Context, segmenter driven.Segmenter, text string, opts domain.SummaryOptions,
) ([]domain.Sentence, error) {
	_, span := observability.StartSpan(ctx, s.tracer, observability.SpanSegment)
	defer span.End()

	sentences, err := segmenter.Segment(text, opts.Language, opts.Tokens)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("precis.sentences", len(sentences)))
	logger.Debug("Segmented %d sentences", len(sentences))
	return sentences, nil
}

func (s *SummaryService) rank(
	ctx context.Context, sentences []domain.Sentence, opts domain.RankOptions,
) (*driven.RankResult, error) {
	_, span := observability.StartSpan(ctx, s.tracer, observability.SpanRank,
		attribute.String("precis.ranker", s.ranker.Name()),
	)
	defer span.End()

	result, err := s.ranker.Rank(sentences, opts)
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("rank: %w", err)
	}
	if len(result.Scores) != len(sentences) {
		err := fmt.Errorf("rank: %s returned %d scores for %d sentences",
			s.ranker.Name(), len(result.Scores), len(sentences))
		observability.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("precis.iterations", result.Iterations),
		attribute.Bool("precis.converged", result.Converged),
	)
	if !result.Converged {
		logger.Warn("Ranking stopped at %d iterations without converging", result.Iterations)
	} else {
		logger.Debug("Ranking converged after %d iterations", result.Iterations)
	}
	return result, nil
}
