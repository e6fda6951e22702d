package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/precis-cli/internal/observability"
	"github.com/custodia-labs/precis-cli/internal/rankers/lexrank"
	"github.com/custodia-labs/precis-cli/internal/segmenters/punkt"
	"github.com/custodia-labs/precis-cli/internal/segmenters/rules"
)

// mockRanker returns fixed scores.
type mockRanker struct {
	scores []float64
	err    error
}

func (m *mockRanker) Name() string { return "mock" }

func (m *mockRanker) Rank(_ []domain.Sentence, _ domain.RankOptions) (*driven.RankResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &driven.RankResult{Scores: m.scores, Iterations: 1, Converged: true}, nil
}

const energyText = "Solar panels turn sunlight into electricity for homes. " +
	"Solar panels are cheap. " +
	"Homes use electricity every day. " +
	"Cheap electricity helps homes. " +
	"Giraffes eat leaves."

func newTestSummaryService() *SummaryService {
	return NewSummaryService(lexrank.New(), rules.New(), punkt.New())
}

func optsWithCount(k int) domain.SummaryOptions {
	opts := domain.DefaultSummaryOptions()
	opts.SentenceCount = k
	return opts
}

func TestNewSummaryService(t *testing.T) {
	service := newTestSummaryService()

	require.NotNil(t, service)
	assert.Len(t, service.segmenters, 2)
	assert.NotNil(t, service.tracer)
}

func TestSummaryService_SingleLetterSentences(t *testing.T) {
	service := newTestSummaryService()

	summary, err := service.Summarise(context.Background(), "A. B. C. D. E.", optsWithCount(2))

	require.NoError(t, err)
	assert.Equal(t, []string{"A.", "B."}, summary.Texts())
	assert.Equal(t, 5, summary.Total)
	assert.True(t, summary.Converged)
}

func TestSummaryService_IsolatedSentenceDroppedFirst(t *testing.T) {
	service := newTestSummaryService()

	summary, err := service.Summarise(context.Background(), energyText, optsWithCount(4))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Solar panels turn sunlight into electricity for homes.",
		"Solar panels are cheap.",
		"Homes use electricity every day.",
		"Cheap electricity helps homes.",
	}, summary.Texts())
}

func TestSummaryService_OrderAndCount(t *testing.T) {
	service := newTestSummaryService()

	for k := 0; k <= 7; k++ {
		summary, err := service.Summarise(context.Background(), energyText, optsWithCount(k))
		require.NoError(t, err)

		expected := k
		if expected > 5 {
			expected = 5
		}
		require.Len(t, summary.Sentences, expected)
		for i := 1; i < len(summary.Sentences); i++ {
			assert.Less(t, summary.Sentences[i-1].Position, summary.Sentences[i].Position)
		}
	}
}

func TestSummaryService_ZeroCountIsEmptyWithoutError(t *testing.T) {
	service := newTestSummaryService()

	summary, err := service.Summarise(context.Background(), energyText, optsWithCount(0))

	require.NoError(t, err)
	assert.True(t, summary.IsEmpty())
	assert.Equal(t, []string{}, summary.Texts())
	assert.Equal(t, 5, summary.Total)
}

func TestSummaryService_Deterministic(t *testing.T) {
	service := newTestSummaryService()

	first, err := service.Summarise(context.Background(), energyText, optsWithCount(3))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := service.Summarise(context.Background(), energyText, optsWithCount(3))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSummaryService_EmptyInput(t *testing.T) {
	service := newTestSummaryService()

	for _, text := range []string{"", "   ", "The. It is."} {
		summary, err := service.Summarise(context.Background(), text, optsWithCount(3))

		assert.ErrorIs(t, err, domain.ErrEmptyInput, "text %q", text)
		require.NotNil(t, summary)
		assert.True(t, summary.IsEmpty())
		assert.Equal(t, domain.LanguageEnglish, summary.Language)
	}
}

func TestSummaryService_Defaults(t *testing.T) {
	service := newTestSummaryService()
	opts := optsWithCount(1)
	opts.Language = ""
	opts.Segmenter = ""

	summary, err := service.Summarise(context.Background(), energyText, opts)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLanguage, summary.Language)
	assert.Len(t, summary.Sentences, 1)
}

func TestSummaryService_PunktSegmenter(t *testing.T) {
	service := newTestSummaryService()
	opts := optsWithCount(2)
	opts.Segmenter = domain.SegmenterPunkt

	summary, err := service.Summarise(context.Background(), energyText, opts)

	require.NoError(t, err)
	assert.Len(t, summary.Sentences, 2)
	assert.Equal(t, 5, summary.Total)
}

func TestSummaryService_InvalidParameters(t *testing.T) {
	service := newTestSummaryService()

	tests := []struct {
		name   string
		modify func(*domain.SummaryOptions)
	}{
		{"negative count", func(o *domain.SummaryOptions) { o.SentenceCount = -1 }},
		{"unknown segmenter", func(o *domain.SummaryOptions) { o.Segmenter = "neural" }},
		{"zero epsilon", func(o *domain.SummaryOptions) { o.Rank.Epsilon = 0 }},
		{"damping out of range", func(o *domain.SummaryOptions) { o.Rank.Damping = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := optsWithCount(2)
			tt.modify(&opts)

			summary, err := service.Summarise(context.Background(), energyText, opts)

			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
			assert.Nil(t, summary)
		})
	}
}

func TestSummaryService_RankerError(t *testing.T) {
	rankErr := errors.New("rank failed")
	service := NewSummaryService(&mockRanker{err: rankErr}, rules.New())

	_, err := service.Summarise(context.Background(), energyText, optsWithCount(2))

	assert.ErrorIs(t, err, rankErr)
}

func TestSummaryService_RankerScoreCountMismatch(t *testing.T) {
	service := NewSummaryService(&mockRanker{scores: []float64{1}}, rules.New())

	_, err := service.Summarise(context.Background(), energyText, optsWithCount(2))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned 1 scores for 5 sentences")
}

func TestSummaryService_UsesRankerScores(t *testing.T) {
	service := NewSummaryService(&mockRanker{scores: []float64{0.1, 0.1, 0.5, 0.2, 0.1}}, rules.New())

	summary, err := service.Summarise(context.Background(), energyText, optsWithCount(2))

	require.NoError(t, err)
	assert.Equal(t, []string{"Homes use electricity every day.", "Cheap electricity helps homes."}, summary.Texts())
	assert.InDelta(t, 0.5, summary.Sentences[0].Score, 1e-12)
}

func TestSummaryService_CancelledContext(t *testing.T) {
	service := newTestSummaryService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Summarise(ctx, energyText, optsWithCount(2))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummaryService_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	service := newTestSummaryService()
	service.SetTracer(provider.Tracer(observability.TracerName))

	_, err := service.Summarise(context.Background(), energyText, optsWithCount(2))
	require.NoError(t, err)

	names := make([]string, 0, 4)
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{
		observability.SpanSegment,
		observability.SpanRank,
		observability.SpanSelect,
		observability.SpanSummarise,
	}, names)
}
