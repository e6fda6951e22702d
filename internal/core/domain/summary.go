package domain

// DefaultSentenceCount is the number of sentences in a summary when the
// caller does not ask for a specific count.
const DefaultSentenceCount = 6

// SegmenterKind names a sentence segmentation strategy.
type SegmenterKind string

// Available segmenters.
const (
	// SegmenterRules splits on punctuation with abbreviation and decimal exceptions.
	SegmenterRules SegmenterKind = "rules"

	// SegmenterPunkt uses the trained Punkt model for English boundary detection.
	SegmenterPunkt SegmenterKind = "punkt"
)

// IsValid returns true if the segmenter is recognised.
func (k SegmenterKind) IsValid() bool {
	return k == SegmenterRules || k == SegmenterPunkt
}

// String returns the string representation.
func (k SegmenterKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the segmenter.
func (k SegmenterKind) Description() string {
	switch k {
	case SegmenterRules:
		return "Rules (punctuation with abbreviation exceptions)"
	case SegmenterPunkt:
		return "Punkt (trained English model)"
	default:
		return unknownDescription
	}
}

// TokenOptions controls how sentences are turned into scoring terms.
type TokenOptions struct {
	// RemoveStopWords drops the language's stop words from the tokens.
	RemoveStopWords bool

	// Stem reduces tokens to their Snowball stem when the language has a stemmer.
	Stem bool
}

// RankOptions tunes the centrality computation.
type RankOptions struct {
	// Threshold switches to discrete LexRank when positive: similarities above
	// it become edges of weight 1, the rest are dropped. Zero keeps the
	// continuous cosine weights.
	Threshold float64

	// Damping applies PageRank-style damping when in (0,1). Zero disables it.
	Damping float64

	// Epsilon is the L1 distance between successive score vectors below
	// which iteration stops.
	Epsilon float64

	// MaxIterations caps the power iteration.
	MaxIterations int
}

// Validate checks that the rank options describe a usable computation.
func (o RankOptions) Validate() error {
	if o.Threshold < 0 || o.Threshold > 1 {
		return ErrInvalidParameter
	}
	if o.Damping < 0 || o.Damping >= 1 {
		return ErrInvalidParameter
	}
	if o.Epsilon <= 0 {
		return ErrInvalidParameter
	}
	if o.MaxIterations <= 0 {
		return ErrInvalidParameter
	}
	return nil
}

// DefaultRankOptions returns continuous, undamped ranking with the standard
// convergence threshold and iteration cap.
func DefaultRankOptions() RankOptions {
	return RankOptions{
		Threshold:     0,
		Damping:       0,
		Epsilon:       1e-4,
		MaxIterations: 200,
	}
}

// SummaryOptions holds the parameters of one summarisation call.
type SummaryOptions struct {
	// SentenceCount is the number of sentences requested (K). Must be >= 0.
	SentenceCount int

	// Language selects stop words, abbreviations and stemmer.
	Language Language

	// Segmenter selects the sentence segmentation strategy.
	Segmenter SegmenterKind

	// Tokens controls term normalisation.
	Tokens TokenOptions

	// Rank tunes the centrality computation.
	Rank RankOptions
}

// DefaultSummaryOptions returns the options used when nothing is configured.
func DefaultSummaryOptions() SummaryOptions {
	return SummaryOptions{
		SentenceCount: DefaultSentenceCount,
		Language:      DefaultLanguage,
		Segmenter:     SegmenterRules,
		Tokens: TokenOptions{
			RemoveStopWords: true,
			Stem:            true,
		},
		Rank: DefaultRankOptions(),
	}
}

// Summary is the result of one summarisation call.
type Summary struct {
	// Sentences are the selected sentences in original document order.
	Sentences []Sentence

	// Total is the number of sentences the document was segmented into.
	Total int

	// Language is the language the document was processed as.
	Language Language

	// Iterations is the number of power iterations performed.
	Iterations int

	// Converged reports whether ranking met the convergence threshold
	// before the iteration cap.
	Converged bool
}

// Texts returns the surface text of the selected sentences in order.
func (s *Summary) Texts() []string {
	if s == nil {
		return []string{}
	}
	texts := make([]string, len(s.Sentences))
	for i := range s.Sentences {
		texts[i] = s.Sentences[i].Text
	}
	return texts
}

// IsEmpty returns true if no sentence was selected.
func (s *Summary) IsEmpty() bool {
	return s == nil || len(s.Sentences) == 0
}
