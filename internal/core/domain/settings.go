package domain

const unknownDescription = "Unknown"

// OutputFormat defines how a summary is rendered.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatBullets renders a "Summary:" header followed by bullet points.
	OutputFormatBullets OutputFormat = "bullets"

	// OutputFormatText renders one sentence per line.
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON renders the summary as JSON.
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML renders the summary as YAML.
	OutputFormatYAML OutputFormat = "yaml"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatBullets, OutputFormatText, OutputFormatJSON, OutputFormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatBullets:
		return "Bullets (header and bullet points)"
	case OutputFormatText:
		return "Text (one sentence per line)"
	case OutputFormatJSON:
		return "JSON"
	case OutputFormatYAML:
		return "YAML"
	default:
		return unknownDescription
	}
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{
		OutputFormatBullets,
		OutputFormatText,
		OutputFormatJSON,
		OutputFormatYAML,
	}
}

// AllSegmenters returns all available segmenters.
func AllSegmenters() []SegmenterKind {
	return []SegmenterKind{SegmenterRules, SegmenterPunkt}
}

// SummarySettings holds the persisted summarisation defaults.
type SummarySettings struct {
	// SentenceCount is the default number of sentences per summary.
	SentenceCount int

	// Language is the default document language.
	Language Language

	// Segmenter is the default segmentation strategy.
	Segmenter SegmenterKind

	// StopWords enables stop-word removal.
	StopWords bool

	// Stem enables Snowball stemming.
	Stem bool

	// Threshold, Damping, Epsilon and MaxIterations tune ranking.
	Threshold     float64
	Damping       float64
	Epsilon       float64
	MaxIterations int

	// MinChars is the minimum length of extracted document text.
	// Shorter documents are reported as not having enough readable text.
	MinChars int
}

// Options converts the settings into per-call summary options.
func (s SummarySettings) Options() SummaryOptions {
	return SummaryOptions{
		SentenceCount: s.SentenceCount,
		Language:      s.Language,
		Segmenter:     s.Segmenter,
		Tokens: TokenOptions{
			RemoveStopWords: s.StopWords,
			Stem:            s.Stem,
		},
		Rank: RankOptions{
			Threshold:     s.Threshold,
			Damping:       s.Damping,
			Epsilon:       s.Epsilon,
			MaxIterations: s.MaxIterations,
		},
	}
}

// OutputSettings holds rendering configuration.
type OutputSettings struct {
	// Format is the default output format.
	Format OutputFormat
}

// MCPSettings holds MCP server configuration.
type MCPSettings struct {
	// RateLimit is the maximum number of tool calls per second. Zero disables limiting.
	RateLimit int
}

// TracingSettings holds OpenTelemetry configuration.
type TracingSettings struct {
	// OTLPEndpoint is the OTLP gRPC collector address. Empty disables export.
	OTLPEndpoint string
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Summary SummarySettings
	Output  OutputSettings
	MCP     MCPSettings
	Tracing TracingSettings
}

// DefaultAppSettings returns the settings used when no configuration exists.
func DefaultAppSettings() AppSettings {
	rank := DefaultRankOptions()
	return AppSettings{
		Summary: SummarySettings{
			SentenceCount: DefaultSentenceCount,
			Language:      DefaultLanguage,
			Segmenter:     SegmenterRules,
			StopWords:     true,
			Stem:          true,
			Threshold:     rank.Threshold,
			Damping:       rank.Damping,
			Epsilon:       rank.Epsilon,
			MaxIterations: rank.MaxIterations,
			MinChars:      50,
		},
		Output: OutputSettings{
			Format: OutputFormatBullets,
		},
		MCP: MCPSettings{
			RateLimit: 10,
		},
	}
}
