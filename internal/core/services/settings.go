package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driving"
	"github.com/custodia-labs/precis-cli/internal/language"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySentences     = "summary.sentences"
	keyLanguage      = "summary.language"
	keySegmenter     = "summary.segmenter"
	keyStopWords     = "summary.stop_words"
	keyStem          = "summary.stem"
	keyThreshold     = "summary.threshold"
	keyDamping       = "summary.damping"
	keyEpsilon       = "summary.epsilon"
	keyMaxIterations = "summary.max_iterations"
	keyMinChars      = "summary.min_chars"
	keyOutputFormat  = "output.format"
	keyMCPRateLimit  = "mcp.rate_limit"
	keyOTLPEndpoint  = "tracing.otlp_endpoint"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Summary: domain.SummarySettings{
			SentenceCount: s.getInt(keySentences, defaults.Summary.SentenceCount),
			Language:      s.getLanguage(defaults.Summary.Language),
			Segmenter:     s.getSegmenter(defaults.Summary.Segmenter),
			StopWords:     s.getBool(keyStopWords, defaults.Summary.StopWords),
			Stem:          s.getBool(keyStem, defaults.Summary.Stem),
			Threshold:     s.getFloat(keyThreshold, defaults.Summary.Threshold),
			Damping:       s.getFloat(keyDamping, defaults.Summary.Damping),
			Epsilon:       s.getFloat(keyEpsilon, defaults.Summary.Epsilon),
			MaxIterations: s.getInt(keyMaxIterations, defaults.Summary.MaxIterations),
			MinChars:      s.getInt(keyMinChars, defaults.Summary.MinChars),
		},
		Output: domain.OutputSettings{
			Format: s.getOutputFormat(defaults.Output.Format),
		},
		MCP: domain.MCPSettings{
			RateLimit: s.getInt(keyMCPRateLimit, defaults.MCP.RateLimit),
		},
		Tracing: domain.TracingSettings{
			OTLPEndpoint: s.configStore.GetString(keyOTLPEndpoint), // No default - empty disables export
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keySentences, settings.Summary.SentenceCount},
		{keyLanguage, settings.Summary.Language.String()},
		{keySegmenter, settings.Summary.Segmenter.String()},
		{keyStopWords, settings.Summary.StopWords},
		{keyStem, settings.Summary.Stem},
		{keyThreshold, settings.Summary.Threshold},
		{keyDamping, settings.Summary.Damping},
		{keyEpsilon, settings.Summary.Epsilon},
		{keyMaxIterations, settings.Summary.MaxIterations},
		{keyMinChars, settings.Summary.MinChars},
		{keyOutputFormat, settings.Output.Format.String()},
		{keyMCPRateLimit, settings.MCP.RateLimit},
		{keyOTLPEndpoint, settings.Tracing.OTLPEndpoint},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key and stores it. Unknown keys, values of the
// wrong type and values that would leave the settings invalid return
// domain.ErrInvalidParameter and nothing is stored.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	candidate, err := s.Get()
	if err != nil {
		return err
	}

	var parsed any
	switch key {
	case keySentences, keyMaxIterations, keyMinChars, keyMCPRateLimit:
		var n int
		n, err = parseNonNegativeInt(value)
		parsed = n
		switch key {
		case keySentences:
			candidate.Summary.SentenceCount = n
		case keyMaxIterations:
			candidate.Summary.MaxIterations = n
		case keyMinChars:
			candidate.Summary.MinChars = n
		default:
			candidate.MCP.RateLimit = n
		}
	case keyThreshold, keyDamping, keyEpsilon:
		var f float64
		f, err = strconv.ParseFloat(value, 64)
		parsed = f
		switch key {
		case keyThreshold:
			candidate.Summary.Threshold = f
		case keyDamping:
			candidate.Summary.Damping = f
		default:
			candidate.Summary.Epsilon = f
		}
	case keyStopWords, keyStem:
		var b bool
		b, err = strconv.ParseBool(value)
		parsed = b
	case keyLanguage:
		var lang domain.Language
		lang, err = language.Parse(value)
		parsed = lang.String()
		candidate.Summary.Language = lang
	case keySegmenter:
		if !domain.SegmenterKind(value).IsValid() {
			err = fmt.Errorf("unknown segmenter %q", value)
		}
		parsed = value
	case keyOutputFormat:
		if !domain.OutputFormat(value).IsValid() {
			err = fmt.Errorf("unknown output format %q", value)
		}
		parsed = value
	case keyOTLPEndpoint:
		parsed = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidParameter, key)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidParameter, key, err)
	}
	if err := validateSettings(candidate); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the configuration keys accepted by Set, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keySentences, keyLanguage, keySegmenter, keyStopWords, keyStem,
		keyThreshold, keyDamping, keyEpsilon, keyMaxIterations, keyMinChars,
		keyOutputFormat, keyMCPRateLimit, keyOTLPEndpoint,
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return validateSettings(settings)
}

func validateSettings(settings *domain.AppSettings) error {
	if settings.Summary.SentenceCount < 0 {
		return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidParameter, keySentences)
	}
	if err := settings.Summary.Options().Rank.Validate(); err != nil {
		return fmt.Errorf("ranking settings: %w", err)
	}
	if !settings.Summary.Language.IsSupported() {
		return fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidParameter, settings.Summary.Language)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getLanguage(defaultVal domain.Language) domain.Language {
	lang, err := language.Parse(s.getString(keyLanguage, defaultVal.String()))
	if err != nil {
		return defaultVal
	}
	return lang
}

func (s *SettingsService) getSegmenter(defaultVal domain.SegmenterKind) domain.SegmenterKind {
	kind := domain.SegmenterKind(s.getString(keySegmenter, defaultVal.String()))
	if !kind.IsValid() {
		return defaultVal
	}
	return kind
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.getString(keyOutputFormat, defaultVal.String()))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func parseNonNegativeInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return n, nil
}
