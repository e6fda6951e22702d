package domain

// Language identifies the language of a document by its ISO 639-1 code.
// It selects the stop-word set, abbreviation exceptions and stemmer used
// during segmentation. Codes outside SupportedLanguages are accepted and
// tokenised with the default profile.
type Language string

// Supported languages.
const (
	// LanguageEnglish is English; tokenisation rules are fully specified.
	LanguageEnglish Language = "en"

	// LanguageHindi is Hindi (Devanagari script).
	LanguageHindi Language = "hi"

	// LanguageFrench is French.
	LanguageFrench Language = "fr"

	// LanguageGerman is German.
	LanguageGerman Language = "de"

	// LanguageSpanish is Spanish.
	LanguageSpanish Language = "es"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = LanguageEnglish

// SupportedLanguages returns the languages with a dedicated profile.
func SupportedLanguages() []Language {
	return []Language{
		LanguageEnglish,
		LanguageHindi,
		LanguageFrench,
		LanguageGerman,
		LanguageSpanish,
	}
}

// IsSupported returns true if the language has a dedicated profile.
func (l Language) IsSupported() bool {
	switch l {
	case LanguageEnglish, LanguageHindi, LanguageFrench, LanguageGerman, LanguageSpanish:
		return true
	default:
		return false
	}
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// Name returns the English name of the language.
func (l Language) Name() string {
	switch l {
	case LanguageEnglish:
		return "English"
	case LanguageHindi:
		return "Hindi"
	case LanguageFrench:
		return "French"
	case LanguageGerman:
		return "German"
	case LanguageSpanish:
		return "Spanish"
	default:
		return unknownDescription
	}
}
