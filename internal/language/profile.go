package language

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Profile holds the segmentation and tokenisation data for one language.
type Profile struct {
	code          domain.Language
	name          string
	tag           language.Tag
	stemmer       string
	abbreviations map[string]struct{}
	finalAbbrevs  map[string]struct{}
	stopWords     map[string]struct{}
}

// profileFile is the YAML layout of data/<code>.yaml.
type profileFile struct {
	Name      string   `yaml:"name"`
	Stemmer   string   `yaml:"stemmer"`
	StopWords []string `yaml:"stop_words"`

	// Abbreviations never end a sentence ("dr.", "e.g.").
	Abbreviations []string `yaml:"abbreviations"`

	// FinalAbbreviations may also end a sentence ("etc.", "a.m.", "U.S.").
	FinalAbbreviations []string `yaml:"final_abbreviations"`
}

var profiles = sync.OnceValue(func() map[domain.Language]*Profile {
	loaded, err := loadProfiles()
	if err != nil {
		// Embedded data is fixed at build time.
		panic(fmt.Sprintf("language: %v", err))
	}
	return loaded
})

// defaultProfile is used for languages without embedded data.
var defaultProfile = &Profile{
	code:          "",
	name:          "Default",
	tag:           language.Und,
	abbreviations: map[string]struct{}{},
	finalAbbrevs:  map[string]struct{}{},
	stopWords:     map[string]struct{}{},
}

func loadProfiles() (map[domain.Language]*Profile, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, err
	}

	result := make(map[domain.Language]*Profile, len(entries))
	for _, entry := range entries {
		data, err := dataFS.ReadFile(path.Join("data", entry.Name()))
		if err != nil {
			return nil, err
		}

		var file profileFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}

		code := domain.Language(strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
		tag, err := language.Parse(code.String())
		if err != nil {
			return nil, fmt.Errorf("parse tag %s: %w", code, err)
		}

		result[code] = &Profile{
			code:          code,
			name:          file.Name,
			tag:           tag,
			stemmer:       file.Stemmer,
			abbreviations: toSet(file.Abbreviations),
			finalAbbrevs:  toSet(file.FinalAbbreviations),
			stopWords:     toSet(file.StopWords),
		}
	}
	return result, nil
}

// toSet lowercases and NFC-normalises words so they compare equal to tokens.
func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[norm.NFC.String(strings.ToLower(w))] = struct{}{}
	}
	return set
}

// Lookup returns the profile for lang, or the default profile when the
// language has no embedded data.
func Lookup(lang domain.Language) *Profile {
	if p, ok := profiles()[lang]; ok {
		return p
	}
	return defaultProfile
}

// Has reports whether lang has an embedded profile.
func Has(lang domain.Language) bool {
	_, ok := profiles()[lang]
	return ok
}

// Available returns the codes of all embedded profiles, sorted.
func Available() []domain.Language {
	all := profiles()
	codes := make([]domain.Language, 0, len(all))
	for code := range all {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Code returns the language code of the profile. Empty for the default profile.
func (p *Profile) Code() domain.Language { return p.code }

// Name returns the English name of the language.
func (p *Profile) Name() string { return p.name }

// HasStemmer reports whether tokens can be stemmed for this language.
func (p *Profile) HasStemmer() bool { return p.stemmer != "" }

// IsStopWord reports whether the lowercased word is a stop word.
func (p *Profile) IsStopWord(word string) bool {
	_, ok := p.stopWords[word]
	return ok
}

// IsAbbreviation reports whether the lowercased word, without its final
// period, is a known abbreviation of either kind.
func (p *Profile) IsAbbreviation(word string) bool {
	_, ok := p.abbreviations[word]
	return ok || p.MayEndSentence(word)
}

// MayEndSentence reports whether word is an abbreviation that can also close
// a sentence. Titles such as "dr" and "e.g" never do.
func (p *Profile) MayEndSentence(word string) bool {
	_, ok := p.finalAbbrevs[word]
	return ok
}

// StopWordCount returns the size of the stop-word set.
func (p *Profile) StopWordCount() int { return len(p.stopWords) }

// Parse resolves a user supplied language identifier to a domain.Language.
// It accepts ISO codes and BCP 47 tags ("en", "en-GB", "pt_BR") and English
// names ("French"). An empty string yields domain.DefaultLanguage.
// Syntactically invalid identifiers return domain.ErrInvalidParameter.
func Parse(s string) (domain.Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.DefaultLanguage, nil
	}

	for _, lang := range domain.SupportedLanguages() {
		if strings.EqualFold(s, lang.Name()) {
			return lang, nil
		}
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: language %q", domain.ErrInvalidParameter, s)
	}
	base, _ := tag.Base()
	return domain.Language(base.String()), nil
}

// ParseSupported is Parse restricted to languages with an embedded profile.
// Other well-formed codes ("pt", "ja") return domain.ErrInvalidParameter.
func ParseSupported(s string) (domain.Language, error) {
	lang, err := Parse(s)
	if err != nil {
		return "", err
	}
	if !lang.IsSupported() {
		return "", fmt.Errorf("%w: language %q is not supported (available: %s)",
			domain.ErrInvalidParameter, s, joinCodes(domain.SupportedLanguages()))
	}
	return lang, nil
}

func joinCodes(langs []domain.Language) string {
	codes := make([]string, len(langs))
	for i, l := range langs {
		codes[i] = l.String()
	}
	return strings.Join(codes, ", ")
}
