package driving

import "github.com/custodia-labs/precis-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by its configuration key
	// (e.g. "summary.sentences"), parsing value to the key's type.
	Set(key, value string) error

	// Keys returns the configuration keys accepted by Set.
	Keys() []string

	// Validate checks that current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
