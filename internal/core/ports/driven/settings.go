package driven

import "github.com/nutricoach/nutricoach/internal/core/domain"

// SettingsStore persists application settings.
// Implementations handle storage (e.g., TOML files) and defaulting.
type SettingsStore interface {
	// Load reads settings from storage. A missing store yields the
	// defaults, not an error.
	Load() (domain.AppSettings, error)

	// Save persists settings to storage.
	Save(settings domain.AppSettings) error

	// Path returns the settings file path.
	Path() string
}
