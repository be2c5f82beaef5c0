package settings

import "context"

// SettingsRepository defines the interface for site settings persistence
type SettingsRepository interface {
	// Get loads the settings row
	Get(ctx context.Context) (*SiteSettings, error)

	// CreateIfMissing inserts s when no settings row exists. It reports whether a row was created.
	CreateIfMissing(ctx context.Context, s *SiteSettings) (bool, error)

	// Save updates the settings row
	Save(ctx context.Context, s *SiteSettings) error
}
