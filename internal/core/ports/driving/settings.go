package driving

import "github.com/custodia-labs/hdcat/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetViewMode updates the default view mode.
	SetViewMode(mode domain.ViewMode) error

	// SetSortOrder updates the default sort order.
	SetSortOrder(order domain.SortOrder) error

	// SetCatalogPath updates the catalog location. Empty selects the bundled sample.
	SetCatalogPath(path string) error

	// SetCatalogWatch enables or disables reloading on file change.
	SetCatalogWatch(enabled bool) error

	// SetHistorySize updates the number of recent searches kept.
	SetHistorySize(size int) error

	// SetHistoryEnabled enables or disables recent-search tracking.
	SetHistoryEnabled(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
