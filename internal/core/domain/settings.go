package domain

import "time"

const unknownDescription = "Unknown"

// Setting defaults.
const (
	DefaultTransitionDelay = 300 * time.Millisecond
	DefaultHistorySize     = 5
)

// CatalogSettings configures where datasets are loaded from.
type CatalogSettings struct {
	// Path is a catalog file or http(s) URL. Empty uses the bundled sample.
	Path string

	// Watch reloads the catalog when the file changes.
	Watch bool
}

// ViewSettings holds the initial display state of new sessions.
type ViewSettings struct {
	Mode            ViewMode
	Sort            SortOrder
	TransitionDelay time.Duration
}

// HistorySettings configures recent-search tracking.
type HistorySettings struct {
	Enabled bool

	// Size is the maximum number of entries kept.
	Size int
}

// AppSettings holds all application settings.
type AppSettings struct {
	Catalog CatalogSettings
	View    ViewSettings
	History HistorySettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		View: ViewSettings{
			Mode:            ViewModeGrid,
			Sort:            SortByRelevance,
			TransitionDelay: DefaultTransitionDelay,
		},
		History: HistorySettings{
			Enabled: true,
			Size:    DefaultHistorySize,
		},
	}
}
