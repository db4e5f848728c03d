package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driven"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCatalogPath    = "catalog.path"
	keyCatalogWatch   = "catalog.watch"
	keyViewMode       = "view.mode"
	keyViewSort       = "view.sort"
	keyTransitionMS   = "view.transition_ms"
	keyHistoryEnabled = "history.enabled"
	keyHistorySize    = "history.size"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, filling unset or invalid
// values from the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Catalog: domain.CatalogSettings{
			Path:  s.configStore.GetString(keyCatalogPath),
			Watch: s.getBool(keyCatalogWatch, defaults.Catalog.Watch),
		},
		View: domain.ViewSettings{
			Mode:            s.getViewMode(defaults.View.Mode),
			Sort:            s.getSortOrder(defaults.View.Sort),
			TransitionDelay: s.getTransitionDelay(defaults.View.TransitionDelay),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Size:    s.getInt(keyHistorySize, defaults.History.Size),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyCatalogPath, settings.Catalog.Path); err != nil {
		return fmt.Errorf("save catalog path: %w", err)
	}
	if err := s.configStore.Set(keyCatalogWatch, settings.Catalog.Watch); err != nil {
		return fmt.Errorf("save catalog watch: %w", err)
	}
	if err := s.configStore.Set(keyViewMode, settings.View.Mode.String()); err != nil {
		return fmt.Errorf("save view mode: %w", err)
	}
	if err := s.configStore.Set(keyViewSort, settings.View.Sort.String()); err != nil {
		return fmt.Errorf("save view sort: %w", err)
	}
	if err := s.configStore.Set(keyTransitionMS, settings.View.TransitionDelay.Milliseconds()); err != nil {
		return fmt.Errorf("save transition delay: %w", err)
	}
	if err := s.configStore.Set(keyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(keyHistorySize, settings.History.Size); err != nil {
		return fmt.Errorf("save history size: %w", err)
	}
	return nil
}

// SetViewMode updates the default view mode.
func (s *SettingsService) SetViewMode(mode domain.ViewMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidViewMode, mode)
	}
	return s.configStore.Set(keyViewMode, mode.String())
}

// SetSortOrder updates the default sort order.
func (s *SettingsService) SetSortOrder(order domain.SortOrder) error {
	if !order.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSortOrder, order)
	}
	return s.configStore.Set(keyViewSort, order.String())
}

// SetCatalogPath updates the catalog location.
func (s *SettingsService) SetCatalogPath(path string) error {
	return s.configStore.Set(keyCatalogPath, path)
}

// SetCatalogWatch enables or disables reloading on file change.
func (s *SettingsService) SetCatalogWatch(enabled bool) error {
	return s.configStore.Set(keyCatalogWatch, enabled)
}

// SetHistorySize updates the number of recent searches kept.
func (s *SettingsService) SetHistorySize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: history size must be at least 1, got %d", domain.ErrInvalidInput, size)
	}
	return s.configStore.Set(keyHistorySize, size)
}

// SetHistoryEnabled enables or disables recent-search tracking.
func (s *SettingsService) SetHistoryEnabled(enabled bool) error {
	return s.configStore.Set(keyHistoryEnabled, enabled)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getViewMode(defaultVal domain.ViewMode) domain.ViewMode {
	m := domain.ViewMode(s.configStore.GetString(keyViewMode))
	if !m.IsValid() {
		return defaultVal
	}
	return m
}

func (s *SettingsService) getSortOrder(defaultVal domain.SortOrder) domain.SortOrder {
	o := domain.SortOrder(s.configStore.GetString(keyViewSort))
	if !o.IsValid() {
		return defaultVal
	}
	return o
}

func (s *SettingsService) getTransitionDelay(defaultVal time.Duration) time.Duration {
	if _, ok := s.configStore.Get(keyTransitionMS); !ok {
		return defaultVal
	}
	ms := s.configStore.GetInt(keyTransitionMS)
	if ms < 0 {
		return defaultVal
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	v := s.configStore.GetInt(key)
	if v <= 0 {
		return defaultVal
	}
	return v
}
