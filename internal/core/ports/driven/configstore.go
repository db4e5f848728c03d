package driven

// ConfigStore holds hdcat settings under dotted keys such as "view.mode"
// or "history.size". Typed getters return the zero value when a key is
// missing or holds a different type, so callers fall back to defaults.
type ConfigStore interface {
	// Get returns the raw value stored under key.
	Get(key string) (any, bool)

	GetString(key string) string

	// GetInt also accepts int64 and float64 values, which TOML and JSON
	// decoders produce for whole numbers.
	GetInt(key string) int

	GetBool(key string) bool

	GetStringSlice(key string) []string

	// Set stores value and writes the store through to its backing file,
	// if any.
	Set(key string, value any) error

	// Save writes every value to the backing file.
	Save() error

	// Load replaces the in-memory values with the backing file contents.
	// A missing file is not an error.
	Load() error

	// Path is the backing file, or ":memory:" for in-memory stores.
	Path() string
}
