// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults come from New(); Load layers file and env on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Backend names accepted for store_backend.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// StoreBackend selects the score store: "file" or "postgres".
	StoreBackend string `koanf:"store_backend"`

	// ScoreFile is the JSON score book path for the file backend.
	ScoreFile string `koanf:"score_file"`

	// PostgresDSN is required when StoreBackend is "postgres".
	PostgresDSN string `koanf:"postgres_dsn"`

	// SessionSecret signs judge session cookies. No default; must be set.
	SessionSecret string `koanf:"session_secret"`

	// SessionTTLMinutes bounds how long a judge session stays valid.
	SessionTTLMinutes int `koanf:"session_ttl_minutes"`

	// AdminKey gates the ranking view and the full score read.
	AdminKey string `koanf:"admin_key"`

	// RosterCSV points at the spreadsheet CSV export; empty serves the
	// built-in sample roster.
	RosterCSV string `koanf:"roster_csv"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":8090",
		StoreBackend:      BackendFile,
		ScoreFile:         "scores.json",
		SessionTTLMinutes: 720,
	}
}
