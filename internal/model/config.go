package model

import (
	"runtime"
	"time"
)

// Config is the effective configuration of the CLI and server
type Config struct {
	Dictionary  DictionaryConfig  `yaml:"dictionary" mapstructure:"dictionary"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// DictionaryConfig selects and configures the lookup backend
type DictionaryConfig struct {
	Dir      string        `yaml:"dir" mapstructure:"dir"`             // Directory of per-letter files
	Backend  string        `yaml:"backend" mapstructure:"backend"`     // "files" or "sqlite"
	DBPath   string        `yaml:"db_path" mapstructure:"db_path"`     // SQLite database file
	CacheTTL time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"` // How long parsed letter files stay in memory
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr              string   `yaml:"addr" mapstructure:"addr"`
	RequestsPerSecond float64  `yaml:"requests_per_second" mapstructure:"requests_per_second"` // Per client
	Burst             int      `yaml:"burst" mapstructure:"burst"`
	AllowedOrigins    []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	TrustedClients    []string `yaml:"trusted_clients" mapstructure:"trusted_clients"` // Hosts exempt from rate limiting
}

// OutputConfig configures rendering
type OutputConfig struct {
	Format  string `yaml:"format" mapstructure:"format"` // text, json, yaml, markdown
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // debug, info, warn, error
}

// Dictionary backends
const (
	BackendFiles  = "files"
	BackendSQLite = "sqlite"
)

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			Dir:      "data/verbs",
			Backend:  BackendFiles,
			DBPath:   "akkad.db",
			CacheTTL: 30 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Server: ServerConfig{
			Addr:              ":8080",
			RequestsPerSecond: 20,
			Burst:             40,
			AllowedOrigins:    []string{"*"},
		},
		Output: OutputConfig{
			Format: "text",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// MarshalYAML writes the cache TTL as a duration string ("30m0s") rather than nanoseconds
func (d DictionaryConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Dir      string `yaml:"dir"`
		Backend  string `yaml:"backend"`
		DBPath   string `yaml:"db_path"`
		CacheTTL string `yaml:"cache_ttl"`
	}{d.Dir, d.Backend, d.DBPath, d.CacheTTL.String()}, nil
}
