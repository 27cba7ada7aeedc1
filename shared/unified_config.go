package shared

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Supported cache backends
const (
	CacheBackendSQLite   = "sqlite"
	CacheBackendPostgres = "postgres"
	CacheBackendMemory   = "memory"
)

// UnifiedConfiguration holds all configuration parameters for the entire application
type UnifiedConfiguration struct {
	Generator GeneratorConfig `json:"generator"`
	Database  DatabaseConfig  `json:"database"`
	Cache     CacheConfig     `json:"cache"`
	Logging   LoggingConfig   `json:"logging"`
}

// GeneratorConfig holds settings for the generative text service
type GeneratorConfig struct {
	Model           string        `json:"model"`
	JSONMode        bool          `json:"json_mode"`
	SearchGrounding bool          `json:"search_grounding"`
	FetchTimeout    time.Duration `json:"fetch_timeout"`
	MinInterval     time.Duration `json:"min_interval"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `json:"conn_max_idle_time"`
	PingTimeout     time.Duration `json:"ping_timeout"`
}

// CacheConfig holds snapshot cache configuration
type CacheConfig struct {
	Backend string `json:"backend"`
	Path    string `json:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level       string `json:"level"`
	Format      string `json:"format"`
	ServiceName string `json:"service_name"`
}

// NewDefaultUnifiedConfiguration returns production-ready default configuration
func NewDefaultUnifiedConfiguration() *UnifiedConfiguration {
	return &UnifiedConfiguration{
		Generator: GeneratorConfig{
			Model:           "gemini-3-pro-preview",
			JSONMode:        true,
			SearchGrounding: true,
			FetchTimeout:    90 * time.Second,
			MinInterval:     1 * time.Second,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    5,
			MaxIdleConns:    2,
			ConnMaxLifetime: 5 * time.Minute,
			ConnMaxIdleTime: 5 * time.Minute,
			PingTimeout:     5 * time.Second,
		},
		Cache: CacheConfig{
			Backend: CacheBackendSQLite,
			Path:    "data/ipo_cache.db",
		},
		Logging: LoggingConfig{
			Level:       "info",
			Format:      "text",
			ServiceName: "ipo-pulse",
		},
	}
}

// ValidateAndApplyDefaults validates configuration and applies defaults for invalid values
func (c *UnifiedConfiguration) ValidateAndApplyDefaults() {
	logger := logrus.WithField("component", "UnifiedConfiguration")
	defaults := NewDefaultUnifiedConfiguration()

	if strings.TrimSpace(c.Generator.Model) == "" {
		c.Generator.Model = defaults.Generator.Model
		logger.Debug("Applied default Generator.Model")
	}

	if c.Generator.FetchTimeout <= 0 {
		c.Generator.FetchTimeout = defaults.Generator.FetchTimeout
		logger.Debug("Applied default Generator.FetchTimeout")
	}

	if c.Generator.MinInterval < 0 {
		c.Generator.MinInterval = 0
		logger.Debug("Clamped negative Generator.MinInterval to zero")
	}

	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
		logger.Debug("Applied default Database.MaxOpenConns")
	}

	if c.Database.MaxIdleConns <= 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
		logger.Debug("Applied default Database.MaxIdleConns")
	}

	if c.Database.ConnMaxLifetime <= 0 {
		c.Database.ConnMaxLifetime = defaults.Database.ConnMaxLifetime
		logger.Debug("Applied default Database.ConnMaxLifetime")
	}

	if c.Database.ConnMaxIdleTime <= 0 {
		c.Database.ConnMaxIdleTime = defaults.Database.ConnMaxIdleTime
		logger.Debug("Applied default Database.ConnMaxIdleTime")
	}

	if c.Database.PingTimeout <= 0 {
		c.Database.PingTimeout = defaults.Database.PingTimeout
		logger.Debug("Applied default Database.PingTimeout")
	}

	switch strings.ToLower(strings.TrimSpace(c.Cache.Backend)) {
	case CacheBackendSQLite, CacheBackendPostgres, CacheBackendMemory:
		c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	default:
		logger.Warnf("Unknown cache backend %q, using %s", c.Cache.Backend, defaults.Cache.Backend)
		c.Cache.Backend = defaults.Cache.Backend
	}

	if c.Cache.Path == "" {
		c.Cache.Path = defaults.Cache.Path
		logger.Debug("Applied default Cache.Path")
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
		logger.Debug("Applied default Logging.Level")
	}

	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
		logger.Debug("Applied default Logging.Format")
	}

	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = defaults.Logging.ServiceName
		logger.Debug("Applied default Logging.ServiceName")
	}
}
