// Package config provides configuration management using Viper
package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/spf13/viper"
)

// Environment types
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// LogLevel represents the logging level for the application
type LogLevel string

// Available log levels
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Application settings
	AppName     string   `mapstructure:"appname"`
	Environment string   `mapstructure:"environment"`
	LogLevel    LogLevel `mapstructure:"loglevel"`

	// HTTP service settings
	HTTPAddress string `mapstructure:"httpaddress"`
	HTTPPort    string `mapstructure:"httpport"`

	// Rule corpus settings: a directory of override YAML files read
	// instead of the embedded bundled corpus, when set.
	RuleCorpusDir string `mapstructure:"rulecorpusdir"`

	// Detection cache settings: 0 disables the optional bounded LRU
	// cache in front of Detect.
	DetectionCacheSize int `mapstructure:"detectioncachesize"`

	// Engine-version regex cache soft warn limit; the hard abort limit
	// is always 2x this value.
	EngineVersionCacheSoftLimit int `mapstructure:"engineversioncachesoftlimit"`

	// Logging settings
	LogsDirectory    string `mapstructure:"logsdir"`
	LogsMaxSizeInMb  int    `mapstructure:"logsmaxsizeinmb"`
	LogsMaxBackups   int    `mapstructure:"logsmaxbackups"`
	LogsMaxAgeInDays int    `mapstructure:"logsmaxageindays"`
}

var (
	cfg  *Config
	once sync.Once
)

// GetConfig returns the application configuration
func GetConfig() *Config {
	once.Do(func() {
		v := viper.New()

		v.SetDefault("appname", "devdetect")
		v.SetDefault("environment", Development)
		v.SetDefault("loglevel", string(LogLevelInfo))
		v.SetDefault("httpaddress", "0.0.0.0")
		v.SetDefault("httpport", "8080")
		v.SetDefault("rulecorpusdir", "")
		v.SetDefault("detectioncachesize", 0)
		v.SetDefault("engineversioncachesoftlimit", 40)
		v.SetDefault("logsdir", "logs")
		v.SetDefault("logsmaxsizeinmb", 20)
		v.SetDefault("logsmaxbackups", 10)
		v.SetDefault("logsmaxageindays", 30)

		v.BindEnv("appname", "DEVDETECT_APP_NAME")
		v.BindEnv("environment", "DEVDETECT_ENV")
		v.BindEnv("loglevel", "DEVDETECT_LOG_LEVEL")
		v.BindEnv("httpaddress", "DEVDETECT_HTTP_ADDRESS")
		v.BindEnv("httpport", "DEVDETECT_HTTP_PORT")
		v.BindEnv("rulecorpusdir", "DEVDETECT_RULE_CORPUS_DIR")
		v.BindEnv("detectioncachesize", "DEVDETECT_DETECTION_CACHE_SIZE")
		v.BindEnv("engineversioncachesoftlimit", "DEVDETECT_ENGINE_VERSION_CACHE_SOFT_LIMIT")
		v.BindEnv("logsdir", "DEVDETECT_LOGS_DIR")
		v.BindEnv("logsmaxsizeinmb", "DEVDETECT_LOGS_MAX_SIZE_IN_MB")
		v.BindEnv("logsmaxbackups", "DEVDETECT_LOGS_MAX_BACKUPS")
		v.BindEnv("logsmaxageindays", "DEVDETECT_LOGS_MAX_AGE_IN_DAYS")

		cfg = &Config{}
		if err := v.Unmarshal(cfg); err != nil {
			log.Fatalf("config: failed to unmarshal configuration: %v", err)
		}

		if err := cfg.validate(); err != nil {
			log.Fatalf("config: invalid configuration: %v", err)
		}
	})
	return cfg
}

// validate checks the configuration for errors
func (c *Config) validate() error {
	validEnvs := map[string]bool{
		Development: true,
		Production:  true,
		Test:        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}
	if c.DetectionCacheSize < 0 {
		return fmt.Errorf("detection cache size must be >= 0, got %d", c.DetectionCacheSize)
	}
	if c.EngineVersionCacheSoftLimit <= 0 {
		return fmt.Errorf("engine version cache soft limit must be > 0, got %d", c.EngineVersionCacheSoftLimit)
	}
	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// IsTest returns true if the environment is test
func (c *Config) IsTest() bool {
	return c.Environment == Test
}

// ListenAddress returns the address:port the HTTP service should bind to.
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%s", c.HTTPAddress, c.HTTPPort)
}

// GetLogLevel returns the log level as a string.
func (c *Config) GetLogLevel() string {
	return string(c.LogLevel)
}

// GetLogDirectory returns the logs directory.
func (c *Config) GetLogDirectory() string {
	return c.LogsDirectory
}

// GetLogMaxSizeMB returns the max log file size in MB.
func (c *Config) GetLogMaxSizeMB() int {
	return c.LogsMaxSizeInMb
}

// GetLogMaxBackups returns the max number of log backups.
func (c *Config) GetLogMaxBackups() int {
	return c.LogsMaxBackups
}

// GetLogMaxAgeDays returns the max age in days for log files.
func (c *Config) GetLogMaxAgeDays() int {
	return c.LogsMaxAgeInDays
}

// Reset clears the cached configuration; intended for tests.
func Reset() {
	once = sync.Once{}
	cfg = nil
}
