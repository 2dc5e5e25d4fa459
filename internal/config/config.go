package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Session backends
const (
	SessionMemory = "memory"
	SessionFile   = "file"
	SessionRedis  = "redis"
)

// Config holds the application settings
type Config struct {
	Port           string        `mapstructure:"PORT"`
	APIBaseURL     string        `mapstructure:"API_BASE_URL"`
	HTTPTimeout    time.Duration `mapstructure:"HTTP_TIMEOUT"`
	PollInterval   time.Duration `mapstructure:"POLL_INTERVAL"`
	TickInterval   time.Duration `mapstructure:"TICK_INTERVAL"`
	SessionBackend string        `mapstructure:"SESSION_BACKEND"`
	SessionFile    string        `mapstructure:"SESSION_FILE"`
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"PORT":            "8080",
	"API_BASE_URL":    "http://localhost:8000",
	"HTTP_TIMEOUT":    "15s",
	"POLL_INTERVAL":   "10s",
	"TICK_INTERVAL":   "1s",
	"SESSION_BACKEND": SessionMemory,
	"SESSION_FILE":    "",
	"REDIS_ADDR":      "localhost:6379",
	"REDIS_PASSWORD":  "",
	"LOG_LEVEL":       "info",
}

// Load reads app.env from path when present; environment variables override it
func Load(path string) (cfg Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("config: read app.env: %w", err)
		}
	}
	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}
	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))
	err = cfg.Validate()
	return
}

// Validate rejects settings the app cannot start with
func (c Config) Validate() error {
	switch c.SessionBackend {
	case SessionMemory, SessionFile, SessionRedis:
	default:
		return fmt.Errorf("config: unknown SESSION_BACKEND %q", c.SessionBackend)
	}
	if c.APIBaseURL == "" {
		return errors.New("config: API_BASE_URL is required")
	}
	if c.HTTPTimeout <= 0 || c.PollInterval <= 0 || c.TickInterval <= 0 {
		return errors.New("config: HTTP_TIMEOUT, POLL_INTERVAL and TICK_INTERVAL must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
