package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitlog/pkg"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	VersionInfo string `toml:"-"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// sessions
	SessionTTLHours      int      `toml:"session_ttl_hours"`
	SessionCookieSecure  bool     `toml:"session_cookie_secure"`
	PasswordHashCost     int      `toml:"password_hash_cost"`
	AllowedOrigins       []string `toml:"allowed_origins"`
	LoginRateLimitPerMin int      `toml:"login_rate_limit_per_min"`

	// only set when a reverse proxy overwrites X-Real-Ip / X-Forwarded-For
	TrustProxyHeaders bool `toml:"trust_proxy_headers"`

	// dashboard
	WeightSeriesCacheSizeMB int `toml:"weight_series_cache_size_mb"`
	WeightSeriesCacheTTLSec int `toml:"weight_series_cache_ttl_sec"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = strings.ToLower(env)
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env, with
// defaults applied for the values left out.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.SessionTTLHours <= 0 {
		c.SessionTTLHours = 24 * 7
	}
	if c.PasswordHashCost == 0 {
		c.PasswordHashCost = pkg.DefaultPasswordHashCost
	}
	if c.LoginRateLimitPerMin <= 0 {
		c.LoginRateLimitPerMin = 15
	}
	if c.WeightSeriesCacheSizeMB <= 0 {
		c.WeightSeriesCacheSizeMB = 8
	}
	if c.WeightSeriesCacheTTLSec <= 0 {
		c.WeightSeriesCacheTTLSec = 600
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
}

func (c *Config) Validate() error {
	if c.PostgresHost == "" || c.PostgresDBName == "" {
		return errors.New("postgres host and db name must be set")
	}
	if c.RedisHost == "" {
		return errors.New("redis host must be set")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if !pkg.ValidPasswordHashCost(c.PasswordHashCost) {
		return fmt.Errorf("invalid password hash cost: %d", c.PasswordHashCost)
	}
	return nil
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

func (c *Config) WeightSeriesCacheTTL() time.Duration {
	return time.Duration(c.WeightSeriesCacheTTLSec) * time.Second
}
