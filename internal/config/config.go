package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymtrack/pkg"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	Environment   string `toml:"-"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// auth
	JWTIssuer                   string   `toml:"jwt_issuer"`
	JWTTTLHours                 int      `toml:"jwt_ttl_hours"`
	PasswordHashCost            int      `toml:"password_hash_cost"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	CorsAllowedOrigins          []string `toml:"cors_allowed_origins"`
	// stats
	Timezone             string `toml:"timezone"`
	StatsMaxWindowDays   int    `toml:"stats_max_window_days"`
	StatsCacheTTLSeconds int    `toml:"stats_cache_ttl_seconds"`
	StatsCacheSizeMB     int    `toml:"stats_cache_size_mb"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
		env = "development"
	case "prod", "production":
		cfg = t.Production
		env = "production"
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = env
	return cfg, nil
}

// Load reads the TOML file and returns the section for env, with defaults applied.
func Load(env, path string) (*Config, error) {
	exists, err := pkg.PathExists(path, false)
	if err != nil {
		return nil, fmt.Errorf("config file [%s]: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("config file [%s] not found", path)
	}

	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
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
	if c.JWTIssuer == "" {
		c.JWTIssuer = "gymtrack"
	}
	if c.JWTTTLHours == 0 {
		c.JWTTTLHours = 24 * 7
	}
	if c.PasswordHashCost == 0 {
		c.PasswordHashCost = 12
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.StatsMaxWindowDays == 0 {
		c.StatsMaxWindowDays = 366
	}
	if c.StatsCacheTTLSeconds == 0 {
		c.StatsCacheTTLSeconds = 60
	}
	if c.StatsCacheSizeMB == 0 {
		c.StatsCacheSizeMB = 20
	}
}

func (c *Config) validate() error {
	if c.PostgresHost == "" || c.PostgresDBName == "" {
		return errors.New("postgres host and db name must be set")
	}
	if c.RedisHost == "" {
		return errors.New("redis host must be set")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone [%s]: %w", c.Timezone, err)
	}
	if c.StatsMaxWindowDays < 1 {
		return errors.New("stats_max_window_days must be positive")
	}
	return nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

func (c *Config) StatsCacheTTL() time.Duration {
	return time.Duration(c.StatsCacheTTLSeconds) * time.Second
}
