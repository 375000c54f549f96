package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Importer ImporterConfig `mapstructure:"importer"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds HTTP API configuration
type ServerConfig struct {
	Port          int    `mapstructure:"port"`
	Host          string `mapstructure:"host"`
	AdminUser     string `mapstructure:"admin_user"`
	AdminPassword string `mapstructure:"admin_password"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

const (
	DriverREST     = "rest"
	DriverPostgres = "postgres"
)

// BackendConfig selects and configures the product persistence collaborator
type BackendConfig struct {
	Driver               string `mapstructure:"driver"`
	BaseURL              string `mapstructure:"base_url"`
	APIKey               string `mapstructure:"api_key"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
	CircuitBreakerDelay  int    `mapstructure:"circuit_breaker_delay"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	Password      string `mapstructure:"password"`
	Database      int    `mapstructure:"database"`
	ConsumerGroup string `mapstructure:"consumer_group"`
	MinIdleTime   int    `mapstructure:"min_idle_time"`
	CartTTL       int    `mapstructure:"cart_ttl"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CatalogConfig holds snapshot refresh and memoization settings
type CatalogConfig struct {
	RefreshSchedule string `mapstructure:"refresh_schedule"`
	QueryCacheSize  int    `mapstructure:"query_cache_size"`
	SnapshotTTL     int    `mapstructure:"snapshot_ttl"`
}

// ImporterConfig holds legacy site scraping settings
type ImporterConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	ListingPath          string `mapstructure:"listing_path"`
	MaxPages             int    `mapstructure:"max_pages"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
	Timeout              int    `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from an optional .env file, an optional config.yaml
// and environment variable overrides.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Warn("⚠️ config.yaml not found, using defaults and environment")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.Backend.Driver {
	case DriverREST:
		if c.Backend.BaseURL == "" {
			return fmt.Errorf("backend.base_url is required for the %s driver", DriverREST)
		}
	case DriverPostgres:
	default:
		return fmt.Errorf("unknown backend driver %q", c.Backend.Driver)
	}
	if c.Backend.MaxRequestsPerSecond <= 0 || c.Importer.MaxRequestsPerSecond <= 0 {
		return fmt.Errorf("max_requests_per_second must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.admin_user", "admin")
	v.SetDefault("server.admin_password", "")

	v.SetDefault("backend.driver", DriverPostgres)
	v.SetDefault("backend.base_url", "")
	v.SetDefault("backend.api_key", "")
	v.SetDefault("backend.timeout", 30)
	v.SetDefault("backend.max_retries", 3)
	v.SetDefault("backend.max_requests_per_second", 20)
	v.SetDefault("backend.circuit_breaker_delay", 60)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "probagno")
	v.SetDefault("database.user", "probagno_user")
	v.SetDefault("database.password", "probagno_pass")

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.consumer_group", "storefront_consumer")
	v.SetDefault("redis.min_idle_time", 120)
	v.SetDefault("redis.cart_ttl", 7*24*3600)

	v.SetDefault("catalog.refresh_schedule", "@every 5m")
	v.SetDefault("catalog.query_cache_size", 256)
	v.SetDefault("catalog.snapshot_ttl", 300)

	v.SetDefault("importer.base_url", "https://www.probagno.gr")
	v.SetDefault("importer.listing_path", "/products")
	v.SetDefault("importer.max_pages", 20)
	v.SetDefault("importer.max_requests_per_second", 2)
	v.SetDefault("importer.timeout", 60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
