// Package config loads server settings from defaults, an optional
// pokedex.yaml, POKEDEX_* environment variables and command line flags
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

// Cache backends
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// EnvPrefix is prepended to every environment override, e.g. POKEDEX_HTTP_PORT
const EnvPrefix = "POKEDEX"

// Config holds all server configuration
type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	GRPC    GRPCConfig    `mapstructure:"grpc"`
	PokeAPI PokeAPIConfig `mapstructure:"pokeapi"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// HTTPConfig holds the JSON API listener settings
type HTTPConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// GRPCConfig holds the gRPC listener settings
type GRPCConfig struct {
	Port int `mapstructure:"port"`
}

// PokeAPIConfig controls the upstream client
type PokeAPIConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	Concurrency     int           `mapstructure:"concurrency"`
	RelationsSource string        `mapstructure:"relations_source"`
}

// CacheConfig selects where raw upstream payloads are kept
type CacheConfig struct {
	Backend string      `mapstructure:"backend"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig is used when the cache backend is redis
type RedisConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	PoolSize int    `mapstructure:"pool_size"`
	UseTLS   bool   `mapstructure:"use_tls"`
}

// CatalogConfig bounds the list view
type CatalogConfig struct {
	MaxID int           `mapstructure:"max_id"`
	TTL   time.Duration `mapstructure:"ttl"`
}

// SearchConfig holds list and live search defaults
type SearchConfig struct {
	PerPage  int           `mapstructure:"per_page"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command line flags onto config keys
var flagKeys = map[string]string{
	"http-port":     "http.port",
	"grpc-port":     "grpc.port",
	"pokeapi-url":   "pokeapi.base_url",
	"cache-backend": "cache.backend",
	"redis":         "cache.redis.endpoint",
	"log-level":     "logging.level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.shutdown_timeout", 30*time.Second)

	v.SetDefault("grpc.port", 50051)

	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("pokeapi.timeout", 10*time.Second)
	v.SetDefault("pokeapi.cache_ttl", time.Hour)
	v.SetDefault("pokeapi.concurrency", 10)
	v.SetDefault("pokeapi.relations_source", "live")

	v.SetDefault("cache.backend", CacheBackendMemory)
	v.SetDefault("cache.redis.endpoint", "localhost:6379")
	v.SetDefault("cache.redis.pool_size", 10)
	v.SetDefault("cache.redis.use_tls", false)

	v.SetDefault("catalog.max_id", pokemon.Gen1MaxID)
	v.SetDefault("catalog.ttl", time.Hour)

	v.SetDefault("search.per_page", 24)
	v.SetDefault("search.debounce", 200*time.Millisecond)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Load resolves configuration. An explicit configFile must exist; without
// one a pokedex.yaml in the working directory is used when present. Flags
// that were set on the command line win over every other source.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("pokedex")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "failed to bind flag %s", name)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("http.port", c.HTTP.Port, 1, 65535, vb)
	errors.ValidatePositiveDuration("http.shutdown_timeout", c.HTTP.ShutdownTimeout, vb)
	errors.ValidateRange("grpc.port", c.GRPC.Port, 1, 65535, vb)
	if c.HTTP.Port == c.GRPC.Port {
		vb.Field("grpc.port", "must differ from http.port")
	}

	errors.ValidateURL("pokeapi.base_url", c.PokeAPI.BaseURL, vb)
	errors.ValidatePositiveDuration("pokeapi.timeout", c.PokeAPI.Timeout, vb)
	errors.ValidatePositiveDuration("pokeapi.cache_ttl", c.PokeAPI.CacheTTL, vb)
	errors.ValidateRange("pokeapi.concurrency", c.PokeAPI.Concurrency, 1, 64, vb)
	errors.ValidateEnum("pokeapi.relations_source", c.PokeAPI.RelationsSource, []string{"live", "static"}, vb)

	errors.ValidateEnum("cache.backend", c.Cache.Backend, []string{CacheBackendMemory, CacheBackendRedis}, vb)
	if c.Cache.Backend == CacheBackendRedis {
		errors.ValidateRequired("cache.redis.endpoint", c.Cache.Redis.Endpoint, vb)
		errors.ValidateRange("cache.redis.pool_size", c.Cache.Redis.PoolSize, 1, 1000, vb)
	}

	errors.ValidateRange("catalog.max_id", c.Catalog.MaxID, 1, 10000, vb)
	errors.ValidatePositiveDuration("catalog.ttl", c.Catalog.TTL, vb)

	errors.ValidateRange("search.per_page", c.Search.PerPage, 1, 500, vb)
	if c.Search.Debounce < 0 {
		vb.Field("search.debounce", "must not be negative")
	}

	errors.ValidateEnum("logging.level", strings.ToLower(c.Logging.Level), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("logging.format", c.Logging.Format, []string{"text", "json"}, vb)

	return vb.Build()
}

// NewLogger builds the slog logger described by the logging section
func (c LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
