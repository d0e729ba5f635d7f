// Package config loads server settings from the environment and an optional file.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/uzochukwuV/massacombat/internal/errors"
)

// EnvPrefix is prepended to every environment variable, e.g. BATTLE_GRPC_PORT
const EnvPrefix = "BATTLE"

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config holds everything the server needs to start
type Config struct {
	GRPCPort    int
	MetricsAddr string

	Storage string

	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	RedisTLS           bool
	RedisPoolSize      int
	RedisMinIdleConns  int
	RedisMaxRetries    int
	RedisConnIdleLimit time.Duration

	SQLiteDSN string

	WildcardChance  uint8
	WildcardWindow  time.Duration
	MaxTurns        uint32
	AllowSelfBattle bool
	GuardTTL        time.Duration

	LogLevel  string
	LogFormat string

	// CatalogPath overrides the embedded class and equipment catalog
	CatalogPath string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GRPC_PORT", 50051)
	v.SetDefault("METRICS_ADDR", ":9090")
	v.SetDefault("STORAGE", StorageMemory)
	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TLS", false)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 2)
	v.SetDefault("REDIS_MAX_RETRIES", 3)
	v.SetDefault("REDIS_CONN_IDLE_SEC", 300)
	v.SetDefault("SQLITE_DSN", "file:leaderboard.db?cache=shared")
	v.SetDefault("WILDCARD_CHANCE", 10)
	v.SetDefault("WILDCARD_WINDOW_SEC", 300)
	v.SetDefault("MAX_TURNS", 100)
	v.SetDefault("ALLOW_SELF_BATTLE", false)
	v.SetDefault("GUARD_TTL_SEC", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CATALOG_PATH", "")
}

// Load reads the configuration. Environment variables win over the file at path,
// which wins over defaults. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	cfg := &Config{
		GRPCPort:           v.GetInt("GRPC_PORT"),
		MetricsAddr:        v.GetString("METRICS_ADDR"),
		Storage:            strings.ToLower(v.GetString("STORAGE")),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		RedisTLS:           v.GetBool("REDIS_TLS"),
		RedisPoolSize:      v.GetInt("REDIS_POOL_SIZE"),
		RedisMinIdleConns:  v.GetInt("REDIS_MIN_IDLE_CONNS"),
		RedisMaxRetries:    v.GetInt("REDIS_MAX_RETRIES"),
		RedisConnIdleLimit: time.Duration(v.GetInt("REDIS_CONN_IDLE_SEC")) * time.Second,
		SQLiteDSN:          v.GetString("SQLITE_DSN"),
		WildcardChance:     uint8(v.GetUint("WILDCARD_CHANCE")),
		WildcardWindow:     time.Duration(v.GetInt("WILDCARD_WINDOW_SEC")) * time.Second,
		MaxTurns:           v.GetUint32("MAX_TURNS"),
		AllowSelfBattle:    v.GetBool("ALLOW_SELF_BATTLE"),
		GuardTTL:           time.Duration(v.GetInt("GUARD_TTL_SEC")) * time.Second,
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
		CatalogPath:        v.GetString("CATALOG_PATH"),
	}

	if v.GetUint("WILDCARD_CHANCE") > 100 {
		return nil, errors.InvalidArgument("WILDCARD_CHANCE must be at most 100")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Field("GRPCPort", "must be between 1 and 65535")
	}
	switch c.Storage {
	case StorageMemory:
	case StorageRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	default:
		vb.Fieldf("Storage", "must be %q or %q", StorageMemory, StorageRedis)
	}
	errors.ValidateRequired("SQLiteDSN", c.SQLiteDSN, vb)
	if c.WildcardChance > 100 {
		vb.Field("WildcardChance", "must be at most 100")
	}
	if c.WildcardWindow < time.Second {
		vb.Field("WildcardWindow", "must be at least one second")
	}
	if c.MaxTurns == 0 {
		vb.RequiredField("MaxTurns")
	}
	if c.GuardTTL <= 0 {
		vb.Field("GuardTTL", "must be positive")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		vb.Field("LogFormat", "must be json or text")
	}

	return vb.Build()
}
