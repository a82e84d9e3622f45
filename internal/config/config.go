package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Port              string        `mapstructure:"port"`
	Storage           string        `mapstructure:"storage"`
	DatabaseURL       string        `mapstructure:"database_url"`
	JWTSecret         string        `mapstructure:"jwt_secret"`
	AdminUsername     string        `mapstructure:"admin_username"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
	RateLimitRPS      float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst    int           `mapstructure:"rate_limit_burst"`
	LogLevel          string        `mapstructure:"log_level"`
}

// AuthEnabled reports whether write routes should require a bearer token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("storage", StorageMemory)
	v.SetDefault("database_url", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_password_hash", "")
	v.SetDefault("token_ttl", 15*time.Minute)
	v.SetDefault("rate_limit_rps", 0)
	v.SetDefault("rate_limit_burst", 3)
	v.SetDefault("log_level", "info")
}

// Load reads defaults, then the optional config file at path, then environment
// variables (PORT, DATABASE_URL, ...), each overriding the previous layer.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("storage postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}

	if c.RateLimitRPS < 0 {
		return errors.New("rate_limit_rps cannot be negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst <= 0 {
		return errors.New("rate_limit_burst must be positive when rate limiting is on")
	}
	if c.TokenTTL <= 0 {
		return errors.New("token_ttl must be positive")
	}
	return nil
}
