package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// VaultKeySize is the length of the process-wide key sealing wallet keys and
// webhook secrets at rest.
const VaultKeySize = 32

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Vault     VaultConfig     `mapstructure:"vault"`
	Processor ProcessorConfig `mapstructure:"processor"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type VaultConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded XChaCha20-Poly1305 key
}

// DecodeKey returns the raw vault key, failing on anything but 32 hex-encoded bytes.
func (v VaultConfig) DecodeKey() ([]byte, error) {
	if strings.TrimSpace(v.Key) == "" {
		return nil, errors.New("vault.key is not set")
	}
	key, err := hex.DecodeString(strings.TrimSpace(v.Key))
	if err != nil {
		return nil, fmt.Errorf("decoding vault.key: %w", err)
	}
	if len(key) != VaultKeySize {
		return nil, fmt.Errorf("vault.key must be %d bytes, got %d", VaultKeySize, len(key))
	}
	return key, nil
}

// ProcessorConfig describes how the payment processor is reached.
type ProcessorConfig struct {
	DefaultURL string        `mapstructure:"default_url"` // used when a merchant profile has no URL
	TorProxy   string        `mapstructure:"tor_proxy"`   // SOCKS5 host:port, required; empty fails at startup
	Timeout    time.Duration `mapstructure:"timeout"`
	WebhookURL string        `mapstructure:"webhook_url"` // public URL the processor posts events to
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BPC_.
// Nested keys use underscore: BPC_DATABASE_HOST, BPC_VAULT_KEY, etc.
// A .env file in the working directory is loaded first if present; it never
// overrides variables already set.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "btc_payments")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "btc-payment-core")
	v.SetDefault("vault.key", "")
	v.SetDefault("processor.default_url", "")
	v.SetDefault("processor.tor_proxy", "127.0.0.1:9050")
	v.SetDefault("processor.timeout", "30s")
	v.SetDefault("processor.webhook_url", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("BPC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings the process cannot start without.
// It runs before any listener is opened.
func (c *Config) Validate() error {
	if _, err := c.Vault.DecodeKey(); err != nil {
		return err
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret is not set")
	}
	if c.Processor.Timeout <= 0 {
		return errors.New("processor.timeout must be positive")
	}
	return nil
}
