package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Payment    PaymentConfig    `mapstructure:"payment"`
	Investment InvestmentConfig `mapstructure:"investment"`
	Sweeper    SweeperConfig    `mapstructure:"sweeper"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
	// BaseURL is the public base for payment URLs encoded into QR codes.
	BaseURL string `mapstructure:"base_url"`
}

// StorageConfig selects the backend per entity family.
type StorageConfig struct {
	// Backend for accounts, opportunities and investments: memory | postgres.
	Backend string `mapstructure:"backend"`
	// Requests backend for payment requests: memory | redis.
	Requests string `mapstructure:"requests"`
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

// PaymentConfig holds payment request policy.
type PaymentConfig struct {
	// RequestTTL is the single policy deadline for pending payment requests.
	RequestTTL       time.Duration `mapstructure:"request_ttl"`
	DefaultTokenKind string        `mapstructure:"default_token_kind"`
}

// InvestmentConfig holds funding engine policy.
type InvestmentConfig struct {
	OpportunityTTL time.Duration `mapstructure:"opportunity_ttl"`
	// ReturnRate is the expected-return premium, e.g. 0.05 for 5%.
	ReturnRate float64 `mapstructure:"return_rate"`
}

// SweeperConfig controls the optional background expiry sweeper.
type SweeperConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Interval  time.Duration `mapstructure:"interval"`
	PoolSize  int           `mapstructure:"pool_size"`
	BatchSize int           `mapstructure:"batch_size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CPP_ (Custodial
// Payment Platform). Nested keys use underscore: CPP_DATABASE_HOST,
// CPP_PAYMENT_REQUEST_TTL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.requests", "memory")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "custodial_payments")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("payment.request_ttl", "15m")
	v.SetDefault("payment.default_token_kind", "HBAR")
	v.SetDefault("investment.opportunity_ttl", "720h") // 30 days
	v.SetDefault("investment.return_rate", 0.05)
	v.SetDefault("sweeper.enabled", false)
	v.SetDefault("sweeper.interval", "1m")
	v.SetDefault("sweeper.pool_size", 4)
	v.SetDefault("sweeper.batch_size", 100)
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

	// Environment variables: CPP_REDIS_HOST -> redis.host
	v.SetEnvPrefix("CPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
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
