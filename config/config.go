package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Wager    WagerConfig    `mapstructure:"wager"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Log      LogConfig      `mapstructure:"log"`
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

// WagerConfig holds the stake and payout policy. Each value here was a
// hardcoded literal at some point in the product's history; they are named
// configuration now. Amounts are cents, the fee rate is basis points.
type WagerConfig struct {
	FeeBps          int64  `mapstructure:"fee_bps"`          // cash-out rake (1000 = 10%)
	MinStake        int64  `mapstructure:"min_stake"`        // lowest allowed stake
	MaxStake        int64  `mapstructure:"max_stake"`        // highest allowed stake
	StartingBalance int64  `mapstructure:"starting_balance"` // credited when an account is first seen
	ForfeitPolicy   string `mapstructure:"forfeit_policy"`   // return_stake or house
	HouseAccountID  string `mapstructure:"house_account_id"` // receives forfeited stakes under the house policy
}

// Forfeit policy values.
const (
	ForfeitReturnStake = "return_stake"
	ForfeitHouse       = "house"
)

// GatewayConfig holds the payment provider integration settings.
type GatewayConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	APIKey       string        `mapstructure:"api_key"`
	IPNSecret    string        `mapstructure:"ipn_secret"` // empty disables webhook signature verification
	Timeout      time.Duration `mapstructure:"timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	PollWorkers  int           `mapstructure:"poll_workers"`
}

// EngineConfig holds the trusted game-engine callback settings.
type EngineConfig struct {
	SharedKey string `mapstructure:"shared_key"` // value of the X-Engine-Key header
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WA_ (Wager Arena).
// Nested keys use underscore: WA_DATABASE_HOST, WA_WAGER_FEE_BPS, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wager_arena")
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
	v.SetDefault("jwt.issuer", "wager-arena")
	v.SetDefault("wager.fee_bps", 1000)
	v.SetDefault("wager.min_stake", 100)
	v.SetDefault("wager.max_stake", 500)
	v.SetDefault("wager.starting_balance", 10000)
	v.SetDefault("wager.forfeit_policy", ForfeitReturnStake)
	v.SetDefault("wager.house_account_id", "house")
	v.SetDefault("gateway.base_url", "https://api.nowpayments.io/v1")
	v.SetDefault("gateway.api_key", "")
	v.SetDefault("gateway.ipn_secret", "")
	v.SetDefault("gateway.timeout", "10s")
	v.SetDefault("gateway.poll_interval", "1m")
	v.SetDefault("gateway.poll_workers", 4)
	v.SetDefault("engine.shared_key", "")
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

	// Environment variables: WA_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WA")
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field constraints that viper cannot express.
func (c *Config) Validate() error {
	if c.Wager.FeeBps < 0 || c.Wager.FeeBps > 10000 {
		return fmt.Errorf("wager.fee_bps must be within [0, 10000], got %d", c.Wager.FeeBps)
	}
	if c.Wager.MinStake <= 0 {
		return fmt.Errorf("wager.min_stake must be positive, got %d", c.Wager.MinStake)
	}
	if c.Wager.MaxStake < c.Wager.MinStake {
		return fmt.Errorf("wager.max_stake (%d) must be >= wager.min_stake (%d)", c.Wager.MaxStake, c.Wager.MinStake)
	}
	if c.Wager.StartingBalance < 0 {
		return fmt.Errorf("wager.starting_balance must be non-negative, got %d", c.Wager.StartingBalance)
	}
	switch c.Wager.ForfeitPolicy {
	case ForfeitReturnStake:
	case ForfeitHouse:
		if c.Wager.HouseAccountID == "" {
			return fmt.Errorf("wager.house_account_id is required when forfeit_policy is %q", ForfeitHouse)
		}
	default:
		return fmt.Errorf("unknown wager.forfeit_policy %q", c.Wager.ForfeitPolicy)
	}
	return nil
}
