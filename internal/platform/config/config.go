package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable, e.g. TOKENREG_SERVER_ADDR.
const EnvPrefix = "TOKENREG"

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string        `mapstructure:"addr"`
	LogLevel      string        `mapstructure:"log_level"`
	JWTSigningKey string        `mapstructure:"jwt_signing_key"`
	JWTIssuer     string        `mapstructure:"jwt_issuer"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	AdminToken    string        `mapstructure:"admin_token"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
}

// Chain configures the block producer that drives lock expiry.
type Chain struct {
	// BlockInterval of zero disables automatic block production; blocks are
	// then only produced through the mine endpoint.
	BlockInterval time.Duration `mapstructure:"block_interval"`
	StartHeight   uint64        `mapstructure:"start_height"`
}

// Audit selects where committed registry events are recorded.
type Audit struct {
	Sink       string `mapstructure:"sink"`
	BufferSize int    `mapstructure:"buffer_size"`
	Stream     string `mapstructure:"stream"`
}

// Bound configures the companion factory every deployed registry can bind.
type Bound struct {
	BaseURI string `mapstructure:"base_uri"`
}

const (
	SinkMemory   = "memory"
	SinkRedis    = "redis"
	SinkPostgres = "postgres"
)

// RedisConfig configures the go-redis client.
type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// PostgresConfig configures the pgx-backed database/sql pool.
type PostgresConfig struct {
	DSN          string        `mapstructure:"dsn"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	ConnMaxLife  time.Duration `mapstructure:"conn_max_life"`
}

// Config is the complete service configuration.
type Config struct {
	Server   Server         `mapstructure:"server"`
	Chain    Chain          `mapstructure:"chain"`
	Audit    Audit          `mapstructure:"audit"`
	Bound    Bound          `mapstructure:"bound"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// Default returns the development configuration.
func Default() Config {
	return Config{
		Server: Server{
			Addr:          ":8080",
			LogLevel:      "info",
			JWTSigningKey: "dev-secret-key-change-in-production",
			JWTIssuer:     "tokenregistry",
			TokenTTL:      time.Hour,
			ReadTimeout:   10 * time.Second,
			WriteTimeout:  10 * time.Second,
		},
		Chain: Chain{
			BlockInterval: 2 * time.Second,
		},
		Audit: Audit{
			Sink:       SinkMemory,
			BufferSize: 1024,
			Stream:     "tokenregistry:events",
		},
		Bound: Bound{
			BaseURI: "https://bound.tokenregistry.local",
		},
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Postgres: PostgresConfig{
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			ConnMaxLife:  30 * time.Minute,
		},
	}
}

// SetDefaults registers Default() on v so every key is also bindable from
// the environment.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.log_level", d.Server.LogLevel)
	v.SetDefault("server.jwt_signing_key", d.Server.JWTSigningKey)
	v.SetDefault("server.jwt_issuer", d.Server.JWTIssuer)
	v.SetDefault("server.token_ttl", d.Server.TokenTTL)
	v.SetDefault("server.admin_token", d.Server.AdminToken)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)

	v.SetDefault("chain.block_interval", d.Chain.BlockInterval)
	v.SetDefault("chain.start_height", d.Chain.StartHeight)

	v.SetDefault("audit.sink", d.Audit.Sink)
	v.SetDefault("audit.buffer_size", d.Audit.BufferSize)
	v.SetDefault("audit.stream", d.Audit.Stream)

	v.SetDefault("bound.base_uri", d.Bound.BaseURI)

	v.SetDefault("redis.url", d.Redis.URL)
	v.SetDefault("redis.pool_size", d.Redis.PoolSize)
	v.SetDefault("redis.min_idle_conns", d.Redis.MinIdleConns)
	v.SetDefault("redis.dial_timeout", d.Redis.DialTimeout)
	v.SetDefault("redis.read_timeout", d.Redis.ReadTimeout)
	v.SetDefault("redis.write_timeout", d.Redis.WriteTimeout)

	v.SetDefault("postgres.dsn", d.Postgres.DSN)
	v.SetDefault("postgres.max_open_conns", d.Postgres.MaxOpenConns)
	v.SetDefault("postgres.max_idle_conns", d.Postgres.MaxIdleConns)
	v.SetDefault("postgres.conn_max_life", d.Postgres.ConnMaxLife)
}

// New returns a viper instance with defaults and TOKENREG_* environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv loads the configuration from defaults and the environment.
func FromEnv() (Config, error) {
	return Load(New())
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.JWTSigningKey == "" {
		errs = append(errs, errors.New("server.jwt_signing_key is required"))
	}
	if c.Server.TokenTTL <= 0 {
		errs = append(errs, errors.New("server.token_ttl must be positive"))
	}
	if c.Chain.BlockInterval < 0 {
		errs = append(errs, errors.New("chain.block_interval must not be negative"))
	}
	switch c.Audit.Sink {
	case SinkMemory:
	case SinkRedis:
		if c.Redis.URL == "" {
			errs = append(errs, errors.New("redis.url is required for the redis audit sink"))
		}
	case SinkPostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("postgres.dsn is required for the postgres audit sink"))
		}
	default:
		errs = append(errs, fmt.Errorf("audit.sink %q is not one of memory, redis, postgres", c.Audit.Sink))
	}
	if c.Audit.BufferSize <= 0 {
		errs = append(errs, errors.New("audit.buffer_size must be positive"))
	}
	return errors.Join(errs...)
}
