// Package config loads server configuration from ARCANUM_* environment
// variables, optionally seeded from a .env file.
package config

import (
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	"github.com/KirkDiggler/arcanum-api/internal/redis"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "ARCANUM_"

// MinJWTSecretLength is the shortest accepted signing secret.
const MinJWTSecretLength = 16

// Config is the server configuration
type Config struct {
	GRPCPort        int           `env:"GRPC_PORT" envDefault:"50051"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// RedisAddr is a comma separated list. More than one address selects a
	// cluster client; with RedisMasterName they are sentinels.
	RedisAddr       string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisMasterName string `env:"REDIS_MASTER_NAME"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	RedisTLS        bool   `env:"REDIS_TLS" envDefault:"false"`

	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	HealthPolicy string `env:"HEALTH_POLICY" envDefault:"unclamped"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads the given .env files, if present, and parses the environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read %s", f)
		}
	}

	return Parse(nil)
}

// Parse builds a Config from environment variables. A non-nil environment
// map is used instead of the process environment.
func Parse(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	if c.ShutdownTimeout <= 0 {
		vb.InvalidField("ShutdownTimeout", "must be positive")
	}

	errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	if c.RedisDB < 0 {
		vb.InvalidField("RedisDB", "must not be negative")
	}

	if c.JWTSecret == "" {
		vb.RequiredField("JWTSecret")
	} else {
		errors.ValidateMinLength("JWTSecret", c.JWTSecret, MinJWTSecretLength, vb)
	}
	if c.TokenTTL <= 0 {
		vb.InvalidField("TokenTTL", "must be positive")
	}
	errors.ValidateRange("BcryptCost", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost, vb)

	errors.ValidateEnum("HealthPolicy", c.HealthPolicy, engine.HealthPolicies, vb)
	errors.ValidateEnum("LogLevel", c.LogLevel, LogLevels, vb)
	errors.ValidateEnum("LogFormat", c.LogFormat, LogFormats, vb)

	return vb.Build()
}

// RedisOptions returns the client options for the configured Redis.
func (c *Config) RedisOptions() *redis.Options {
	return &redis.Options{
		Password: c.RedisPassword,
		DB:       c.RedisDB,
		UseTLS:   c.RedisTLS,
	}
}
