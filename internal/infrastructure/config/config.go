package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=change-me"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Redis   RedisConfig
	Events  EventsConfig
}

// SessionConfig is the single login the directory accepts.
type SessionConfig struct {
	Email    string        `env:"SESSION_EMAIL,    default=abc@gmail.com"`
	Password string        `env:"SESSION_PASSWORD, default=12345"`
	UserID   string        `env:"SESSION_USER_ID,  default=1"`
	TokenTTL time.Duration `env:"TOKEN_TTL,        default=24h"`
}

// RedisConfig is optional: an empty address disables idempotency keys.
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,        default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

type EventsConfig struct {
	RatingAggregation bool `env:"RATING_AGGREGATION, default=false"`
	Workers           int  `env:"EVENT_WORKERS,      default=4"`
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads an optional .env file and then the environment using
// go-envconfig. Variables already set in the environment win over .env.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// LoadFrom is Load without the .env file and with an explicit lookuper, for tests.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
