package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// DataBackend selects the catalogue provider: "fixtures" serves the
	// built-in demo dataset, "mongo" reads from MongoDB.
	DataBackend string `env:"DATA_BACKEND, default=fixtures"`

	// AuthMode selects credential verification: "shared_secret" accepts the
	// demo secret for every account, "bcrypt" checks stored password hashes.
	AuthMode     string        `env:"AUTH_MODE,     default=shared_secret"`
	SharedSecret string        `env:"SHARED_SECRET, default=admin123"`
	SubmitDelay  time.Duration `env:"SUBMIT_DELAY,  default=2s"`
	DraftTTL     time.Duration `env:"DRAFT_TTL,     default=24h"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=event_console"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,        default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	switch cfg.DataBackend {
	case "fixtures", "mongo":
	default:
		return nil, fmt.Errorf("unknown DATA_BACKEND %q", cfg.DataBackend)
	}
	switch cfg.AuthMode {
	case "shared_secret", "bcrypt":
	default:
		return nil, fmt.Errorf("unknown AUTH_MODE %q", cfg.AuthMode)
	}

	return &cfg, nil
}
