package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIBaseURL is the remote QuillBoard API every operation is forwarded to.
	APIBaseURL string        `env:"API_BASE_URL, default=http://localhost:8080/api"`
	APITimeout time.Duration `env:"API_TIMEOUT,  default=10s"`

	// CookieSecret signs the session cookie. Must be set outside development.
	CookieSecret string        `env:"COOKIE_SECRET, default=dev-only-secret"`
	SessionTTL   time.Duration `env:"SESSION_TTL,   default=168h"`

	// SessionStorage selects the durable backend: "redis" or "memory".
	SessionStorage string `env:"SESSION_STORAGE, default=redis"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(log zerolog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		panic(err)
	}
	return &cfg
}

// Development reports whether the process runs in the development
// environment.
func (c *Config) Development() bool {
	return c.Env == "development"
}
