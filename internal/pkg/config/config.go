package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"time"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionSecret signs the session cookie envelope. Required in
	// production; an empty secret only makes sense in tests.
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL,           default=168h"`
	CookieName    string        `env:"SESSION_COOKIE_NAME,   default=sid"`
	CookieSecure  bool          `env:"SESSION_COOKIE_SECURE, default=true"`

	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW, default=10m"`
	RateLimitMax    int64         `env:"RATE_LIMIT_MAX,    default=100"`

	// BcryptCost <= 0 selects the bcrypt library default.
	BcryptCost            int    `env:"BCRYPT_COST, default=0"`
	BodyLimit             string `env:"BODY_LIMIT,  default=1M"`
	EmployeeSignupEnabled bool   `env:"EMPLOYEE_SIGNUP_ENABLED, default=false"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=auth_gateway"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
