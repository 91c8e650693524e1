package httpmw

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config tunes the query-parameter middleware.
type Config struct {
	// MaxQueryLength caps each sanitized parameter value, in characters.
	// Zero disables the cap.
	MaxQueryLength int `env:"SANITIZE_QUERY_MAX_LEN" envDefault:"200"`

	// LogModified logs every parameter the middleware had to change.
	LogModified bool `env:"SANITIZE_QUERY_LOG" envDefault:"true"`
}

var loadDotEnv sync.Once

// LoadConfig reads the middleware configuration from the environment,
// loading a .env file first if one exists.
func LoadConfig() (Config, error) {
	loadDotEnv.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("httpmw: load config: %w", err)
	}
	return cfg, nil
}
