package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr       string
	Env        string
	APIKey     string
	TextModel  string
	ImageModel string
}

// Load reads configuration from a .env file (when present) and the
// process environment. Command-line flags override the result in main.
func Load() (*Config, error) {
	_ = godotenv.Load()

	addr := strings.TrimSpace(os.Getenv("PORT"))
	if addr == "" {
		addr = ":8080"
	} else if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	apiKey := firstNonEmpty(os.Getenv("GEMINI_API_KEY"), os.Getenv("GOOGLE_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("config: GEMINI_API_KEY is not set")
	}

	return &Config{
		Addr:       addr,
		Env:        env,
		APIKey:     apiKey,
		TextModel:  strings.TrimSpace(os.Getenv("TEXT_MODEL")),
		ImageModel: strings.TrimSpace(os.Getenv("IMAGE_MODEL")),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
